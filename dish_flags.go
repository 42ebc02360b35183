// Copyright (c) 2022  The Go-Enjin Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dish

import (
	"github.com/urfave/cli/v2"

	"github.com/go-enjin/dish/pkg/globals"
)

func (d *Dish) flags() (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "read settings from the TOML `FILE`",
			EnvVars: globals.MakeEnvKeys("CONFIG"),
		},
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "numeric representation: u8, u16, u32, u64, uint, uintptr, i8, i16, i32, i64, int, f32, f64",
			Value:   d.cfg.Representation,
			EnvVars: globals.MakeEnvKeys("TYPE"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "result format: text, json, yaml or toml",
			Value:   d.cfg.Output,
			EnvVars: globals.MakeEnvKeys("OUTPUT"),
		},
		&cli.StringFlag{
			Name:    globals.MakeFlagName("log", "level"),
			Usage:   "logging verbosity: trace, debug, info, warn or error",
			Value:   d.cfg.LogLevel,
			EnvVars: globals.MakeEnvKeys("LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    globals.MakeFlagName("log", "format"),
			Usage:   "logging format: pretty, text or json",
			Value:   d.cfg.LogFormat,
			EnvVars: globals.MakeEnvKeys("LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:    globals.MakeFlagName("log", "file"),
			Usage:   "append log entries to `FILE` instead of stderr",
			EnvVars: globals.MakeEnvKeys("LOG_FILE"),
		},
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "shorthand for --log-level=debug",
			EnvVars: globals.MakeEnvKeys("DEBUG"),
		},
		&cli.BoolFlag{
			Name:    "syslog",
			Usage:   "also send log entries to the local syslog",
			EnvVars: globals.MakeEnvKeys("SYSLOG"),
		},
		&cli.StringFlag{
			Name:    globals.MakeFlagName("papertrail", "host"),
			Usage:   "also send log entries to this papertrail host",
			EnvVars: globals.MakeEnvKeys("PAPERTRAIL_HOST"),
		},
		&cli.IntFlag{
			Name:    globals.MakeFlagName("papertrail", "port"),
			Usage:   "papertrail port",
			EnvVars: globals.MakeEnvKeys("PAPERTRAIL_PORT"),
		},
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "profile the command run: cpu or mem",
			EnvVars: globals.MakeEnvKeys("PROFILE"),
		},
		&cli.StringFlag{
			Name:    globals.MakeFlagName("profile", "path"),
			Usage:   "write profiles into `DIR`",
			Value:   d.cfg.ProfilePath,
			EnvVars: globals.MakeEnvKeys("PROFILE_PATH"),
		},
	}
	return
}
