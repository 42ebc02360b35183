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
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/go-enjin/dish/pkg/config"
	"github.com/go-enjin/dish/pkg/encode"
	"github.com/go-enjin/dish/pkg/globals"
	"github.com/go-enjin/dish/pkg/log"
	"github.com/go-enjin/dish/pkg/maths"
	"github.com/go-enjin/dish/pkg/profiling"
)

func init() {
	cli.VersionPrinter = func(c *cli.Context) {
		_, _ = fmt.Fprintf(c.App.Writer, "%s %s\n", globals.BinName, c.App.Version)
	}
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print only the version",
	}
	cli.HelpFlag = &cli.BoolFlag{
		Name:    "help",
		Aliases: []string{"h", "usage"},
		Usage:   "display helpful information",
	}
	log.Config.AppName = globals.BinName
}

// Dish is the command line front end over the numeric capability packages
type Dish struct {
	cfg    config.Config
	repr   maths.Representation
	output encode.Format

	cli *cli.App
}

func New() (d *Dish) {
	d = &Dish{
		cfg: config.Default(),
	}
	d.cli = &cli.App{
		Name:                 globals.BinName,
		Usage:                globals.Summary,
		Version:              globals.BuildVersion(),
		Flags:                d.flags(),
		Commands:             d.commands(),
		Before:               d.before,
		After:                d.after,
		Writer:               os.Stdout,
		ErrWriter:            os.Stderr,
		HideHelpCommand:      true,
		EnableBashCompletion: true,
	}
	return
}

// SetWriter redirects command output
func (d *Dish) SetWriter(w io.Writer) {
	d.cli.Writer = w
}

// Run parses argv (including the binary name) and runs the selected command
func (d *Dish) Run(argv []string) (err error) {
	err = d.cli.Run(argv)
	return
}

func (d *Dish) before(ctx *cli.Context) (err error) {
	if d.cfg, err = config.Load(ctx.String("config")); err != nil {
		return
	}

	if ctx.IsSet("type") {
		d.cfg.Representation = ctx.String("type")
	}
	if ctx.IsSet("output") {
		d.cfg.Output = ctx.String("output")
	}
	if ctx.IsSet("log-level") {
		d.cfg.LogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("log-format") {
		d.cfg.LogFormat = ctx.String("log-format")
	}
	if ctx.IsSet("log-file") {
		d.cfg.LogFile = ctx.String("log-file")
	}
	if ctx.IsSet("profile") {
		d.cfg.Profile = ctx.String("profile")
	}
	if ctx.IsSet("profile-path") {
		d.cfg.ProfilePath = ctx.String("profile-path")
	}
	if ctx.Bool("debug") {
		d.cfg.LogLevel = string(log.LevelDebug)
	}
	if err = d.cfg.Validate(); err != nil {
		return
	}

	level, _ := log.ParseLevel(d.cfg.LogLevel)
	format, _ := log.ParseFormat(d.cfg.LogFormat)
	log.Config.LogLevel = level
	log.Config.LoggingFormat = format
	log.Config.LogFile = d.cfg.LogFile
	if host, port := ctx.String("papertrail-host"), ctx.Int("papertrail-port"); host != "" && port > 0 {
		log.Config.LogHook = "papertrail"
		log.Config.PapertrailHost = host
		log.Config.PapertrailPort = port
		log.Config.PapertrailTag = globals.BinName
	} else if ctx.Bool("syslog") {
		log.Config.LogHook = "syslog"
	} else {
		log.Config.LogHook = "stderr"
	}
	log.Config.Apply()

	d.repr, _ = maths.Lookup(d.cfg.Representation)
	d.output, _ = encode.Lookup(d.cfg.Output)
	log.DebugF("representation: %v (%d bits), output: %v", d.repr.Name, d.repr.Bits, d.output)

	err = profiling.Start(d.cfg.Profile, d.cfg.ProfilePath)
	return
}

func (d *Dish) after(ctx *cli.Context) (err error) {
	profiling.Stop()
	return
}
