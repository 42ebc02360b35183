// Copyright (c) 2026  The Go-Enjin Authors
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

// Package config loads the optional dish TOML configuration file
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/go-enjin/dish/pkg/encode"
	"github.com/go-enjin/dish/pkg/errors"
	"github.com/go-enjin/dish/pkg/log"
	"github.com/go-enjin/dish/pkg/maths"
)

const (
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "pretty"
	DefaultRepresentation = "u64"
	DefaultOutput         = "text"
)

type Config struct {
	LogLevel       string `toml:"log-level"`
	LogFormat      string `toml:"log-format"`
	LogFile        string `toml:"log-file"`
	Representation string `toml:"representation"`
	Output         string `toml:"output"`
	Profile        string `toml:"profile"`
	ProfilePath    string `toml:"profile-path"`
}

// Default returns the configuration used when no file is given
func Default() (cfg Config) {
	cfg = Config{
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		Representation: DefaultRepresentation,
		Output:         DefaultOutput,
		ProfilePath:    ".",
	}
	return
}

// Load decodes the TOML file at path over the defaults and validates the
// result, an empty path returns the defaults
func Load(path string) (cfg Config, err error) {
	cfg = Default()
	if path == "" {
		return
	}
	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		err = fmt.Errorf("reading config %v: %w", path, err)
		return
	}
	var md toml.MetaData
	if md, err = toml.Decode(string(data), &cfg); err != nil {
		err = fmt.Errorf("%w: %v: %v", errors.ErrInvalidConfiguration, path, err)
		return
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		err = fmt.Errorf("%w: %v: unknown keys %v", errors.ErrInvalidConfiguration, path, undecoded)
		return
	}
	err = cfg.Validate()
	return
}

// Validate checks every named setting resolves
func (c Config) Validate() (err error) {
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: log-level %q", errors.ErrInvalidConfiguration, c.LogLevel)
	}
	if _, ok := log.ParseFormat(c.LogFormat); !ok {
		return fmt.Errorf("%w: log-format %q", errors.ErrInvalidConfiguration, c.LogFormat)
	}
	if _, err = maths.Lookup(c.Representation); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfiguration, err)
	}
	if _, ok := encode.Lookup(c.Output); !ok {
		return fmt.Errorf("%w: output %q", errors.ErrInvalidConfiguration, c.Output)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("%w: profile %q", errors.ErrInvalidConfiguration, c.Profile)
	}
	return
}
