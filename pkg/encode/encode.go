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

// Package encode renders command results as text, json, yaml or toml
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-enjin/dish/pkg/errors"
)

type Format string

const (
	Text Format = "text"
	Json Format = "json"
	Yaml Format = "yaml"
	Toml Format = "toml"
)

var formats = map[string]Format{
	"text": Text,
	"txt":  Text,
	"json": Json,
	"yaml": Yaml,
	"yml":  Yaml,
	"toml": Toml,
}

// Lookup resolves a format by case insensitive name
func Lookup(name string) (format Format, ok bool) {
	format, ok = formats[strings.ToLower(strings.TrimSpace(name))]
	return
}

// Encode writes value to w in the given format. Text output uses the
// fmt.Stringer implementation of value when present.
func Encode(w io.Writer, format Format, value interface{}) (err error) {
	switch format {
	case Text:
		if s, ok := value.(fmt.Stringer); ok {
			_, err = fmt.Fprintln(w, s.String())
		} else {
			_, err = fmt.Fprintf(w, "%v\n", value)
		}
	case Json:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(value)
	case Yaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(value); err == nil {
			err = enc.Close()
		}
	case Toml:
		err = toml.NewEncoder(w).Encode(value)
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, format)
	}
	return
}
