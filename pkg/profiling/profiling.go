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

package profiling

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"

	"github.com/go-enjin/dish/pkg/errors"
	"github.com/go-enjin/dish/pkg/log"
)

var profiler interface {
	Stop()
}

// Start begins a cpu or mem profile written under path, the empty mode
// does nothing
func Start(mode, path string) (err error) {
	if mode == "" {
		return
	}
	if path == "" {
		path = "."
	}
	options := []func(*profile.Profile){
		profile.ProfilePath(path),
		profile.NoShutdownHook,
		profile.Quiet,
	}
	switch strings.ToLower(mode) {
	case "cpu":
		options = append(options, profile.CPUProfile)
	case "mem":
		options = append(options, profile.MemProfile)
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnsupportedProfileMode, mode)
		return
	}
	log.DebugF("starting %v profile in %v", mode, path)
	profiler = profile.Start(options...)
	return
}

func Stop() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}
