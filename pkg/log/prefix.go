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

package log

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

var (
	rxGoModuleVersion = regexp.MustCompile(`\@(.+?)/`)
	rxInvalidFuncName = regexp.MustCompile(`^\s*(\d+|func\d+)\s*$`)
)

// callerName walks up from depth to the first named function, skipping
// closures and generic instantiation suffixes
func callerName(depth int) (name string) {
	for i := depth; i < depth+20; i++ {
		pc, _, _, ok := runtime.Caller(i)
		if !ok {
			return
		}
		fn := runtime.FuncForPC(pc).Name()
		fn = strings.TrimSuffix(fn, "[...]")
		if idx := strings.LastIndex(fn, "."); idx > -1 {
			fn = fn[idx+1:]
		}
		if rxInvalidFuncName.MatchString(fn) {
			continue
		}
		name = fn
		return
	}
	return
}

func getLogPrefix(depth int) string {
	depth += 1
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "[???]"
	}
	file = rxGoModuleVersion.ReplaceAllString(file, "/")
	name := callerName(depth + 1)
	if Config.LoggingFormat == FormatText {
		return "[" + name + "]"
	}
	return fmt.Sprintf("%s:%d [%s]", file, line, name)
}

func prefixLogEntry(depth int, format string) string {
	depth += 1
	return getLogPrefix(depth) + " " + format
}
