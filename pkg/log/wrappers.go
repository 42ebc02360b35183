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
	"github.com/sirupsen/logrus"
)

func logDF(level logrus.Level, depth int, format string, argv ...interface{}) {
	if !logger.IsLevelEnabled(level) {
		return
	}
	depth += 1
	logger.Logf(level, prefixLogEntry(depth, format), argv...)
}

func ErrorF(format string, argv ...interface{}) {
	logDF(logrus.ErrorLevel, 1, format, argv...)
}

func ErrorDF(depth int, format string, argv ...interface{}) {
	logDF(logrus.ErrorLevel, depth+1, format, argv...)
}

func WarnF(format string, argv ...interface{}) {
	logDF(logrus.WarnLevel, 1, format, argv...)
}

func WarnDF(depth int, format string, argv ...interface{}) {
	logDF(logrus.WarnLevel, depth+1, format, argv...)
}

func InfoF(format string, argv ...interface{}) {
	logDF(logrus.InfoLevel, 1, format, argv...)
}

func InfoDF(depth int, format string, argv ...interface{}) {
	logDF(logrus.InfoLevel, depth+1, format, argv...)
}

func DebugF(format string, argv ...interface{}) {
	logDF(logrus.DebugLevel, 1, format, argv...)
}

func DebugDF(depth int, format string, argv ...interface{}) {
	logDF(logrus.DebugLevel, depth+1, format, argv...)
}

func TraceF(format string, argv ...interface{}) {
	logDF(logrus.TraceLevel, 1, format, argv...)
}

func TraceDF(depth int, format string, argv ...interface{}) {
	logDF(logrus.TraceLevel, depth+1, format, argv...)
}

func FatalF(format string, argv ...interface{}) {
	logger.Fatalf(prefixLogEntry(1, format), argv...)
}
