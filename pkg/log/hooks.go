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
	"log/syslog"
	"os"

	logrus_papertrail "github.com/polds/logrus-papertrail-hook"
	"github.com/sirupsen/logrus"
)

// SyslogHook forwards entries to the local or a remote syslog daemon
type SyslogHook struct {
	Writer *syslog.Writer
}

func NewSyslogLocalHook(priority syslog.Priority, tag string) (hook *SyslogHook, err error) {
	var w *syslog.Writer
	if w, err = syslog.New(priority, tag); err != nil {
		return
	}
	hook = &SyslogHook{Writer: w}
	return
}

func (hook *SyslogHook) Fire(entry *logrus.Entry) (err error) {
	var line string
	if line, err = entry.String(); err != nil {
		return
	}
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel:
		err = hook.Writer.Crit(line)
	case logrus.ErrorLevel:
		err = hook.Writer.Err(line)
	case logrus.WarnLevel:
		err = hook.Writer.Warning(line)
	case logrus.InfoLevel:
		err = hook.Writer.Info(line)
	default:
		err = hook.Writer.Debug(line)
	}
	return
}

func (hook *SyslogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func NewPapertrailHook(tag, host string, port int) (hook *logrus_papertrail.Hook, err error) {
	hostname, _ := os.Hostname()
	hook, err = logrus_papertrail.NewPapertrailHook(&logrus_papertrail.Hook{
		Host:     host,
		Port:     port,
		Hostname: hostname,
		Appname:  tag,
	})
	return
}
