// Copyright (c) 2023  The Go-Enjin Authors
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
	"os"
	"path/filepath"
)

// fileWriter opens, appends and closes the log file on every write so no
// handle is held between log entries
type fileWriter struct {
	file string
	flag int
	mode os.FileMode
}

func newFileWriter(file string) (fw *fileWriter, err error) {
	if file == "" {
		err = fmt.Errorf("log file path is empty")
		return
	}
	if file, err = filepath.Abs(file); err != nil {
		return
	}
	fw = &fileWriter{
		file: file,
		flag: os.O_CREATE | os.O_WRONLY | os.O_APPEND,
		mode: 0644,
	}
	return
}

func (fw *fileWriter) Write(p []byte) (n int, err error) {
	var fh *os.File
	if fh, err = os.OpenFile(fw.file, fw.flag, fw.mode); err != nil {
		return
	}
	defer func() {
		if ee := fh.Close(); ee != nil && err == nil {
			err = ee
		}
	}()
	n, err = fh.Write(p)
	return
}
