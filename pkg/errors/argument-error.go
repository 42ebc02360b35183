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

package errors

import (
	"fmt"
)

// ArgumentError reports which positional command line argument could not be
// used and why
type ArgumentError struct {
	Command string
	Index   int
	Value   string
	Err     error
}

func NewArgumentError(command string, index int, value string, err error) (ae *ArgumentError) {
	ae = &ArgumentError{
		Command: command,
		Index:   index,
		Value:   value,
		Err:     err,
	}
	return
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument #%d %q: %v", e.Command, e.Index+1, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
