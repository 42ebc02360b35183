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
	"errors"
)

var (
	ErrNotImplemented         = errors.New("not implemented")
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrMissingArgument        = errors.New("missing argument")
	ErrOutOfRange             = errors.New("value out of range")
	ErrShortSequence          = errors.New("sequence shorter than requested")
	ErrUnknownRepresentation  = errors.New("unknown numeric representation")
	ErrUnsupportedFormat      = errors.New("unsupported output format")
	ErrInvalidConfiguration   = errors.New("invalid configuration")
	ErrUnsupportedProfileMode = errors.New("unsupported profile mode")
)

// Is is errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
