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

package format

import (
	"strconv"
	"strings"

	"github.com/go-enjin/dish/pkg/maths"
)

// Radix renders the raw bit pattern of v in the given base (2 to 36), the
// IEEE-754 layout for floats and two's complement for integers
func Radix[V maths.Number](v V, base int) string {
	return strconv.FormatUint(maths.Raw(v), base)
}

// IntegerBundle holds the integer renderings of a value
type IntegerBundle struct {
	Hex      string
	UpperHex string
	Binary   string
	Octal    string
}

// IntegerForms returns the integer bundle of v, ok is false for floats
func IntegerForms[V maths.Number](v V) (bundle IntegerBundle, ok bool) {
	if ok = maths.IsInteger[V](); ok {
		bundle = IntegerBundle{
			Hex:      hex(v),
			UpperHex: upperHex(v),
			Binary:   Radix(v, 2),
			Octal:    Radix(v, 8),
		}
	}
	return
}

func hex[V maths.Number](v V) string {
	return Radix(v, 16)
}

func upperHex[V maths.Number](v V) string {
	return strings.ToUpper(hex(v))
}

// Hex renders the raw two's complement pattern of v in lower case base 16
func Hex[V maths.Integer](v V) string {
	return hex(v)
}

// UpperHex renders the raw two's complement pattern of v in upper case
// base 16
func UpperHex[V maths.Integer](v V) string {
	return upperHex(v)
}

// Binary renders the raw two's complement pattern of v in base 2
func Binary[V maths.Integer](v V) string {
	return Radix(v, 2)
}

// Octal renders the raw two's complement pattern of v in base 8
func Octal[V maths.Integer](v V) string {
	return Radix(v, 8)
}
