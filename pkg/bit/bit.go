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

// Package bit provides Bit, a two-state value with boolean algebra
package bit

// Bit is either Zero or One
type Bit uint8

const (
	Zero Bit = iota
	One
)

// FromU8 maps zero to Zero and anything else to One
func FromU8(src uint8) Bit {
	if src == 0 {
		return Zero
	}
	return One
}

// FromU8Unchecked converts src without validation, src must be 0 or 1
func FromU8Unchecked(src uint8) Bit {
	return Bit(src)
}

// FromBool maps false to Zero and true to One
func FromBool(src bool) Bit {
	if src {
		return One
	}
	return Zero
}

func (b Bit) AsBool() bool {
	return b != Zero
}

func (b Bit) AsU8() uint8 {
	return uint8(b)
}

// Byte returns the underlying byte
func (b Bit) Byte() byte {
	return byte(b)
}

func (b Bit) String() string {
	if b.AsBool() {
		return "1"
	}
	return "0"
}

func (b Bit) And(other Bit) Bit {
	return FromBool(b.AsBool() && other.AsBool())
}

func (b Bit) Or(other Bit) Bit {
	return FromBool(b.AsBool() || other.AsBool())
}

func (b Bit) Xor(other Bit) Bit {
	return FromBool(b.AsBool() != other.AsBool())
}

func (b Bit) Not() Bit {
	return FromBool(!b.AsBool())
}

func (b Bit) MarshalText() (text []byte, err error) {
	text = []byte(b.String())
	return
}
