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

package maths

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/go-enjin/dish/pkg/errors"
)

// Width returns the number of bits in the representation of V (BITS)
func Width[V Number]() (bits int) {
	var v V
	bits = int(unsafe.Sizeof(v)) * 8
	return
}

// IsFloat reports whether V is an IEEE-754 representation
func IsFloat[V Number]() bool {
	var one V = 1
	return one/(one+one) != 0
}

// IsSigned reports whether V can hold values below zero, floats included
func IsSigned[V Number]() bool {
	var zero V
	return zero-1 < zero
}

// IsInteger reports whether V is one of the integer representations
func IsInteger[V Number]() bool {
	return !IsFloat[V]()
}

// Zero returns ZERO
func Zero[V Number]() (zero V) {
	return
}

// One returns ONE
func One[V Number]() (one V) {
	one = 1
	return
}

// Max returns MAX, the largest finite value of V
func Max[V Number]() (max V) {
	w := Width[V]()
	switch {
	case IsFloat[V]():
		if w == 32 {
			f := math.MaxFloat32
			max = V(f)
		} else {
			f := math.MaxFloat64
			max = V(f)
		}
	case IsSigned[V]():
		max = V(uint64(1)<<(w-1) - 1)
	default:
		max = V(mask(w))
	}
	return
}

// Min returns MIN, the smallest finite value of V (the most negative finite
// value for floats)
func Min[V Number]() (min V) {
	w := Width[V]()
	switch {
	case IsFloat[V]():
		min = -Max[V]()
	case IsSigned[V]():
		min = V(int64(-1) << (w - 1))
	}
	return
}

func mask(width int) uint64 {
	if width >= 64 {
		return math.MaxUint64
	}
	return uint64(1)<<width - 1
}

// Representation describes one primitive adapter
type Representation struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Alias  string `json:"alias" yaml:"alias" toml:"alias"`
	Bits   int    `json:"bits" yaml:"bits" toml:"bits"`
	Signed bool   `json:"signed" yaml:"signed" toml:"signed"`
	Float  bool   `json:"float" yaml:"float" toml:"float"`
	Min    string `json:"min" yaml:"min" toml:"min"`
	Max    string `json:"max" yaml:"max" toml:"max"`
}

// Describe returns the Representation of V
func Describe[V Number]() (r Representation) {
	var v V
	r = Representation{
		Name:   fmt.Sprintf("%T", v),
		Bits:   Width[V](),
		Signed: IsSigned[V](),
		Float:  IsFloat[V](),
		Min:    fmt.Sprint(Min[V]()),
		Max:    fmt.Sprint(Max[V]()),
	}
	switch {
	case r.Float:
		r.Alias = fmt.Sprintf("f%d", r.Bits)
	case r.Name == "int" || r.Name == "uint" || r.Name == "uintptr":
		r.Alias = r.Name
	case r.Signed:
		r.Alias = fmt.Sprintf("i%d", r.Bits)
	default:
		r.Alias = fmt.Sprintf("u%d", r.Bits)
	}
	return
}

// Representations returns the descriptors of every standard adapter
func Representations() (list []Representation) {
	list = []Representation{
		Describe[uint8](),
		Describe[uint16](),
		Describe[uint32](),
		Describe[uint64](),
		Describe[uint](),
		Describe[uintptr](),
		Describe[int8](),
		Describe[int16](),
		Describe[int32](),
		Describe[int64](),
		Describe[int](),
		Describe[float32](),
		Describe[float64](),
	}
	return
}

// Lookup finds the standard adapter by Go type name (uint8) or short alias
// (u8)
func Lookup(name string) (r Representation, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range Representations() {
		if known.Name == name || known.Alias == name {
			r = known
			return
		}
	}
	err = fmt.Errorf("%w: %q", errors.ErrUnknownRepresentation, name)
	return
}
