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
	"math/bits"
)

// LeadingZeros counts the zero bits above the highest one bit of the raw
// representation
func LeadingZeros[V Number](v V) uint32 {
	w := Width[V]()
	return uint32(bits.LeadingZeros64(Raw(v)) - (64 - w))
}

// LeadingOnes counts the one bits above the highest zero bit of the raw
// representation
func LeadingOnes[V Number](v V) uint32 {
	w := Width[V]()
	return uint32(bits.LeadingZeros64(^Raw(v)&mask(w)) - (64 - w))
}

// TrailingZeros counts the zero bits below the lowest one bit of the raw
// representation
func TrailingZeros[V Number](v V) uint32 {
	raw := Raw(v)
	if raw == 0 {
		return uint32(Width[V]())
	}
	return uint32(bits.TrailingZeros64(raw))
}

// TrailingOnes counts the one bits below the lowest zero bit of the raw
// representation
func TrailingOnes[V Number](v V) uint32 {
	return uint32(bits.TrailingZeros64(^Raw(v)))
}

// ReverseBits reverses the order of all Width[V]() bits of the raw
// representation
func ReverseBits[V Number](v V) V {
	w := Width[V]()
	return FromRaw[V](bits.Reverse64(Raw(v)) >> (64 - w))
}

// CountOnes counts the one bits of the raw representation
func CountOnes[V Number](v V) uint32 {
	return uint32(bits.OnesCount64(Raw(v)))
}
