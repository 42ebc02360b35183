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

package maths

import (
	"math"

	num "github.com/shabbyrobe/go-num"
)

// Raw returns the bit pattern of v, two's complement for integers and
// IEEE-754 for floats, masked to Width[V]()
func Raw[V Number](v V) (raw uint64) {
	w := Width[V]()
	if IsFloat[V]() {
		if w == 32 {
			raw = uint64(math.Float32bits(float32(v)))
		} else {
			raw = math.Float64bits(float64(v))
		}
		return
	}
	raw = uint64(v) & mask(w)
	return
}

// FromRaw is the inverse of Raw, excess high bits are discarded
func FromRaw[V Number](raw uint64) (v V) {
	if IsFloat[V]() {
		if Width[V]() == 32 {
			v = V(math.Float32frombits(uint32(raw)))
		} else {
			v = V(math.Float64frombits(raw))
		}
		return
	}
	v = V(raw)
	return
}

// Widen converts v into the unsigned 128-bit wide domain. Signed integers
// are sign extended; floats are truncated and saturate, with NaN and
// negatives becoming zero.
func Widen[V Number](v V) (wide num.U128) {
	switch {
	case IsFloat[V]():
		wide = wideFromFloat(float64(v))
	case v < 0:
		wide = num.U128FromRaw(math.MaxUint64, uint64(v))
	default:
		wide = num.U128From64(uint64(v))
	}
	return
}

// WidenSigned converts v into int64, floats truncate and saturate
func WidenSigned[V Number](v V) (wide int64) {
	if IsFloat[V]() {
		f := float64(v)
		switch {
		case math.IsNaN(f):
			wide = 0
		case f >= float64(math.MaxInt64):
			wide = math.MaxInt64
		case f <= float64(math.MinInt64):
			wide = math.MinInt64
		default:
			wide = int64(f)
		}
		return
	}
	wide = int64(v)
	return
}

// Magnitude returns |v| in the wide domain, exact for the signed minimum of
// every width
func Magnitude[V Number](v V) (m num.U128) {
	switch {
	case IsFloat[V]():
		m = wideFromFloat(math.Abs(float64(v)))
	case v < 0:
		m = num.U128From64(uint64(-int64(v)))
	default:
		m = num.U128From64(uint64(v))
	}
	return
}

// Narrow converts a wide value back to V; integers keep the low Width bits,
// floats take the closest float64 value
func Narrow[V Number](wide num.U128) (v V) {
	if IsFloat[V]() {
		v = V(wideToFloat(wide))
		return
	}
	_, lo := wide.Raw()
	v = V(lo)
	return
}

// AsFloat64 widens v to double precision
func AsFloat64[V Number](v V) float64 {
	return float64(v)
}

// AsUint8 narrows v to a byte: integers keep the low eight bits, floats
// truncate and saturate to [0, 255] with NaN becoming zero
func AsUint8[V Number](v V) uint8 {
	if IsFloat[V]() {
		f := float64(v)
		if math.IsNaN(f) {
			return 0
		}
		return uint8(Clamp(f, 0, math.MaxUint8))
	}
	return uint8(v)
}
