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
	"math"

	"github.com/samber/lo"
)

// ILog returns the integer logarithm of v in the given base, computed in the
// 128-bit wide domain. Zero values and bases below two yield zero.
func ILog[V Number](v, base V) uint32 {
	return wideLog(Widen(v), Widen(base))
}

// ILog2 is ILog(v, 2)
func ILog2[V Number](v V) uint32 {
	return wideLog2(Widen(v))
}

// ILog10 is ILog(v, 10)
func ILog10[V Number](v V) uint32 {
	return wideLog10(Widen(v))
}

// Pow raises v to exp. Integers use exponentiation by squaring, floats
// multiply exp copies left to right so rounding matches the linear product.
func Pow[V Number](v V, exp uint32) (result V) {
	result = 1
	if IsFloat[V]() {
		for i := uint32(0); i < exp; i++ {
			result *= v
		}
		return
	}
	for base := v; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
	}
	return
}

// GCD returns the greatest common divisor of |a| and |b|, computed in the
// wide domain and narrowed back to V. When either operand is zero the result
// is ONE.
func GCD[V Number](a, b V) V {
	x, y := Magnitude(a), Magnitude(b)
	if x.IsZero() || y.IsZero() {
		return 1
	}
	return Narrow[V](wideGCD(x, y))
}

// LCM returns |a * b / GCD(a, b)|
func LCM[V Number](a, b V) V {
	return Abs(a * b / GCD(a, b))
}

// Root returns the nth root of v in double precision
func Root[V Number](v V, n uint32) float64 {
	return math.Pow(AsFloat64(v), 1/float64(n))
}

// Abs returns the absolute value of v (module). Integers are negated in the
// signed wide domain and narrowed back, so the signed minimum stays itself.
func Abs[V Number](v V) V {
	if v > 0 {
		return v
	}
	if IsFloat[V]() {
		return -v
	}
	return V(-WidenSigned(v))
}

// IsNegative reports v < ZERO
func IsNegative[V Number](v V) bool {
	return v < 0
}

// Sum reduces values with addition, starting from ZERO
func Sum[V Number](values ...V) V {
	return lo.Sum(values)
}

// Product reduces values with multiplication, starting from ONE
func Product[V Number](values ...V) V {
	return lo.Reduce(values, func(agg V, item V, _ int) V {
		return agg * item
	}, One[V]())
}
