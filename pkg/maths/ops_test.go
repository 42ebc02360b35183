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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, uint8(6), GCD(uint8(12), uint8(18)))
	assert.Equal(t, int32(6), GCD(int32(-12), int32(18)))
	assert.Equal(t, uint64(1), GCD(uint64(7), uint64(13)))
	assert.Equal(t, int64(4), GCD(int64(-8), int64(-12)))
	assert.Equal(t, 3.0, GCD(9.0, 6.0))

	// a zero operand yields one
	assert.Equal(t, uint16(1), GCD(uint16(0), uint16(12)))
	assert.Equal(t, uint16(1), GCD(uint16(12), uint16(0)))
	assert.Equal(t, int8(1), GCD(int8(0), int8(0)))

	// beyond 64 bits
	assert.Equal(t, 1e10, GCD(1e20, 1e10))
	assert.Equal(t, math.Ldexp(1, 70), GCD(math.Ldexp(3, 90), math.Ldexp(5, 70)))

	// the magnitude of the signed minimum wraps on narrowing
	assert.Equal(t, int8(math.MinInt8), GCD(int8(math.MinInt8), int8(math.MinInt8)))
	assert.Equal(t, int16(128), GCD(int16(math.MinInt8), int16(math.MinInt8)))
	assert.Equal(t, int64(math.MinInt64), GCD(int64(math.MinInt64), int64(math.MinInt64)))
}

func TestGCDDivides(t *testing.T) {
	for a := uint16(1); a <= 60; a++ {
		for b := uint16(1); b <= 60; b++ {
			g := GCD(a, b)
			if !assert.Zero(t, a%g) || !assert.Zero(t, b%g) {
				return
			}
			for d := g + 1; d <= a && d <= b; d++ {
				if a%d == 0 && b%d == 0 {
					t.Fatalf("gcd(%d, %d) = %d, but %d divides both", a, b, g, d)
				}
			}
		}
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, uint32(12), LCM(uint32(4), uint32(6)))
	assert.Equal(t, int16(12), LCM(int16(-4), int16(6)))
	assert.Equal(t, uint8(7), LCM(uint8(7), uint8(1)))
	for a := uint32(1); a <= 40; a++ {
		for b := uint32(1); b <= 40; b++ {
			assert.Equal(t, a*b, LCM(a, b)*GCD(a, b), "%d %d", a, b)
		}
	}
}

func TestPow(t *testing.T) {
	assert.Equal(t, uint8(128), Pow(uint8(2), 7))
	assert.Equal(t, uint8(0), Pow(uint8(2), 8))
	assert.Equal(t, int32(-27), Pow(int32(-3), 3))
	assert.Equal(t, int64(1), Pow(int64(12345), 0))
	assert.Equal(t, uint64(1)<<63, Pow(uint64(2), 63))
	assert.Equal(t, int8(0), Pow(int8(0), 3))

	for _, x := range []float64{1.1, 0.3, -2.5, math.Pi} {
		for exp := uint32(0); exp <= 9; exp++ {
			want := 1.0
			for i := uint32(0); i < exp; i++ {
				want *= x
			}
			assert.Equal(t, want, Pow(x, exp))
		}
	}

	for base := int64(-5); base <= 5; base++ {
		for exp := uint32(0); exp <= 10; exp++ {
			want := int64(1)
			for i := uint32(0); i < exp; i++ {
				want *= base
			}
			assert.Equal(t, want, Pow(base, exp), "%d^%d", base, exp)
		}
	}
}

func TestILog(t *testing.T) {
	assert.Equal(t, uint32(3), ILog(uint32(1000), 10))
	assert.Equal(t, uint32(2), ILog(uint32(999), 10))
	assert.Equal(t, uint32(7), ILog(uint8(255), 2))
	assert.Equal(t, uint32(4), ILog(uint16(81), 3))
	assert.Equal(t, uint32(0), ILog(uint32(0), 10))
	assert.Equal(t, uint32(0), ILog(uint32(5), 1))
	assert.Equal(t, uint32(0), ILog(uint32(5), 0))
	assert.Equal(t, uint32(2), ILog(150.5, 10.0))

	assert.Equal(t, uint32(0), ILog2(uint8(0)))
	assert.Equal(t, uint32(0), ILog2(uint8(1)))
	assert.Equal(t, uint32(7), ILog2(uint8(128)))
	assert.Equal(t, uint32(63), ILog2(uint64(math.MaxUint64)))

	assert.Equal(t, uint32(0), ILog10(int32(0)))
	assert.Equal(t, uint32(2), ILog10(int32(999)))
	assert.Equal(t, uint32(3), ILog10(int32(1000)))
	assert.Equal(t, uint32(19), ILog10(uint64(math.MaxUint64)))

	for n := uint64(1); n < 1_000_000; n = n*3 + 1 {
		assert.Equal(t, ILog(n, 2), ILog2(n), "%d", n)
		assert.Equal(t, ILog(n, 10), ILog10(n), "%d", n)
	}
}

func TestILogWideFloats(t *testing.T) {
	assert.Equal(t, uint32(20), ILog10(1e20))
	assert.Equal(t, uint32(20), ILog(1e20, 10.0))
	assert.Equal(t, uint32(99), ILog2(1e30))
	assert.Equal(t, uint32(30), ILog10(float32(1e30)))
	assert.Equal(t, uint32(64), ILog2(math.Ldexp(1, 64)))
	assert.Equal(t, uint32(63), ILog2(math.Nextafter(math.Ldexp(1, 64), 0)))

	// saturated at the top of the wide domain
	assert.Equal(t, uint32(38), ILog10(math.MaxFloat64))
	assert.Equal(t, uint32(127), ILog2(math.Inf(1)))
	assert.Equal(t, uint32(0), ILog10(math.NaN()))

	// negative integers sign extend
	assert.Equal(t, uint32(127), ILog2(int8(-1)))
	assert.Equal(t, uint32(38), ILog10(int64(-1)))

	for e := 0; e < 128; e++ {
		assert.Equal(t, uint32(e), ILog2(math.Ldexp(1, e)), "2^%d", e)
	}

	for f := 1.0; f < 3e38; f = f*7.3 + 0.5 {
		exact := truncated(f)
		assert.Equal(t, uint32(len(exact.String())-1), ILog10(f), "%g", f)
		assert.Equal(t, uint32(exact.BitLen()-1), ILog2(f), "%g", f)
		assert.Equal(t, ILog10(f), ILog(f, 10.0), "%g", f)
	}
}

func TestRoot(t *testing.T) {
	assert.InDelta(t, 3.0, Root(uint32(27), 3), 1e-12)
	assert.Equal(t, 4.0, Root(int16(16), 2))
	assert.InDelta(t, math.Sqrt2, Root(2.0, 2), 1e-15)
	assert.Equal(t, 1.0, Root(uint8(1), 7))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int8(5), Abs(int8(-5)))
	assert.Equal(t, int8(5), Abs(int8(5)))
	assert.Equal(t, int8(math.MinInt8), Abs(int8(math.MinInt8)))
	assert.Equal(t, int64(math.MaxInt64), Abs(int64(-math.MaxInt64)))
	assert.Equal(t, uint32(7), Abs(uint32(7)))
	assert.Equal(t, 2.5, Abs(-2.5))
	assert.Equal(t, float32(0), Abs(float32(0)))
	assert.Equal(t, 0, Abs(0))

	for v := int16(-1000); v <= 1000; v++ {
		a := Abs(v)
		assert.GreaterOrEqual(t, a, int16(0))
		assert.True(t, a == v || a == -v)
	}
}

func TestIsNegative(t *testing.T) {
	assert.True(t, IsNegative(int8(-1)))
	assert.True(t, IsNegative(-0.5))
	assert.False(t, IsNegative(0))
	assert.False(t, IsNegative(uint8(255)))
	assert.False(t, IsNegative(math.Copysign(0, -1)))
}

func TestSumProduct(t *testing.T) {
	assert.Equal(t, 6, Sum(1, 2, 3))
	assert.Equal(t, uint8(0), Sum[uint8]())
	assert.Equal(t, uint8(4), Sum(uint8(250), uint8(10)))
	assert.Equal(t, 24, Product(2, 3, 4))
	assert.Equal(t, int16(1), Product[int16]())
	assert.Equal(t, 3.75, Product(1.5, 2.5))
	assert.Equal(t, int32(-6), Product(int32(-1), int32(2), int32(3)))
}
