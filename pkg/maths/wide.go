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
	"math/bits"

	num "github.com/shabbyrobe/go-num"
)

// the wide domain is the unsigned 128-bit integer range, every supported
// representation widens into it losslessly (floats truncate and saturate)

var (
	wideTwo = num.U128From64(2)
	wideTen = num.U128From64(10)
	wideMax = num.U128FromRaw(math.MaxUint64, math.MaxUint64)

	// pow10 lists every power of ten in the wide domain, 1 through 1e38
	pow10 = widePowers(10)
)

var (
	floatWrap64  = math.Ldexp(1, 64)
	floatWrap128 = math.Ldexp(1, 128)
)

func widePowers(base uint64) (list []num.U128) {
	list = []num.U128{num.U128From64(1)}
	for {
		hi, lo := list[len(list)-1].Raw()
		carryLo, nextLo := bits.Mul64(lo, base)
		over, nextHi := bits.Mul64(hi, base)
		nextHi, carry := bits.Add64(nextHi, carryLo, 0)
		if over != 0 || carry != 0 {
			return
		}
		list = append(list, num.U128FromRaw(nextHi, nextLo))
	}
}

func wideFromFloat(f float64) (wide num.U128) {
	switch {
	case math.IsNaN(f), f < 1:
	case f >= floatWrap128:
		wide = wideMax
	case f >= floatWrap64:
		f = math.Trunc(f)
		wide = num.U128FromRaw(uint64(f/floatWrap64), uint64(math.Mod(f, floatWrap64)))
	default:
		wide = num.U128From64(uint64(f))
	}
	return
}

func wideToFloat(wide num.U128) float64 {
	hi, lo := wide.Raw()
	return math.Ldexp(float64(hi), 64) + float64(lo)
}

func wideLog(n, base num.U128) (log uint32) {
	if n.IsZero() || base.Cmp(wideTwo) < 0 {
		return
	}
	for n.Cmp(base) >= 0 {
		n, _ = n.QuoRem(base)
		log++
	}
	return
}

func wideLog2(n num.U128) uint32 {
	hi, lo := n.Raw()
	switch {
	case hi != 0:
		return uint32(127 - bits.LeadingZeros64(hi))
	case lo != 0:
		return uint32(63 - bits.LeadingZeros64(lo))
	}
	return 0
}

func wideLog10(n num.U128) (log uint32) {
	for int(log)+1 < len(pow10) && n.Cmp(pow10[log+1]) >= 0 {
		log++
	}
	return
}

// wideDigit returns the decimal digit of n at position pos, zero being the
// units
func wideDigit(n num.U128, pos int) uint8 {
	q, _ := n.QuoRem(pow10[pos])
	_, r := q.QuoRem(wideTen)
	_, lo := r.Raw()
	return uint8(lo)
}

func wideGCD(x, y num.U128) num.U128 {
	for !y.IsZero() {
		_, r := x.QuoRem(y)
		x, y = y, r
	}
	return x
}
