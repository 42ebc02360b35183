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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digitString(digits []uint8) string {
	buf := make([]byte, len(digits))
	for idx, d := range digits {
		buf[idx] = '0' + d
	}
	return string(buf)
}

func TestDigits(t *testing.T) {
	for _, test := range []struct {
		name   string
		digits Digits[int64]
		want   []uint8
	}{
		{"zero", DigitsOf(int64(0)), []uint8{0}},
		{"single", DigitsOf(int64(7)), []uint8{7}},
		{"positive", DigitsOf(int64(1234)), []uint8{1, 2, 3, 4}},
		{"inner-zeros", DigitsOf(int64(1005)), []uint8{1, 0, 0, 5}},
		{"negative", DigitsOf(int64(-305)), []uint8{3, 0, 5}},
		{"minimum", DigitsOf(int64(math.MinInt64)), []uint8{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 8}},
	} {
		t.Run(test.name, func(t *testing.T) {
			d := test.digits
			assert.Equal(t, len(test.want), d.Len())
			assert.Equal(t, test.want, d.Collect())
		})
	}
}

func TestDigitsWidths(t *testing.T) {
	d8 := DigitsOf(uint8(255))
	assert.Equal(t, []uint8{2, 5, 5}, d8.Collect())

	d64 := DigitsOf(uint64(math.MaxUint64))
	assert.Equal(t, strconv.FormatUint(math.MaxUint64, 10), digitString(d64.Collect()))

	df := DigitsOf(12.9)
	assert.Equal(t, []uint8{1, 2}, df.Collect())

	dn := DigitsOf(float32(-0.5))
	assert.Equal(t, []uint8{0}, dn.Collect())
}

func TestDigitsWideFloats(t *testing.T) {
	d := DigitsOf(1e20)
	assert.Equal(t, 21, d.Len())
	assert.Equal(t, "100000000000000000000", digitString(d.Collect()))

	dm := DigitsOf(math.MaxFloat64)
	assert.Equal(t, "340282366920938463463374607431768211455", digitString(dm.Collect()))

	dn := DigitsOf(-1e25)
	assert.Equal(t, truncated(1e25).String(), digitString(dn.Collect()))

	for f := 1.0; f < 3e38; f = f*7.3 + 0.5 {
		df := DigitsOf(f)
		require.Equal(t, truncated(f).String(), digitString(df.Collect()), "%g", f)
	}
}

func TestDigitsMatchDecimal(t *testing.T) {
	for n := uint64(0); n < 1_000_000; n = n*7 + 3 {
		d := DigitsOf(n)
		require.Equal(t, strconv.FormatUint(n, 10), digitString(d.Collect()))
	}
	for n := int32(-100_000); n <= 100_000; n += 997 {
		d := DigitsOf(n)
		want := strconv.FormatInt(int64(n), 10)
		if n < 0 {
			want = want[1:]
		}
		require.Equal(t, want, digitString(d.Collect()))
	}
}

func TestDigitsConsumption(t *testing.T) {
	d := DigitsOf(uint16(4321))
	saved := d
	assert.Equal(t, uint16(4321), d.Number())
	assert.Equal(t, 4, d.Remaining())

	digit, ok := d.Next()
	assert.True(t, ok)
	assert.Equal(t, uint8(4), digit)
	assert.Equal(t, 3, d.Remaining())

	assert.Equal(t, []uint8{3, 2, 1}, d.Collect())
	assert.Equal(t, 0, d.Remaining())

	_, ok = d.Next()
	assert.False(t, ok)
	assert.Empty(t, d.Collect())

	// the copy taken before iteration is untouched
	assert.Equal(t, []uint8{4, 3, 2, 1}, saved.Collect())
}

func TestDigitsSeqBreak(t *testing.T) {
	d := DigitsOf(98765)
	var taken []uint8
	for digit := range d.Seq() {
		taken = append(taken, digit)
		if len(taken) == 2 {
			break
		}
	}
	assert.Equal(t, []uint8{9, 8}, taken)
	assert.Equal(t, 3, d.Remaining())
	assert.Equal(t, []uint8{7, 6, 5}, d.Collect())
}
