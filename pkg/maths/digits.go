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
	"iter"

	num "github.com/shabbyrobe/go-num"
)

// Digits decomposes a Number into its decimal digits, most significant
// first. Negative values yield the digits of their magnitude and floats the
// digits of their integer part, saturating at the top of the 128-bit wide
// domain. Digits is not restartable, copy the value
// before iterating to decompose more than once.
type Digits[V Number] struct {
	n    V
	mag  num.U128
	flag int
	len  int
}

// DigitsOf constructs the Digits of n; DigitsOf(0) yields a single zero
func DigitsOf[V Number](n V) (d Digits[V]) {
	mag := Magnitude(n)
	d = Digits[V]{
		n:   n,
		mag: mag,
		len: int(wideLog10(mag)) + 1,
	}
	return
}

// Number returns the decomposed value
func (d Digits[V]) Number() V {
	return d.n
}

// Len returns the total number of digits
func (d Digits[V]) Len() int {
	return d.len
}

// Remaining returns the number of digits not yet produced
func (d Digits[V]) Remaining() int {
	return Clamp(d.len-d.flag, 0, d.len)
}

// Next returns the next digit, ok is false once exhausted
func (d *Digits[V]) Next() (digit uint8, ok bool) {
	if d.flag >= d.len {
		return
	}
	d.flag += 1
	digit, ok = wideDigit(d.mag, d.len-d.flag), true
	return
}

// Seq consumes d as an iterator
func (d *Digits[V]) Seq() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for digit, ok := d.Next(); ok; digit, ok = d.Next() {
			if !yield(digit) {
				return
			}
		}
	}
}

// Collect consumes the remaining digits into a slice
func (d *Digits[V]) Collect() (digits []uint8) {
	digits = make([]uint8, 0, d.Remaining())
	for digit := range d.Seq() {
		digits = append(digits, digit)
	}
	return
}
