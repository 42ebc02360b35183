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

	"github.com/go-enjin/dish/pkg/bit"
)

// Bits decomposes a Number into exactly Width[V]() binary digits of its raw
// representation, most significant first: the leading zero padding followed
// by the significant bits. Bits is not restartable, copy the value before
// iterating to decompose more than once.
type Bits[V Number] struct {
	n     V
	raw   uint64
	width int
	flag  int
	len   int
	zeros int
}

// BitsOf constructs the Bits of n
func BitsOf[V Number](n V) (b Bits[V]) {
	w := Width[V]()
	zeros := int(LeadingZeros(n))
	b = Bits[V]{
		n:     n,
		raw:   Raw(n),
		width: w,
		len:   w - zeros,
		zeros: zeros,
	}
	return
}

// Number returns the decomposed value
func (b Bits[V]) Number() V {
	return b.n
}

// Len returns the number of significant bits
func (b Bits[V]) Len() int {
	return b.len
}

// Zeros returns the number of leading zero bits padding the sequence
func (b Bits[V]) Zeros() int {
	return b.zeros
}

// Remaining returns the number of bits not yet produced
func (b Bits[V]) Remaining() int {
	total := b.len + b.zeros
	return Clamp(total-b.flag, 0, total)
}

// Next returns the next bit, ok is false once exhausted
func (b *Bits[V]) Next() (out bit.Bit, ok bool) {
	if b.flag >= b.len+b.zeros {
		return
	}
	pos := b.width - 1 - b.flag
	b.flag += 1
	out, ok = bit.FromU8Unchecked(uint8(b.raw>>pos&1)), true
	return
}

// Seq consumes b as an iterator
func (b *Bits[V]) Seq() iter.Seq[bit.Bit] {
	return func(yield func(bit.Bit) bool) {
		for out, ok := b.Next(); ok; out, ok = b.Next() {
			if !yield(out) {
				return
			}
		}
	}
}

// Collect consumes the remaining bits into a slice
func (b *Bits[V]) Collect() (list []bit.Bit) {
	list = make([]bit.Bit, 0, b.Remaining())
	for out := range b.Seq() {
		list = append(list, out)
	}
	return
}
