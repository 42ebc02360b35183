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

// Package iters extends iter.Seq sequences with min/max extraction and
// fixed capacity collection.
package iters

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/go-enjin/dish/pkg/errors"
)

// Sequence is a stateful producer yielding values until exhausted
type Sequence[T interface{}] interface {
	Next() (value T, ok bool)
}

// All adapts a Sequence to an iter.Seq, consuming it
func All[T interface{}](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, ok := s.Next(); ok; value, ok = s.Next() {
			if !yield(value) {
				return
			}
		}
	}
}

// MinMax returns the smallest and largest values of seq in a single pass,
// ok is false when seq is empty
func MinMax[T cmp.Ordered](seq iter.Seq[T]) (lo, hi T, ok bool) {
	for value := range seq {
		if !ok {
			lo, hi, ok = value, value, true
			continue
		}
		if value < lo {
			lo = value
		}
		if value > hi {
			hi = value
		}
	}
	return
}

// MinMaxPipe passes the MinMax of seq to fn, ok is false when seq is empty
// and fn was not called
func MinMaxPipe[T cmp.Ordered, R interface{}](seq iter.Seq[T], fn func(lo, hi T) R) (result R, ok bool) {
	var lo, hi T
	if lo, hi, ok = MinMax(seq); ok {
		result = fn(lo, hi)
	}
	return
}

// CollectArray collects exactly the first n values of seq, returning
// errors.ErrShortSequence when seq yields fewer than n values
func CollectArray[T interface{}](seq iter.Seq[T], n int) (array []T, err error) {
	if n < 0 {
		err = fmt.Errorf("%w: negative length %d", errors.ErrInvalidArgument, n)
		return
	}
	array = make([]T, n)
	if count := CollectInto(seq, array); count < n {
		array = nil
		err = fmt.Errorf("%w: wanted %d, got %d", errors.ErrShortSequence, n, count)
	}
	return
}

// MustCollectArray is CollectArray, panicking when seq yields fewer than n
// values
func MustCollectArray[T interface{}](seq iter.Seq[T], n int) (array []T) {
	var err error
	if array, err = CollectArray(seq, n); err != nil {
		panic(err)
	}
	return
}

// CollectInto copies at most len(dst) leading values of seq into dst and
// returns how many were copied, slots past that count are left untouched
func CollectInto[T interface{}](seq iter.Seq[T], dst []T) (count int) {
	if len(dst) == 0 {
		return
	}
	for value := range seq {
		dst[count] = value
		count += 1
		if count == len(dst) {
			break
		}
	}
	return
}
