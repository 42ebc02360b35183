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
	"maps"
	"slices"
)

// Sorted returns a sorted copy of values
func Sorted[V Number](values ...V) (sorted []V) {
	sorted = slices.Clone(values)
	slices.Sort(sorted)
	return
}

// ReverseSorted returns a copy of values sorted in descending order
func ReverseSorted[V Number](values ...V) (sorted []V) {
	sorted = Sorted(values...)
	slices.Reverse(sorted)
	return
}

// SortedNumbers returns the keys of data in ascending order
func SortedNumbers[K Number, T interface{}](data map[K]T) (keys []K) {
	keys = slices.Sorted(maps.Keys(data))
	return
}
