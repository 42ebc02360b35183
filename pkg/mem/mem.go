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

// Package mem compares values by their in-memory representation
package mem

import (
	"bytes"
	"unsafe"
)

// Bytes returns the in-memory bytes of the value v points to, the slice
// aliases *v
func Bytes[T interface{}](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// RawEqual compares *a and *b byte for byte. T must not contain padding
// bytes, pointers or strings; for those the result is meaningless.
func RawEqual[T interface{}](a, b *T) bool {
	if a == b {
		return true
	}
	return bytes.Equal(Bytes(a), Bytes(b))
}

// Equal is RawEqual for values
func Equal[T interface{}](a, b T) bool {
	return RawEqual(&a, &b)
}
