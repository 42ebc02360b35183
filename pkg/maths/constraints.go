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
	"golang.org/x/exp/constraints"
)

// Number is the base capability set: every primitive integer and floating
// point representation. Arithmetic, ordering and copy semantics are provided
// by the language for each member of the type set.
type Number interface {
	Integer | Float
}

// Integer refines Number with total order, equality and bitwise logic
type Integer interface {
	UInt | SInt
}

// UInt is the set of unsigned integer representations, MIN is always zero
type UInt interface {
	constraints.Unsigned
}

// SInt is the set of signed integer representations, adds negation
type SInt interface {
	constraints.Signed
}

// Float is the set of IEEE-754 representations, adds negation but not the
// bitwise operators
type Float interface {
	constraints.Float
}
