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

package bit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, Zero, FromU8(0))
	assert.Equal(t, One, FromU8(1))
	assert.Equal(t, One, FromU8(7))
	assert.Equal(t, One, FromU8(255))
	assert.Equal(t, Zero, FromU8Unchecked(0))
	assert.Equal(t, One, FromU8Unchecked(1))
	assert.Equal(t, Zero, FromBool(false))
	assert.Equal(t, One, FromBool(true))
}

func TestRoundTrip(t *testing.T) {
	for _, b := range []Bit{Zero, One} {
		assert.Equal(t, b, FromBool(b.AsBool()))
		assert.Equal(t, b, FromU8(b.AsU8()))
		assert.Equal(t, b.AsU8(), b.Byte())
	}
	assert.False(t, Zero.AsBool())
	assert.True(t, One.AsBool())
	assert.Equal(t, uint8(0), Zero.AsU8())
	assert.Equal(t, uint8(1), One.AsU8())
}

func TestTruthTables(t *testing.T) {
	for _, test := range []struct {
		a, b          Bit
		and, or, xor Bit
	}{
		{Zero, Zero, Zero, Zero, Zero},
		{Zero, One, Zero, One, One},
		{One, Zero, Zero, One, One},
		{One, One, One, One, Zero},
	} {
		assert.Equal(t, test.and, test.a.And(test.b), "%v and %v", test.a, test.b)
		assert.Equal(t, test.or, test.a.Or(test.b), "%v or %v", test.a, test.b)
		assert.Equal(t, test.xor, test.a.Xor(test.b), "%v xor %v", test.a, test.b)
	}
	assert.Equal(t, One, Zero.Not())
	assert.Equal(t, Zero, One.Not())
}

func TestText(t *testing.T) {
	assert.Equal(t, "0", Zero.String())
	assert.Equal(t, "1", One.String())

	text, err := One.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), text)
}
