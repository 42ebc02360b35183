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

// Package format renders Number values: the numeric bundle (Display, Debug,
// LowerExp, UpperExp, Human) and the integer bundle (Hex, UpperHex, Binary,
// Octal).
package format

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/go-enjin/dish/pkg/maths"
)

// Display renders v in plain decimal form
func Display[V maths.Number](v V) string {
	return fmt.Sprint(v)
}

// Debug renders v with its Go type, for example uint8(5)
func Debug[V maths.Number](v V) string {
	return fmt.Sprintf("%T(%v)", v, v)
}

// LowerExp renders v in scientific notation with the shortest exact
// mantissa: 1234 is 1.234e3, 0 is 0e0 and 0.00012 is 1.2e-4
func LowerExp[V maths.Number](v V) string {
	if maths.IsFloat[V]() {
		return floatExp(float64(v), maths.Width[V]())
	}
	return integerExp(v)
}

// UpperExp is LowerExp with an upper case exponent marker
func UpperExp[V maths.Number](v V) string {
	return strings.Replace(LowerExp(v), "e", "E", 1)
}

// Human renders v with thousands separators
func Human[V maths.Number](v V) string {
	switch {
	case maths.IsFloat[V]():
		return humanize.Commaf(float64(v))
	case maths.IsSigned[V]():
		return humanize.Comma(maths.WidenSigned(v))
	}
	u := uint64(v)
	if u <= math.MaxInt64 {
		return humanize.Comma(int64(u))
	}
	return humanize.BigComma(new(big.Int).SetUint64(u))
}

func integerExp[V maths.Number](v V) string {
	var sb strings.Builder
	if maths.IsNegative(v) {
		sb.WriteByte('-')
	}
	digits := maths.DigitsOf(v)
	list := digits.Collect()
	exponent := len(list) - 1
	end := len(list)
	for end > 1 && list[end-1] == 0 {
		end--
	}
	sb.WriteByte('0' + list[0])
	if end > 1 {
		sb.WriteByte('.')
		for _, d := range list[1:end] {
			sb.WriteByte('0' + d)
		}
	}
	sb.WriteByte('e')
	sb.WriteString(strconv.Itoa(exponent))
	return sb.String()
}

func floatExp(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	text := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exponent, _ := strings.Cut(text, "e")
	sign := ""
	if strings.HasPrefix(exponent, "-") {
		sign = "-"
	}
	exponent = strings.TrimLeft(exponent, "+-0")
	if exponent == "" {
		exponent = "0"
	}
	return mantissa + "e" + sign + exponent
}
