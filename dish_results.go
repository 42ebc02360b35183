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

package dish

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/go-enjin/dish/pkg/bit"
	"github.com/go-enjin/dish/pkg/format"
	"github.com/go-enjin/dish/pkg/maths"
)

// ListResult groups per-argument results so every output format has a
// top-level table to encode
type ListResult[T fmt.Stringer] struct {
	Results []T `json:"results" yaml:"results" toml:"results"`
}

func (r ListResult[T]) String() string {
	return strings.Join(lo.Map(r.Results, func(item T, _ int) string {
		return item.String()
	}), "\n")
}

// Value is a Number that encodes natively in json and yaml, and as decimal
// text in toml where integers beyond int64 have no native form. NaN and the
// infinities encode as text in json.
type Value[V maths.Number] struct {
	v V
}

func valueOf[V maths.Number](v V) Value[V] {
	return Value[V]{v: v}
}

func valuesOf[V maths.Number](list []V) []Value[V] {
	return lo.Map(list, func(v V, _ int) Value[V] {
		return valueOf(v)
	})
}

func (v Value[V]) String() string {
	return format.Display(v.v)
}

func (v Value[V]) MarshalJSON() ([]byte, error) {
	if maths.IsFloat[V]() {
		if f := float64(v.v); math.IsNaN(f) || math.IsInf(f, 0) {
			return json.Marshal(v.String())
		}
	}
	return json.Marshal(v.v)
}

func (v Value[V]) MarshalYAML() (interface{}, error) {
	return v.v, nil
}

func (v Value[V]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

type ValueResult[V maths.Number] struct {
	Operation string     `json:"operation" yaml:"operation" toml:"operation"`
	Arguments []Value[V] `json:"arguments" yaml:"arguments" toml:"arguments"`
	Result    Value[V]   `json:"result" yaml:"result" toml:"result"`
}

func (r ValueResult[V]) String() string {
	return r.Result.String()
}

type DigitsResult[V maths.Number] struct {
	Value  Value[V] `json:"value" yaml:"value" toml:"value"`
	Digits []int    `json:"digits" yaml:"digits" toml:"digits"`
	Len    int      `json:"len" yaml:"len" toml:"len"`
}

func toInts(digits []uint8) []int {
	return lo.Map(digits, func(d uint8, _ int) int {
		return int(d)
	})
}

func newDigitsResult[V maths.Number](v V) (r DigitsResult[V]) {
	digits := maths.DigitsOf(v)
	r = DigitsResult[V]{Value: valueOf(v), Len: digits.Len(), Digits: toInts(digits.Collect())}
	return
}

func (r DigitsResult[V]) String() string {
	return strings.Join(lo.Map(r.Digits, func(d int, _ int) string {
		return fmt.Sprint(d)
	}), " ")
}

type BitsResult[V maths.Number] struct {
	Value Value[V]  `json:"value" yaml:"value" toml:"value"`
	Text  string    `json:"text" yaml:"text" toml:"text"`
	Bits  []bit.Bit `json:"bits" yaml:"bits" toml:"bits"`
	Width int       `json:"width" yaml:"width" toml:"width"`
	Len   int       `json:"len" yaml:"len" toml:"len"`
	Zeros int       `json:"zeros" yaml:"zeros" toml:"zeros"`
}

func newBitsResult[V maths.Number](v V) (r BitsResult[V]) {
	bits := maths.BitsOf(v)
	r = BitsResult[V]{
		Value: valueOf(v),
		Width: maths.Width[V](),
		Len:   bits.Len(),
		Zeros: bits.Zeros(),
		Bits:  bits.Collect(),
	}
	var sb strings.Builder
	for _, b := range r.Bits {
		sb.WriteString(b.String())
	}
	r.Text = sb.String()
	return
}

func (r BitsResult[V]) String() string {
	return r.Text
}

type LogResult[V maths.Number] struct {
	Value Value[V]  `json:"value" yaml:"value" toml:"value"`
	Log2  uint32    `json:"log2" yaml:"log2" toml:"log2"`
	Log10 uint32    `json:"log10" yaml:"log10" toml:"log10"`
	Base  *Value[V] `json:"base,omitempty" yaml:"base,omitempty" toml:"base,omitempty"`
	Log   *uint32   `json:"log,omitempty" yaml:"log,omitempty" toml:"log,omitempty"`
}

func (r LogResult[V]) String() string {
	text := fmt.Sprintf("log2=%d log10=%d", r.Log2, r.Log10)
	if r.Base != nil && r.Log != nil {
		text += fmt.Sprintf(" log%v=%d", r.Base, *r.Log)
	}
	return text
}

type PowResult[V maths.Number] struct {
	Value    Value[V] `json:"value" yaml:"value" toml:"value"`
	Exponent uint32   `json:"exponent" yaml:"exponent" toml:"exponent"`
	Result   Value[V] `json:"result" yaml:"result" toml:"result"`
}

func (r PowResult[V]) String() string {
	return r.Result.String()
}

type RootResult[V maths.Number] struct {
	Value  Value[V] `json:"value" yaml:"value" toml:"value"`
	N      uint32   `json:"n" yaml:"n" toml:"n"`
	Result Value[float64] `json:"result" yaml:"result" toml:"result"`
}

func (r RootResult[V]) String() string {
	return r.Result.String()
}

type AbsResult[V maths.Number] struct {
	Value    Value[V] `json:"value" yaml:"value" toml:"value"`
	Abs      Value[V] `json:"abs" yaml:"abs" toml:"abs"`
	Negative bool     `json:"negative" yaml:"negative" toml:"negative"`
}

func (r AbsResult[V]) String() string {
	return r.Abs.String()
}

type CountsResult[V maths.Number] struct {
	Value         Value[V] `json:"value" yaml:"value" toml:"value"`
	LeadingZeros  uint32   `json:"leading-zeros" yaml:"leading-zeros" toml:"leading-zeros"`
	LeadingOnes   uint32   `json:"leading-ones" yaml:"leading-ones" toml:"leading-ones"`
	TrailingZeros uint32   `json:"trailing-zeros" yaml:"trailing-zeros" toml:"trailing-zeros"`
	TrailingOnes  uint32   `json:"trailing-ones" yaml:"trailing-ones" toml:"trailing-ones"`
	Ones          uint32   `json:"ones" yaml:"ones" toml:"ones"`
}

func (r CountsResult[V]) String() string {
	return fmt.Sprintf(
		"leading-zeros=%d leading-ones=%d trailing-zeros=%d trailing-ones=%d ones=%d",
		r.LeadingZeros, r.LeadingOnes, r.TrailingZeros, r.TrailingOnes, r.Ones,
	)
}

type FormatResult struct {
	Display  string `json:"display" yaml:"display" toml:"display"`
	Debug    string `json:"debug" yaml:"debug" toml:"debug"`
	LowerExp string `json:"lower-exp" yaml:"lower-exp" toml:"lower-exp"`
	UpperExp string `json:"upper-exp" yaml:"upper-exp" toml:"upper-exp"`
	Human    string `json:"human" yaml:"human" toml:"human"`
	Hex      string `json:"hex,omitempty" yaml:"hex,omitempty" toml:"hex,omitempty"`
	UpperHex string `json:"upper-hex,omitempty" yaml:"upper-hex,omitempty" toml:"upper-hex,omitempty"`
	Binary   string `json:"binary,omitempty" yaml:"binary,omitempty" toml:"binary,omitempty"`
	Octal    string `json:"octal,omitempty" yaml:"octal,omitempty" toml:"octal,omitempty"`
}

func newFormatResult[V maths.Number](v V) (r FormatResult) {
	r = FormatResult{
		Display:  format.Display(v),
		Debug:    format.Debug(v),
		LowerExp: format.LowerExp(v),
		UpperExp: format.UpperExp(v),
		Human:    format.Human(v),
	}
	if bundle, ok := format.IntegerForms(v); ok {
		r.Hex, r.UpperHex = bundle.Hex, bundle.UpperHex
		r.Binary, r.Octal = bundle.Binary, bundle.Octal
	}
	return
}

func (r FormatResult) String() string {
	lines := []string{
		"display:   " + r.Display,
		"debug:     " + r.Debug,
		"lower-exp: " + r.LowerExp,
		"upper-exp: " + r.UpperExp,
		"human:     " + r.Human,
	}
	if r.Hex != "" {
		lines = append(lines,
			"hex:       "+r.Hex,
			"upper-hex: "+r.UpperHex,
			"binary:    "+r.Binary,
			"octal:     "+r.Octal,
		)
	}
	return strings.Join(lines, "\n")
}

type MinMaxResult[V maths.Number] struct {
	Min    Value[V] `json:"min" yaml:"min" toml:"min"`
	Max    Value[V] `json:"max" yaml:"max" toml:"max"`
	Spread Value[V] `json:"spread" yaml:"spread" toml:"spread"`
	Ok     bool     `json:"ok" yaml:"ok" toml:"ok"`
}

func (r MinMaxResult[V]) String() string {
	if !r.Ok {
		return "none"
	}
	return fmt.Sprintf("%v %v", r.Min, r.Max)
}

type SortResult[V maths.Number] struct {
	Values  []Value[V] `json:"values" yaml:"values" toml:"values"`
	Reverse bool       `json:"reverse" yaml:"reverse" toml:"reverse"`
}

func (r SortResult[V]) String() string {
	return strings.Join(lo.Map(r.Values, func(v Value[V], _ int) string {
		return v.String()
	}), " ")
}

type EqualResult[V maths.Number] struct {
	A       Value[V] `json:"a" yaml:"a" toml:"a"`
	B       Value[V] `json:"b" yaml:"b" toml:"b"`
	Numeric bool     `json:"numeric" yaml:"numeric" toml:"numeric"`
	Raw     bool     `json:"raw" yaml:"raw" toml:"raw"`
}

func (r EqualResult[V]) String() string {
	return fmt.Sprintf("numeric=%v raw=%v", r.Numeric, r.Raw)
}

type InfoResult struct {
	maths.Representation `yaml:",inline"`
	Zero                 string `json:"zero" yaml:"zero" toml:"zero"`
	One                  string `json:"one" yaml:"one" toml:"one"`
}

func newInfoResult[V maths.Number]() (r InfoResult) {
	r = InfoResult{
		Representation: maths.Describe[V](),
		Zero:           format.Display(maths.Zero[V]()),
		One:            format.Display(maths.One[V]()),
	}
	return
}

func (r InfoResult) String() string {
	return fmt.Sprintf(
		"%s (%s): bits=%d signed=%v float=%v min=%s max=%s zero=%s one=%s",
		r.Name, r.Alias, r.Bits, r.Signed, r.Float, r.Min, r.Max, r.Zero, r.One,
	)
}

type InfoListResult struct {
	Representations []maths.Representation `json:"representations" yaml:"representations" toml:"representations"`
}

func (r InfoListResult) String() string {
	return strings.Join(lo.Map(r.Representations, func(item maths.Representation, _ int) string {
		return fmt.Sprintf("%-8s %-8s bits=%-2d min=%s max=%s", item.Alias, item.Name, item.Bits, item.Min, item.Max)
	}), "\n")
}
