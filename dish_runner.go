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
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/maruel/natural"
	"github.com/samber/lo"

	"github.com/go-enjin/dish/pkg/errors"
	"github.com/go-enjin/dish/pkg/format"
	"github.com/go-enjin/dish/pkg/iters"
	"github.com/go-enjin/dish/pkg/maths"
	"github.com/go-enjin/dish/pkg/mem"
)

type runner interface {
	run(op string, argv []string, opts options) (result interface{}, err error)
}

func newRunner(repr maths.Representation) (r runner, err error) {
	switch repr.Name {
	case "uint8":
		r = evaluator[uint8]{}
	case "uint16":
		r = evaluator[uint16]{}
	case "uint32":
		r = evaluator[uint32]{}
	case "uint64":
		r = evaluator[uint64]{}
	case "uint":
		r = evaluator[uint]{}
	case "uintptr":
		r = evaluator[uintptr]{}
	case "int8":
		r = evaluator[int8]{}
	case "int16":
		r = evaluator[int16]{}
	case "int32":
		r = evaluator[int32]{}
	case "int64":
		r = evaluator[int64]{}
	case "int":
		r = evaluator[int]{}
	case "float32":
		r = evaluator[float32]{}
	case "float64":
		r = evaluator[float64]{}
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnknownRepresentation, repr.Name)
	}
	return
}

// evaluator runs every command for the representation V
type evaluator[V maths.Number] struct{}

func (e evaluator[V]) decode(op string, index int, text string) (v V, err error) {
	bits := maths.Width[V]()
	switch {
	case maths.IsFloat[V]():
		var f float64
		if f, err = strconv.ParseFloat(text, bits); err == nil {
			v = V(f)
		}
	case maths.IsSigned[V]():
		var i int64
		if i, err = strconv.ParseInt(text, 0, bits); err == nil {
			v = V(i)
		}
	default:
		var u uint64
		if u, err = strconv.ParseUint(text, 0, bits); err == nil {
			v = V(u)
		}
	}
	if err != nil {
		err = errors.NewArgumentError(op, index, text, fmt.Errorf("%w: not a %T", errors.ErrInvalidArgument, v))
	}
	return
}

func (e evaluator[V]) decodeAll(op string, argv []string) (values []V, err error) {
	values = make([]V, len(argv))
	for idx, text := range argv {
		if values[idx], err = e.decode(op, idx, text); err != nil {
			return
		}
	}
	return
}

func (e evaluator[V]) decodeUint32(op string, index int, text string) (u uint32, err error) {
	var parsed uint64
	if parsed, err = strconv.ParseUint(text, 10, 32); err != nil {
		err = errors.NewArgumentError(op, index, text, fmt.Errorf("%w: not a uint32", errors.ErrInvalidArgument))
		return
	}
	u = uint32(parsed)
	return
}

func (e evaluator[V]) run(op string, argv []string, opts options) (result interface{}, err error) {
	switch op {
	case "info":
		result = e.info(opts)
		return
	case "pow", "root":
		return e.withExponent(op, argv)
	}

	var values []V
	if values, err = e.decodeAll(op, argv); err != nil {
		return
	}

	switch op {
	case "digits":
		result = ListResult[DigitsResult[V]]{Results: lo.Map(values, func(v V, _ int) DigitsResult[V] {
			return newDigitsResult(v)
		})}
	case "bits":
		result = ListResult[BitsResult[V]]{Results: lo.Map(values, func(v V, _ int) BitsResult[V] {
			return newBitsResult(v)
		})}
	case "take":
		digits := maths.DigitsOf(values[0])
		var taken []uint8
		if taken, err = iters.CollectArray(digits.Seq(), opts.Count); err != nil {
			err = fmt.Errorf("take: %v: %w", format.Display(values[0]), err)
			return
		}
		result = DigitsResult[V]{Value: valueOf(values[0]), Digits: toInts(taken), Len: len(taken)}
	case "gcd":
		result = ValueResult[V]{Operation: op, Arguments: valuesOf(values), Result: valueOf(lo.Reduce(values[1:], func(agg V, v V, _ int) V {
			return maths.GCD(agg, v)
		}, values[0]))}
	case "lcm":
		result = ValueResult[V]{Operation: op, Arguments: valuesOf(values), Result: valueOf(lo.Reduce(values[1:], func(agg V, v V, _ int) V {
			return maths.LCM(agg, v)
		}, values[0]))}
	case "ilog":
		r := LogResult[V]{Value: valueOf(values[0]), Log2: maths.ILog2(values[0]), Log10: maths.ILog10(values[0])}
		if len(values) > 1 {
			base, log := valueOf(values[1]), maths.ILog(values[0], values[1])
			r.Base, r.Log = &base, &log
		}
		result = r
	case "abs":
		result = ListResult[AbsResult[V]]{Results: lo.Map(values, func(v V, _ int) AbsResult[V] {
			return AbsResult[V]{Value: valueOf(v), Abs: valueOf(maths.Abs(v)), Negative: maths.IsNegative(v)}
		})}
	case "reverse":
		result = ListResult[ValueResult[V]]{Results: lo.Map(values, func(v V, _ int) ValueResult[V] {
			return ValueResult[V]{Operation: op, Arguments: valuesOf([]V{v}), Result: valueOf(maths.ReverseBits(v))}
		})}
	case "counts":
		v := values[0]
		result = CountsResult[V]{
			Value:         valueOf(v),
			LeadingZeros:  maths.LeadingZeros(v),
			LeadingOnes:   maths.LeadingOnes(v),
			TrailingZeros: maths.TrailingZeros(v),
			TrailingOnes:  maths.TrailingOnes(v),
			Ones:          maths.CountOnes(v),
		}
	case "format":
		result = newFormatResult(values[0])
	case "minmax":
		var r MinMaxResult[V]
		if low, high, ok := iters.MinMax(slices.Values(values)); ok {
			spread, _ := iters.MinMaxPipe(slices.Values(values), func(low, high V) V {
				return high - low
			})
			r = MinMaxResult[V]{Min: valueOf(low), Max: valueOf(high), Spread: valueOf(spread), Ok: true}
		}
		result = r
	case "sort":
		r := SortResult[V]{Reverse: opts.Reverse}
		if opts.Reverse {
			r.Values = valuesOf(maths.ReverseSorted(values...))
		} else {
			r.Values = valuesOf(maths.Sorted(values...))
		}
		result = r
	case "sum":
		result = ValueResult[V]{Operation: op, Arguments: valuesOf(values), Result: valueOf(maths.Sum(values...))}
	case "product":
		result = ValueResult[V]{Operation: op, Arguments: valuesOf(values), Result: valueOf(maths.Product(values...))}
	case "equal":
		result = EqualResult[V]{A: valueOf(values[0]), B: valueOf(values[1]), Numeric: values[0] == values[1], Raw: mem.Equal(values[0], values[1])}
	default:
		err = fmt.Errorf("%w: %q", errors.ErrNotImplemented, op)
	}
	return
}

func (e evaluator[V]) withExponent(op string, argv []string) (result interface{}, err error) {
	var v V
	var n uint32
	if v, err = e.decode(op, 0, argv[0]); err != nil {
		return
	}
	if n, err = e.decodeUint32(op, 1, argv[1]); err != nil {
		return
	}
	switch op {
	case "pow":
		result = PowResult[V]{Value: valueOf(v), Exponent: n, Result: valueOf(maths.Pow(v, n))}
	default:
		if n == 0 {
			err = errors.NewArgumentError(op, 1, argv[1], fmt.Errorf("%w: the zeroth root is undefined", errors.ErrOutOfRange))
			return
		}
		result = RootResult[V]{Value: valueOf(v), N: n, Result: valueOf(maths.Root(v, n))}
	}
	return
}

func (e evaluator[V]) info(opts options) (result interface{}) {
	if !opts.All {
		result = newInfoResult[V]()
		return
	}
	list := maths.Representations()
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Float != list[j].Float {
			return !list[i].Float
		}
		if list[i].Signed != list[j].Signed {
			return !list[i].Signed
		}
		return natural.Less(list[i].Alias, list[j].Alias)
	})
	result = InfoListResult{Representations: list}
	return
}
