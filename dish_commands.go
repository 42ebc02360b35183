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

	"github.com/urfave/cli/v2"

	"github.com/go-enjin/dish/pkg/encode"
	"github.com/go-enjin/dish/pkg/errors"
	"github.com/go-enjin/dish/pkg/log"
)

// options carries the command specific flags into the runner
type options struct {
	All     bool
	Reverse bool
	Count   int
}

type commandSpec struct {
	name      string
	usage     string
	argsUsage string
	minArgs   int
	maxArgs   int
	flags     []cli.Flag
}

var commandSpecs = []commandSpec{
	{name: "info", usage: "describe the selected representation (MIN, MAX, BITS)", flags: []cli.Flag{
		&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "list every supported representation"},
	}},
	{name: "digits", usage: "decimal digits of each VALUE, most significant first", argsUsage: "VALUE...", minArgs: 1, maxArgs: -1},
	{name: "bits", usage: "full width binary digits of each VALUE, most significant first", argsUsage: "VALUE...", minArgs: 1, maxArgs: -1},
	{name: "take", usage: "the first --count decimal digits of VALUE, failing when VALUE has fewer", argsUsage: "VALUE", minArgs: 1, maxArgs: 1, flags: []cli.Flag{
		&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "number of digits to take", Value: 1},
	}},
	{name: "gcd", usage: "greatest common divisor of all VALUEs", argsUsage: "VALUE VALUE...", minArgs: 2, maxArgs: -1},
	{name: "lcm", usage: "least common multiple of all VALUEs", argsUsage: "VALUE VALUE...", minArgs: 2, maxArgs: -1},
	{name: "pow", usage: "VALUE raised to EXPONENT", argsUsage: "VALUE EXPONENT", minArgs: 2, maxArgs: 2},
	{name: "ilog", usage: "integer logarithms of VALUE in base 2, 10 and optionally BASE", argsUsage: "VALUE [BASE]", minArgs: 1, maxArgs: 2},
	{name: "root", usage: "Nth root of VALUE in double precision", argsUsage: "VALUE N", minArgs: 2, maxArgs: 2},
	{name: "abs", usage: "absolute value of each VALUE", argsUsage: "VALUE...", minArgs: 1, maxArgs: -1},
	{name: "reverse", usage: "reverse the bit order of each VALUE", argsUsage: "VALUE...", minArgs: 1, maxArgs: -1},
	{name: "counts", usage: "leading and trailing zero and one counts of VALUE", argsUsage: "VALUE", minArgs: 1, maxArgs: 1},
	{name: "format", usage: "render VALUE in every supported notation", argsUsage: "VALUE", minArgs: 1, maxArgs: 1},
	{name: "minmax", usage: "smallest and largest of the VALUEs", argsUsage: "VALUE...", minArgs: 1, maxArgs: -1},
	{name: "sort", usage: "sort the VALUEs", argsUsage: "VALUE...", minArgs: 1, maxArgs: -1, flags: []cli.Flag{
		&cli.BoolFlag{Name: "reverse", Aliases: []string{"r"}, Usage: "sort in descending order"},
	}},
	{name: "sum", usage: "sum of the VALUEs", argsUsage: "VALUE...", minArgs: 1, maxArgs: -1},
	{name: "product", usage: "product of the VALUEs", argsUsage: "VALUE...", minArgs: 1, maxArgs: -1},
	{name: "equal", usage: "compare two VALUEs numerically and by their raw bytes", argsUsage: "VALUE VALUE", minArgs: 2, maxArgs: 2},
}

func (d *Dish) commands() (commands []*cli.Command) {
	for _, spec := range commandSpecs {
		spec := spec
		commands = append(commands, &cli.Command{
			Name:      spec.name,
			Usage:     spec.usage,
			ArgsUsage: spec.argsUsage,
			Flags:     spec.flags,
			Action: func(ctx *cli.Context) (err error) {
				return d.action(ctx, spec)
			},
		})
	}
	return
}

func (d *Dish) action(ctx *cli.Context, spec commandSpec) (err error) {
	argv := ctx.Args().Slice()
	if len(argv) < spec.minArgs {
		err = fmt.Errorf("%s: %w: expected %v", spec.name, errors.ErrMissingArgument, spec.argsUsage)
		return
	}
	if spec.maxArgs >= 0 && len(argv) > spec.maxArgs {
		err = fmt.Errorf("%s: %w: too many arguments, expected %v", spec.name, errors.ErrInvalidArgument, spec.argsUsage)
		return
	}

	var r runner
	if r, err = newRunner(d.repr); err != nil {
		return
	}
	opts := options{
		All:     ctx.Bool("all"),
		Reverse: ctx.Bool("reverse"),
		Count:   ctx.Int("count"),
	}
	log.DebugF("running %v %v as %v", spec.name, argv, d.repr.Name)

	var result interface{}
	if result, err = r.run(spec.name, argv, opts); err != nil {
		return
	}
	err = encode.Encode(ctx.App.Writer, d.output, result)
	return
}
