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
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-enjin/dish/pkg/errors"
)

func run(t *testing.T, argv ...string) (out string, err error) {
	t.Helper()
	var buf bytes.Buffer
	d := New()
	d.SetWriter(&buf)
	err = d.Run(append([]string{"dish"}, argv...))
	out = buf.String()
	return
}

func mustRun(t *testing.T, argv ...string) (out string) {
	t.Helper()
	out, err := run(t, argv...)
	require.NoError(t, err, strings.Join(argv, " "))
	return
}

func TestCommandsText(t *testing.T) {
	for _, test := range []struct {
		argv []string
		want string
	}{
		{[]string{"-t", "u16", "digits", "1234", "0"}, "1 2 3 4\n0\n"},
		{[]string{"-t", "i32", "digits", "--", "-305"}, "3 0 5\n"},
		{[]string{"-t", "u8", "bits", "5"}, "00000101\n"},
		{[]string{"-t", "i16", "bits", "--", "-1"}, "1111111111111111\n"},
		{[]string{"take", "--count", "3", "12345"}, "1 2 3\n"},
		{[]string{"gcd", "12", "18", "30"}, "6\n"},
		{[]string{"gcd", "7", "0"}, "1\n"},
		{[]string{"lcm", "4", "6"}, "12\n"},
		{[]string{"pow", "2", "10"}, "1024\n"},
		{[]string{"-t", "u8", "pow", "2", "8"}, "0\n"},
		{[]string{"-t", "f64", "root", "16", "2"}, "4\n"},
		{[]string{"ilog", "1000"}, "log2=9 log10=3\n"},
		{[]string{"ilog", "81", "3"}, "log2=6 log10=1 log3=4\n"},
		{[]string{"-t", "i8", "abs", "--", "-5", "-128", "7"}, "5\n-128\n7\n"},
		{[]string{"-t", "u8", "reverse", "1", "15"}, "128\n240\n"},
		{[]string{"-t", "u8", "counts", "12"}, "leading-zeros=4 leading-ones=0 trailing-zeros=2 trailing-ones=0 ones=2\n"},
		{[]string{"minmax", "3", "1", "4"}, "1 4\n"},
		{[]string{"sort", "3", "1", "2"}, "1 2 3\n"},
		{[]string{"sort", "--reverse", "3", "1", "2"}, "3 2 1\n"},
		{[]string{"sum", "1", "2", "3"}, "6\n"},
		{[]string{"product", "2", "3", "4"}, "24\n"},
		{[]string{"-t", "f64", "equal", "--", "0", "-0"}, "numeric=true raw=false\n"},
		{[]string{"-t", "u32", "equal", "7", "7"}, "numeric=true raw=true\n"},
	} {
		t.Run(strings.Join(test.argv, " "), func(t *testing.T) {
			assert.Equal(t, test.want, mustRun(t, test.argv...))
		})
	}
}

func TestFormatCommand(t *testing.T) {
	out := mustRun(t, "-t", "i8", "format", "--", "-1")
	assert.Contains(t, out, "debug:     int8(-1)")
	assert.Contains(t, out, "hex:       ff")
	assert.Contains(t, out, "binary:    11111111")

	out = mustRun(t, "-t", "f64", "format", "1234.5")
	assert.Contains(t, out, "lower-exp: 1.2345e3")
	assert.Contains(t, out, "human:     1,234.5")
	assert.NotContains(t, out, "hex:")
}

func TestInfoCommand(t *testing.T) {
	out := mustRun(t, "-t", "i8", "info")
	assert.Contains(t, out, "int8 (i8): bits=8 signed=true float=false min=-128 max=127")

	out = mustRun(t, "info", "--all")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[0], "u8 "), lines[0])
	assert.True(t, strings.HasPrefix(lines[12], "f64 "), lines[12])
}

func TestOutputFormats(t *testing.T) {
	var abs struct {
		Results []struct {
			Value    int  `json:"value"`
			Abs      int  `json:"abs"`
			Negative bool `json:"negative"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "-o", "json", "-t", "i8", "abs", "--", "-5")), &abs))
	require.Len(t, abs.Results, 1)
	assert.Equal(t, -5, abs.Results[0].Value)
	assert.Equal(t, 5, abs.Results[0].Abs)
	assert.True(t, abs.Results[0].Negative)

	var sorted struct {
		Values []int `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "-o", "json", "-t", "u8", "sort", "3", "1", "2")), &sorted))
	assert.Equal(t, []int{1, 2, 3}, sorted.Values)

	var bits struct {
		Results []struct {
			Bits  []string `json:"bits"`
			Width int      `json:"width"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "-o", "json", "-t", "u8", "bits", "5")), &bits))
	require.Len(t, bits.Results, 1)
	assert.Equal(t, 8, bits.Results[0].Width)
	assert.Equal(t, []string{"0", "0", "0", "0", "0", "1", "0", "1"}, bits.Results[0].Bits)

	out := mustRun(t, "-o", "yaml", "gcd", "12", "18")
	assert.Contains(t, out, "operation: gcd")
	assert.Contains(t, out, "result: 6")

	out = mustRun(t, "-o", "toml", "gcd", "12", "18")
	assert.Regexp(t, `result = ['"]6['"]`, out)
}

func TestOutputUnsignedMaximum(t *testing.T) {
	const maxU64 = "18446744073709551615"

	var sum struct {
		Operation string   `toml:"operation"`
		Arguments []string `toml:"arguments"`
		Result    string   `toml:"result"`
	}
	out := mustRun(t, "-t", "u64", "-o", "toml", "sum", maxU64)
	require.NoError(t, toml.Unmarshal([]byte(out), &sum), out)
	assert.Equal(t, "sum", sum.Operation)
	assert.Equal(t, []string{maxU64}, sum.Arguments)
	assert.Equal(t, maxU64, sum.Result)

	var digits struct {
		Results []struct {
			Value  string `toml:"value"`
			Digits []int  `toml:"digits"`
			Len    int    `toml:"len"`
		} `toml:"results"`
	}
	out = mustRun(t, "-t", "u64", "-o", "toml", "digits", maxU64)
	require.NoError(t, toml.Unmarshal([]byte(out), &digits), out)
	require.Len(t, digits.Results, 1)
	assert.Equal(t, maxU64, digits.Results[0].Value)
	assert.Equal(t, 20, digits.Results[0].Len)

	for _, alias := range []string{"uint", "uintptr"} {
		out = mustRun(t, "-t", alias, "-o", "toml", "abs", maxU64)
		assert.Contains(t, out, maxU64, alias)
	}

	out = mustRun(t, "-t", "u64", "-o", "json", "sum", maxU64)
	assert.Contains(t, out, `"result": `+maxU64)
	out = mustRun(t, "-t", "u64", "-o", "yaml", "sum", maxU64)
	assert.Contains(t, out, "result: "+maxU64)
}

func TestValueEncoding(t *testing.T) {
	data, err := json.Marshal(valuesOf([]uint8{1, 255}))
	require.NoError(t, err)
	assert.Equal(t, "[1,255]", string(data))

	data, err = json.Marshal(valuesOf([]float64{1.5, math.NaN(), math.Inf(-1)}))
	require.NoError(t, err)
	assert.Equal(t, `[1.5,"NaN","-Inf"]`, string(data))

	text, err := valueOf(int8(-128)).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-128", string(text))

	v, err := valueOf(uint16(7)).MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, uint16(7), v)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "gcd", "1")
	assert.ErrorIs(t, err, errors.ErrMissingArgument)

	_, err = run(t, "pow", "1", "2", "3")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = run(t, "-t", "u8", "digits", "300")
	var ae *errors.ArgumentError
	if assert.True(t, errors.As(err, &ae)) {
		assert.Equal(t, "digits", ae.Command)
		assert.Equal(t, 0, ae.Index)
		assert.Equal(t, "300", ae.Value)
	}

	_, err = run(t, "pow", "2", "x")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = run(t, "-t", "f64", "root", "8", "0")
	assert.ErrorIs(t, err, errors.ErrOutOfRange)

	_, err = run(t, "take", "--count", "9", "12")
	assert.ErrorIs(t, err, errors.ErrShortSequence)

	_, err = run(t, "-t", "u128", "digits", "1")
	assert.ErrorIs(t, err, errors.ErrInvalidConfiguration)

	_, err = run(t, "-o", "csv", "gcd", "1", "2")
	assert.ErrorIs(t, err, errors.ErrInvalidConfiguration)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dish.toml")
	require.NoError(t, os.WriteFile(path, []byte("representation = \"i8\"\noutput = \"text\"\n"), 0644))

	assert.Contains(t, mustRun(t, "-c", path, "info"), "int8 (i8)")
	assert.Contains(t, mustRun(t, "-c", path, "-t", "u8", "info"), "uint8 (u8)")

	require.NoError(t, os.WriteFile(path, []byte("colour = \"blue\"\n"), 0644))
	_, err := run(t, "-c", path, "info")
	assert.ErrorIs(t, err, errors.ErrInvalidConfiguration)
}
