// Copyright 2026 individual contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// <https://www.apache.org/licenses/LICENSE-2.0>
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package enumflags_test

import (
	"flag"
	"strconv"
	"strings"
	"testing"

	assertpkg "github.com/stretchr/testify/assert"
	requirepkg "github.com/stretchr/testify/require"

	"github.com/aezhar/enumflags"
)

func TestBoolValue(t *testing.T) {
	tt := []struct {
		name    string
		initial enumflags.Flags[Opt]
		args    []string
		want    bool
	}{
		{"Enable", enumflags.New(B), []string{"-a"}, true},
		{"EnableExplicit", enumflags.New(B), []string{"-a=on"}, true},
		{"Disable", enumflags.New(A, B), []string{"-a=false"}, false},
		{"Untouched", enumflags.New(A, B), nil, true},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			require := requirepkg.New(t)

			flags := tc.initial

			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fv := enumflags.NewBoolValue(&flags, A)
			fs.Var(fv, "a", "enable A")

			require.NoError(fs.Parse(tc.args))

			require.Equal(tc.want, fv.Get())
			require.Equal(strconv.FormatBool(tc.want), fv.String())
			require.Equal(tc.want, flags.Has(A))
			// Other bits are left alone.
			require.True(flags.Has(B))
		})
	}
}

func TestBoolValueInvalid(t *testing.T) {
	require := requirepkg.New(t)

	var flags enumflags.Flags[Opt]
	fv := enumflags.NewBoolValue(&flags, C)

	err := fv.Set("maybe")
	require.ErrorIs(err, strconv.ErrSyntax)

	var numErr *strconv.NumError
	require.ErrorAs(err, &numErr)
	require.Equal("maybe", numErr.Num)
	require.True(flags.IsEmpty())
}

func TestBoolValueUsage(t *testing.T) {
	assert := assertpkg.New(t)

	flags := enumflags.New(A)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(enumflags.NewBoolValue(&flags, A), "a", "enable A")
	fs.Var(enumflags.NewBoolValue(&flags, B), "b", "enable B")

	const expectedUsage = `
  -a	enable A (default true)
  -b	enable B
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.PrintDefaults()

	assert.Equal(strings.TrimPrefix(expectedUsage, "\n"), out.String())
}
