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

package enumflags

import "strconv"

// BoolValue binds a single flag of a [Flags] to a boolean command line
// switch. It implements [flag.Value] and [flag.Getter].
//
//	var opts enumflags.Flags[Opt]
//	fs.Var(enumflags.NewBoolValue(&opts, Verbose), "v", "verbose output")
type BoolValue[E Flag] struct {
	flags *Flags[E]
	flag  E
}

// NewBoolValue returns a [BoolValue] that sets and clears flag in flags.
func NewBoolValue[E Flag](flags *Flags[E], flag E) *BoolValue[E] {
	return &BoolValue[E]{flags: flags, flag: flag}
}

// Set implements [flag.Value].
func (v *BoolValue[E]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.flags.Set(v.flag, b)

	return nil
}

// String implements [flag.Value].
func (v *BoolValue[E]) String() string {
	// The flag package calls String on a zero value to detect defaults.
	if v == nil || v.flags == nil {
		return "false"
	}

	return strconv.FormatBool(v.flags.Has(v.flag))
}

// Get implements [flag.Getter].
func (v *BoolValue[E]) Get() any {
	if v == nil || v.flags == nil {
		return false
	}

	return v.flags.Has(v.flag)
}

// IsBoolFlag lets the switch be given without a value.
func (v *BoolValue[E]) IsBoolFlag() bool { return true }

func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
