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

// Package enumflags treats the values of a defined unsigned integer type
// as individual bits of a flag set.
//
// Declare the flags as single-bit constants of a named type:
//
//	type Opt uint8
//
//	const (
//		Read Opt = 1 << iota
//		Write
//		Exec
//	)
//
// and combine them with [Flags]:
//
//	var perm enumflags.Flags[Opt]
//	perm.Add(Read, Write)
//	perm.Has(Write)            // true
//	perm.HasAny(Exec)          // false
//	perm.With(Exec).Len()      // 3, perm itself is unchanged
//
// A Flags value only ever accepts values of its own flag type, so an
// option from an unrelated set cannot be mixed in by accident. Flags is a
// plain value: it is copied on assignment, compared with ==, and not safe
// for concurrent mutation without external synchronization.
package enumflags
