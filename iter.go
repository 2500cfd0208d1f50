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

import (
	"iter"
	"slices"
)

// FromSeq returns the union of the flags yielded by seq, for instance
// maps.Keys of a set or slices.Values of a list. seq must be finite.
func FromSeq[E Flag](seq iter.Seq[E]) Flags[E] {
	var f Flags[E]
	for flag := range seq {
		f.raw |= flag
	}
	return f
}

// All yields every bit set in f as a single-bit value, lowest first.
func (f Flags[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for r := f.raw; r != 0; r &= r - 1 {
			if !yield(r &^ (r - 1)) {
				return
			}
		}
	}
}

// Values returns the bits set in f, lowest first.
func (f Flags[E]) Values() []E {
	return slices.Collect(f.All())
}
