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

import "math/bits"

// Flags is a set of flags of type E, stored as a single bit pattern.
//
// The zero value is the empty set. Two Flags are equal when their bit
// patterns are equal; there is no ordering between them.
type Flags[E Flag] struct {
	raw E
}

// New returns the union of the given flags. Duplicates and order have
// no effect.
func New[E Flag](flags ...E) Flags[E] {
	return Flags[E]{raw: union(flags)}
}

// Of returns a set holding exactly the bits of flag.
func Of[E Flag](flag E) Flags[E] {
	return Flags[E]{raw: flag}
}

// FromRaw returns a set with the given bit pattern. The pattern is not
// checked against any declared flags.
func FromRaw[E Flag](raw E) Flags[E] {
	return Flags[E]{raw: raw}
}

func union[E Flag](flags []E) E {
	var raw E
	for _, flag := range flags {
		raw |= flag
	}
	return raw
}

// Raw returns the bit pattern of f.
func (f Flags[E]) Raw() E { return f.raw }

// Uint64 returns the bit pattern of f widened to uint64.
func (f Flags[E]) Uint64() uint64 { return uint64(f.raw) }

// Clear removes all flags from f.
func (f *Flags[E]) Clear() *Flags[E] {
	f.raw = 0
	return f
}

// Add sets the given flags in f. Flags that are already set stay set.
func (f *Flags[E]) Add(flags ...E) *Flags[E] {
	f.raw |= union(flags)
	return f
}

// AddSet sets every flag of o in f.
func (f *Flags[E]) AddSet(o Flags[E]) *Flags[E] {
	f.raw |= o.raw
	return f
}

// Remove clears the given flags in f. Flags that are not set are
// ignored.
func (f *Flags[E]) Remove(flags ...E) *Flags[E] {
	f.raw &^= union(flags)
	return f
}

// RemoveSet clears every flag of o in f.
func (f *Flags[E]) RemoveSet(o Flags[E]) *Flags[E] {
	f.raw &^= o.raw
	return f
}

// Set adds flag when on is true and removes it otherwise.
func (f *Flags[E]) Set(flag E, on bool) *Flags[E] {
	if on {
		return f.Add(flag)
	}
	return f.Remove(flag)
}

// Toggle inverts the given flags in f.
func (f *Flags[E]) Toggle(flags ...E) *Flags[E] {
	f.raw ^= union(flags)
	return f
}

// Reset replaces the contents of f with the given flags. Unlike Add,
// flags previously held by f are dropped.
func (f *Flags[E]) Reset(flags ...E) *Flags[E] {
	f.raw = union(flags)
	return f
}

// Assign replaces the contents of f with o.
func (f *Flags[E]) Assign(o Flags[E]) *Flags[E] {
	f.raw = o.raw
	return f
}

// Swap exchanges the contents of f and o.
func (f *Flags[E]) Swap(o *Flags[E]) {
	f.raw, o.raw = o.raw, f.raw
}

// Swap exchanges the contents of a and b.
func Swap[E Flag](a, b *Flags[E]) {
	a.Swap(b)
}

// Has reports whether all bits of flag are set in f.
func (f Flags[E]) Has(flag E) bool {
	return f.raw&flag == flag
}

// HasAll reports whether every given flag is set in f. It is true when
// no flags are given.
func (f Flags[E]) HasAll(flags ...E) bool {
	return f.Contains(Flags[E]{raw: union(flags)})
}

// HasAny reports whether at least one of the given flags is set in f.
// It is false when no flags are given; use [Flags.Any] to test f on its
// own.
func (f Flags[E]) HasAny(flags ...E) bool {
	return f.Overlaps(Flags[E]{raw: union(flags)})
}

// Contains reports whether every flag of o is also set in f.
func (f Flags[E]) Contains(o Flags[E]) bool {
	return f.raw&o.raw == o.raw
}

// Overlaps reports whether f and o have at least one flag in common.
func (f Flags[E]) Overlaps(o Flags[E]) bool {
	return f.raw&o.raw != 0
}

// Any reports whether any flag is set in f.
func (f Flags[E]) Any() bool { return f.raw != 0 }

// IsEmpty reports whether no flag is set in f.
func (f Flags[E]) IsEmpty() bool { return f.raw == 0 }

// Len returns the number of bits set in f.
func (f Flags[E]) Len() int {
	return bits.OnesCount64(uint64(f.raw))
}

// With returns f with the given flags added. f is not modified.
func (f Flags[E]) With(flags ...E) Flags[E] {
	return Flags[E]{raw: f.raw | union(flags)}
}

// Without returns f with the given flags removed. f is not modified.
func (f Flags[E]) Without(flags ...E) Flags[E] {
	return Flags[E]{raw: f.raw &^ union(flags)}
}

// Union returns the flags set in either f or o.
func (f Flags[E]) Union(o Flags[E]) Flags[E] {
	return Flags[E]{raw: f.raw | o.raw}
}

// Intersect returns the flags set in both f and o.
func (f Flags[E]) Intersect(o Flags[E]) Flags[E] {
	return Flags[E]{raw: f.raw & o.raw}
}

// Equal reports whether f and o hold the same flags.
func (f Flags[E]) Equal(o Flags[E]) bool { return f.raw == o.raw }
