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

import "golang.org/x/exp/constraints"

// Flag is satisfied by the types that may serve as flags. The type
// should be a defined type, such as
//
//	type Opt uint32
//
// rather than a bare uint32, so values of unrelated flag sets stay
// distinct. Signed types are rejected.
type Flag interface {
	constraints.Unsigned
}

// CreateFlag returns the single-bit value 1<<shift.
//
// It is the runtime counterpart of the 1 << iota constant pattern, for
// flag values that are computed rather than declared. A shift at or
// beyond the bit-width of E yields 0. CreateFlag does not detect two
// flags created with the same shift.
func CreateFlag[E Flag](shift uint) E {
	return E(1) << shift
}
