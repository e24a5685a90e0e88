/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package exn

import "reflect"

// Is reports whether E is exactly the concrete type wrapped by e.
//
// Identity is structural on type, not on value: two handles wrapping
// different values of the same concrete type both match, and two distinct
// concrete types never do. Interface types never match — the wrapped type
// is always concrete. For chain-aware matching use errors.Is / errors.As
// through the handle's Unwrap instead.
func Is[E error](e Error) bool {
	return e.rec != nil && e.rec.typ == reflect.TypeFor[E]()
}

// DowncastRef returns a pointer to the wrapped concrete value if its type
// is exactly E, or (nil, false) otherwise.
//
// The pointer aims into the handle's own storage: reads see the current
// value and writes through it are visible to every later operation on the
// handle. Ownership does not move — the pointer is a borrow and must not
// outlive the handle.
func DowncastRef[E error](e Error) (*E, bool) {
	if !Is[E](e) {
		return nil, false
	}
	return e.rec.box.Interface().(*E), true
}

// Downcast attempts to move the wrapped concrete value out of the handle.
//
// On a type match it consumes the handle: the value is extracted, the
// record gives up ownership (a later Close on a stale copy of the handle is
// a no-op), and the zero Error is returned in the handle slot. On a
// mismatch the value and ownership stay put and the original handle is
// handed back unchanged — usable exactly as before.
//
// Exactly one of the two returns is live: the extracted value when ok is
// true, the handle when ok is false. Never both, never neither.
func Downcast[E error](e Error) (E, Error, bool) {
	ref, ok := DowncastRef[E](e)
	if !ok {
		var zero E
		return zero, e, false
	}
	v := *ref
	e.rec.released = true
	return v, Error{}, true
}
