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

// Chain walks the cause chain of an Error: the wrapped root error first,
// then whatever that error reports as its cause, and so on until an error
// reports none.
//
// A Chain is lazy, forward-only and single-use: once Next has returned
// false it keeps returning false. To walk again, start a fresh Chain — each
// call to Error.Chain restarts from the root. The walker borrows from the
// handle and must not be used after the handle has been consumed.
//
// Chains produced by legitimate error wrapping are acyclic. A value that
// reports itself (directly or indirectly) as its own cause will make the
// walk iterate forever; that is a bug in the value, and Chain does not
// guard against it.
type Chain struct {
	next error
}

// Chain returns a fresh walker positioned at the wrapped root error.
// The zero handle yields an empty chain.
func (e Error) Chain() *Chain {
	if e.rec == nil {
		return &Chain{}
	}
	return &Chain{next: e.rec.value()}
}

// Next returns the next error in the chain, or false when the chain is
// exhausted.
func (c *Chain) Next() (error, bool) {
	cur := c.next
	if cur == nil {
		return nil, false
	}
	c.next = cause(cur)
	return cur, true
}

// cause asks err for its direct cause, recognizing both the standard
// Unwrap contract (errors.Unwrap) and the legacy Cause contract used by
// pre-1.13 wrappers.
func cause(err error) error {
	switch t := err.(type) {
	case interface{ Unwrap() error }:
		return t.Unwrap()
	case interface{ Cause() error }:
		return t.Cause()
	}
	return nil
}
