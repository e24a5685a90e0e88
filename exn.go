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

import (
	"io"
	"reflect"

	"dirpx.dev/exn/backtrace"
)

// Error is the canonical type-erased error container for dirpx.
//
// It wraps any concrete error value behind a handle that:
//
//   - is exactly one pointer word wide, regardless of the wrapped type;
//   - always has a backtrace: the value's own if it provides one
//     (see backtrace.Provider), otherwise one taken at the wrap point;
//   - exposes the cause chain of nested errors (see Chain);
//   - can give the concrete value back out later, by exact runtime type,
//     without the holder knowing the type up front (see Downcast).
//
// An Error has exactly one owner at a time. Read-only operations (Error,
// Format, Backtrace, Chain, Is, DowncastRef) may be called repeatedly, and
// different Error values may be used from different goroutines without
// coordination; a single Error is never mutated concurrently.
//
// The zero Error is a valid empty handle: it renders as "<nil>", walks as
// an empty chain, and matches no type.
type Error struct {
	rec *record
}

// record is the single heap allocation behind an Error.
//
// typ and box are paired at construction and never change: typ is the
// dynamic type of the value stored in box. Everything that re-derives the
// value's behavior goes through that pairing.
type record struct {
	// typ is the identity token of the wrapped concrete type, compared by
	// Is / Downcast. Identity is structural on type, never on value.
	typ reflect.Type

	// box points at the addressable storage of the concrete value
	// (a reflect pointer of type *typ). Keeping the storage addressable is
	// what lets DowncastRef hand out a real pointer into the record, so
	// mutations through it are visible to every later read.
	box reflect.Value

	// bt is the backtrace captured at construction, or nil when the value
	// supplies its own through backtrace.Provider.
	bt *backtrace.Backtrace

	// released flips when ownership of the value has left the record,
	// either through Close or a successful by-value Downcast. It
	// guarantees the value's Close side effect runs at most once.
	released bool
}

// value re-derives the stored concrete value as an error.
//
// Reading through the box (instead of caching an interface at construction)
// keeps the view coherent with mutations made via DowncastRef.
func (r *record) value() error {
	return r.box.Elem().Interface().(error)
}

// New wraps any concrete error value into an Error.
//
// Wrapping is total and infallible: every non-nil error produces a handle.
// Passing a nil error is a programmer bug and panics.
//
// If the value does not carry its own backtrace (via backtrace.Provider),
// one is associated here, at the exact wrap point — a captured snapshot
// when the EXN_BACKTRACE toggle is on, the disabled sentinel otherwise.
// Either way the resulting Error is guaranteed to have a backtrace.
func New(err error, opts ...Option) Error {
	if err == nil {
		panic("exn: New called with nil error")
	}
	return construct(err, opts)
}

// Message wraps an ad hoc, message-only payload into an Error.
//
// The payload is treated as an error with no further cause; its single-line
// rendering is exactly the given text. This is the entry point that
// format-string convenience layers build on.
func Message(text string, opts ...Option) Error {
	return construct(messageError{text: text}, opts)
}

// construct erases err into a fresh record and returns the owning handle.
//
// The wrap-site backtrace is skipped past construct and its exported
// caller, so captured traces start at the user's call site.
func construct(err error, opts []Option) Error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	typ := reflect.TypeOf(err)
	box := reflect.New(typ)
	box.Elem().Set(reflect.ValueOf(err))

	bt := o.bt
	if bt == nil && providedBacktrace(err) == nil {
		bt = backtrace.New(2 + o.skip)
	}

	return Error{rec: &record{typ: typ, box: box, bt: bt}}
}

// providedBacktrace returns the value's own trace, or nil if the value does
// not implement backtrace.Provider or implements it but has no trace.
func providedBacktrace(err error) *backtrace.Backtrace {
	if p, ok := err.(backtrace.Provider); ok {
		return p.Backtrace()
	}
	return nil
}

// Error implements the built-in error interface.
//
// The rendering is exactly the wrapped root error's own single-line string,
// with no added framing. The zero handle renders as "<nil>".
func (e Error) Error() string {
	if e.rec == nil {
		return "<nil>"
	}
	return e.rec.value().Error()
}

// Unwrap returns the wrapped root error, enabling errors.Is / errors.As
// to see through the handle into the original chain.
func (e Error) Unwrap() error {
	if e.rec == nil {
		return nil
	}
	return e.rec.value()
}

// Backtrace returns the backtrace associated with this error: the one taken
// at the wrap point if one was taken, otherwise the one the wrapped value
// itself supplies.
//
// Every constructed Error is guaranteed to have exactly one of the two, so
// if both are missing the handle's invariants have been broken and this
// panics — that signals a bug in exn itself, not a recoverable condition.
// The zero handle, which was never constructed, reports an Unsupported
// sentinel instead.
func (e Error) Backtrace() *backtrace.Backtrace {
	if e.rec == nil {
		return nil // Status() on a nil Backtrace reports Unsupported.
	}
	if e.rec.bt != nil {
		return e.rec.bt
	}
	if bt := providedBacktrace(e.rec.value()); bt != nil {
		return bt
	}
	panic("exn: backtrace missing from both sources; construction invariant broken")
}

// Close releases the wrapped value's external resources, exactly once.
//
// If the concrete value implements io.Closer, its Close runs on the first
// call and its result is returned; later calls are no-ops. After a
// successful by-value Downcast the record no longer owns the value, so
// Close is a no-op there too — the extracted value carries the
// responsibility from then on. Values that are not Closers make Close a
// trivial no-op.
func (e Error) Close() error {
	if e.rec == nil || e.rec.released {
		return nil
	}
	e.rec.released = true
	if c, ok := e.rec.value().(io.Closer); ok {
		return c.Close()
	}
	return nil
}
