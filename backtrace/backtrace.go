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

package backtrace

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// EnvVar is the process-wide toggle read by New. When it is unset or "0",
// New returns the Disabled sentinel instead of recording a stack.
//
// The variable is read on every call, not cached, so tests can flip it
// with t.Setenv.
const EnvVar = "EXN_BACKTRACE"

// DisabledMessage is the fixed explanatory line that renderers should print
// in place of a trace body when the status is Disabled. It names the toggle
// so the reader knows how to get a real trace next time.
const DisabledMessage = "backtrace disabled; run with " + EnvVar + "=1 environment variable to display a backtrace"

// maxDepth bounds how many program counters a single capture records.
// 64 frames is deep enough for realistic call stacks; anything beyond that
// is almost always runaway recursion, which a trace cannot help with anyway.
const maxDepth = 64

// Backtrace is an immutable snapshot of the call stack at one point in the
// program, together with a Status describing whether a body exists.
//
// A Backtrace is created once (by Capture or New) and never modified, so a
// single instance may be shared and read concurrently without coordination.
type Backtrace struct {
	// status records why pcs is or is not populated. See the Status
	// constants for the recognized states.
	status Status

	// pcs holds the raw program counters of the captured stack, innermost
	// frame first. Empty unless status == Captured.
	pcs []uintptr
}

// None is the trace of values that cannot produce one: its status is
// Unsupported and it has no body. Provider implementations on platforms
// without stack access should return None rather than nil, so the "was a
// trace expected at all?" question stays answerable.
var None = &Backtrace{status: Unsupported}

// Enabled reports whether the EXN_BACKTRACE toggle currently allows capture.
func Enabled() bool {
	v := os.Getenv(EnvVar)
	return v != "" && v != "0"
}

// New returns the backtrace for the current call site, honoring the
// EXN_BACKTRACE toggle: a Captured snapshot when the toggle is on, the
// Disabled sentinel otherwise.
//
// skip is the number of additional stack frames to omit, on top of New
// itself; skip == 0 starts the trace at New's caller.
func New(skip int) *Backtrace {
	if !Enabled() {
		return &Backtrace{status: Disabled}
	}
	return Capture(skip + 1)
}

// Capture unconditionally records the current call stack, ignoring the
// EXN_BACKTRACE toggle. Use this when the decision to trace has already
// been made elsewhere (for example by a Provider implementation).
//
// skip is the number of additional stack frames to omit, on top of Capture
// itself; skip == 0 starts the trace at Capture's caller.
func Capture(skip int) *Backtrace {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2+skip, pcs)
	return &Backtrace{status: Captured, pcs: pcs[:n]}
}

// Status returns the state of this backtrace. A nil receiver reports
// Unsupported, so callers holding an optional trace can query the status
// without a nil check.
func (b *Backtrace) Status() Status {
	if b == nil {
		return Unsupported
	}
	return b.status
}

// Frames resolves the captured program counters into rendered frames, one
// string per frame in "function\n\tfile:line" form, innermost first.
//
// It returns nil unless the status is Captured. Resolution happens on every
// call; the snapshot itself stores only program counters.
func (b *Backtrace) Frames() []string {
	if b.Status() != Captured || len(b.pcs) == 0 {
		return nil
	}
	out := make([]string, 0, len(b.pcs))
	frames := runtime.CallersFrames(b.pcs)
	for {
		frame, more := frames.Next()
		out = append(out, fmt.Sprintf("%s\n\t%s:%d", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return out
}

// String renders the full trace body, frames joined by newlines. It returns
// the empty string when there is no body (Disabled, Unsupported, or nil).
func (b *Backtrace) String() string {
	return strings.Join(b.Frames(), "\n")
}

// Provider is implemented by error values that carry their own backtrace.
//
// When a value handed to exn.New implements Provider and returns a non-nil
// trace, exn does not capture a second one — the value's own trace is the
// one reported from then on. Implementations MUST be deterministic: once
// a non-nil trace has been returned, later calls must keep returning one.
type Provider interface {
	// Backtrace returns the trace associated with this value, or nil if
	// the value does not actually have one.
	Backtrace() *Backtrace
}
