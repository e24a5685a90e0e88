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

import "dirpx.dev/exn/backtrace"

// Option is a functional option for constructing an Error.
// Options only influence construction; they never change a handle after
// the fact.
type Option func(*options)

// options collects the construction knobs before the record is built.
type options struct {
	skip int
	bt   *backtrace.Backtrace
}

// WithSkipOption omits n additional stack frames from the backtrace taken
// at the wrap point. Intended for helper functions that wrap on behalf of
// their caller and want the trace to start there, not inside the helper.
func WithSkipOption(n int) Option {
	return func(o *options) {
		o.skip += n
	}
}

// WithBacktraceOption associates a pre-captured backtrace with the new
// Error instead of taking one at the wrap point. Useful when the
// interesting point was earlier than the wrap, e.g. where a deferred
// handler finally converts a failure.
func WithBacktraceOption(bt *backtrace.Backtrace) Option {
	return func(o *options) {
		o.bt = bt
	}
}
