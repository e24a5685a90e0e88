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

// Package backtrace captures and renders call stacks for exn errors.
//
// A Backtrace is a snapshot of program counters taken at a single point,
// usually the point where an error was wrapped into an exn.Error. Whether a
// snapshot is actually recorded is controlled by one process-wide toggle,
// the EXN_BACKTRACE environment variable:
//
//   - unset or "0"  -> capture is disabled, New returns a Disabled sentinel;
//   - anything else -> capture is active, New records the current stack.
//
// Even when capture is disabled a *Backtrace object* still exists — only its
// Status differs. This lets callers treat "is there a trace?" as a status
// question rather than a nil check.
//
// Error types that carry their own trace can advertise it by implementing
// Provider; consumers (such as exn.Error) will then use that trace instead
// of capturing a second one.
package backtrace
