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
	"fmt"
	"io"
	"strings"

	"dirpx.dev/exn/backtrace"
)

// Format implements fmt.Formatter.
//
//	%v, %s   single-line display, identical to Error()
//	%+v      multi-line diagnostic dump: root display, then the numbered
//	         cause chain (omitted when the root has no cause), then the
//	         backtrace body — or backtrace.DisabledMessage when capture
//	         was disabled, or nothing when no trace was ever expected.
func (e Error) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		_, _ = io.WriteString(f, e.debug())
		return
	}
	_, _ = io.WriteString(f, e.Error())
}

// debug builds the multi-line diagnostic rendering. The exact layout is a
// contract (goldens depend on it):
//
//	<root display>
//
//	caused by:
//		0: <second display>
//		1: <third display>
//
//	<trace body or disabled line>
func (e Error) debug() string {
	if e.rec == nil {
		return "<nil>\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.rec.value().Error())

	chain := e.Chain()
	chain.Next() // the root is already printed above
	if cause, ok := chain.Next(); ok {
		b.WriteString("\ncaused by:\n")
		fmt.Fprintf(&b, "\t%d: %s\n", 0, cause.Error())
		for n := 1; ; n++ {
			cause, ok = chain.Next()
			if !ok {
				break
			}
			fmt.Fprintf(&b, "\t%d: %s\n", n, cause.Error())
		}
	}

	bt := e.Backtrace()
	switch bt.Status() {
	case backtrace.Captured:
		fmt.Fprintf(&b, "\n%s\n", bt)
	case backtrace.Disabled:
		fmt.Fprintf(&b, "\n%s\n", backtrace.DisabledMessage)
	}

	return b.String()
}
