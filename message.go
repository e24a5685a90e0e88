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

// messageError is the concrete type behind Message: a plain text payload
// promoted to an error. It has no cause, so a Message-built chain always
// has length one.
type messageError struct {
	text string
}

// Error returns the payload text verbatim.
func (m messageError) Error() string {
	return m.text
}
