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
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Status describes why a Backtrace does or does not carry a trace body.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with the known states.
type Status string

// The recognized backtrace states.
//
//   - Captured    — a stack snapshot was recorded and can be rendered;
//   - Disabled    — capture was skipped because the EXN_BACKTRACE toggle
//     is off; the trace body is empty by choice, not by accident;
//   - Unsupported — no snapshot exists and none was expected (for example
//     a Provider on a platform without stack access, or the zero handle).
const (
	Captured    Status = "captured"
	Disabled    Status = "disabled"
	Unsupported Status = "unsupported"
)

var (
	// ErrStatusInvalid is returned when a value cannot be parsed or
	// validated as a backtrace status.
	ErrStatusInvalid = errors.New("exn: invalid backtrace status")
)

// Ensure Status implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger log or API structs.
var (
	_ encoding.TextMarshaler   = (*Status)(nil)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// ParseStatus takes a user-provided string, normalizes it and validates it
// against the known states. On success it returns a canonical Status value.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if err := ValidateStatus(st); err != nil {
		return "", err
	}
	return st, nil
}

// ValidateStatus checks whether the provided Status is one of the known
// states. The empty status ("") is considered invalid — a Backtrace always
// has a definite state.
func ValidateStatus(s Status) error {
	switch s {
	case Captured, Disabled, Unsupported:
		return nil
	}
	return ErrStatusInvalid
}

// String returns the canonical string representation of the status.
func (s Status) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (s Status) MarshalText() ([]byte, error) {
	if err := ValidateStatus(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
