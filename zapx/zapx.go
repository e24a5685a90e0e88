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

// Package zapx projects exn errors into structured zap log fields.
package zapx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/exn"
	"dirpx.dev/exn/backtrace"
)

// Field returns a zap field carrying a structured view of the error under
// the key "error": the single-line message, the full cause chain, and the
// backtrace body (or its status, when no body exists).
func Field(e exn.Error) zap.Field {
	return zap.Object("error", objectMarshaler{e})
}

type objectMarshaler struct {
	err exn.Error
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (m objectMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", m.err.Error())
	if err := enc.AddArray("chain", arrayMarshaler{m.err}); err != nil {
		return err
	}

	bt := m.err.Backtrace()
	if bt.Status() == backtrace.Captured {
		enc.AddString("backtrace", bt.String())
	} else {
		enc.AddString("backtrace_status", bt.Status().String())
	}
	return nil
}

type arrayMarshaler struct {
	err exn.Error
}

// MarshalLogArray implements zapcore.ArrayMarshaler. It walks the cause
// chain root first; a fresh walk per encode keeps the field reusable.
func (m arrayMarshaler) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	chain := m.err.Chain()
	for {
		err, ok := chain.Next()
		if !ok {
			return nil
		}
		enc.AppendString(err.Error())
	}
}
