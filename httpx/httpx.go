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

// Package httpx renders exn errors as JSON HTTP responses.
package httpx

import (
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/exn"
	"dirpx.dev/exn/backtrace"
)

// Writer is a thin adapter that knows how to turn an exn.Error into an
// HTTP response body.
type Writer struct {
	// Status is the HTTP status code written with every error response.
	// Zero means http.StatusInternalServerError.
	Status int
}

// Write serializes the error and writes it to the response writer.
//
// The body is a JSON object with:
//
//	message          single-line display of the root error
//	causes           displays of the deeper chain entries, in cause order
//	                 (omitted when the root has no cause)
//	backtrace        rendered trace body, when one was captured
//	backtrace_status the status string, when no body exists
//
// No automatic redaction or filtering is performed here: whatever the error
// renders is exposed as-is, backtrace included. Higher-level handlers
// should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, e exn.Error) {
	fields := map[string]any{
		"message": e.Error(),
	}

	chain := e.Chain()
	chain.Next() // root is already in "message"
	var causes []any
	for {
		err, ok := chain.Next()
		if !ok {
			break
		}
		causes = append(causes, err.Error())
	}
	if len(causes) > 0 {
		fields["causes"] = causes
	}

	bt := e.Backtrace()
	if bt.Status() == backtrace.Captured {
		fields["backtrace"] = bt.String()
	} else {
		fields["backtrace_status"] = bt.Status().String()
	}

	status := w.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	// IMPORTANT: the body goes through structpb + protojson so that nested
	// structures serialize the same way here and on the gRPC side.
	body, err := structpb.NewStruct(fields)
	if err != nil {
		return
	}
	b, _ := protojson.Marshal(body)
	_, _ = rw.Write(b)
}
