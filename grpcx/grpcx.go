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

// Package grpcx turns exn errors into gRPC status errors that carry the
// cause chain and backtrace as google.rpc.DebugInfo details.
package grpcx

import (
	"context"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/exn"
	"dirpx.dev/exn/backtrace"
)

// ToStatus converts an exn.Error into a gRPC status with the given code.
//
// The status message is the error's single-line display. A DebugInfo detail
// is attached carrying the full cause chain (as Detail, segments joined
// with ": ") and, when a trace was captured, the rendered stack entries.
//
// codes.OK is not a valid code for an error status; it is coerced to
// codes.Internal, matching the platform's "unknown means internal" policy.
func ToStatus(e exn.Error, c gcodes.Code) *gstatus.Status {
	if c == gcodes.OK {
		c = gcodes.Internal
	}
	base := gstatus.New(c, e.Error())

	info := &errdetails.DebugInfo{Detail: chainDetail(e)}
	if bt := e.Backtrace(); bt.Status() == backtrace.Captured {
		info.StackEntries = bt.Frames()
	}

	// Try to attach the detail. If it fails — return base.
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

// ExtractDebugInfo pulls the DebugInfo detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractDebugInfo(err error) (*errdetails.DebugInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.DebugInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// exn.Error values returned by handlers into gRPC status errors with
// DebugInfo details, using the given code for every mapped error.
//
// Errors of any other type pass through unchanged.
func UnaryServerInterceptor(c gcodes.Code) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		xe, ok := err.(exn.Error)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, ToStatus(xe, c).Err()
	}
}

// chainDetail renders the full cause chain as one line, root first.
func chainDetail(e exn.Error) string {
	var parts []string
	chain := e.Chain()
	for {
		err, ok := chain.Next()
		if !ok {
			break
		}
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, ": ")
}
