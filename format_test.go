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
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/exn/backtrace"
)

var update = flag.Bool("update", false, "update golden files")

// TestDebug_Golden verifies the %+v diagnostic rendering is stable.
// Update golden with: go test . -run Debug_Golden -update
func TestDebug_Golden(t *testing.T) {
	t.Setenv(backtrace.EnvVar, "0")

	e := New(&opError{msg: "disk full", cause: errors.New("write failed")})
	got := fmt.Sprintf("%+v", e)

	goldenPath := filepath.Join("testdata", "debug.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenPath)
		return
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	want := string(wantBytes)

	// normalize trailing newlines to avoid EOF newline mismatches
	normalize := func(s string) string { return strings.TrimRight(s, "\r\n") }

	if normalize(want) != normalize(got) {
		t.Fatalf("%%+v output mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestDebug_NoCauseOmitsBlock(t *testing.T) {
	t.Setenv(backtrace.EnvVar, "0")

	got := fmt.Sprintf("%+v", Message("solo"))
	want := "solo\n\n" + backtrace.DisabledMessage + "\n"
	if got != want {
		t.Fatalf("single-error dump = %q, want %q", got, want)
	}
}

func TestDebug_CapturedIncludesTrace(t *testing.T) {
	t.Setenv(backtrace.EnvVar, "1")

	got := fmt.Sprintf("%+v", New(errors.New("boom")))
	if !strings.Contains(got, "TestDebug_CapturedIncludesTrace") {
		t.Fatalf("dump must include the captured trace body, got:\n%s", got)
	}
	if strings.Contains(got, backtrace.DisabledMessage) {
		t.Fatal("dump must not print the disabled line when a trace was captured")
	}
}

func TestDebug_UnsupportedPrintsNothing(t *testing.T) {
	t.Setenv(backtrace.EnvVar, "1")

	// A Provider whose trace is the Unsupported sentinel: the trace
	// section prints nothing at all.
	e := New(tracedError{bt: backtrace.None})
	got := fmt.Sprintf("%+v", e)
	if got != "traced\n" {
		t.Fatalf("dump = %q, want just the display line", got)
	}
}

func TestFormat_PlainVerbs(t *testing.T) {
	t.Setenv(backtrace.EnvVar, "0")

	e := New(errors.New("boom"))
	if got := fmt.Sprintf("%s", e); got != "boom" {
		t.Fatalf("%%s = %q, want %q", got, "boom")
	}
	if got := fmt.Sprintf("%v", e); got != "boom" {
		t.Fatalf("%%v = %q, want %q", got, "boom")
	}
}

func TestFormat_ZeroHandleDump(t *testing.T) {
	var e Error
	if got := fmt.Sprintf("%+v", e); got != "<nil>\n" {
		t.Fatalf("zero handle dump = %q", got)
	}
}
