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
	"strings"
	"testing"
)

func TestCapture_StartsAtCaller(t *testing.T) {
	bt := Capture(0)

	if bt.Status() != Captured {
		t.Fatalf("status = %v, want %v", bt.Status(), Captured)
	}
	frames := bt.Frames()
	if len(frames) == 0 {
		t.Fatal("captured trace must have frames")
	}
	if !strings.Contains(frames[0], "TestCapture_StartsAtCaller") {
		t.Fatalf("first frame = %q, want the capture call site", frames[0])
	}
	if !strings.Contains(frames[0], "\n\t") || !strings.Contains(frames[0], ".go:") {
		t.Fatalf("frame %q must render as function, then tab-indented file:line", frames[0])
	}
}

func TestCapture_IgnoresToggle(t *testing.T) {
	t.Setenv(EnvVar, "0")

	if st := Capture(0).Status(); st != Captured {
		t.Fatalf("Capture with toggle off: status = %v, want %v", st, Captured)
	}
}

func TestNew_HonorsToggle(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want Status
	}{
		{"unset", "", Disabled},
		{"zero", "0", Disabled},
		{"one", "1", Captured},
		{"full", "full", Captured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvVar, tt.env)
			bt := New(0)
			if bt.Status() != tt.want {
				t.Fatalf("Status() = %v, want %v", bt.Status(), tt.want)
			}
			if tt.want == Disabled {
				if bt.Frames() != nil || bt.String() != "" {
					t.Fatal("a disabled sentinel must have no body")
				}
			}
		})
	}
}

func TestNew_StartsAtCaller(t *testing.T) {
	t.Setenv(EnvVar, "1")

	bt := New(0)
	frames := bt.Frames()
	if len(frames) == 0 || !strings.Contains(frames[0], "TestNew_StartsAtCaller") {
		t.Fatalf("frames = %v, want to start at the New call site", frames)
	}
}

func TestEnabled(t *testing.T) {
	for env, want := range map[string]bool{"": false, "0": false, "1": true, "full": true} {
		t.Setenv(EnvVar, env)
		if got := Enabled(); got != want {
			t.Fatalf("Enabled() with %s=%q = %v, want %v", EnvVar, env, got, want)
		}
	}
}

func TestNilAndNoneSentinels(t *testing.T) {
	var b *Backtrace
	if b.Status() != Unsupported {
		t.Fatalf("nil Status() = %v, want %v", b.Status(), Unsupported)
	}
	if b.Frames() != nil || b.String() != "" {
		t.Fatal("nil trace must have no body")
	}

	if None.Status() != Unsupported {
		t.Fatalf("None.Status() = %v, want %v", None.Status(), Unsupported)
	}
	if None.String() != "" {
		t.Fatal("None must have no body")
	}
}

func TestDisabledMessage_NamesToggle(t *testing.T) {
	if !strings.Contains(DisabledMessage, EnvVar) {
		t.Fatalf("DisabledMessage %q must name the %s toggle", DisabledMessage, EnvVar)
	}
}
