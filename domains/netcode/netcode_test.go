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

package netcode

import (
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/ebridge"
)

func TestTable_RoundTrip(t *testing.T) {
	if Domain.Table().Len() != 46 {
		t.Fatalf("table size = %d, want 46", Domain.Table().Len())
	}
	for _, c := range Domain.Table().Values() {
		f := c.Foreign()
		got, ok := From(f)
		if !ok || got != c {
			t.Fatalf("From(%+v) = %v, %v; want %v", f, got, ok, c)
		}
		if ebridge.ToForeign(got) != f {
			t.Fatalf("ToForeign(%v) != %+v", got, f)
		}
	}
}

func TestUnknownCodesCollapse(t *testing.T) {
	got, ok := From(ebridge.Foreign{Domain: ID, Code: -4242})
	if !ok || got != Unknown {
		t.Fatalf("From(-4242) = %v, %v; want Unknown", got, ok)
	}
	if _, ok := From(ebridge.Foreign{Domain: "application", Code: -1001}); ok {
		t.Fatal("other domains must not bridge")
	}
}

func TestClasses(t *testing.T) {
	tests := []struct {
		c    Code
		pred func(Code) bool
		want bool
	}{
		{ServerCertificateUntrusted, Code.IsTLSError, true},
		{TimedOut, Code.IsTLSError, false},
		{TimedOut, Code.IsTransportError, true},
		{RequestBodyStreamExhausted, Code.IsTransportError, true},
		{FileIsDirectory, Code.IsFileError, true},
		{CannotMoveFile, Code.IsDownloadError, true},
		{BackgroundSessionWasDisconnected, Code.IsBackgroundSessionError, true},
		{Cancelled, Code.IsBackgroundSessionError, false},
	}
	for _, tt := range tests {
		if got := tt.pred(tt.c); got != tt.want {
			t.Fatalf("%v: got %v, want %v", tt.c, got, tt.want)
		}
	}
	if ov := Domain.Classifier().Overlaps(); len(ov) != 0 {
		t.Fatalf("ranges overlap: %+v", ov)
	}
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("fetch: %w", ebridge.Foreign{Domain: ID, Code: -1001})
	got, ok := As(err)
	if !ok || got != TimedOut {
		t.Fatalf("As = %v, %v", got, ok)
	}
	if !errors.Is(err, TimedOut) {
		t.Fatal("errors.Is must match TimedOut")
	}
}

func TestStrings(t *testing.T) {
	if TimedOut.String() != "TimedOut" {
		t.Fatalf("String() = %q", TimedOut.String())
	}
	if got := TimedOut.Error(); got != "network: TimedOut (-1001)" {
		t.Fatalf("Error() = %q", got)
	}
	if got := Code(-5).String(); got != "network: code -5" {
		t.Fatalf("String() = %q", got)
	}
}
