// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"testing"

	dperrors "github.com/doltpr/doltpr/internal/errors"
)

func TestParseRepository(t *testing.T) {
	tests := []struct {
		input     string
		wantOwner string
		wantRepo  string
		wantError bool
	}{
		{input: "alice/menus", wantOwner: "alice", wantRepo: "menus"},
		{input: " alice / menus ", wantOwner: "alice", wantRepo: "menus"},
		{input: "alice", wantError: true},
		{input: "alice/menus/extra", wantError: true},
		{input: "/menus", wantError: true},
		{input: "alice/", wantError: true},
		{input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			owner, repo, err := parseRepository(tt.input)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRepository(%q): %v", tt.input, err)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("parseRepository(%q) = %q/%q, want %q/%q", tt.input, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestParsePullID(t *testing.T) {
	tests := []struct {
		input     string
		want      int
		wantError bool
	}{
		{input: "42", want: 42},
		{input: " 42 ", want: 42},
		{input: "0", want: 0},
		{input: "-1", wantError: true},
		{input: "forty-two", wantError: true},
		{input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := parsePullID(tt.input)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePullID(%q): %v", tt.input, err)
			}
			if id != tt.want {
				t.Errorf("parsePullID(%q) = %d, want %d", tt.input, id, tt.want)
			}
		})
	}
}

func TestResolveToken(t *testing.T) {
	t.Setenv("DOLTHUB_TOKEN", "from-env")

	if got := resolveToken("from-flag"); got != "from-flag" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := resolveToken(""); got != "from-env" {
		t.Errorf("env fallback, got %q", got)
	}

	t.Setenv("DOLTHUB_TOKEN", "")
	if got := resolveToken(""); got != "" {
		t.Errorf("no source, got %q", got)
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "no credential", err: dperrors.ErrNoCredential, want: 2},
		{name: "at least one field", err: fmt.Errorf("update: %w", dperrors.ErrAtLeastOneField), want: 2},
		{name: "table required", err: dperrors.ErrTableRequired, want: 2},
		{name: "service unavailable", err: fmt.Errorf("call: %w", dperrors.ErrServiceUnavailable), want: 3},
		{name: "malformed response", err: dperrors.ErrMalformedResponse, want: 3},
		{name: "unexpected status", err: dperrors.ErrUnexpectedStatus, want: 3},
		{name: "api error", err: dperrors.ErrAPIResponse, want: 1},
		{name: "generic", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToExitCode(tt.err); got != tt.want {
				t.Errorf("exit code = %d, want %d", got, tt.want)
			}
		})
	}
}
