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

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestWriter_WritesNDJSONLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	records := []record{{1, "soup"}, {2, "stew"}}
	for _, r := range records {
		if err := w.Write(r); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	if w.Count() != 2 {
		t.Errorf("Count = %d, want 2", w.Count())
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for i, line := range lines {
		var got record
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if got != records[i] {
			t.Errorf("line %d = %+v, want %+v", i, got, records[i])
		}
	}
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")

	w, err := NewFileWriter(path)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	if err := w.Write(record{1, "soup"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `"name":"soup"`) {
		t.Errorf("output = %q", data)
	}
}

func seqOf(records []record, failAfter int, failErr error) iter.Seq2[record, error] {
	return func(yield func(record, error) bool) {
		for i, r := range records {
			if failErr != nil && i == failAfter {
				yield(record{}, failErr)
				return
			}
			if !yield(r, nil) {
				return
			}
		}
	}
}

func TestDrain(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	n, err := Drain(w, seqOf([]record{{1, "a"}, {2, "b"}, {3, "c"}}, 0, nil))
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if n != 3 || w.Count() != 3 {
		t.Errorf("written = %d, count = %d, want 3", n, w.Count())
	}
}

func TestDrain_StopsAtSequenceError(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	boom := errors.New("page fetch failed")
	n, err := Drain(w, seqOf([]record{{1, "a"}, {2, "b"}, {3, "c"}}, 2, boom))
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if n != 2 {
		t.Errorf("written = %d, want 2 (records before the failure)", n)
	}
}
