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
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"sync"
)

// RecordWriter defines the interface for writing normalized records.
// This abstraction allows for different output formats to be implemented
// without changing command logic.
type RecordWriter interface {
	// Write writes a single record to the output.
	// The record is immediately flushed to avoid memory accumulation.
	Write(record any) error

	// Close closes the underlying writer and releases any resources.
	Close() error
}

// Writer streams NDJSON records to an io.Writer or file.
type Writer struct {
	mu        sync.Mutex
	encoder   *json.Encoder
	count     int
	closeFunc func() error
}

// NewWriter creates a writer that streams NDJSON to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		encoder: json.NewEncoder(w),
	}
}

// NewFileWriter creates a writer that streams NDJSON to a file. The caller
// must call Close when done.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		encoder:   json.NewEncoder(file),
		closeFunc: file.Close,
	}, nil
}

// Write writes a single record as one NDJSON line.
func (w *Writer) Write(record any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it's a file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}

// Drain writes every record of a paginated sequence to w, stopping at the
// first sequence or write error. It returns the number of records written.
func Drain[T any](w RecordWriter, seq iter.Seq2[T, error]) (int, error) {
	written := 0
	for record, err := range seq {
		if err != nil {
			return written, err
		}
		if err := w.Write(record); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
