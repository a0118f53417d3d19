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

package dolthub

import (
	"iter"
	"strings"
)

// fetchPage fetches one page for the given cursor and returns the page's
// items plus the cursor for the next page. An empty cursor means the
// first page.
type fetchPage[T any] func(cursor string) (items []T, next string, err error)

// paginate drains a cursor-based result set into a single lazy sequence.
// The cursor is loop-local: after each page it is rebound from the
// response's next token, and a missing or whitespace-only token ends the
// sequence. Items are yielded in page order, then in-page order. The
// sequence is forward-only and non-restartable; each page re-executes the
// underlying call. There is no upper bound on page count and no loop
// detection: an upstream that keeps returning cursors keeps the loop
// running.
func paginate[T any](start string, fetch fetchPage[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		cursor := start
		for {
			items, next, err := fetch(cursor)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
			if strings.TrimSpace(next) == "" {
				return
			}
			cursor = next
		}
	}
}
