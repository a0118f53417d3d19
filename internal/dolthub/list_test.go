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
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	dperrors "github.com/doltpr/doltpr/internal/errors"
)

// pullListPage renders one PullsForRepo page with the given ids and next
// token. An empty token renders as an absent nextPageToken field.
func pullListPage(token string, ids ...int) string {
	list := ""
	for i, id := range ids {
		if i > 0 {
			list += ","
		}
		list += fmt.Sprintf(`{"_id":"p%d","createdAt":1700000000000,"ownerName":"alice","repoName":"menus","pullId":"%d","creatorName":"bob","description":"m","state":"Open","title":"t%d"}`, id, id, id)
	}
	if token == "" {
		return fmt.Sprintf(`{"data":{"pulls":{"list":[%s]}}}`, list)
	}
	return fmt.Sprintf(`{"data":{"pulls":{"list":[%s],"nextPageToken":%q}}}`, list, token)
}

// pagedListClient serves pages keyed by the pageToken variable of each
// request. The empty key is the first page.
func pagedListClient(t *testing.T, pages map[string]string, ops *[]Operation) *GraphQLClient {
	t.Helper()

	return newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		op := decodeOperation(t, r)
		*ops = append(*ops, op)
		cursor, _ := op.Variables["pageToken"].(string)
		body, ok := pages[cursor]
		if !ok {
			t.Errorf("unexpected page token %q", cursor)
			w.Write([]byte(`{"data":{"pulls":{"list":[]}}}`))
			return
		}
		w.Write([]byte(body))
	})
}

func TestListPulls_DrainsAllPagesInOrder(t *testing.T) {
	var ops []Operation
	client := pagedListClient(t, map[string]string{
		"":   pullListPage("t2", 1, 2),
		"t2": pullListPage("t3", 3, 4),
		"t3": pullListPage("", 5),
	}, &ops)

	var ids []int
	for pull, err := range client.ListPulls(context.Background(), "alice", "menus", ListOptions{}) {
		if err != nil {
			t.Fatalf("iteration error: %v", err)
		}
		ids = append(ids, pull.ID)
	}

	want := []int{1, 2, 3, 4, 5}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}

	if len(ops) != 3 {
		t.Fatalf("requests = %d, want 3", len(ops))
	}
	// The first request carries no pageToken variable at all.
	if _, present := ops[0].Variables["pageToken"]; present {
		t.Errorf("first request carries pageToken %v", ops[0].Variables["pageToken"])
	}
	if ops[1].Variables["pageToken"] != "t2" || ops[2].Variables["pageToken"] != "t3" {
		t.Errorf("cursor chain = %v, %v", ops[1].Variables["pageToken"], ops[2].Variables["pageToken"])
	}
}

func TestListPulls_WhitespaceTokenTerminates(t *testing.T) {
	var ops []Operation
	client := pagedListClient(t, map[string]string{
		"": pullListPage("  \n", 1),
	}, &ops)

	count := 0
	for _, err := range client.ListPulls(context.Background(), "alice", "menus", ListOptions{}) {
		if err != nil {
			t.Fatalf("iteration error: %v", err)
		}
		count++
	}

	if count != 1 {
		t.Errorf("items = %d, want 1", count)
	}
	if len(ops) != 1 {
		t.Errorf("requests = %d, want 1 (whitespace-only token ends the walk)", len(ops))
	}
}

func TestListPulls_StartTokenBound(t *testing.T) {
	var ops []Operation
	client := pagedListClient(t, map[string]string{
		"resume-here": pullListPage("", 8),
	}, &ops)

	for _, err := range client.ListPulls(context.Background(), "alice", "menus", ListOptions{PageToken: "resume-here"}) {
		if err != nil {
			t.Fatalf("iteration error: %v", err)
		}
	}

	if len(ops) != 1 {
		t.Fatalf("requests = %d, want 1", len(ops))
	}
	if ops[0].Variables["pageToken"] != "resume-here" {
		t.Errorf("pageToken = %v, want resume-here", ops[0].Variables["pageToken"])
	}
}

func TestListPulls_EarlyBreakStopsFetching(t *testing.T) {
	var ops []Operation
	client := pagedListClient(t, map[string]string{
		"":   pullListPage("t2", 1, 2),
		"t2": pullListPage("", 3),
	}, &ops)

	for pull, err := range client.ListPulls(context.Background(), "alice", "menus", ListOptions{}) {
		if err != nil {
			t.Fatalf("iteration error: %v", err)
		}
		if pull.ID == 1 {
			break
		}
	}

	if len(ops) != 1 {
		t.Errorf("requests = %d, want 1 (lazy sequence must not fetch past a break)", len(ops))
	}
}

func TestListPulls_NormalizesSummaries(t *testing.T) {
	var ops []Operation
	client := pagedListClient(t, map[string]string{
		"": pullListPage("", 3),
	}, &ops)

	for pull, err := range client.ListPulls(context.Background(), "alice", "menus", ListOptions{}) {
		if err != nil {
			t.Fatalf("iteration error: %v", err)
		}
		if pull.ID != 3 || pull.Owner != "alice" || pull.Repo != "menus" || pull.State != StateOpen {
			t.Errorf("summary = %+v", pull)
		}
		if pull.CreatedAtUnix != 1700000000000 {
			t.Errorf("CreatedAtUnix = %d", pull.CreatedAtUnix)
		}
		if pull.CreatedAt.UnixMilli() != 1700000000000 {
			t.Errorf("CreatedAt = %v", pull.CreatedAt)
		}
	}
}

func TestListPulls_TransportErrorStopsSequence(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"data":null}`))
	})

	var got error
	for _, err := range client.ListPulls(context.Background(), "alice", "menus", ListOptions{}) {
		got = err
	}

	if !errors.Is(got, dperrors.ErrUnexpectedStatus) {
		t.Fatalf("error = %v, want ErrUnexpectedStatus", got)
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
}
