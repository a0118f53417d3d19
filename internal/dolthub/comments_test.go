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
	"net/http"
	"testing"

	dperrors "github.com/doltpr/doltpr/internal/errors"
)

func TestCommentOnPull(t *testing.T) {
	var ops []Operation
	client := recordingClient(t, map[string]string{
		opCreateComment: `{"data":{"createPullComment":{"_id":"comments/abc"}}}`,
	}, &ops)

	id, err := client.CommentOnPull(context.Background(), "alice", "menus", 42, "please add dessert")
	if err != nil {
		t.Fatalf("CommentOnPull: %v", err)
	}
	if id != "comments/abc" {
		t.Errorf("comment id = %q", id)
	}

	vars := ops[0].Variables
	// The create mutation binds the pull id as parentId, not pullId.
	if vars["parentId"] != "42" {
		t.Errorf("parentId = %v, want \"42\"", vars["parentId"])
	}
	if vars["comment"] != "please add dessert" {
		t.Errorf("comment = %v", vars["comment"])
	}
}

func TestUpdateComment(t *testing.T) {
	var ops []Operation
	client := recordingClient(t, map[string]string{
		opUpdateComment: `{"data":{"updatePullComment":{"_id":"comments/abc"}}}`,
	}, &ops)

	if err := client.UpdateComment(context.Background(), "comments/abc", "revised"); err != nil {
		t.Fatalf("UpdateComment: %v", err)
	}

	vars := ops[0].Variables
	if vars["_id"] != "comments/abc" || vars["comment"] != "revised" {
		t.Errorf("variables = %v", vars)
	}
	// authorName is required by the schema but ignored upstream.
	if vars["authorName"] != updateCommentAuthorPlaceholder {
		t.Errorf("authorName = %v", vars["authorName"])
	}
}

func TestDeleteComment(t *testing.T) {
	var ops []Operation
	client := recordingClient(t, map[string]string{
		opDeleteComment: `{"data":{"deletePullComment":{"_id":"comments/abc"}}}`,
	}, &ops)

	if err := client.DeleteComment(context.Background(), "comments/abc"); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if ops[0].Variables["_id"] != "comments/abc" {
		t.Errorf("_id = %v", ops[0].Variables["_id"])
	}
}

func TestDeleteComment_APIErrorSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null,"errors":[{"message":"comment not found"}]}`))
	})

	err := client.DeleteComment(context.Background(), "comments/missing")
	if !errors.Is(err, dperrors.ErrAPIResponse) {
		t.Fatalf("error = %v, want ErrAPIResponse", err)
	}
}
