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
	"strconv"
)

// updateCommentAuthorPlaceholder fills the mutation's required authorName
// variable. The upstream ignores the value; comments cannot be looked up
// directly to recover the real author without paginating the change log.
const updateCommentAuthorPlaceholder = "please-explain-authorName"

// CommentOnPull adds a comment to a pull request and returns the upstream
// summary id. The API does not check for duplicate comments; deduplication
// is the caller's responsibility.
func (c *GraphQLClient) CommentOnPull(ctx context.Context, owner, repo string, id int, message string) (string, error) {
	resp, err := c.Do(ctx, Operation{
		OperationName: opCreateComment,
		Variables: map[string]any{
			"ownerName": owner,
			"repoName":  repo,
			"parentId":  strconv.Itoa(id),
			"comment":   message,
		},
		Query: queryCreateComment,
	})
	if err != nil {
		return "", err
	}

	var data struct {
		CreatePullComment struct {
			ID string `json:"_id"`
		} `json:"createPullComment"`
	}
	if err := decodeData(resp, opCreateComment, &data); err != nil {
		return "", err
	}

	return data.CreatePullComment.ID, nil
}

// UpdateComment replaces the message of an existing comment, identified by
// the upstream comment id (as reported by ChangeLog entries).
func (c *GraphQLClient) UpdateComment(ctx context.Context, commentID, message string) error {
	_, err := c.Do(ctx, Operation{
		OperationName: opUpdateComment,
		Variables: map[string]any{
			"_id":        commentID,
			"authorName": updateCommentAuthorPlaceholder,
			"comment":    message,
		},
		Query: queryUpdateComment,
	})
	return err
}

// DeleteComment deletes a comment by its upstream id.
func (c *GraphQLClient) DeleteComment(ctx context.Context, commentID string) error {
	_, err := c.Do(ctx, Operation{
		OperationName: opDeleteComment,
		Variables: map[string]any{
			"_id": commentID,
		},
		Query: queryDeleteComment,
	})
	return err
}
