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
	"iter"
)

// Client defines the interface for interacting with DoltHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// LookupPull fetches one pull request by its (owner, repo, id) key.
	LookupPull(ctx context.Context, owner, repo string, id int) (*Pull, error)

	// CreatePull opens a pull request from an already-pushed source branch
	// into the destination branch. Title and message default to empty
	// strings.
	CreatePull(ctx context.Context, source, destination BranchRef, title, message string) (*CreatedPull, error)

	// UpdatePull updates a pull request. At least one of the optional
	// fields must be set; unset fields are backfilled from a preceding
	// lookup. The read-modify-write is not atomic: a concurrent update
	// between the lookup and the mutation is a lost-update race. Setting
	// StateMerged defers the state change to a follow-up MergePull call,
	// since the API misreports merge completion when told directly.
	UpdatePull(ctx context.Context, owner, repo string, id int, opts UpdateOptions) (*UpdateResult, error)

	// MergePull merges an existing pull request.
	MergePull(ctx context.Context, owner, repo string, id int) (*Pull, error)

	// CommentOnPull adds a comment to a pull request and returns the
	// upstream summary id. The API does not deduplicate comments; that is
	// the caller's responsibility.
	CommentOnPull(ctx context.Context, owner, repo string, id int, message string) (string, error)

	// UpdateComment replaces the message of an existing comment.
	UpdateComment(ctx context.Context, commentID, message string) error

	// DeleteComment deletes a comment by its upstream id.
	DeleteComment(ctx context.Context, commentID string) error

	// ListPulls streams a repository's pull requests across all pages.
	ListPulls(ctx context.Context, owner, repo string, opts ListOptions) iter.Seq2[PullSummary, error]

	// ChangeLog streams a pull request's change log entries.
	ChangeLog(ctx context.Context, owner, repo string, id int, opts ListOptions) iter.Seq2[ChangeLogEntry, error]

	// DiffSummary fetches the summary of changes between two commits.
	DiffSummary(ctx context.Context, source, destination CommitRef) (*DiffSummary, error)

	// DiffRows streams the changed rows of exactly one named table of a
	// pull request's diff. The table name match is case-insensitive; no
	// match yields an empty sequence.
	DiffRows(ctx context.Context, owner, repo string, id int, tableName string, opts ListOptions) iter.Seq2[DiffRow, error]
}
