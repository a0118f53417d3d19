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

import "time"

// Pull request states accepted by the API. These values are case-sensitive.
const (
	StateOpen   = "Open"
	StateClosed = "Closed"
	StateMerged = "Merged"
)

// Pull is the normalized shape of a single pull request. Field names are
// stable and decoupled from the upstream schema.
type Pull struct {
	ID      int    `json:"id"`
	State   string `json:"state"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Creator string `json:"creator"`
	Fork    bool   `json:"fork"`

	// Source is where the data to merge comes from.
	Source BranchRef `json:"source"`
	// Destination is where the data merges into.
	Destination BranchRef `json:"destination"`
}

// BranchRef identifies a branch within an owner's repository.
type BranchRef struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
}

// CommitRef identifies a commit within an owner's repository.
type CommitRef struct {
	Owner    string `json:"owner"`
	Repo     string `json:"repo"`
	CommitID string `json:"commit_id"`
}

// CreatedPull is returned by CreatePull. It is a struct rather than a bare
// id so additional fields can be added without breaking callers.
type CreatedPull struct {
	ID int `json:"id"`
}

// UpdateOptions holds the optional fields of an update. At least one must
// be set; unset fields are backfilled from the pull's current state before
// the mutation is sent.
type UpdateOptions struct {
	// State can be StateOpen, StateClosed, or StateMerged. Setting
	// StateMerged defers the state change to a follow-up merge call.
	State   *string
	Title   *string
	Message *string
}

// UpdateResult reports the outcome of UpdatePull.
type UpdateResult struct {
	// ID is the upstream identifier of the updated pull.
	ID string `json:"id"`
	// Merged holds the merge result when the update requested StateMerged,
	// nil otherwise.
	Merged *Pull `json:"merged,omitempty"`
}

// PullSummary is one entry of a repository's pull request list.
type PullSummary struct {
	ID            int       `json:"id"`
	State         string    `json:"state"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Creator       string    `json:"creator"`
	CreatedAt     time.Time `json:"creation_date"`
	CreatedAtUnix int64     `json:"creation_date_unix"`
	Owner         string    `json:"owner"`
	Repo          string    `json:"repo"`
}

// Change-log entry kinds. Unknown upstream kinds pass through with their
// raw discriminator tag preserved.
const (
	EntryComment = "Comment"
	EntryCommit  = "Commit"
	EntrySummary = "Summary"
	EntryLog     = "Log"
)

// ChangeLogEntry is one entry of a pull request's change log. Kind selects
// which of the kind-specific fields are populated.
type ChangeLogEntry struct {
	ID            string    `json:"id"`
	Kind          string    `json:"type"`
	CreatedAt     time.Time `json:"creation_date"`
	CreatedAtUnix int64     `json:"creation_date_unix"`

	// User is set for all known kinds.
	User string `json:"user,omitempty"`

	// Message is set for Comment and Commit entries.
	Message string `json:"message,omitempty"`

	// UpdatedAt and UpdatedAtUnix are set for Comment entries.
	UpdatedAt     *time.Time `json:"updated_date,omitempty"`
	UpdatedAtUnix int64      `json:"updated_date_unix,omitempty"`

	// CommitID and ParentCommitID are set for Commit entries.
	CommitID       string `json:"current_commit_id,omitempty"`
	ParentCommitID string `json:"previous_commit_id,omitempty"`

	// Commits is set for Summary entries.
	Commits int `json:"commits,omitempty"`

	// Activity is set for Log entries.
	Activity string `json:"state,omitempty"`
}

// DiffSummary is the normalized summary of changes between two commits.
type DiffSummary struct {
	Rows  RowStats  `json:"rows"`
	Cells CellStats `json:"cells"`
}

// RowStats counts row-level changes.
type RowStats struct {
	Count      int `json:"count"`
	Modified   int `json:"modified"`
	Unmodified int `json:"unmodified"`
	Added      int `json:"added"`
	Deleted    int `json:"deleted"`
}

// CellStats counts cell-level changes. Added/deleted cells are not
// reported by the upstream.
type CellStats struct {
	Count      int `json:"count"`
	Modified   int `json:"modified"`
	Unmodified int `json:"unmodified"`
}

// DiffRow is one changed row of a table diff. Added and Deleted map column
// names to display values; a nil side means the row only existed on the
// other side.
type DiffRow struct {
	Added   map[string]string `json:"added"`
	Deleted map[string]string `json:"deleted"`

	// Commit context carried on every row so callers need not track it.
	Source      CommitRef `json:"source"`
	Destination CommitRef `json:"destination"`
}

// ListOptions configures paginated operations.
type ListOptions struct {
	// PageToken is the cursor to start from. Empty fetches from the
	// beginning.
	PageToken string
}

// String returns a pointer to s, for populating UpdateOptions fields.
func String(s string) *string { return &s }
