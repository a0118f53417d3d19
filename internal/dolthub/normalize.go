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
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// This file maps upstream response shapes into the stable records of
// types.go. The raw structs carry the upstream field names; nothing else
// in the package refers to them.

// flexInt decodes an integer that the upstream may encode as a JSON
// string ("42") or a JSON number (42).
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		*f = flexInt(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// truthyBool decodes an upstream flag that may arrive as a bool, a
// number (0/1), or a string. Anything non-zero and non-empty is true.
type truthyBool bool

func (t *truthyBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, string(b) == "null":
		*t = false
	case string(b) == "true":
		*t = true
	case string(b) == "false":
		*t = false
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		*t = truthyBool(s != "" && s != "0" && !strings.EqualFold(s, "false"))
	default:
		var n float64
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*t = truthyBool(n != 0)
	}
	return nil
}

// epochMillis decodes an upstream millisecond epoch timestamp.
type epochMillis int64

func (m *epochMillis) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*m = 0
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*m = epochMillis(n)
	return nil
}

// Time converts to a calendar timestamp in the process's local zone.
func (m epochMillis) Time() time.Time { return time.UnixMilli(int64(m)) }

// rawPull is the PullForPullDetails fragment shape, shared by lookup and
// merge responses.
type rawPull struct {
	ID                  string     `json:"_id"`
	PullID              flexInt    `json:"pullId"`
	State               string     `json:"state"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	FromBranchName      string     `json:"fromBranchName"`
	FromBranchOwnerName string     `json:"fromBranchOwnerName"`
	FromBranchRepoName  string     `json:"fromBranchRepoName"`
	ToBranchName        string     `json:"toBranchName"`
	ToBranchOwnerName   string     `json:"toBranchOwnerName"`
	ToBranchRepoName    string     `json:"toBranchRepoName"`
	CreatorName         string     `json:"creatorName"`
	IsFork              truthyBool `json:"isFork"`
}

func normalizePull(raw *rawPull) *Pull {
	return &Pull{
		ID:      int(raw.PullID),
		State:   raw.State,
		Title:   raw.Title,
		Message: raw.Description,
		Creator: raw.CreatorName,
		Fork:    bool(raw.IsFork),
		Source: BranchRef{
			Owner:  raw.FromBranchOwnerName,
			Repo:   raw.FromBranchRepoName,
			Branch: raw.FromBranchName,
		},
		Destination: BranchRef{
			Owner:  raw.ToBranchOwnerName,
			Repo:   raw.ToBranchRepoName,
			Branch: raw.ToBranchName,
		},
	}
}

// rawPullListItem is the PullForPullList fragment shape.
type rawPullListItem struct {
	ID          string      `json:"_id"`
	CreatedAt   epochMillis `json:"createdAt"`
	OwnerName   string      `json:"ownerName"`
	RepoName    string      `json:"repoName"`
	PullID      flexInt     `json:"pullId"`
	CreatorName string      `json:"creatorName"`
	Description string      `json:"description"`
	State       string      `json:"state"`
	Title       string      `json:"title"`
}

func normalizePullSummary(raw rawPullListItem) PullSummary {
	return PullSummary{
		ID:            int(raw.PullID),
		State:         raw.State,
		Title:         raw.Title,
		Message:       raw.Description,
		Creator:       raw.CreatorName,
		CreatedAt:     raw.CreatedAt.Time(),
		CreatedAtUnix: int64(raw.CreatedAt),
		Owner:         raw.OwnerName,
		Repo:          raw.RepoName,
	}
}

// rawChangeLogEntry is the union of all PullDetail* fragment fields; the
// __typename discriminator selects which are meaningful.
type rawChangeLogEntry struct {
	TypeName       string       `json:"__typename"`
	ID             string       `json:"_id"`
	CreatedAt      epochMillis  `json:"createdAt"`
	UpdatedAt      *epochMillis `json:"updatedAt"`
	AuthorName     string       `json:"authorName"`
	Username       string       `json:"username"`
	Comment        string       `json:"comment"`
	Message        string       `json:"message"`
	CommitID       string       `json:"commitId"`
	ParentCommitID string       `json:"parentCommitId"`
	NumCommits     int          `json:"numCommits"`
	Activity       string       `json:"activity"`
}

// changeLogKinds maps upstream discriminator tags to stable kind names.
var changeLogKinds = map[string]string{
	"PullDetailComment": EntryComment,
	"PullDetailCommit":  EntryCommit,
	"PullDetailSummary": EntrySummary,
	"PullDetailLog":     EntryLog,
}

// normalizeChangeLogEntry dispatches on the discriminator tag. Unknown
// tags pass through with the raw tag as Kind so new upstream entry kinds
// never fail the sequence.
func normalizeChangeLogEntry(raw rawChangeLogEntry) ChangeLogEntry {
	kind, known := changeLogKinds[raw.TypeName]
	if !known {
		kind = raw.TypeName
	}

	entry := ChangeLogEntry{
		ID:            raw.ID,
		Kind:          kind,
		CreatedAt:     raw.CreatedAt.Time(),
		CreatedAtUnix: int64(raw.CreatedAt),
	}

	switch kind {
	case EntryComment:
		entry.User = raw.AuthorName
		entry.Message = raw.Comment
		if raw.UpdatedAt != nil {
			updated := raw.UpdatedAt.Time()
			entry.UpdatedAt = &updated
			entry.UpdatedAtUnix = int64(*raw.UpdatedAt)
		}
	case EntryCommit:
		entry.User = raw.Username
		entry.Message = raw.Message
		entry.CommitID = raw.CommitID
		entry.ParentCommitID = raw.ParentCommitID
	case EntrySummary:
		entry.User = raw.Username
		entry.Commits = raw.NumCommits
	case EntryLog:
		entry.User = raw.Username
		entry.Activity = raw.Activity
	}

	return entry
}

// rawDiffSummary is the DiffSummaryForDiffs fragment shape. RowsUnmodified
// is a pointer so its absence can be told apart from zero.
type rawDiffSummary struct {
	RowsUnmodified *int `json:"rowsUnmodified"`
	RowsAdded      int  `json:"rowsAdded"`
	RowsDeleted    int  `json:"rowsDeleted"`
	RowsModified   int  `json:"rowsModified"`
	CellsModified  int  `json:"cellsModified"`
	RowCount       int  `json:"rowCount"`
	CellCount      int  `json:"cellCount"`
}

func normalizeDiffSummary(raw rawDiffSummary) *DiffSummary {
	rowsUnmodified := raw.RowCount - raw.RowsModified
	if raw.RowsUnmodified != nil {
		rowsUnmodified = *raw.RowsUnmodified
	}

	return &DiffSummary{
		Rows: RowStats{
			Count:      raw.RowCount,
			Modified:   raw.RowsModified,
			Unmodified: rowsUnmodified,
			Added:      raw.RowsAdded,
			Deleted:    raw.RowsDeleted,
		},
		Cells: CellStats{
			Count:      raw.CellCount,
			Modified:   raw.CellsModified,
			// The upstream reports no cellsUnmodified; derive it.
			Unmodified: raw.CellCount - raw.CellsModified,
		},
	}
}

// Raw shapes for the per-table diff query.
type rawCommitDiff struct {
	ToOwnerName   string         `json:"toOwnerName"`
	ToRepoName    string         `json:"toRepoName"`
	ToCommitID    string         `json:"toCommitId"`
	FromOwnerName string         `json:"fromOwnerName"`
	FromRepoName  string         `json:"fromRepoName"`
	FromCommitID  string         `json:"fromCommitId"`
	TableDiffs    []rawTableDiff `json:"tableDiffs"`
}

type rawTableDiff struct {
	OldTable       *rawTable      `json:"oldTable"`
	NewTable       *rawTable      `json:"newTable"`
	RowDiffColumns []rawColumn    `json:"rowDiffColumns"`
	RowDiffs       rawRowDiffList `json:"rowDiffs"`
}

type rawTable struct {
	TableName string `json:"tableName"`
}

type rawColumn struct {
	Name string `json:"name"`
}

type rawRowDiffList struct {
	List          []rawRowDiff `json:"list"`
	NextPageToken string       `json:"nextPageToken"`
}

type rawRowDiff struct {
	Added   *rawRow `json:"added"`
	Deleted *rawRow `json:"deleted"`
}

type rawRow struct {
	ColumnValues []rawColumnValue `json:"columnValues"`
}

type rawColumnValue struct {
	DisplayValue string `json:"displayValue"`
}

// tableName resolves a table diff's display name, favoring the new table
// since that's the newer data.
func (t *rawTableDiff) tableName() string {
	if t.NewTable != nil && t.NewTable.TableName != "" {
		return t.NewTable.TableName
	}
	if t.OldTable != nil {
		return t.OldTable.TableName
	}
	return ""
}

// zipRow maps column values positionally onto column names. A nil side
// stays nil so callers can tell a pure insert from a pure delete.
func zipRow(columns []rawColumn, row *rawRow) map[string]string {
	if row == nil {
		return nil
	}
	out := make(map[string]string, len(row.ColumnValues))
	for i, value := range row.ColumnValues {
		if i >= len(columns) {
			break
		}
		out[columns[i].Name] = value.DisplayValue
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeDiffRow(diff *rawCommitDiff, columns []rawColumn, row rawRowDiff) DiffRow {
	return DiffRow{
		Added:   zipRow(columns, row.Added),
		Deleted: zipRow(columns, row.Deleted),

		// The upstream's "to" side is the PR's source and "from" the
		// destination.
		Source: CommitRef{
			Owner:    diff.ToOwnerName,
			Repo:     diff.ToRepoName,
			CommitID: diff.ToCommitID,
		},
		Destination: CommitRef{
			Owner:    diff.FromOwnerName,
			Repo:     diff.FromRepoName,
			CommitID: diff.FromCommitID,
		},
	}
}
