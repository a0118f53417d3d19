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

// Interface conformance checks.
var (
	_ Client = (*GraphQLClient)(nil)
	_ Client = (*MockClient)(nil)
)

// MockClient is a mock implementation of the Client interface for testing.
// Configure behavior through the data fields and Error; calls are tracked
// for verification.
type MockClient struct {
	// Data to return
	Pull      *Pull
	Created   *CreatedPull
	UpdateRes *UpdateResult
	Summaries []PullSummary
	Entries   []ChangeLogEntry
	Summary   *DiffSummary
	Rows      []DiffRow
	CommentID string

	// Error to return from every call
	Error error

	// Track calls for verification
	CallCount int
	LastOwner string
	LastRepo  string
	LastID    int
	LastOpts  ListOptions
}

func (m *MockClient) track(owner, repo string, id int) {
	m.CallCount++
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastID = id
}

// LookupPull implements the Client interface.
func (m *MockClient) LookupPull(ctx context.Context, owner, repo string, id int) (*Pull, error) {
	m.track(owner, repo, id)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Pull, nil
}

// CreatePull implements the Client interface.
func (m *MockClient) CreatePull(ctx context.Context, source, destination BranchRef, title, message string) (*CreatedPull, error) {
	m.track(destination.Owner, destination.Repo, 0)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Created, nil
}

// UpdatePull implements the Client interface.
func (m *MockClient) UpdatePull(ctx context.Context, owner, repo string, id int, opts UpdateOptions) (*UpdateResult, error) {
	m.track(owner, repo, id)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.UpdateRes, nil
}

// MergePull implements the Client interface.
func (m *MockClient) MergePull(ctx context.Context, owner, repo string, id int) (*Pull, error) {
	m.track(owner, repo, id)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Pull, nil
}

// CommentOnPull implements the Client interface.
func (m *MockClient) CommentOnPull(ctx context.Context, owner, repo string, id int, message string) (string, error) {
	m.track(owner, repo, id)
	if m.Error != nil {
		return "", m.Error
	}
	return m.CommentID, nil
}

// UpdateComment implements the Client interface.
func (m *MockClient) UpdateComment(ctx context.Context, commentID, message string) error {
	m.CallCount++
	return m.Error
}

// DeleteComment implements the Client interface.
func (m *MockClient) DeleteComment(ctx context.Context, commentID string) error {
	m.CallCount++
	return m.Error
}

// ListPulls implements the Client interface.
func (m *MockClient) ListPulls(ctx context.Context, owner, repo string, opts ListOptions) iter.Seq2[PullSummary, error] {
	m.track(owner, repo, 0)
	m.LastOpts = opts
	return mockSeq(m.Summaries, m.Error)
}

// ChangeLog implements the Client interface.
func (m *MockClient) ChangeLog(ctx context.Context, owner, repo string, id int, opts ListOptions) iter.Seq2[ChangeLogEntry, error] {
	m.track(owner, repo, id)
	m.LastOpts = opts
	return mockSeq(m.Entries, m.Error)
}

// DiffSummary implements the Client interface.
func (m *MockClient) DiffSummary(ctx context.Context, source, destination CommitRef) (*DiffSummary, error) {
	m.track(destination.Owner, destination.Repo, 0)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Summary, nil
}

// DiffRows implements the Client interface.
func (m *MockClient) DiffRows(ctx context.Context, owner, repo string, id int, tableName string, opts ListOptions) iter.Seq2[DiffRow, error] {
	m.track(owner, repo, id)
	m.LastOpts = opts
	return mockSeq(m.Rows, m.Error)
}

func mockSeq[T any](items []T, err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
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
	}
}
