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
	"fmt"
	"strconv"

	dperrors "github.com/doltpr/doltpr/internal/errors"
)

// pullDocumentID builds the upstream's document identifier for a pull.
func pullDocumentID(owner, repo string, id int) string {
	return fmt.Sprintf("repositoryOwners/%s/repositories/%s/pulls/%d", owner, repo, id)
}

// LookupPull fetches detailed information on one pull request by its
// (owner, repo, id) key. UpdatePull uses it to backfill unset fields.
func (c *GraphQLClient) LookupPull(ctx context.Context, owner, repo string, id int) (*Pull, error) {
	resp, err := c.Do(ctx, Operation{
		OperationName: opLookupPull,
		Variables: map[string]any{
			"ownerName": owner,
			"repoName":  repo,
			"pullId":    strconv.Itoa(id),
		},
		Query: queryLookupPull,
	})
	if err != nil {
		return nil, err
	}

	var data struct {
		Pull *rawPull `json:"pull"`
	}
	if err := decodeData(resp, opLookupPull, &data); err != nil {
		return nil, err
	}
	if data.Pull == nil {
		return nil, &MalformedResponseError{
			Body:       string(resp.Body),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s: no pull in response", opLookupPull),
		}
	}

	return normalizePull(data.Pull), nil
}

// CreatePull opens a pull request from source into destination. Both refs
// must be fully qualified; the branch named by source must already be
// pushed. The upstream's parent owner/repo always mirror the destination.
func (c *GraphQLClient) CreatePull(ctx context.Context, source, destination BranchRef, title, message string) (*CreatedPull, error) {
	resp, err := c.Do(ctx, Operation{
		OperationName: opCreatePull,
		Variables: map[string]any{
			"title":               title,
			"description":         message,
			"fromBranchName":      source.Branch,
			"toBranchName":        destination.Branch,
			"fromBranchOwnerName": source.Owner,
			"fromBranchRepoName":  source.Repo,
			"toBranchOwnerName":   destination.Owner,
			"toBranchRepoName":    destination.Repo,
			"parentOwnerName":     destination.Owner,
			"parentRepoName":      destination.Repo,
		},
		Query: queryCreatePull,
	})
	if err != nil {
		return nil, err
	}

	var data struct {
		CreatePullWithForks struct {
			PullID flexInt `json:"pullId"`
		} `json:"createPullWithForks"`
	}
	if err := decodeData(resp, opCreatePull, &data); err != nil {
		return nil, err
	}

	return &CreatedPull{ID: int(data.CreatePullWithForks.PullID)}, nil
}

// UpdatePull updates a pull request's state, title, and/or message. The
// upstream mutation replaces all three fields at once, so any field left
// unset is first backfilled from the pull's current state via LookupPull.
// That read-modify-write is not atomic; a concurrent update between the
// two calls is a lost update.
//
// Requesting StateMerged is handled specially: the API falsely reports the
// pull as merged when told the state directly, so the mutation omits the
// state variable and exactly one MergePull follows. The merge result is
// returned in UpdateResult.Merged.
func (c *GraphQLClient) UpdatePull(ctx context.Context, owner, repo string, id int, opts UpdateOptions) (*UpdateResult, error) {
	if opts.State == nil && opts.Title == nil && opts.Message == nil {
		return nil, fmt.Errorf("update pull %s/%s#%d: %w", owner, repo, id, dperrors.ErrAtLeastOneField)
	}

	state, title, message := opts.State, opts.Title, opts.Message

	shouldMerge := state != nil && *state == StateMerged
	if shouldMerge {
		// Defer the state change to the merge call below.
		state = nil
	}

	needLookup := title == nil || message == nil || (!shouldMerge && state == nil)
	if needLookup {
		existing, err := c.LookupPull(ctx, owner, repo, id)
		if err != nil {
			return nil, err
		}
		if !shouldMerge && state == nil {
			state = &existing.State
		}
		if title == nil {
			title = &existing.Title
		}
		if message == nil {
			message = &existing.Message
		}
	}

	variables := map[string]any{
		"_id":         pullDocumentID(owner, repo, id),
		"title":       *title,
		"description": *message,
	}
	if state != nil {
		variables["state"] = *state
	}

	resp, err := c.Do(ctx, Operation{
		OperationName: opUpdatePull,
		Variables:     variables,
		Query:         queryUpdatePull,
	})
	if err != nil {
		return nil, err
	}

	var data struct {
		UpdatePull struct {
			ID string `json:"_id"`
		} `json:"updatePull"`
	}
	if err := decodeData(resp, opUpdatePull, &data); err != nil {
		return nil, err
	}

	result := &UpdateResult{ID: data.UpdatePull.ID}

	if shouldMerge {
		merged, err := c.MergePull(ctx, owner, repo, id)
		if err != nil {
			return nil, err
		}
		result.Merged = merged
	}

	return result, nil
}

// MergePull merges an existing pull request and returns its post-merge
// state.
func (c *GraphQLClient) MergePull(ctx context.Context, owner, repo string, id int) (*Pull, error) {
	resp, err := c.Do(ctx, Operation{
		OperationName: opMergePull,
		Variables: map[string]any{
			"ownerName": owner,
			"repoName":  repo,
			"pullId":    strconv.Itoa(id),
		},
		Query: queryMergePull,
	})
	if err != nil {
		return nil, err
	}

	var data struct {
		MergePull *rawPull `json:"mergePull"`
	}
	if err := decodeData(resp, opMergePull, &data); err != nil {
		return nil, err
	}
	if data.MergePull == nil {
		return nil, &MalformedResponseError{
			Body:       string(resp.Body),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s: no pull in response", opMergePull),
		}
	}

	return normalizePull(data.MergePull), nil
}
