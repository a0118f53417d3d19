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

// ListPulls streams a repository's pull requests, draining every page of
// the upstream's cursor-based list into one sequence. opts.PageToken lets
// the caller start from a specific page. The sequence is lazy: each page
// is fetched only as iteration reaches it, and iteration stops cleanly if
// the caller breaks early.
func (c *GraphQLClient) ListPulls(ctx context.Context, owner, repo string, opts ListOptions) iter.Seq2[PullSummary, error] {
	return paginate(opts.PageToken, func(cursor string) ([]PullSummary, string, error) {
		variables := map[string]any{
			"ownerName": owner,
			"repoName":  repo,
		}
		if cursor != "" {
			variables["pageToken"] = cursor
		}

		resp, err := c.Do(ctx, Operation{
			OperationName: opListPulls,
			Variables:     variables,
			Query:         queryListPulls,
		})
		if err != nil {
			return nil, "", err
		}

		var data struct {
			Pulls struct {
				List          []rawPullListItem `json:"list"`
				NextPageToken string            `json:"nextPageToken"`
			} `json:"pulls"`
		}
		if err := decodeData(resp, opListPulls, &data); err != nil {
			return nil, "", err
		}

		items := make([]PullSummary, 0, len(data.Pulls.List))
		for _, raw := range data.Pulls.List {
			items = append(items, normalizePullSummary(raw))
		}
		return items, data.Pulls.NextPageToken, nil
	})
}
