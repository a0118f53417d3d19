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
	"strconv"
)

// ChangeLog streams the change-log entries of one pull request: comments,
// commits, merge summaries, and activity log lines, in upstream order.
// Entries with discriminator tags this client does not know pass through
// with the raw tag as Kind.
//
// The iteration runs through the shared cursor loop, but the upstream
// currently returns no page token for this query, so the sequence exhausts
// after one page. If pagination appears upstream, the loop picks it up.
func (c *GraphQLClient) ChangeLog(ctx context.Context, owner, repo string, id int, opts ListOptions) iter.Seq2[ChangeLogEntry, error] {
	return paginate(opts.PageToken, func(cursor string) ([]ChangeLogEntry, string, error) {
		variables := map[string]any{
			"ownerName": owner,
			"repoName":  repo,
			"pullId":    strconv.Itoa(id),
		}
		if cursor != "" {
			variables["pageToken"] = cursor
		}

		resp, err := c.Do(ctx, Operation{
			OperationName: opChangeLog,
			Variables:     variables,
			Query:         queryChangeLog,
		})
		if err != nil {
			return nil, "", err
		}

		var data struct {
			Pull struct {
				Details       []rawChangeLogEntry `json:"details"`
				NextPageToken string              `json:"nextPageToken"`
			} `json:"pull"`
		}
		if err := decodeData(resp, opChangeLog, &data); err != nil {
			return nil, "", err
		}

		items := make([]ChangeLogEntry, 0, len(data.Pull.Details))
		for _, raw := range data.Pull.Details {
			items = append(items, normalizeChangeLogEntry(raw))
		}
		return items, data.Pull.NextPageToken, nil
	})
}
