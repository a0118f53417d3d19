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

package main

import (
	"fmt"
	"os"

	"github.com/doltpr/doltpr/internal/dolthub"
	"github.com/doltpr/doltpr/internal/output"
	"github.com/spf13/cobra"
)

// newDiffCommand streams one table's changed rows from a pull's diff.
func newDiffCommand() *cobra.Command {
	var (
		flags      clientFlags
		outputFile string
		pageToken  string
	)

	cmd := &cobra.Command{
		Use:   "diff <owner>/<repo> <id> <table>",
		Short: "Stream one table's changed rows from a pull request's diff",
		Long: `Stream one table's changed rows from a pull request's diff as NDJSON.
The table name match is case-insensitive; if the diff touches no table by
that name, the output is empty. Row additions, deletions, and (indirectly)
modifications are reported; schema changes are not.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := parseRepository(args[0])
			if err != nil {
				return err
			}
			id, err := parsePullID(args[1])
			if err != nil {
				return err
			}

			client, err := flags.newClient()
			if err != nil {
				return err
			}

			writer, err := newRecordWriter(outputFile)
			if err != nil {
				return err
			}
			defer writer.Close()

			seq := client.DiffRows(cmd.Context(), owner, repo, id, args[2], dolthub.ListOptions{PageToken: pageToken})
			count, err := output.Drain(writer, seq)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Fetched %d changed rows for table %q of %s/%s#%d\n", count, args[2], owner, repo, id)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token to start from")
	return cmd
}

// newDiffSummaryCommand fetches the summary of changes between two commits.
func newDiffSummaryCommand() *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "diff-summary <src-owner>/<src-repo> <src-commit> <dst-owner>/<dst-repo> <dst-commit>",
		Short: "Summarize the changes between two commits",
		Long: `Summarize the changes a pull request makes between two commits. The
summary stays the same after merge as long as the same commit ids are
supplied.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcOwner, srcRepo, err := parseRepository(args[0])
			if err != nil {
				return err
			}
			dstOwner, dstRepo, err := parseRepository(args[2])
			if err != nil {
				return err
			}

			client, err := flags.newClient()
			if err != nil {
				return err
			}

			source := dolthub.CommitRef{Owner: srcOwner, Repo: srcRepo, CommitID: args[1]}
			destination := dolthub.CommitRef{Owner: dstOwner, Repo: dstRepo, CommitID: args[3]}

			summary, err := client.DiffSummary(cmd.Context(), source, destination)
			if err != nil {
				return err
			}

			writer, err := newRecordWriter("")
			if err != nil {
				return err
			}
			defer writer.Close()
			return writer.Write(summary)
		},
	}

	flags.register(cmd)
	return cmd
}
