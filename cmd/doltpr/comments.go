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

// newCommentCommand groups the comment mutations.
func newCommentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Add, edit, or delete pull request comments",
	}

	cmd.AddCommand(
		newCommentAddCommand(),
		newCommentEditCommand(),
		newCommentDeleteCommand(),
	)

	return cmd
}

func newCommentAddCommand() *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "add <owner>/<repo> <id> <message>",
		Short: "Comment on a pull request",
		Long: `Comment on a pull request. The API does not check for duplicate
comments; deduplicate yourself if you are automating this.`,
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

			if _, err := client.CommentOnPull(cmd.Context(), owner, repo, id, args[2]); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Commented on pull request %s/%s#%d\n", owner, repo, id)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newCommentEditCommand() *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "edit <comment-id> <message>",
		Short: "Replace an existing comment's message",
		Long: `Replace an existing comment's message. Comment ids are reported by the
changelog command on entries of type "Comment".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}

			if err := client.UpdateComment(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			fmt.Fprintln(os.Stderr, "Updated comment")
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newCommentDeleteCommand() *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteComment(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(os.Stderr, "Deleted comment")
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// newChangelogCommand streams a pull request's change log.
func newChangelogCommand() *cobra.Command {
	var (
		flags      clientFlags
		outputFile string
		pageToken  string
	)

	cmd := &cobra.Command{
		Use:   "changelog <owner>/<repo> <id>",
		Short: "Stream a pull request's change log as NDJSON",
		Long: `Stream a pull request's change log as NDJSON: comments, commits, merge
summaries, and activity log lines, in upstream order.`,
		Args: cobra.ExactArgs(2),
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

			seq := client.ChangeLog(cmd.Context(), owner, repo, id, dolthub.ListOptions{PageToken: pageToken})
			count, err := output.Drain(writer, seq)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Fetched %d change log entries for %s/%s#%d\n", count, owner, repo, id)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token to start from")
	return cmd
}
