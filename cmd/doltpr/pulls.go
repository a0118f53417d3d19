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

// newShowCommand looks up one pull request.
func newShowCommand() *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "show <owner>/<repo> <id>",
		Short: "Show one pull request",
		Args:  cobra.ExactArgs(2),
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

			pull, err := client.LookupPull(cmd.Context(), owner, repo, id)
			if err != nil {
				return err
			}

			writer, err := newRecordWriter("")
			if err != nil {
				return err
			}
			defer writer.Close()
			return writer.Write(pull)
		},
	}

	flags.register(cmd)
	return cmd
}

// newListCommand streams a repository's pull requests.
func newListCommand() *cobra.Command {
	var (
		flags      clientFlags
		outputFile string
		pageToken  string
	)

	cmd := &cobra.Command{
		Use:   "list <owner>/<repo>",
		Short: "List a repository's pull requests as NDJSON",
		Long: `List a repository's pull requests as NDJSON, draining every page of the
upstream's cursor-based pagination. Use --page-token to start from a
specific page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := parseRepository(args[0])
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

			seq := client.ListPulls(cmd.Context(), owner, repo, dolthub.ListOptions{PageToken: pageToken})
			count, err := output.Drain(writer, seq)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Fetched %d pull requests from %s/%s\n", count, owner, repo)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token to start from")
	return cmd
}

// newCreateCommand opens a pull request.
func newCreateCommand() *cobra.Command {
	var (
		flags   clientFlags
		title   string
		message string
	)

	cmd := &cobra.Command{
		Use:   "create <src-owner>/<src-repo> <src-branch> <dst-owner>/<dst-repo> <dst-branch>",
		Short: "Open a pull request from an already-pushed branch",
		Args:  cobra.ExactArgs(4),
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

			source := dolthub.BranchRef{Owner: srcOwner, Repo: srcRepo, Branch: args[1]}
			destination := dolthub.BranchRef{Owner: dstOwner, Repo: dstRepo, Branch: args[3]}

			created, err := client.CreatePull(cmd.Context(), source, destination, title, message)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Created pull request %s/%s#%d\n", dstOwner, dstRepo, created.ID)

			writer, err := newRecordWriter("")
			if err != nil {
				return err
			}
			defer writer.Close()
			return writer.Write(created)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "Pull request title")
	cmd.Flags().StringVar(&message, "message", "", "Pull request message")
	return cmd
}

// newUpdateCommand updates a pull request's state, title, and/or message.
func newUpdateCommand() *cobra.Command {
	var (
		flags   clientFlags
		state   string
		title   string
		message string
	)

	cmd := &cobra.Command{
		Use:   "update <owner>/<repo> <id>",
		Short: "Update a pull request's state, title, and/or message",
		Long: `Update a pull request. At least one of --state, --title, or --message is
required; unset fields keep their current values (backfilled from a
lookup before the mutation). Setting --state Merged also merges the pull
request.`,
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

			var opts dolthub.UpdateOptions
			if cmd.Flags().Changed("state") {
				opts.State = &state
			}
			if cmd.Flags().Changed("title") {
				opts.Title = &title
			}
			if cmd.Flags().Changed("message") {
				opts.Message = &message
			}

			client, err := flags.newClient()
			if err != nil {
				return err
			}

			result, err := client.UpdatePull(cmd.Context(), owner, repo, id, opts)
			if err != nil {
				return err
			}

			if result.Merged != nil {
				fmt.Fprintf(os.Stderr, "Updated and merged pull request %s/%s#%d\n", owner, repo, id)
			} else {
				fmt.Fprintf(os.Stderr, "Updated pull request %s/%s#%d\n", owner, repo, id)
			}

			writer, err := newRecordWriter("")
			if err != nil {
				return err
			}
			defer writer.Close()
			return writer.Write(result)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&state, "state", "", `New state: "Open", "Closed", or "Merged" (case-sensitive)`)
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&message, "message", "", "New message")
	return cmd
}

// newMergeCommand merges a pull request without touching its other fields.
func newMergeCommand() *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "merge <owner>/<repo> <id>",
		Short: "Merge a pull request",
		Args:  cobra.ExactArgs(2),
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

			pull, err := client.MergePull(cmd.Context(), owner, repo, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Merged pull request %s/%s#%d\n", owner, repo, id)

			writer, err := newRecordWriter("")
			if err != nil {
				return err
			}
			defer writer.Close()
			return writer.Write(pull)
		},
	}

	flags.register(cmd)
	return cmd
}
