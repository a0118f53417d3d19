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

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/doltpr/doltpr/pkg/version"
)

func main() {
	// Best effort: a local .env file may carry DOLTHUB_TOKEN.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "doltpr",
		Short: "Manage DoltHub pull requests from the command line",
		Long: `doltpr reads and mutates pull-request state on DoltHub: lookup, create,
update, merge, comments, change logs, and diffs. List-style commands
stream NDJSON, one record per line, draining every page of the upstream's
cursor-based pagination.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(
		newShowCommand(),
		newListCommand(),
		newCreateCommand(),
		newUpdateCommand(),
		newMergeCommand(),
		newCommentCommand(),
		newChangelogCommand(),
		newDiffCommand(),
		newDiffSummaryCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}
