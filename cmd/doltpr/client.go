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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/doltpr/doltpr/internal/config"
	"github.com/doltpr/doltpr/internal/dolthub"
	dperrors "github.com/doltpr/doltpr/internal/errors"
	"github.com/doltpr/doltpr/internal/output"
	"github.com/spf13/cobra"
)

// clientFlags are the connection flags shared by every command.
type clientFlags struct {
	token      string
	tokenFile  string
	endpoint   string
	configPath string
	verbose    bool
}

func (f *clientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "", "dolthubToken cookie value (overrides DOLTHUB_TOKEN env var)")
	cmd.Flags().StringVar(&f.tokenFile, "token-file", "", "file whose first line is the dolthubToken cookie value")
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "", "GraphQL endpoint URL (default: DoltHub)")
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "enable debug logging to stderr")
}

// newClient resolves configuration and credential and builds the client.
func (f *clientFlags) newClient() (*dolthub.GraphQLClient, error) {
	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.endpoint != "" {
		cfg.DoltHub.GraphQLEndpoint = f.endpoint
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := f.buildClient(cfg)
	if err != nil {
		return nil, err
	}

	if f.verbose {
		client.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	return client, nil
}

func (f *clientFlags) buildClient(cfg *config.Config) (*dolthub.GraphQLClient, error) {
	token := resolveToken(f.token)
	if token != "" {
		return dolthub.NewGraphQLClient(token, cfg.DoltHub.GraphQLEndpoint)
	}

	tokenFile := f.tokenFile
	if tokenFile == "" {
		tokenFile = cfg.Credential.TokenFile
	}
	if tokenFile == "" {
		return nil, fmt.Errorf("set DOLTHUB_TOKEN, or use --token or --token-file: %w", dperrors.ErrNoCredential)
	}
	return dolthub.NewGraphQLClientFromFile(tokenFile, cfg.DoltHub.GraphQLEndpoint)
}

// resolveToken returns the token from the flag or the environment.
func resolveToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	return os.Getenv("DOLTHUB_TOKEN")
}

// parseRepository parses an owner/repo string into its components.
func parseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	return owner, repo, nil
}

// parsePullID parses a pull request id argument.
func parsePullID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid pull request id: %s", arg)
	}
	return id, nil
}

// newRecordWriter opens the output destination: a file when outputFile is
// set, stdout otherwise.
func newRecordWriter(outputFile string) (output.RecordWriter, error) {
	if outputFile == "" {
		return output.NewWriter(os.Stdout), nil
	}
	writer, err := output.NewFileWriter(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return writer, nil
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, dperrors.ErrNoCredential) ||
		errors.Is(err, dperrors.ErrAtLeastOneField) ||
		errors.Is(err, dperrors.ErrTableRequired) {
		return 2 // Configuration/argument errors
	}

	if errors.Is(err, dperrors.ErrServiceUnavailable) ||
		errors.Is(err, dperrors.ErrMalformedResponse) ||
		errors.Is(err, dperrors.ErrUnexpectedStatus) {
		return 3 // Transport errors
	}

	return 1 // General error
}
