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

// Package main implements the doltpr command-line interface. It wraps the
// DoltHub GraphQL client with commands to read and mutate pull-request
// state, streaming list-style results as NDJSON.
//
// Authentication uses the dolthubToken cookie value, resolved in order
// from the --token flag, the DOLTHUB_TOKEN environment variable (a local
// .env file is honored), the --token-file flag, and the config file's
// credential.token_file entry.
//
// Usage:
//
//	doltpr show <owner>/<repo> <id>
//	doltpr list <owner>/<repo>
//	doltpr update <owner>/<repo> <id> --state Merged
//
// Exit codes:
//   - 0: Success
//   - 1: General error (including API-reported errors)
//   - 2: Configuration or argument error
//   - 3: Transport error (unreachable upstream, malformed response,
//     unexpected status)
package main
