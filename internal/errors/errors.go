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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrNoCredential indicates no DoltHub credential was provided, or the
	// credential file does not exist. No call proceeds without one.
	// Maps to exit code 2.
	ErrNoCredential = errors.New("no dolthub credential provided")

	// ErrAtLeastOneField indicates an update was requested with none of the
	// optional fields set. Raised before any network call.
	// Maps to exit code 2.
	ErrAtLeastOneField = errors.New("at least one of state, title, or message must be set")

	// ErrTableRequired indicates a diff-rows call without a table name.
	// Raised before any network call. Maps to exit code 2.
	ErrTableRequired = errors.New("table name is required")

	// ErrNotImplemented indicates an explicitly unsupported mode, raised
	// instead of silently returning wrong data. Maps to exit code 1.
	ErrNotImplemented = errors.New("feature not implemented")

	// ErrServiceUnavailable indicates DoltHub could not reach its own
	// backend. Maps to exit code 3.
	ErrServiceUnavailable = errors.New("dolthub upstream unavailable")

	// ErrMalformedResponse indicates the response body could not be decoded
	// as a GraphQL envelope. Maps to exit code 3.
	ErrMalformedResponse = errors.New("malformed graphql response")

	// ErrUnexpectedStatus indicates an HTTP status outside the allow-set.
	// Maps to exit code 3.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrAPIResponse indicates the GraphQL API reported an error list.
	// Maps to exit code 1.
	ErrAPIResponse = errors.New("graphql api error")
)
