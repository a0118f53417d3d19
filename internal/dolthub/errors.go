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
	"encoding/json"
	"fmt"

	dperrors "github.com/doltpr/doltpr/internal/errors"
)

// ServiceUnavailableError is returned when DoltHub answers with the literal
// body signaling it cannot reach its own backend. The body is never decoded.
type ServiceUnavailableError struct {
	Body       string
	StatusCode int
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("dolthub cannot contact its upstream right now (status %d), try again later", e.StatusCode)
}

// Unwrap makes errors.Is(err, errors.ErrServiceUnavailable) work.
func (e *ServiceUnavailableError) Unwrap() error { return dperrors.ErrServiceUnavailable }

// MalformedResponseError is returned when the response body does not decode
// as a GraphQL envelope. Body carries the raw text for inspection.
type MalformedResponseError struct {
	Body       string
	StatusCode int
	Err        error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("dolthub sent a non-JSON response (status %d): %v", e.StatusCode, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return dperrors.ErrMalformedResponse }

// StatusError is returned for an HTTP status outside the allow-set
// {200, 301, 302, 418}. The decoded envelope and raw body are attached.
type StatusError struct {
	StatusCode int
	Data       json.RawMessage
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dolthub returned http status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error { return dperrors.ErrUnexpectedStatus }

// GraphQLError is one entry of the API's error list.
type GraphQLError struct {
	Message string          `json:"message"`
	Path    []any           `json:"path,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// APIError is returned when the decoded envelope carries a top-level error
// list. Partial data, status, and the raw body are attached for inspection.
type APIError struct {
	Errors     []GraphQLError
	Data       json.RawMessage
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("dolthub graphql error (status %d): %s", e.StatusCode, e.Errors[0].Message)
	}
	return fmt.Sprintf("dolthub graphql error (status %d)", e.StatusCode)
}

func (e *APIError) Unwrap() error { return dperrors.ErrAPIResponse }
