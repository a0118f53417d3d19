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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	dperrors "github.com/doltpr/doltpr/internal/errors"
	"github.com/doltpr/doltpr/pkg/version"
)

// DefaultEndpoint is DoltHub's hosted GraphQL endpoint.
const DefaultEndpoint = "https://www.dolthub.com/graphql"

// upstreamTimeoutBody is the literal body DoltHub answers with when it
// cannot contact its own backend. It is matched before any JSON decoding.
const upstreamTimeoutBody = "upstream request timeout"

// maxResponseBytes caps response bodies to prevent excessive memory usage.
const maxResponseBytes = 10 * 1024 * 1024

// allowedStatusCodes is the allow-set of HTTP statuses treated as success.
// 418 is DoltHub's soft-block signal and is deliberately included.
var allowedStatusCodes = map[int]bool{
	http.StatusOK:               true,
	http.StatusMovedPermanently: true,
	http.StatusFound:            true,
	http.StatusTeapot:           true,
}

// Operation is one named GraphQL query or mutation with its bound
// variables. It is the wire shape POSTed to the endpoint.
type Operation struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Query         string         `json:"query"`
}

// Response is a decoded GraphQL envelope plus the transport context it
// arrived with. Data is left raw for per-operation decoding.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`

	StatusCode int    `json:"-"`
	Body       []byte `json:"-"`
}

// GraphQLClient implements the Client interface against DoltHub's GraphQL
// API. Construction fails without a credential; beyond that, every failure
// is surfaced per call, never retried.
type GraphQLClient struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
}

// NewGraphQLClient creates a client authenticating with the given
// dolthubToken cookie value. An empty endpoint selects DefaultEndpoint.
// An empty token is a configuration error; no call proceeds without one.
func NewGraphQLClient(token, endpoint string) (*GraphQLClient, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("cannot use authenticated operations without the dolthubToken cookie value: %w", dperrors.ErrNoCredential)
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	// Pooled transport tuned the same way for every client instance.
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: &cookieTransport{
			token: token,
			base:  transport,
		},
	}

	return &GraphQLClient{
		httpClient: httpClient,
		endpoint:   endpoint,
	}, nil
}

// NewGraphQLClientFromFile creates a client with the credential read from
// tokenFile (first line, trimmed). A missing file is a configuration error.
func NewGraphQLClientFromFile(tokenFile, endpoint string) (*GraphQLClient, error) {
	token, err := TokenFromFile(tokenFile)
	if err != nil {
		return nil, err
	}
	return NewGraphQLClient(token, endpoint)
}

// SetLogger enables debug logging of request timings. Nil disables it.
func (c *GraphQLClient) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// Do executes a single GraphQL operation and classifies the outcome:
//
//  1. The literal upstream-timeout body is a ServiceUnavailableError and is
//     never decoded.
//  2. A body that does not decode as a GraphQL envelope is a
//     MalformedResponseError.
//  3. A status outside the allow-set {200, 301, 302, 418} is a StatusError.
//  4. An envelope with a top-level error list is an APIError.
//  5. Otherwise the decoded envelope is returned.
//
// Do is also the raw escape hatch for operations this package does not
// wrap, or for features DoltHub ships before this client catches up.
func (c *GraphQLClient) Do(ctx context.Context, op Operation) (*Response, error) {
	payload, err := json.Marshal(op)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", op.OperationName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op.OperationName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", op.OperationName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op.OperationName, err)
	}

	if c.logger != nil {
		c.logger.Debug("graphql request",
			slog.String("operationName", op.OperationName),
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", time.Since(start)))
	}

	if strings.TrimSpace(string(body)) == upstreamTimeoutBody {
		return nil, &ServiceUnavailableError{
			Body:       string(body),
			StatusCode: resp.StatusCode,
		}
	}

	var envelope Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &MalformedResponseError{
			Body:       string(body),
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}
	envelope.StatusCode = resp.StatusCode
	envelope.Body = body

	if !allowedStatusCodes[resp.StatusCode] {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Data:       envelope.Data,
			Body:       body,
		}
	}

	if len(envelope.Errors) > 0 {
		return nil, &APIError{
			Errors:     envelope.Errors,
			Data:       envelope.Data,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return &envelope, nil
}

// decodeData unmarshals a response's data payload into the operation's raw
// shape. A data payload that does not match is treated as malformed.
func decodeData(resp *Response, op string, v any) error {
	if err := json.Unmarshal(resp.Data, v); err != nil {
		return &MalformedResponseError{
			Body:       string(resp.Body),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode %s data: %w", op, err),
		}
	}
	return nil
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive
// memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// cookieTransport adds the DoltHub cookie credential and safety limits to
// HTTP requests.
type cookieTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *cookieTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	req = req.Clone(req.Context())

	// DoltHub authenticates with a cookie, not a bearer header.
	req.Header.Set("Cookie", "dolthubToken="+t.token)
	req.Header.Set("User-Agent", fmt.Sprintf("doltpr/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseBytes,
		}
	}

	return resp, nil
}
