// Copyright 2025 Addykit, LLC
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

package addy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/addykit/addy-export/internal/apierror"
	apperrors "github.com/addykit/addy-export/internal/errors"
)

// maxResponseBytes caps how much of a page response is read into memory.
// A page of 100 aliases is a few hundred KB at most.
const maxResponseBytes = 10 << 20

// RESTClient implements the Client interface against the alias REST API.
// Each page request is a single GET with page[size]/page[number] query
// parameters; authentication headers are added by the transport.
type RESTClient struct {
	httpClient *http.Client
	endpoint   string
	pageSize   int
}

// NewRESTClient creates a new alias API client. The client is configured with:
//   - Authentication via the provided token
//   - Custom endpoint URL (e.g., for self-hosted instances)
//   - An explicit per-request timeout
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
func NewRESTClient(token, endpoint string, pageSize int, timeout time.Duration) *RESTClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &RESTClient{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				token: token,
				base:  transport,
			},
		},
		endpoint: endpoint,
		pageSize: pageSize,
	}
}

// FetchAliasPage retrieves one page of alias records. Any response status of
// 400 or above aborts with a classified error carrying the page number; the
// caller never retries these unless the retry wrapper is configured to.
func (c *RESTClient) FetchAliasPage(ctx context.Context, page int) (*AliasPage, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}

	q := u.Query()
	q.Set("page[size]", strconv.Itoa(c.pageSize))
	q.Set("page[number]", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for page %d: %w", page, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w: %v", page, apperrors.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, statusError(page, resp.StatusCode)
	}

	var envelope pageEnvelope
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	if err := decoder.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode page %d response: %w", page, err)
	}

	return &AliasPage{
		Number:  page,
		Records: envelope.Data,
	}, nil
}

// statusError maps a failure status code to a StatusError wrapping the
// matching sentinel. Carrying the code lets the retry wrapper classify 5xx
// responses without parsing message text.
func statusError(page, status int) error {
	var sentinel error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = apperrors.ErrInvalidToken
	case http.StatusNotFound:
		sentinel = apperrors.ErrAliasesNotFound
	case http.StatusTooManyRequests:
		sentinel = apperrors.ErrRateLimit
	default:
		sentinel = apperrors.ErrRequestFailed
	}
	return &apierror.StatusError{Page: page, StatusCode: status, Err: sentinel}
}
