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

package apierror

import (
	"errors"
	"net"
	"strings"

	apperrors "github.com/addykit/addy-export/internal/errors"
)

// Inspector provides methods for analyzing alias API errors.
type Inspector interface {
	// IsAuthError returns true if the error represents an authentication or authorization failure.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the error represents a resource not found error.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the error represents a rate limit error.
	IsRateLimitError(err error) bool

	// IsRetryable returns true if a retry of the failed request could succeed.
	// Only transient transport problems qualify; schema and auth failures never do.
	IsRetryable(err error) bool
}

// AliasErrorInspector implements the Inspector interface for alias API errors.
// Classification works through the error chain first and falls back to
// message inspection for errors produced outside this module.
type AliasErrorInspector struct{}

// NewInspector creates a new AliasErrorInspector.
func NewInspector() Inspector {
	return &AliasErrorInspector{}
}

// IsAuthError checks if the error is an authentication or authorization error.
func (i *AliasErrorInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, apperrors.ErrInvalidToken) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "401") ||
		strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "unauthenticated") ||
		strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "forbidden")
}

// IsNotFoundError checks if the error is a not found error.
func (i *AliasErrorInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, apperrors.ErrAliasesNotFound) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "404") ||
		strings.Contains(errStr, "not found")
}

// IsRateLimitError checks if the error is a rate limit error.
func (i *AliasErrorInspector) IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, apperrors.ErrRateLimit) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "too many requests")
}

// IsRetryable checks if the error is a transient transport failure.
func (i *AliasErrorInspector) IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if i.IsAuthError(err) || i.IsNotFoundError(err) {
		return false
	}
	if errors.Is(err, apperrors.ErrNetworkFailure) {
		return true
	}

	// Errors carrying a status code are classified by the code itself:
	// every server-side failure is worth another attempt when the caller
	// opted into retrying, client errors never are.
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "502") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "504")
}
