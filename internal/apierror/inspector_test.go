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
	"fmt"
	"testing"

	apperrors "github.com/addykit/addy-export/internal/errors"
)

func TestIsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"sentinel", apperrors.ErrInvalidToken, true},
		{"wrapped sentinel", fmt.Errorf("page 1: %w", apperrors.ErrInvalidToken), true},
		{"401 in message", errors.New("received status 401"), true},
		{"unauthenticated message", errors.New("request unauthenticated"), true},
		{"unrelated error", errors.New("something broke"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	if !inspector.IsNotFoundError(apperrors.ErrAliasesNotFound) {
		t.Error("sentinel not classified as not-found")
	}
	if !inspector.IsNotFoundError(errors.New("404 page not found")) {
		t.Error("404 message not classified as not-found")
	}
	if inspector.IsNotFoundError(errors.New("connection refused")) {
		t.Error("network error classified as not-found")
	}
}

func TestIsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	if !inspector.IsRateLimitError(apperrors.ErrRateLimit) {
		t.Error("sentinel not classified as rate limit")
	}
	if !inspector.IsRateLimitError(errors.New("429 too many requests")) {
		t.Error("429 message not classified as rate limit")
	}
	if inspector.IsRateLimitError(nil) {
		t.Error("nil classified as rate limit")
	}
}

func TestIsRetryable(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"network sentinel", apperrors.ErrNetworkFailure, true},
		{"connection refused", errors.New("dial tcp 127.0.0.1:443: connection refused"), true},
		{"timeout message", errors.New("request timeout"), true},
		{"502 status", errors.New("received status 502"), true},
		{"auth error never retryable", apperrors.ErrInvalidToken, false},
		{"not found never retryable", apperrors.ErrAliasesNotFound, false},
		{"missing column never retryable", apperrors.ErrMissingColumn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatusCodes(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		status   int
		sentinel error
		want     bool
	}{
		{500, apperrors.ErrRequestFailed, true},
		{501, apperrors.ErrRequestFailed, true},
		{502, apperrors.ErrRequestFailed, true},
		{503, apperrors.ErrRequestFailed, true},
		{504, apperrors.ErrRequestFailed, true},
		{400, apperrors.ErrRequestFailed, false},
		{401, apperrors.ErrInvalidToken, false},
		{404, apperrors.ErrAliasesNotFound, false},
		{429, apperrors.ErrRateLimit, false},
	}

	for _, tt := range tests {
		err := &StatusError{Page: 1, StatusCode: tt.status, Err: tt.sentinel}
		if got := inspector.IsRetryable(err); got != tt.want {
			t.Errorf("IsRetryable(status %d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestStatusErrorWrapsSentinel(t *testing.T) {
	err := &StatusError{Page: 3, StatusCode: 500, Err: apperrors.ErrRequestFailed}

	if !errors.Is(err, apperrors.ErrRequestFailed) {
		t.Error("StatusError does not match its sentinel")
	}
	if got := err.Error(); got != "page 3: status 500: page request failed" {
		t.Errorf("Error() = %q", got)
	}
}
