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
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/addykit/addy-export/internal/apierror"
)

// RetryConfig configures the retry behavior for page requests.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts per page request.
	// 1 means no retry, which is the application default.
	MaxAttempts int
	// InitialBackoff is the backoff duration before the first retry.
	InitialBackoff time.Duration
	// MaxBackoff is the maximum backoff duration.
	MaxBackoff time.Duration
	// BackoffMultiplier is the multiplier for exponential backoff.
	BackoffMultiplier float64
}

// DefaultRetryConfig returns the default retry configuration: a single
// attempt. Retrying is strictly opt-in via api.max_attempts.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:       1,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// RetryClient wraps a Client with retry logic for transient transport
// failures using exponential backoff. Auth, not-found, and schema errors
// are never retried.
type RetryClient struct {
	client    Client
	config    *RetryConfig
	inspector apierror.Inspector
	log       zerolog.Logger
}

// NewRetryClient creates a new RetryClient with the given configuration.
func NewRetryClient(client Client, config *RetryConfig, log zerolog.Logger) Client {
	if config == nil {
		config = DefaultRetryConfig()
	}
	return &RetryClient{
		client:    client,
		config:    config,
		inspector: apierror.NewInspector(),
		log:       log,
	}
}

// FetchAliasPage implements the Client interface with retry logic.
func (r *RetryClient) FetchAliasPage(ctx context.Context, page int) (*AliasPage, error) {
	var lastErr error

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		result, err := r.client.FetchAliasPage(ctx, page)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !r.inspector.IsRetryable(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt == r.config.MaxAttempts {
			break
		}

		backoff := r.calculateBackoff(attempt)
		r.log.Warn().
			Int("page", page).
			Int("attempt", attempt).
			Int("max_attempts", r.config.MaxAttempts).
			Dur("backoff", backoff).
			Err(err).
			Msg("transient failure, retrying")

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if r.config.MaxAttempts > 1 {
		return nil, fmt.Errorf("failed after %d attempts: %w", r.config.MaxAttempts, lastErr)
	}
	return nil, lastErr
}

// calculateBackoff returns the backoff duration before the given attempt's
// retry, growing exponentially and capped at MaxBackoff.
func (r *RetryClient) calculateBackoff(attempt int) time.Duration {
	backoff := r.config.InitialBackoff
	for i := 1; i < attempt; i++ {
		backoff = time.Duration(float64(backoff) * r.config.BackoffMultiplier)
		if backoff >= r.config.MaxBackoff {
			return r.config.MaxBackoff
		}
	}
	if backoff > r.config.MaxBackoff {
		backoff = r.config.MaxBackoff
	}
	return backoff
}
