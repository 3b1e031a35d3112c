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

	apperrors "github.com/addykit/addy-export/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
// Pages holds the record pages to serve in order; requests past the end
// receive an empty page.
type MockClient struct {
	// Pages to serve, indexed by page number - 1
	Pages [][]Record

	// Errors to return keyed by page number; takes precedence over Pages
	Errors map[int]error

	// FailuresBeforeSuccess makes the first N calls per page fail with a
	// network error before serving the page. Used to exercise retry.
	FailuresBeforeSuccess int

	// Track calls for verification
	CallCount int
	LastPage  int

	failures map[int]int
}

// FetchAliasPage implements the Client interface.
func (m *MockClient) FetchAliasPage(ctx context.Context, page int) (*AliasPage, error) {
	m.CallCount++
	m.LastPage = page

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err, ok := m.Errors[page]; ok {
		return nil, err
	}

	if m.FailuresBeforeSuccess > 0 {
		if m.failures == nil {
			m.failures = make(map[int]int)
		}
		if m.failures[page] < m.FailuresBeforeSuccess {
			m.failures[page]++
			return nil, fmt.Errorf("page %d: %w: connection reset", page, apperrors.ErrNetworkFailure)
		}
	}

	result := &AliasPage{Number: page}
	if page <= len(m.Pages) {
		result.Records = m.Pages[page-1]
	}
	return result, nil
}
