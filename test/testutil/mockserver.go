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

// Package testutil provides common test helpers for addy-export
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
)

// MockServer wraps an httptest server shaped like the alias API.
type MockServer struct {
	*httptest.Server
	requestCount int32
}

// RequestCount returns how many page requests the server has received.
func (s *MockServer) RequestCount() int {
	return int(atomic.LoadInt32(&s.requestCount))
}

// NewAliasServer creates a mock server that serves the given pages in order.
// Page numbers past the last configured page return an empty data array,
// which is how the real service signals the end of the listing.
func NewAliasServer(t *testing.T, pages [][]map[string]any) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&mock.requestCount, 1)

		page, err := strconv.Atoi(r.URL.Query().Get("page[number]"))
		if err != nil || page < 1 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message": "invalid page number"}`))
			return
		}

		data := []map[string]any{}
		if page <= len(pages) {
			data = pages[page-1]
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))

	return mock
}

// NewErrorServer creates a mock server that always returns the specified error
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&mock.requestCount, 1)
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	}))

	return mock
}

// NewFlakyServer creates a mock server that fails the first failCount
// requests with the given status, then serves the pages normally.
func NewFlakyServer(t *testing.T, failCount, statusCode int, pages [][]map[string]any) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := atomic.AddInt32(&mock.requestCount, 1)

		if count <= int32(failCount) {
			w.WriteHeader(statusCode)
			_, _ = w.Write([]byte(http.StatusText(statusCode)))
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page[number]"))
		data := []map[string]any{}
		if page >= 1 && page <= len(pages) {
			data = pages[page-1]
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))

	return mock
}

// GenerateAliasPage generates count alias records for a page, with
// predictable field values derived from the page number.
func GenerateAliasPage(page, count int) []map[string]any {
	records := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, map[string]any{
			"id":          fmt.Sprintf("id-%d-%d", page, i),
			"email":       fmt.Sprintf("alias%d-%d@example.com", page, i),
			"description": fmt.Sprintf("alias %d on page %d", i, page),
			"active":      i%2 == 0,
		})
	}
	return records
}
