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
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	apperrors "github.com/addykit/addy-export/internal/errors"
)

// newAliasServer serves the given pages keyed by page[number]; any other
// page number gets an empty data array.
func newAliasServer(t *testing.T, pages map[int][]map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want Bearer test-token", got)
		}
		if got := r.Header.Get("X-Requested-With"); got != "XMLHttpRequest" {
			t.Errorf("X-Requested-With = %q, want XMLHttpRequest", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}

		page, err := strconv.Atoi(r.URL.Query().Get("page[number]"))
		if err != nil {
			t.Errorf("missing or invalid page[number]: %v", err)
		}
		if got := r.URL.Query().Get("page[size]"); got != "100" {
			t.Errorf("page[size] = %q, want 100", got)
		}

		data := pages[page]
		if data == nil {
			data = []map[string]any{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
}

func TestFetchAliasPage(t *testing.T) {
	server := newAliasServer(t, map[int][]map[string]any{
		1: {
			{"email": "a@example.com", "description": "first", "active": true},
			{"email": "b@example.com", "description": nil, "emails_forwarded": float64(3)},
		},
	})
	defer server.Close()

	client := NewRESTClient("test-token", server.URL, 100, 5*time.Second)

	page, err := client.FetchAliasPage(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchAliasPage failed: %v", err)
	}
	if page.Number != 1 {
		t.Errorf("Number = %d, want 1", page.Number)
	}
	if len(page.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(page.Records))
	}
	if page.Records[0]["email"] != "a@example.com" {
		t.Errorf("first record email = %v, want a@example.com", page.Records[0]["email"])
	}
	if v, ok := page.Records[1]["description"]; !ok || v != nil {
		t.Errorf("null description should be present with nil value, got %v (present=%v)", v, ok)
	}
}

func TestFetchAliasPageEmpty(t *testing.T) {
	server := newAliasServer(t, nil)
	defer server.Close()

	client := NewRESTClient("test-token", server.URL, 100, 5*time.Second)

	page, err := client.FetchAliasPage(context.Background(), 7)
	if err != nil {
		t.Fatalf("FetchAliasPage failed: %v", err)
	}
	if len(page.Records) != 0 {
		t.Errorf("got %d records, want 0", len(page.Records))
	}
}

func TestFetchAliasPageStatusErrors(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{http.StatusUnauthorized, apperrors.ErrInvalidToken},
		{http.StatusForbidden, apperrors.ErrInvalidToken},
		{http.StatusNotFound, apperrors.ErrAliasesNotFound},
		{http.StatusTooManyRequests, apperrors.ErrRateLimit},
		{http.StatusInternalServerError, apperrors.ErrRequestFailed},
		{http.StatusBadRequest, apperrors.ErrRequestFailed},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(http.StatusText(tt.status)))
			}))
			defer server.Close()

			client := NewRESTClient("test-token", server.URL, 100, 5*time.Second)

			_, err := client.FetchAliasPage(context.Background(), 3)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("status %d: error = %v, want %v", tt.status, err, tt.sentinel)
			}
			if err == nil || !strings.Contains(err.Error(), "page 3") {
				t.Errorf("error %v should name the failing page", err)
			}
		})
	}
}

func TestFetchAliasPageNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately, so the dial fails

	client := NewRESTClient("test-token", server.URL, 100, time.Second)

	_, err := client.FetchAliasPage(context.Background(), 1)
	if !errors.Is(err, apperrors.ErrNetworkFailure) {
		t.Errorf("error = %v, want ErrNetworkFailure", err)
	}
}

func TestFetchAliasPageBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	}))
	defer server.Close()

	client := NewRESTClient("test-token", server.URL, 100, time.Second)

	_, err := client.FetchAliasPage(context.Background(), 1)
	if err == nil {
		t.Fatal("expected decode error for truncated JSON")
	}
}

func TestPagerFetchAll(t *testing.T) {
	pages := map[int][]map[string]any{}
	for p := 1; p <= 3; p++ {
		var records []map[string]any
		for i := 0; i < 4; i++ {
			records = append(records, map[string]any{
				"email": fmt.Sprintf("alias%d-%d@example.com", p, i),
			})
		}
		pages[p] = records
	}
	server := newAliasServer(t, pages)
	defer server.Close()

	client := NewRESTClient("test-token", server.URL, 100, 5*time.Second)
	pager := NewPager(client, testLogger())

	records, err := pager.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(records) != 12 {
		t.Fatalf("got %d records, want 12", len(records))
	}

	// Server order must be preserved across page boundaries
	if records[0]["email"] != "alias1-0@example.com" {
		t.Errorf("first record = %v", records[0]["email"])
	}
	if records[4]["email"] != "alias2-0@example.com" {
		t.Errorf("fifth record = %v", records[4]["email"])
	}
	if records[11]["email"] != "alias3-3@example.com" {
		t.Errorf("last record = %v", records[11]["email"])
	}
}

func TestPagerFetchAllNoRecords(t *testing.T) {
	server := newAliasServer(t, nil)
	defer server.Close()

	client := NewRESTClient("test-token", server.URL, 100, 5*time.Second)
	pager := NewPager(client, testLogger())

	records, err := pager.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestPagerFetchAllAbortsOnError(t *testing.T) {
	client := &MockClient{
		Pages: [][]Record{
			{{"email": "a@example.com"}},
		},
		Errors: map[int]error{
			2: fmt.Errorf("page 2: status 500: %w", apperrors.ErrRequestFailed),
		},
	}
	pager := NewPager(client, testLogger())

	records, err := pager.FetchAll(context.Background())
	if !errors.Is(err, apperrors.ErrRequestFailed) {
		t.Errorf("error = %v, want ErrRequestFailed", err)
	}
	if records != nil {
		t.Errorf("partial records returned on failure: %v", records)
	}
}
