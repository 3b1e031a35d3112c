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

// Package addy provides a client for the addy.io alias REST API. It covers
// page-numbered retrieval of alias records, the pager that walks every page
// until the service returns an empty one, an optional retry wrapper, and the
// known-column schema used to validate --columns selections before any
// network call.
//
// The package includes:
//   - A Client interface for fetching one page of alias records
//   - A REST implementation over net/http
//   - A Pager that concatenates all pages in server order
//   - A RetryClient honoring the configured attempt budget
//   - Mock client for testing
//
// Basic usage:
//
//	client := addy.NewRESTClient("your-api-token", endpoint, 100, 30*time.Second)
//	pager := addy.NewPager(client, logger)
//	records, err := pager.FetchAll(ctx)
//	if err != nil {
//	    // Handle error
//	}
package addy
