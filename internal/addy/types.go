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

// Record is one alias as returned by the service: a mapping from field name
// to scalar value (string, bool, number, or null). Records are treated as
// immutable once fetched.
type Record map[string]any

// AliasPage represents one page of alias records. A page with zero records
// signals the end of the listing.
type AliasPage struct {
	// Number is the 1-based page number this page was fetched as.
	Number int

	// Records holds the page's alias records in server-provided order.
	Records []Record
}

// pageEnvelope matches the JSON response shape of the aliases endpoint.
type pageEnvelope struct {
	Data []Record `json:"data"`
}
