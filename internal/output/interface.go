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

package output

import "github.com/addykit/addy-export/internal/export"

// TableWriter defines the interface for persisting a projected table.
// This abstraction allows other output formats to be implemented without
// changing the core pipeline.
type TableWriter interface {
	// WriteTable writes the complete table. Implementations must not leave
	// partial output behind on error.
	WriteTable(table *export.Table) error
}
