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

// Package output writes projected tables as CSV. File output uses a
// write-to-temp-and-rename pattern so an aborted run never leaves a
// truncated or half-correct file behind; the target is fully replaced on
// each successful run.
//
// Example usage:
//
//	table := &export.Table{Header: []string{"email"}, Rows: rows}
//	writer := output.NewFileWriter("aliases.csv")
//	if err := writer.WriteTable(table); err != nil {
//	    // Handle error; the previous file, if any, is untouched
//	}
package output
