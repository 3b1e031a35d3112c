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

// Package export turns fetched alias records into the tabular structure that
// gets written as CSV. Projection is a pure transform: it touches no network
// and no disk, so a run can validate the entire record set before a single
// output byte exists.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/addykit/addy-export/internal/addy"
	apperrors "github.com/addykit/addy-export/internal/errors"
)

// Table is the artifact persisted as CSV: a header row followed by one row
// per record, each row's values in header order. Every row has exactly
// len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// MissingColumnsError reports a record that lacks one or more requested
// columns. Index is the record's position in the fetched sequence.
type MissingColumnsError struct {
	Index   int
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("record %d: missing columns [%s]", e.Index, strings.Join(e.Columns, ", "))
}

// Is makes the error match the ErrMissingColumn sentinel.
func (e *MissingColumnsError) Is(target error) bool {
	return target == apperrors.ErrMissingColumn
}

// Project converts records into a Table.
//
// With an explicit column set, every record must contain every requested
// column as a key. A key that is present with a null value is fine and
// projects to an empty cell; only an absent key is a missing column, and
// the first offending record aborts the projection. With a nil column set,
// the header is inferred as the sorted union of all keys and absent keys
// project to empty cells.
func Project(records []addy.Record, columns []string) (*Table, error) {
	strict := columns != nil
	if !strict {
		columns = InferColumns(records)
	}

	table := &Table{
		Header: columns,
		Rows:   make([][]string, 0, len(records)),
	}

	for i, record := range records {
		row := make([]string, len(columns))
		var missing []string
		for j, name := range columns {
			value, ok := record[name]
			if !ok {
				if strict {
					missing = append(missing, name)
				}
				continue
			}
			row[j] = formatValue(value)
		}
		if len(missing) > 0 {
			return nil, &MissingColumnsError{Index: i, Columns: missing}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// InferColumns returns the sorted union of all keys across records.
// Zero records yield an empty column set.
func InferColumns(records []addy.Record) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		for name := range record {
			seen[name] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for name := range seen {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}

// formatValue renders a decoded JSON value as a CSV cell. Scalars map the
// obvious way; nested structures fall back to compact JSON so no data is
// silently dropped.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
