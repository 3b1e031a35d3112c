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

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/addykit/addy-export/internal/export"
)

// Writer writes a table as CSV to an io.Writer. Standard CSV quoting
// applies, so values containing commas, quotes, or newlines round-trip.
type Writer struct {
	output io.Writer
}

var (
	_ TableWriter = (*Writer)(nil)
	_ TableWriter = (*FileWriter)(nil)
)

// NewWriter creates a CSV writer over the given output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{output: w}
}

// WriteTable writes the header row followed by every data row. An empty
// header (inferred from zero records) produces no output at all, since a
// zero-column row has no CSV representation.
func (w *Writer) WriteTable(table *export.Table) error {
	if len(table.Header) == 0 && len(table.Rows) == 0 {
		return nil
	}

	cw := csv.NewWriter(w.output)
	if err := cw.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// FileWriter persists tables to a file path atomically.
type FileWriter struct {
	path string
}

// NewFileWriter creates a writer targeting the given path. The file is not
// touched until WriteTable succeeds in full.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// WriteTable writes the table to a temp file next to the target, then
// renames it into place. The rename is atomic on POSIX filesystems, so the
// target either keeps its previous content or gets the complete new CSV.
func (f *FileWriter) WriteTable(table *export.Table) error {
	tempFile := f.path + ".tmp"

	file, err := os.Create(tempFile)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := NewWriter(file).WriteTable(table); err != nil {
		file.Close()
		os.Remove(tempFile)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempFile, f.path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
