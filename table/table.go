// Package table accumulates numeric results into a CSV file.
//
// A table has a named first column holding row names, followed by named
// value columns. Callers describe the columns they are about to fill with
// SetColumns and SetColumnName, select a row with SetRow and write values
// with SetEntry. Columns and rows are matched by name, so repeated runs can
// add to a file written earlier; cells never written are zero. Save
// rewrites the whole file.
package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/gogpu/gpures"
)

// Table errors.
var (
	// ErrColumnIndex is returned for a column index outside the current
	// column set or one that was never named.
	ErrColumnIndex = errors.New("table: column index out of range")

	// ErrNoRow is returned by SetEntry before any SetRow.
	ErrNoRow = errors.New("table: no current row")
)

type row struct {
	name   string
	values []float64
}

// Table is an in-memory CSV table bound to a file path.
// Table is not safe for concurrent use.
type Table struct {
	path        string
	firstColumn string
	columns     []string
	rows        []row

	current []int // current column index -> column id, -1 if unnamed
	row     int   // current row, -1 before SetRow
}

// Open returns a table bound to path. If the file exists and its first
// header cell equals firstColumn, its columns and rows are loaded;
// otherwise the table starts empty and Save replaces the file.
func Open(path, firstColumn string) (*Table, error) {
	t := &Table{path: path, firstColumn: firstColumn, row: -1}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	defer f.Close()

	if err := t.load(f); err != nil {
		return nil, fmt.Errorf("table: load %s: %w", path, err)
	}
	return t, nil
}

func (t *Table) load(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if header[0] != t.firstColumn {
		gpures.Logger().Warn("table: header mismatch, starting empty",
			"path", t.path, "want", t.firstColumn, "got", header[0])
		return nil
	}
	t.columns = slices.Clone(header[1:])

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if rec[0] == "" {
			continue
		}
		values := make([]float64, len(t.columns))
		for i, cell := range rec[1:] {
			if i >= len(values) {
				break
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return fmt.Errorf("row %q column %d: %w", rec[0], i+1, err)
			}
			values[i] = v
		}
		t.rows = append(t.rows, row{name: rec[0], values: values})
	}
}

// Path returns the file the table is saved to.
func (t *Table) Path() string { return t.path }

// Columns returns the value column names in file order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// Rows returns the row names in file order.
func (t *Table) Rows() []string {
	names := make([]string, len(t.rows))
	for i, r := range t.rows {
		names[i] = r.name
	}
	return names
}

// SetColumns sets the number of current column indexes. Indexes that
// already had a name keep it.
func (t *Table) SetColumns(n int) {
	if n < 0 {
		n = 0
	}
	for len(t.current) < n {
		t.current = append(t.current, -1)
	}
	t.current = t.current[:n]
}

// SetColumnName binds current column index i to the column called name,
// appending the column if the table does not have it yet.
func (t *Table) SetColumnName(i int, name string) error {
	if i < 0 || i >= len(t.current) {
		return fmt.Errorf("%w: %d", ErrColumnIndex, i)
	}
	id := slices.Index(t.columns, name)
	if id < 0 {
		id = len(t.columns)
		t.columns = append(t.columns, name)
		for r := range t.rows {
			t.rows[r].values = append(t.rows[r].values, 0)
		}
	}
	t.current[i] = id
	return nil
}

// SetRow selects the row called name, appending it if needed.
func (t *Table) SetRow(name string) {
	idx := slices.IndexFunc(t.rows, func(r row) bool { return r.name == name })
	if idx < 0 {
		idx = len(t.rows)
		t.rows = append(t.rows, row{name: name, values: make([]float64, len(t.columns))})
	}
	t.row = idx
}

// SetEntry stores v in the current row under current column index i.
func (t *Table) SetEntry(i int, v float64) error {
	if t.row < 0 {
		return ErrNoRow
	}
	if i < 0 || i >= len(t.current) || t.current[i] < 0 {
		return fmt.Errorf("%w: %d", ErrColumnIndex, i)
	}
	t.rows[t.row].values[t.current[i]] = v
	return nil
}

// Value returns the cell at the named row and column.
func (t *Table) Value(rowName, column string) (float64, bool) {
	c := slices.Index(t.columns, column)
	if c < 0 {
		return 0, false
	}
	for _, r := range t.rows {
		if r.name == rowName {
			return r.values[c], true
		}
	}
	return 0, false
}

// Save writes the whole table to its path, replacing the file.
func (t *Table) Save() error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{t.firstColumn}, t.columns...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	rec := make([]string, 0, len(header))
	for _, r := range t.rows {
		rec = append(rec[:0], r.name)
		for _, v := range r.values {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("table: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("table: %w", err)
	}

	if err := os.WriteFile(t.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	gpures.Logger().Debug("table: saved", "path", t.path, "rows", len(t.rows), "columns", len(t.columns))
	return nil
}
