// Package export renders tabular report data as CSV or PDF documents.
package export

import "fmt"

// Column names one output column.
type Column struct {
	Key    string
	Header string
	// Weight scales the PDF column width relative to the others; zero means 1.
	Weight float64
	Align  Align
}

// Align controls PDF cell alignment.
type Align string

const (
	AlignLeft  Align = "L"
	AlignRight Align = "R"
)

// Table is a titled set of rows keyed by Column.Key.
type Table struct {
	Title   string
	Columns []Column
	Rows    []map[string]string
	// Footer lines are printed under the table (PDF) or appended as rows (CSV).
	Footer []string
}

func (t Table) validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("export: table %q has no columns", t.Title)
	}
	return nil
}

func (t Table) record(row map[string]string) []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = row[col.Key]
	}
	return out
}

func (t Table) headers() []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = col.Header
		if out[i] == "" {
			out[i] = col.Key
		}
	}
	return out
}
