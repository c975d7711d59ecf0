package view

import "sync"

// Cell is one table cell. A non-empty Href makes the text a link; a non-empty
// Button makes the cell an action control labelled Button.
type Cell struct {
	Text   string
	Href   string
	Button string
}

// Row is a table row. Key identifies the record the row shows (the action
// target of its buttons).
type Row struct {
	Key   string
	Class string
	Cells []Cell
}

// Texts returns the cell texts.
func (r Row) Texts() []string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Text
		if c.Button != "" && c.Text == "" {
			out[i] = "[" + c.Button + "]"
		}
	}
	return out
}

type Table struct {
	mu   sync.Mutex
	rows []Row
}

func NewTable() *Table {
	return &Table{}
}

// Clear removes every row.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = nil
}

// AddRow appends a row.
func (t *Table) AddRow(r Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, r)
}

// Rows returns a snapshot of the rows.
func (t *Table) Rows() []Row {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Row(nil), t.rows...)
}

// Row returns the row with the given key.
func (t *Table) Row(key string) (Row, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range t.rows {
		if r.Key == key {
			return r, true
		}
	}
	return Row{}, false
}
