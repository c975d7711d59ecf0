package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/backuporganizer/internal/client/ui"
	"github.com/dmitrijs2005/backuporganizer/internal/client/view"
	"golang.org/x/term"
)

// getTermSize is a test seam for term.GetSize.
var getTermSize = term.GetSize

const minCellWidth = 8

// cellWidth is the widest a table cell may print so that a row of columns
// cells fits the terminal. Zero means no limit.
func cellWidth(columns int) int {
	if columns == 0 {
		return 0
	}
	width, _, err := getTermSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return max(width/columns-2, minCellWidth)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}

func writeTable(w io.Writer, rows []view.Row) {
	columns := 0
	for _, r := range rows {
		columns = max(columns, len(r.Cells))
	}
	limit := cellWidth(columns)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		texts := r.Texts()
		for i := range texts {
			texts[i] = truncate(texts[i], limit)
		}
		fmt.Fprintln(tw, strings.Join(texts, "\t"))
	}
	tw.Flush()
}

func writeStatus(w io.Writer, area *view.StatusArea) {
	for _, line := range area.Lines() {
		fmt.Fprintln(w, "! "+line)
	}
}

func writeSuggestions(w io.Writer, bar ui.SearchBar) {
	entries := bar.Suggestions.Entries()
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w, "Suggestions:")
	for i, s := range entries {
		fmt.Fprintf(w, "  %d) %s\n", i+1, s.Text)
	}
}

func writeForm(w io.Writer, form *view.Form, fields []string, checkboxes ...string) {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "  %s:\t%s\n", f, form.Value(f))
	}
	for _, f := range checkboxes {
		fmt.Fprintf(tw, "  %s:\t%t\n", f, form.Checked(f))
	}
	tw.Flush()
}

func renderIndex(w io.Writer, p *ui.IndexPage) {
	fmt.Fprintf(w, "== %s ==\n", p.Heading.Get())
	writeStatus(w, p.Status)
	rows := p.Overview.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no collections)")
	} else {
		writeTable(w, rows)
	}
	writeSuggestions(w, p.SearchBar)
}

func renderInfo(w io.Writer, p *ui.InfoPage) {
	fmt.Fprintf(w, "== %s ==\n", p.Title.Get())
	writeStatus(w, p.Status)
	writeForm(w, p.Form, ui.CollectionFields, ui.FieldUpdated)

	fmt.Fprintln(w, "Backups:")
	rows := p.Backups.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(w, "(none)")
	} else {
		writeTable(w, rows)
	}
	writeSuggestions(w, p.SearchBar)
}
