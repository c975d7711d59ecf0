package models

import (
	"strconv"
	"strings"
)

// SummarySeparator delimits the fields of a summary overview line.
const SummarySeparator = " | "

// DetailedHeader labels the columns of the detailed overview.
var DetailedHeader = []string{"Name", "Description", "Creation Date", "Modification Date", "Updated"}

// OverviewRow is one rendered row of the overview table. It lives only for the
// duration of a render pass.
type OverviewRow struct {
	Name   string
	Fields []string
}

// Cells returns the row as table cells, name first.
func (r OverviewRow) Cells() []string {
	return append([]string{r.Name}, r.Fields...)
}

// SummaryRow decodes a pre-formatted "name | f2 | f3" line. Parts beyond the
// third are ignored and missing parts are empty.
func SummaryRow(line string) OverviewRow {
	parts := strings.Split(line, SummarySeparator)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return OverviewRow{Name: parts[0], Fields: []string{parts[1], parts[2]}}
}

// DetailedRow projects a collection onto the five detailed columns.
func DetailedRow(c DataCollection) OverviewRow {
	return OverviewRow{
		Name: c.Name,
		Fields: []string{
			c.Description,
			c.CreationDate,
			c.ModificationDate,
			strconv.FormatBool(c.Updated),
		},
	}
}
