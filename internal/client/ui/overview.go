package ui

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/backuporganizer/internal/client/models"
	"github.com/dmitrijs2005/backuporganizer/internal/client/view"
)

// Row classes of the overview table.
const (
	ClassSummary  = "overviewtd"
	ClassDetailed = "detailedoverviewtd"
)

// OverviewMode selects how the overview table is rendered.
type OverviewMode int

const (
	ModeSummary OverviewMode = iota
	ModeDetailed
)

// Heading is the label shown above the table in this mode.
func (m OverviewMode) Heading() string {
	if m == ModeDetailed {
		return "Detailed Overview"
	}
	return "Overview"
}

func (m OverviewMode) String() string {
	if m == ModeDetailed {
		return "detailed"
	}
	return "summary"
}

type OverviewSource interface {
	Overview(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]models.DataCollection, error)
}

// OverviewRenderer shows every collection in the summary or detailed mode.
// The mode starts as summary and changes only through Toggle.
type OverviewRenderer struct {
	src     OverviewSource
	table   *view.Table
	heading *view.Text
	status  *StatusReporter

	mu   sync.Mutex
	mode OverviewMode
}

func NewOverviewRenderer(src OverviewSource, table *view.Table, heading *view.Text, status *StatusReporter) *OverviewRenderer {
	heading.Set(ModeSummary.Heading())
	return &OverviewRenderer{src: src, table: table, heading: heading, status: status, mode: ModeSummary}
}

func (o *OverviewRenderer) Mode() OverviewMode {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mode
}

// Load fetches and renders the current mode from an empty table.
func (o *OverviewRenderer) Load(ctx context.Context) error {
	o.table.Clear()
	return o.render(ctx, o.Mode())
}

// Toggle clears the table, switches mode and renders the other listing.
func (o *OverviewRenderer) Toggle(ctx context.Context) error {
	o.table.Clear()

	o.mu.Lock()
	if o.mode == ModeSummary {
		o.mode = ModeDetailed
	} else {
		o.mode = ModeSummary
	}
	mode := o.mode
	o.mu.Unlock()

	o.heading.Set(mode.Heading())
	return o.render(ctx, mode)
}

func (o *OverviewRenderer) render(ctx context.Context, mode OverviewMode) error {
	if mode == ModeDetailed {
		collections, err := o.src.List(ctx)
		if err != nil {
			o.status.Fail(err)
			return err
		}
		o.table.AddRow(overviewRow(models.DetailedHeader, ClassDetailed, false))
		for _, c := range collections {
			o.table.AddRow(overviewRow(models.DetailedRow(c).Cells(), ClassDetailed, true))
		}
		return nil
	}

	lines, err := o.src.Overview(ctx)
	if err != nil {
		o.status.Fail(err)
		return err
	}
	for _, line := range lines {
		o.table.AddRow(overviewRow(models.SummaryRow(line).Cells(), ClassSummary, true))
	}
	return nil
}

// overviewRow builds a row whose first cell links to the collection named by
// it when link is set.
func overviewRow(texts []string, class string, link bool) view.Row {
	cells := make([]view.Cell, len(texts))
	for i, t := range texts {
		cells[i] = view.Cell{Text: t}
	}
	row := view.Row{Class: class, Cells: cells}
	if link && len(cells) > 0 {
		row.Key = texts[0]
		cells[0].Href = InfoHref(texts[0])
	}
	return row
}
