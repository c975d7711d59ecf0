package ui

import (
	"context"
	"time"

	"github.com/dmitrijs2005/backuporganizer/internal/client/client"
	"github.com/dmitrijs2005/backuporganizer/internal/client/view"
	"github.com/dmitrijs2005/backuporganizer/internal/logging"
)

// SuggestionsID is the element id of the suggestion list.
const SuggestionsID = "suggestions"

// PageOptions carries the settings shared by every page.
type PageOptions struct {
	DismissDelay time.Duration
	Log          logging.Logger
}

func (o PageOptions) logger() logging.Logger {
	if o.Log == nil {
		return logging.Nop()
	}
	return o.Log
}

// SearchBar is the search input with its suggestion popup, present on every
// page.
type SearchBar struct {
	Suggestions *view.SuggestionList
	Focus       *view.Focus
	Engine      *SuggestionEngine
}

func newSearchBar(api client.Client, status *StatusReporter, nav Navigator, opts PageOptions) SearchBar {
	list := view.NewSuggestionList(SuggestionsID, view.NoResults)
	focus := &view.Focus{}
	return SearchBar{
		Suggestions: list,
		Focus:       focus,
		Engine:      NewSuggestionEngine(api, list, focus, status, nav, opts.DismissDelay, opts.logger()),
	}
}

// IndexPage is the collection listing.
type IndexPage struct {
	SearchBar

	Heading  *view.Text
	Overview *view.Table
	Status   *view.StatusArea
	Form     *view.Form

	Renderer *OverviewRenderer
	Creator  *CollectionCreator
}

func NewIndexPage(api client.Client, nav Navigator, opts PageOptions) *IndexPage {
	p := &IndexPage{
		Heading:  view.NewText(""),
		Overview: view.NewTable(),
		Status:   view.NewStatusArea(),
		Form:     view.NewForm(),
	}
	status := NewStatusReporter(p.Status)
	p.SearchBar = newSearchBar(api, status, nav, opts)
	p.Renderer = NewOverviewRenderer(api, p.Overview, p.Heading, status)
	p.Creator = NewCollectionCreator(api, p.Form, status, nav)
	return p
}

// Load renders the overview in summary mode.
func (p *IndexPage) Load(ctx context.Context) error {
	return p.Renderer.Load(ctx)
}

// InfoPage shows one collection and its backups.
type InfoPage struct {
	SearchBar

	Name       string
	Title      *view.Text
	Form       *view.Form
	Backups    *view.Table
	BackupForm *view.Form
	Status     *view.StatusArea

	Detail     *DetailController
	BackupList *BackupListController
}

func NewInfoPage(api client.Client, name string, nav Navigator, opts PageOptions) *InfoPage {
	p := &InfoPage{
		Name:       name,
		Title:      view.NewText(""),
		Form:       view.NewForm(),
		Backups:    view.NewTable(),
		BackupForm: view.NewForm(),
		Status:     view.NewStatusArea(),
	}
	status := NewStatusReporter(p.Status)
	p.SearchBar = newSearchBar(api, status, nav, opts)
	p.Detail = NewDetailController(api, name, p.Title, p.Form, status, nav)
	p.BackupList = NewBackupListController(api, name, p.Backups, p.BackupForm, status, nav)
	return p
}

// Load fetches the collection and its backups. Both are attempted; the first
// error is returned.
func (p *InfoPage) Load(ctx context.Context) error {
	detailErr := p.Detail.Load(ctx)
	backupErr := p.BackupList.Load(ctx)
	if detailErr != nil {
		return detailErr
	}
	return backupErr
}
