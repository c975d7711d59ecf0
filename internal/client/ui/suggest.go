package ui

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/backuporganizer/internal/client/models"
	"github.com/dmitrijs2005/backuporganizer/internal/client/view"
	"github.com/dmitrijs2005/backuporganizer/internal/logging"
)

// SearchInputID is the element id of the search input.
const SearchInputID = "search_input"

// DefaultDismissDelay leaves time for a click on a suggestion to land before
// a blur clears the list.
const DefaultDismissDelay = 100 * time.Millisecond

type Searcher interface {
	Search(ctx context.Context, term string) ([]models.SearchResult, error)
}

// SuggestionEngine drives search-as-you-type.
//
// Every input event takes the next sequence number. A reply renders only if
// its number is still the latest, so an older query that lands late never
// overwrites a newer one.
type SuggestionEngine struct {
	search Searcher
	list   *view.SuggestionList
	focus  *view.Focus
	status *StatusReporter
	nav    Navigator
	log    logging.Logger

	delay     time.Duration
	afterFunc func(time.Duration, func())

	seq atomic.Uint64
	mu  sync.Mutex
}

func NewSuggestionEngine(s Searcher, list *view.SuggestionList, focus *view.Focus, status *StatusReporter,
	nav Navigator, delay time.Duration, log logging.Logger) *SuggestionEngine {
	return &SuggestionEngine{
		search: s,
		list:   list,
		focus:  focus,
		status: status,
		nav:    nav,
		log:    log,
		delay:  delay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Input handles the search input changing to value.
func (e *SuggestionEngine) Input(ctx context.Context, value string) error {
	e.focus.Set(SearchInputID)

	e.mu.Lock()
	e.list.Clear()
	seq := e.seq.Add(1)
	e.mu.Unlock()

	if value == "" {
		return nil
	}

	results, err := e.search.Search(ctx, value)

	e.mu.Lock()
	defer e.mu.Unlock()

	if latest := e.seq.Load(); seq != latest {
		e.log.Debug(ctx, "discarding stale search reply", "term", value, "seq", seq, "latest", latest)
		return nil
	}
	if err != nil {
		e.status.Fail(err)
		return fmt.Errorf("search %q: %w", value, err)
	}

	for _, r := range results {
		e.list.Add(view.Suggestion{
			Value: r.Name,
			Text:  r.Name + models.SummarySeparator + r.ModificationDate,
			Href:  InfoHref(r.Name),
		})
	}
	return nil
}

// Blur handles the search input losing focus. The list is cleared after the
// dismiss delay unless focus has moved into it by then.
func (e *SuggestionEngine) Blur() {
	e.afterFunc(e.delay, func() {
		if e.list.Contains(e.focus.Active()) {
			return
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		e.list.Clear()
	})
}

// Select clicks the i-th suggestion (zero based): focus moves onto it, the
// input blurs and the link is followed.
func (e *SuggestionEngine) Select(i int) error {
	entries := e.list.Entries()
	if i < 0 || i >= len(entries) {
		return fmt.Errorf("no suggestion %d", i+1)
	}
	s := entries[i]

	e.focus.Set(s.ID)
	e.Blur()
	e.nav.Navigate(s.Href)
	return nil
}
