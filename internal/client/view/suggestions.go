package view

import (
	"strconv"
	"sync"
)

// NoResults is the placeholder entry that survives clearing.
const NoResults = "No Results"

// Suggestion is one entry below the search input.
type Suggestion struct {
	ID    string
	Value string
	Text  string
	Href  string
}

// SuggestionList is the popup list under the search input.
type SuggestionList struct {
	mu     sync.Mutex
	id     string
	items  []Suggestion
	nextID int
}

// NewSuggestionList returns a list whose element id is id. Placeholders are
// entries (such as NoResults) that Clear keeps.
func NewSuggestionList(id string, placeholders ...string) *SuggestionList {
	l := &SuggestionList{id: id}
	for _, p := range placeholders {
		l.add(Suggestion{Value: p, Text: p})
	}
	return l
}

// ID is the element id of the list itself.
func (l *SuggestionList) ID() string {
	return l.id
}

// Add appends an entry and returns its element id.
func (l *SuggestionList) Add(s Suggestion) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.add(s)
}

func (l *SuggestionList) add(s Suggestion) string {
	l.nextID++
	s.ID = l.id + "/" + strconv.Itoa(l.nextID)
	l.items = append(l.items, s)
	return s.ID
}

// Clear removes every entry except NoResults placeholders.
func (l *SuggestionList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.items[:0]
	for _, s := range l.items {
		if s.Value == NoResults {
			kept = append(kept, s)
		}
	}
	l.items = kept
}

// Items returns every entry, placeholders included.
func (l *SuggestionList) Items() []Suggestion {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Suggestion(nil), l.items...)
}

// Entries returns the real suggestions, skipping placeholders.
func (l *SuggestionList) Entries() []Suggestion {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Suggestion, 0, len(l.items))
	for _, s := range l.items {
		if s.Value != NoResults {
			out = append(out, s)
		}
	}
	return out
}

// Contains reports whether elementID is the list or one of its entries.
func (l *SuggestionList) Contains(elementID string) bool {
	if elementID == "" {
		return false
	}
	if elementID == l.id {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.items {
		if s.ID == elementID {
			return true
		}
	}
	return false
}
