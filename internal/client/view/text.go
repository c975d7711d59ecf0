package view

import "sync"

// Text is a label such as a heading.
type Text struct {
	mu sync.Mutex
	s  string
}

func NewText(s string) *Text {
	return &Text{s: s}
}

func (t *Text) Set(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.s = s
}

func (t *Text) Get() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.s
}
