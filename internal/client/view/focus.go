package view

import "sync"

// Focus tracks the element that currently has input focus.
type Focus struct {
	mu     sync.Mutex
	active string
}

func (f *Focus) Set(elementID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = elementID
}

func (f *Focus) Active() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}
