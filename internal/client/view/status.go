package view

import "sync"

// StatusArea is the shared area where diagnostics are printed, one line each.
type StatusArea struct {
	mu    sync.Mutex
	lines []string
}

func NewStatusArea() *StatusArea {
	return &StatusArea{}
}

// Replace drops the current content and shows lines instead.
func (s *StatusArea) Replace(lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append([]string(nil), lines...)
}

func (s *StatusArea) Clear() {
	s.Replace()
}

func (s *StatusArea) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}
