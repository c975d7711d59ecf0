package view

import "sync"

// Form holds the values of named input controls: text inputs and checkboxes.
// Reading a control that was never set yields its empty value.
type Form struct {
	mu      sync.Mutex
	values  map[string]string
	checked map[string]bool
}

func NewForm() *Form {
	return &Form{values: make(map[string]string), checked: make(map[string]bool)}
}

func (f *Form) SetValue(id, v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[id] = v
}

func (f *Form) Value(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[id]
}

func (f *Form) SetChecked(id string, v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checked[id] = v
}

func (f *Form) Checked(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checked[id]
}
