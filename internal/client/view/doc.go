// Package view is the client's document model: the handful of page elements
// controllers mutate after a fetch (tables, a status area, text labels, form
// fields, the suggestion list) plus input focus.
//
// Elements are plain state with no rendering of their own; the CLI prints
// them. Each element guards itself with a mutex because blur timers and
// overlapping search replies may touch it from other goroutines.
package view
