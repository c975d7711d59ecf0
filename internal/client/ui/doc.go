// Package ui holds the page controllers of the client.
//
// Each controller fetches through the typed API client, renders into view
// elements and routes every failure through a StatusReporter. Mutations never
// patch the view locally: on success they ask the Navigator for a fresh page.
//
// Pages (IndexPage, InfoPage) assemble the elements and controllers of one
// page load. A page owns its state, so nothing is shared between loads.
package ui
