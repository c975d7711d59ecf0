// Package cli provides the interactive Backup Organizer client.
//
// It wires configuration, the API client and the page controllers into a
// REPL that acts as the browser: commands become user events (typing in the
// search box, clicks, form submits) and the current page is printed after
// each one. Navigation requested by a controller opens a freshly loaded page
// once the command returns.
//
// Commands:
//   - home / show <name>      open the listing or a collection
//   - refresh                 reload the current page
//   - toggle                  switch summary and detailed overview
//   - search [text] / blur    type into or leave the search box
//   - open <n>                follow the n-th suggestion
//   - add                     create a collection (listing page)
//   - edit / delete           edit or delete the shown collection
//   - backup / unbackup <n>   add or remove a backup of the shown collection
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
