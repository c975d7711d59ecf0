// Package client is the data layer of the Backup Organizer client.
//
// # Overview
//
// The package provides:
//  1. Transport, which sends one JSON request to the collection API and
//     returns the fully read reply, tagging each request with an X-Request-ID.
//  2. The Client interface, one typed method per API endpoint, and APIClient,
//     its implementation over Transport. Listings keyed by name are decoded in
//     the order the backend sent them.
//
// Nothing here touches the view; callers receive plain records from models.
//
// # Error Handling
//
// A reply with a non-2xx status comes back as *ResponseError, which carries the
// raw Response so the UI can render the backend's {"errors": {...}} body.
// Failures without a reply wrap ErrUnavailable; undecodable bodies wrap
// ErrUnexpectedResponse. Match them with errors.Is / errors.As.
//
// Concurrency & Contexts
//
// Transport and APIClient are safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
