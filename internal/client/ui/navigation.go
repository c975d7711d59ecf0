package ui

import (
	"fmt"
	"net/url"
)

// Page paths the client can navigate to.
const (
	IndexHref = "/"
	IndexPath = "/index.html"
	InfoPath  = "/info.html"
)

// Navigator changes the current page. Both calls take effect once the
// current user action has finished.
type Navigator interface {
	Navigate(href string)
	Reload()
}

// InfoHref links to the detail page of the named collection.
func InfoHref(name string) string {
	return InfoPath + "?" + url.Values{"name": {name}}.Encode()
}

// Route is a parsed href.
type Route struct {
	Path string
	Name string
}

// IsIndex reports whether the route shows the collection listing.
func (r Route) IsIndex() bool {
	return r.Path == IndexHref || r.Path == IndexPath
}

// IsInfo reports whether the route shows one collection.
func (r Route) IsInfo() bool {
	return r.Path == InfoPath
}

// ParseHref splits href into page path and the name parameter.
func ParseHref(href string) (Route, error) {
	u, err := url.Parse(href)
	if err != nil {
		return Route{}, fmt.Errorf("parse href %q: %w", href, err)
	}
	path := u.Path
	if path == "" {
		path = IndexHref
	}
	return Route{Path: path, Name: u.Query().Get("name")}, nil
}
