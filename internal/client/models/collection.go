// Package models defines the records exchanged with the collection API and the
// transient projections rendered from them.
package models

// DataCollection is a named record with descriptive metadata. Name is unique
// and doubles as the lookup key in URLs; the backend enforces uniqueness.
type DataCollection struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	CreationDate     string `json:"creation_date"`
	ModificationDate string `json:"modification_date"`
	Updated          bool   `json:"updated"`
}

// BackupEntry is a snapshot record owned by exactly one DataCollection.
// Names are unique within the owning collection only.
type BackupEntry struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// SearchResult is the projection returned by the search endpoint.
type SearchResult struct {
	Name             string `json:"name"`
	ModificationDate string `json:"modification_date"`
}
