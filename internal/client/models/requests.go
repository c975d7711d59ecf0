package models

// CollectionRequest is the body of POST /Collection. Empty dates are left out
// so the backend assigns its own defaults.
type CollectionRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	CreationDate     string `json:"creation_date,omitempty"`
	ModificationDate string `json:"modification_date,omitempty"`
	Updated          bool   `json:"updated"`
}

// EditRequest is the body of POST /Edit. It always carries the whole field set:
// an edit is a full replace keyed by CollectionName, and a changed Name renames
// the collection.
type EditRequest struct {
	CollectionName   string `json:"collection_name"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	CreationDate     string `json:"creation_date"`
	ModificationDate string `json:"modification_date"`
	Updated          bool   `json:"updated"`
}

// BackupRequest is the body of POST /Backup. An empty BackupDate is omitted,
// never sent as "".
type BackupRequest struct {
	CollectionName string `json:"collection_name"`
	BackupName     string `json:"backup_name"`
	BackupLocation string `json:"backup_location"`
	BackupDate     string `json:"backup_date,omitempty"`
}

// UnbackupRequest is the body of POST /Unbackup.
type UnbackupRequest struct {
	CollectionName string `json:"collection_name"`
	BackupName     string `json:"backup_name"`
}
