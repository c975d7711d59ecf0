package ui

// Form control ids.
const (
	FieldName             = "name"
	FieldDescription      = "description"
	FieldCreationDate     = "creation_date"
	FieldModificationDate = "modification_date"
	FieldUpdated          = "updated"

	FieldBackupName     = "backup_name"
	FieldBackupLocation = "backup_location"
	FieldBackupDate     = "backup_date"
)

// CollectionFields are the text controls of a collection form, in display
// order. FieldUpdated is a checkbox and not listed.
var CollectionFields = []string{FieldName, FieldDescription, FieldCreationDate, FieldModificationDate}

// BackupFields are the text controls of the backup creation form.
var BackupFields = []string{FieldBackupName, FieldBackupLocation, FieldBackupDate}
