package ui

import (
	"context"

	"github.com/dmitrijs2005/backuporganizer/internal/client/models"
	"github.com/dmitrijs2005/backuporganizer/internal/client/view"
)

// ClassBackup is the row class of the backup table.
const ClassBackup = "backuptd"

// DeleteButton labels the per-row delete action.
const DeleteButton = "Delete"

type BackupStore interface {
	ListBackups(ctx context.Context, name string) ([]models.BackupEntry, error)
	Backup(ctx context.Context, req models.BackupRequest) error
	Unbackup(ctx context.Context, req models.UnbackupRequest) error
}

// BackupListController lists and edits the backups of one collection.
type BackupListController struct {
	store      BackupStore
	collection string
	table      *view.Table
	form       *view.Form
	status     *StatusReporter
	nav        Navigator
}

func NewBackupListController(store BackupStore, collection string, table *view.Table, form *view.Form,
	status *StatusReporter, nav Navigator) *BackupListController {
	return &BackupListController{store: store, collection: collection, table: table, form: form, status: status, nav: nav}
}

// Load renders one row per backup with a delete button keyed by its name.
func (b *BackupListController) Load(ctx context.Context) error {
	entries, err := b.store.ListBackups(ctx, b.collection)
	if err != nil {
		b.status.Fail(err)
		return err
	}

	b.table.Clear()
	for _, e := range entries {
		b.table.AddRow(view.Row{
			Key:   e.Name,
			Class: ClassBackup,
			Cells: []view.Cell{{Text: e.Name}, {Text: e.Date}, {Text: e.Location}, {Button: DeleteButton}},
		})
	}
	return nil
}

// Create adds a backup from the form. An empty date is left out of the
// request so the backend assigns one.
func (b *BackupListController) Create(ctx context.Context) error {
	req := models.BackupRequest{
		CollectionName: b.collection,
		BackupName:     b.form.Value(FieldBackupName),
		BackupLocation: b.form.Value(FieldBackupLocation),
		BackupDate:     b.form.Value(FieldBackupDate),
	}
	if err := b.store.Backup(ctx, req); err != nil {
		b.status.Fail(err)
		return err
	}
	b.nav.Navigate(InfoHref(b.collection))
	return nil
}

// Delete removes the named backup and reloads the collection page.
func (b *BackupListController) Delete(ctx context.Context, name string) error {
	req := models.UnbackupRequest{CollectionName: b.collection, BackupName: name}
	if err := b.store.Unbackup(ctx, req); err != nil {
		b.status.Fail(err)
		return err
	}
	b.nav.Navigate(InfoHref(b.collection))
	return nil
}
