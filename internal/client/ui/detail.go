package ui

import (
	"context"

	"github.com/dmitrijs2005/backuporganizer/internal/client/models"
	"github.com/dmitrijs2005/backuporganizer/internal/client/view"
)

type CollectionStore interface {
	Info(ctx context.Context, name string) (models.DataCollection, error)
	Edit(ctx context.Context, req models.EditRequest) error
	Delete(ctx context.Context, name string) error
}

// DetailController shows and edits the collection named in the page URL.
type DetailController struct {
	store  CollectionStore
	name   string
	title  *view.Text
	form   *view.Form
	status *StatusReporter
	nav    Navigator
}

func NewDetailController(store CollectionStore, name string, title *view.Text, form *view.Form,
	status *StatusReporter, nav Navigator) *DetailController {
	return &DetailController{store: store, name: name, title: title, form: form, status: status, nav: nav}
}

// Load fills the form with the collection exactly as the backend returns it.
func (d *DetailController) Load(ctx context.Context) error {
	d.title.Set(d.name)

	c, err := d.store.Info(ctx, d.name)
	if err != nil {
		d.status.Fail(err)
		return err
	}

	d.form.SetValue(FieldName, c.Name)
	d.form.SetValue(FieldDescription, c.Description)
	d.form.SetValue(FieldCreationDate, c.CreationDate)
	d.form.SetValue(FieldModificationDate, c.ModificationDate)
	d.form.SetChecked(FieldUpdated, c.Updated)
	return nil
}

// Save replaces the collection with the form content. A changed name renames
// the collection, and the page follows it.
func (d *DetailController) Save(ctx context.Context) error {
	req := models.EditRequest{
		CollectionName:   d.name,
		Name:             d.form.Value(FieldName),
		Description:      d.form.Value(FieldDescription),
		CreationDate:     d.form.Value(FieldCreationDate),
		ModificationDate: d.form.Value(FieldModificationDate),
		Updated:          d.form.Checked(FieldUpdated),
	}
	if err := d.store.Edit(ctx, req); err != nil {
		d.status.Fail(err)
		return err
	}
	d.nav.Navigate(InfoHref(req.Name))
	return nil
}

// Remove deletes the collection and returns to the listing.
func (d *DetailController) Remove(ctx context.Context) error {
	if err := d.store.Delete(ctx, d.name); err != nil {
		d.status.Fail(err)
		return err
	}
	d.nav.Navigate(IndexHref)
	return nil
}
