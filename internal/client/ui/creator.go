package ui

import (
	"context"

	"github.com/dmitrijs2005/backuporganizer/internal/client/models"
	"github.com/dmitrijs2005/backuporganizer/internal/client/view"
)

type CollectionAdder interface {
	AddCollection(ctx context.Context, req models.CollectionRequest) error
}

// CollectionCreator submits the new-collection form of the listing page.
type CollectionCreator struct {
	adder  CollectionAdder
	form   *view.Form
	status *StatusReporter
	nav    Navigator
}

func NewCollectionCreator(adder CollectionAdder, form *view.Form, status *StatusReporter, nav Navigator) *CollectionCreator {
	return &CollectionCreator{adder: adder, form: form, status: status, nav: nav}
}

// Create sends the form, leaving empty dates out, and reloads the page.
func (c *CollectionCreator) Create(ctx context.Context) error {
	req := models.CollectionRequest{
		Name:             c.form.Value(FieldName),
		Description:      c.form.Value(FieldDescription),
		CreationDate:     c.form.Value(FieldCreationDate),
		ModificationDate: c.form.Value(FieldModificationDate),
		Updated:          c.form.Checked(FieldUpdated),
	}
	if err := c.adder.AddCollection(ctx, req); err != nil {
		c.status.Fail(err)
		return err
	}
	c.nav.Reload()
	return nil
}
