package ui

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/backuporganizer/internal/client/client"
	"github.com/dmitrijs2005/backuporganizer/internal/client/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionCreator_Create(t *testing.T) {
	api, backend := newAPI(t)
	form := view.NewForm()
	nav := &fakeNav{}
	c := NewCollectionCreator(api, form, NewStatusReporter(view.NewStatusArea()), nav)

	form.SetValue(FieldName, "Alpha")
	form.SetValue(FieldDescription, "x")
	form.SetChecked(FieldUpdated, false)
	require.NoError(t, c.Create(context.Background()))

	req, found := backend.LastRequest(client.EndpointCollection)
	require.True(t, found)
	assert.Equal(t, map[string]any{"name": "Alpha", "description": "x", "updated": false}, req.Body)
	assert.Equal(t, 1, nav.reloads)
	assert.Empty(t, nav.Hrefs())
}

func TestCollectionCreator_ValidationError(t *testing.T) {
	api, backend := newAPI(t)
	backend.FailNext(client.EndpointCollection, http.StatusBadRequest, `{"errors": {"name": "required"}}`)
	area := view.NewStatusArea()
	area.Replace("an older error")
	nav := &fakeNav{}
	c := NewCollectionCreator(api, view.NewForm(), NewStatusReporter(area), nav)

	require.Error(t, c.Create(context.Background()))

	assert.Equal(t, []string{"name: required"}, area.Lines())
	assert.Equal(t, 0, nav.reloads)
}
