package ui

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/backuporganizer/internal/client/client"
	"github.com/dmitrijs2005/backuporganizer/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexPage_Load(t *testing.T) {
	api, backend := newAPI(t)
	seedAlpha(backend)
	p := NewIndexPage(api, &fakeNav{}, PageOptions{DismissDelay: DefaultDismissDelay})

	require.NoError(t, p.Load(context.Background()))

	assert.Equal(t, "Overview", p.Heading.Get())
	assert.Equal(t, [][]string{{"Alpha", "2080", "Updated: True"}}, texts(p.Overview))
	assert.Empty(t, p.Status.Lines())
	assert.Equal(t, SuggestionsID, p.Suggestions.ID())
}

func TestIndexPage_SearchUsesBackend(t *testing.T) {
	api, backend := newAPI(t)
	seedAlpha(backend)
	backend.Seed(models.DataCollection{Name: "Beta", ModificationDate: "2001"})
	p := NewIndexPage(api, &fakeNav{}, PageOptions{})

	require.NoError(t, p.Engine.Input(context.Background(), "ALP"))

	entries := p.Suggestions.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Alpha | 2080", entries[0].Text)

	req, _ := backend.LastRequest(client.EndpointSearch)
	assert.Equal(t, "false", req.Query.Get("case_sensitive"))
	assert.Equal(t, "ALP", req.Query.Get("name"))
}

func TestInfoPage_Load(t *testing.T) {
	api, backend := newAPI(t)
	seedAlpha(backend)
	p := NewInfoPage(api, "Alpha", &fakeNav{}, PageOptions{})

	require.NoError(t, p.Load(context.Background()))

	assert.Equal(t, "Alpha", p.Title.Get())
	assert.Equal(t, "x", p.Form.Value(FieldDescription))
	assert.Len(t, p.Backups.Rows(), 2)
}

func TestInfoPage_LoadAttemptsBoth(t *testing.T) {
	api, backend := newAPI(t)
	p := NewInfoPage(api, "Ghost", &fakeNav{}, PageOptions{})

	err := p.Load(context.Background())

	var respErr *client.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, client.EndpointInfo, respErr.Response.Endpoint)

	var paths []string
	for _, r := range backend.Requests() {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{client.EndpointInfo, client.EndpointListBackups}, paths)
	assert.Len(t, p.Status.Lines(), 1)
}
