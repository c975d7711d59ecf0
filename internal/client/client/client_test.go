package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/backuporganizer/internal/apitest"
	"github.com/dmitrijs2005/backuporganizer/internal/client/models"
	"github.com/dmitrijs2005/backuporganizer/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*APIClient, *apitest.Server) {
	t.Helper()
	api := apitest.New()
	srv := api.Start(t)

	tr, err := NewTransport(srv.URL, 2*time.Second, logging.Nop())
	require.NoError(t, err)
	return NewAPIClient(tr), api
}

func seed(api *apitest.Server) {
	api.Seed(models.DataCollection{Name: "Zulu", Description: "last", CreationDate: "1960", ModificationDate: "2001", Updated: true},
		models.BackupEntry{Name: "snap2", Date: "2002", Location: "/b"},
		models.BackupEntry{Name: "snap1", Date: "2001", Location: "/a"},
	)
	api.Seed(models.DataCollection{Name: "alpha", Description: "first", CreationDate: "1970", ModificationDate: "2010"})
}

func TestAPIClient_Info(t *testing.T) {
	c, api := newTestClient(t)
	seed(api)

	got, err := c.Info(context.Background(), "Zulu")
	require.NoError(t, err)
	assert.Equal(t, models.DataCollection{Name: "Zulu", Description: "last", CreationDate: "1960", ModificationDate: "2001", Updated: true}, got)

	req, found := api.LastRequest(EndpointInfo)
	require.True(t, found)
	assert.Equal(t, "Zulu", req.Query.Get("name"))
}

func TestAPIClient_Info_NotFound(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Info(context.Background(), "missing")
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusBadRequest, respErr.Response.StatusCode)
}

func TestAPIClient_ListBackups_KeepsBackendOrder(t *testing.T) {
	c, api := newTestClient(t)
	seed(api)

	got, err := c.ListBackups(context.Background(), "Zulu")
	require.NoError(t, err)
	assert.Equal(t, []models.BackupEntry{
		{Name: "snap2", Date: "2002", Location: "/b"},
		{Name: "snap1", Date: "2001", Location: "/a"},
	}, got)
}

func TestAPIClient_Search(t *testing.T) {
	c, api := newTestClient(t)
	seed(api)

	got, err := c.Search(context.Background(), "ALP")
	require.NoError(t, err)
	assert.Equal(t, []models.SearchResult{{Name: "alpha", ModificationDate: "2010"}}, got)

	req, _ := api.LastRequest(EndpointSearch)
	assert.Equal(t, "false", req.Query.Get("case_sensitive"))
	assert.Equal(t, "ALP", req.Query.Get("name"))
}

func TestAPIClient_OverviewAndList(t *testing.T) {
	c, api := newTestClient(t)
	seed(api)

	lines, err := c.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Zulu | 2001 | Updated: True", "alpha | 2010 | Updated: False"}, lines)

	list, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Zulu", list[0].Name)
	assert.Equal(t, "alpha", list[1].Name)
	assert.Equal(t, "first", list[1].Description)
}

func TestAPIClient_Mutations(t *testing.T) {
	c, api := newTestClient(t)
	seed(api)
	ctx := context.Background()

	require.NoError(t, c.AddCollection(ctx, models.CollectionRequest{Name: "Alpha", Description: "x"}))
	req, _ := api.LastRequest(EndpointCollection)
	assert.Equal(t, map[string]any{"name": "Alpha", "description": "x", "updated": false}, req.Body)

	require.NoError(t, c.Backup(ctx, models.BackupRequest{CollectionName: "Alpha", BackupName: "snap1", BackupLocation: "/srv"}))
	_, backups, _ := api.Collection("Alpha")
	require.Len(t, backups, 1)
	assert.Equal(t, apitest.DefaultDate, backups[0].Date)

	require.NoError(t, c.Unbackup(ctx, models.UnbackupRequest{CollectionName: "Alpha", BackupName: "snap1"}))
	req, _ = api.LastRequest(EndpointUnbackup)
	assert.Equal(t, map[string]any{"collection_name": "Alpha", "backup_name": "snap1"}, req.Body)

	require.NoError(t, c.Edit(ctx, models.EditRequest{CollectionName: "Alpha", Name: "Beta", Description: "y"}))
	renamed, _, found := api.Collection("Beta")
	require.True(t, found)
	assert.Equal(t, "y", renamed.Description)

	require.NoError(t, c.Delete(ctx, "Beta"))
	req, _ = api.LastRequest(EndpointDelete)
	assert.Equal(t, http.MethodDelete, req.Method)
	_, _, found = api.Collection("Beta")
	assert.False(t, found)
}
