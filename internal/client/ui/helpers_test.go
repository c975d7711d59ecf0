package ui

import (
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/backuporganizer/internal/apitest"
	"github.com/dmitrijs2005/backuporganizer/internal/client/client"
	"github.com/dmitrijs2005/backuporganizer/internal/client/models"
	"github.com/dmitrijs2005/backuporganizer/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeNav struct {
	mu      sync.Mutex
	hrefs   []string
	reloads int
}

func (n *fakeNav) Navigate(href string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.hrefs = append(n.hrefs, href)
}

func (n *fakeNav) Reload() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reloads++
}

func (n *fakeNav) Hrefs() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.hrefs...)
}

func newAPI(t *testing.T) (*client.APIClient, *apitest.Server) {
	t.Helper()
	api := apitest.New()
	srv := api.Start(t)

	tr, err := client.NewTransport(srv.URL, 2*time.Second, logging.Nop())
	require.NoError(t, err)
	return client.NewAPIClient(tr), api
}

func seedAlpha(api *apitest.Server) {
	api.Seed(models.DataCollection{Name: "Alpha", Description: "x", CreationDate: "1960", ModificationDate: "2080", Updated: true},
		models.BackupEntry{Name: "snap1", Date: "2001", Location: "/srv/a"},
		models.BackupEntry{Name: "snap0", Date: "2000", Location: "s3://bucket"},
	)
}

func responseError(status string, code int, body string) *client.ResponseError {
	return &client.ResponseError{Response: &client.Response{
		Method:     "GET",
		Endpoint:   "/api/Search",
		StatusCode: code,
		Status:     status,
		Body:       []byte(body),
	}}
}
