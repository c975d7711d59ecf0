package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/backuporganizer/internal/client/models"
	"github.com/dmitrijs2005/backuporganizer/internal/jsonx"
)

// API endpoint paths, relative to the base URL.
const (
	EndpointInfo        = "/api/Info"
	EndpointListBackups = "/api/ListBackups"
	EndpointEdit        = "/api/Edit"
	EndpointDelete      = "/api/Delete"
	EndpointUnbackup    = "/api/Unbackup"
	EndpointBackup      = "/api/Backup"
	EndpointSearch      = "/api/Search"
	EndpointOverview    = "/api/Overview"
	EndpointList        = "/api/List"
	EndpointCollection  = "/api/Collection"
)

// Client is the typed collection API. Every method performs exactly one round
// trip; failures are *ResponseError (backend replied) or wrap ErrUnavailable.
type Client interface {
	Info(ctx context.Context, name string) (models.DataCollection, error)
	ListBackups(ctx context.Context, name string) ([]models.BackupEntry, error)
	Edit(ctx context.Context, req models.EditRequest) error
	Delete(ctx context.Context, name string) error
	Unbackup(ctx context.Context, req models.UnbackupRequest) error
	Backup(ctx context.Context, req models.BackupRequest) error
	Search(ctx context.Context, term string) ([]models.SearchResult, error)
	Overview(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]models.DataCollection, error)
	AddCollection(ctx context.Context, req models.CollectionRequest) error
}

// APIClient implements Client over a Transport.
type APIClient struct {
	transport *Transport
}

func NewAPIClient(t *Transport) *APIClient {
	return &APIClient{transport: t}
}

func byName(name string) url.Values {
	return url.Values{"name": {name}}
}

func (c *APIClient) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	resp, err := c.transport.Call(ctx, http.MethodGet, endpoint, query, nil)
	if err != nil {
		return err
	}
	return resp.JSON(out)
}

func (c *APIClient) send(ctx context.Context, method, endpoint string, query url.Values, body any) error {
	_, err := c.transport.Call(ctx, method, endpoint, query, body)
	return err
}

func (c *APIClient) Info(ctx context.Context, name string) (models.DataCollection, error) {
	var out struct {
		Info models.DataCollection `json:"info"`
	}
	err := c.get(ctx, EndpointInfo, byName(name), &out)
	return out.Info, err
}

func (c *APIClient) ListBackups(ctx context.Context, name string) ([]models.BackupEntry, error) {
	var out struct {
		Entries jsonx.Object[struct {
			Date     string `json:"date"`
			Location string `json:"location"`
		}] `json:"backup_entries"`
	}
	if err := c.get(ctx, EndpointListBackups, byName(name), &out); err != nil {
		return nil, err
	}

	entries := make([]models.BackupEntry, 0, len(out.Entries))
	for _, f := range out.Entries {
		entries = append(entries, models.BackupEntry{Name: f.Key, Date: f.Value.Date, Location: f.Value.Location})
	}
	return entries, nil
}

func (c *APIClient) Edit(ctx context.Context, req models.EditRequest) error {
	return c.send(ctx, http.MethodPost, EndpointEdit, nil, req)
}

func (c *APIClient) Delete(ctx context.Context, name string) error {
	return c.send(ctx, http.MethodDelete, EndpointDelete, byName(name), nil)
}

func (c *APIClient) Unbackup(ctx context.Context, req models.UnbackupRequest) error {
	return c.send(ctx, http.MethodPost, EndpointUnbackup, nil, req)
}

func (c *APIClient) Backup(ctx context.Context, req models.BackupRequest) error {
	return c.send(ctx, http.MethodPost, EndpointBackup, nil, req)
}

// Search matches collection names case-insensitively.
func (c *APIClient) Search(ctx context.Context, term string) ([]models.SearchResult, error) {
	var out struct {
		Search jsonx.Object[struct {
			ModificationDate string `json:"modification_date"`
		}] `json:"search"`
	}
	query := url.Values{"case_sensitive": {"false"}, "name": {term}}
	if err := c.get(ctx, EndpointSearch, query, &out); err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(out.Search))
	for _, f := range out.Search {
		results = append(results, models.SearchResult{Name: f.Key, ModificationDate: f.Value.ModificationDate})
	}
	return results, nil
}

// Overview returns the pre-formatted "name | f2 | f3" summary lines.
func (c *APIClient) Overview(ctx context.Context) ([]string, error) {
	var out struct {
		Overview []string `json:"overview"`
	}
	err := c.get(ctx, EndpointOverview, nil, &out)
	return out.Overview, err
}

// List returns every collection with its metadata, in backend order.
func (c *APIClient) List(ctx context.Context) ([]models.DataCollection, error) {
	var out struct {
		Overview jsonx.Object[models.DataCollection] `json:"overview"`
	}
	if err := c.get(ctx, EndpointList, nil, &out); err != nil {
		return nil, err
	}

	collections := make([]models.DataCollection, 0, len(out.Overview))
	for _, f := range out.Overview {
		dc := f.Value
		dc.Name = f.Key
		collections = append(collections, dc)
	}
	return collections, nil
}

func (c *APIClient) AddCollection(ctx context.Context, req models.CollectionRequest) error {
	return c.send(ctx, http.MethodPost, EndpointCollection, nil, req)
}
