// Package apitest provides an in-memory collection API for tests.
//
// Server implements the same endpoints and reply shapes as the real backend:
// listings keyed by name, {"errors": {<type>: <message>}} bodies with status
// 400 on failure, and server-assigned dates when optional dates are omitted.
// It records every request so tests can assert on exact payloads.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/backuporganizer/internal/client/models"
)

// DefaultDate is assigned when a create request leaves a date out.
const DefaultDate = "2024-01-01 00:00:00"

// Request is one recorded call. Body holds the decoded JSON object, or nil
// when the request had no body.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
}

type failure struct {
	status int
	body   string
}

type collection struct {
	models.DataCollection
	backups []models.BackupEntry
}

// Server is the fake backend. The zero value is not usable; call New.
type Server struct {
	mu          sync.Mutex
	collections []*collection
	requests    []Request
	failures    map[string]failure
}

func New() *Server {
	return &Server{failures: make(map[string]failure)}
}

// Seed stores a collection with its backups, in insertion order.
func (s *Server) Seed(c models.DataCollection, backups ...models.BackupEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = append(s.collections, &collection{DataCollection: c, backups: backups})
}

// FailNext makes the next call to path reply with status and body.
func (s *Server) FailNext(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{status: status, body: body}
}

// Requests returns a copy of every recorded request.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request to path.
func (s *Server) LastRequest(path string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Path == path {
			return s.requests[i], true
		}
	}
	return Request{}, false
}

// Collection returns the stored collection and its backups.
func (s *Server) Collection(name string) (models.DataCollection, []models.BackupEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.find(name); c != nil {
		return c.DataCollection, append([]models.BackupEntry(nil), c.backups...), true
	}
	return models.DataCollection{}, nil, false
}

// Start serves the router on a test server closed at cleanup.
func (s *Server) Start(t testing.TB) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return srv
}

// Router wires the API endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Route("/api", func(r chi.Router) {
		r.Get("/Info", s.info)
		r.Get("/ListBackups", s.listBackups)
		r.Post("/Edit", s.edit)
		r.Delete("/Delete", s.delete)
		r.Post("/Unbackup", s.unbackup)
		r.Post("/Backup", s.backup)
		r.Get("/Search", s.search)
		r.Get("/Overview", s.overview)
		r.Get("/List", s.list)
		r.Post("/Collection", s.addCollection)
	})
	return r
}

// record stores the request, then answers with an injected failure if one is
// pending for the path.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()}
		if r.Body != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				req.Body = body
			}
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		f, failing := s.failures[r.URL.Path]
		delete(s.failures, r.URL.Path)
		s.mu.Unlock()

		if failing {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}

		// The body was consumed above; handlers read the decoded copy.
		next.ServeHTTP(w, r.WithContext(withBody(r.Context(), req.Body)))
	})
}

func (s *Server) find(name string) *collection {
	for _, c := range s.collections {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, kind, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"errors":  map[string]string{kind: msg},
		"message": "Action aborted. Exception raised",
	})
}

func ok(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, map[string]any{"errors": map[string]string{}, "message": msg})
}

func requireName(w http.ResponseWriter, r *http.Request) (string, bool) {
	if !r.URL.Query().Has("name") {
		fail(w, "MissingParameter", `Parameter "name" is required`)
		return "", false
	}
	return r.URL.Query().Get("name"), true
}

func notFound(w http.ResponseWriter, name string) {
	fail(w, "CollectionNotFoundError", fmt.Sprintf("Collection with name '%s' not found", name))
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	name, valid := requireName(w, r)
	if !valid {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(name)
	if c == nil {
		notFound(w, name)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"errors": map[string]string{}, "info": c.DataCollection})
}

func (s *Server) listBackups(w http.ResponseWriter, r *http.Request) {
	name, valid := requireName(w, r)
	if !valid {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(name)
	if c == nil {
		notFound(w, name)
		return
	}
	entries := newOrdered()
	for _, b := range c.backups {
		entries.add(b.Name, map[string]string{"date": b.Date, "location": b.Location})
	}
	writeJSON(w, http.StatusOK, map[string]any{"errors": map[string]string{}, "backup_entries": entries})
}

func (s *Server) edit(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	target, _ := body["collection_name"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(target)
	if c == nil {
		notFound(w, target)
		return
	}
	if name, isString := body["name"].(string); isString && name != target && s.find(name) != nil {
		fail(w, "CollectionAlreadyExistsError", fmt.Sprintf("Collection with name '%s' already exists", name))
		return
	}

	for key, value := range body {
		if !validEdit(key, value) {
			fail(w, "InvalidCollectionEditError", fmt.Sprintf("Key '%s' and associated value is not a valid edit", key))
			return
		}
	}
	for key, value := range body {
		switch v := value.(type) {
		case string:
			setField(&c.DataCollection, key, v)
		case bool:
			c.Updated = v
		}
	}
	ok(w, "Edit Was Successfull")
}

func validEdit(key string, value any) bool {
	switch key {
	case "collection_name", "name", "description", "creation_date", "modification_date":
		_, isString := value.(string)
		return isString
	case "updated":
		_, isBool := value.(bool)
		return isBool
	}
	return false
}

// setField applies a string edit; collection_name selects the target and is
// not a field.
func setField(c *models.DataCollection, key, value string) {
	switch key {
	case "name":
		c.Name = value
	case "description":
		c.Description = value
	case "creation_date":
		c.CreationDate = value
	case "modification_date":
		c.ModificationDate = value
	}
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	name, valid := requireName(w, r)
	if !valid {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.collections {
		if c.Name == name {
			s.collections = append(s.collections[:i], s.collections[i+1:]...)
			ok(w, "Successfully Deleted DataCollection")
			return
		}
	}
	notFound(w, name)
}

func (s *Server) unbackup(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	target, _ := body["collection_name"].(string)
	backupName, _ := body["backup_name"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(target)
	if c == nil {
		notFound(w, target)
		return
	}
	for i, b := range c.backups {
		if b.Name == backupName {
			c.backups = append(c.backups[:i], c.backups[i+1:]...)
			ok(w, "Deletion Was Successfull")
			return
		}
	}
	fail(w, "BackupNotFoundError", fmt.Sprintf("BackupEntry with name '%s' not found in `backup_entries`", backupName))
}

func (s *Server) backup(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	target, _ := body["collection_name"].(string)
	name, _ := body["backup_name"].(string)
	location, _ := body["backup_location"].(string)
	date, hasDate := body["backup_date"].(string)
	if !hasDate {
		date = DefaultDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(target)
	if c == nil {
		notFound(w, target)
		return
	}
	for _, b := range c.backups {
		if b.Name == name {
			fail(w, "BackupAlreadyExistsError", fmt.Sprintf("BackupEntry with name '%s' already exists", name))
			return
		}
	}
	c.backups = append(c.backups, models.BackupEntry{Name: name, Date: date, Location: location})
	ok(w, "Backup Created Successfully")
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	term, valid := requireName(w, r)
	if !valid {
		return
	}
	caseSensitive := r.URL.Query().Get("case_sensitive") != "false"

	s.mu.Lock()
	defer s.mu.Unlock()

	results := newOrdered()
	for _, c := range s.collections {
		name, needle := c.Name, term
		if !caseSensitive {
			name, needle = strings.ToLower(name), strings.ToLower(needle)
		}
		if strings.Contains(name, needle) {
			results.add(c.Name, map[string]any{"modification_date": c.ModificationDate})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"errors": map[string]string{}, "search": results})
}

func (s *Server) overview(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, len(s.collections))
	for _, c := range s.collections {
		updated := "False"
		if c.Updated {
			updated = "True"
		}
		lines = append(lines, fmt.Sprintf("%s | %s | Updated: %s", c.Name, c.ModificationDate, updated))
	}
	writeJSON(w, http.StatusOK, map[string]any{"errors": map[string]string{}, "overview": lines})
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	overview := newOrdered()
	for _, c := range s.collections {
		overview.add(c.Name, map[string]any{
			"description":       c.Description,
			"creation_date":     c.CreationDate,
			"modification_date": c.ModificationDate,
			"updated":           c.Updated,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"errors": map[string]string{}, "overview": overview})
}

func (s *Server) addCollection(w http.ResponseWriter, r *http.Request) {
	body := bodyFrom(r.Context())
	name, hasName := body["name"].(string)
	if !hasName || name == "" {
		fail(w, "name", "required")
		return
	}

	c := models.DataCollection{Name: name, CreationDate: DefaultDate, ModificationDate: DefaultDate, Updated: true}
	c.Description, _ = body["description"].(string)
	if v, isString := body["creation_date"].(string); isString {
		c.CreationDate = v
	}
	if v, isString := body["modification_date"].(string); isString {
		c.ModificationDate = v
	}
	if v, isBool := body["updated"].(bool); isBool {
		c.Updated = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(name) != nil {
		fail(w, "CollectionAlreadyExistsError", fmt.Sprintf("Collection with name '%s' already exists", name))
		return
	}
	s.collections = append(s.collections, &collection{DataCollection: c})
	ok(w, "Collection Created Successfully")
}
