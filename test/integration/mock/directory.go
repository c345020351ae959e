package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// DirectoryUser is one canned user served by the directory mock.
type DirectoryUser struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Directory mocks the remote user directory API. It serves GET /users with a
// configurable user list and records the query parameters it receives.
type Directory struct {
	mu      sync.Mutex
	server  *httptest.Server
	users   []DirectoryUser
	failing bool
	queries []map[string]string
}

// NewDirectory starts a directory mock with no users configured.
func NewDirectory() *Directory {
	d := &Directory{}
	d.server = httptest.NewServer(http.HandlerFunc(d.handle))
	return d
}

func (d *Directory) handle(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()

	query := map[string]string{}
	for key, values := range r.URL.Query() {
		query[key] = values[0]
	}
	d.queries = append(d.queries, query)

	if d.failing || r.URL.Path != "/users" {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"users": d.users})
}

// URL returns the mock's base URL.
func (d *Directory) URL() string {
	return d.server.URL
}

// SetUsers configures the users the mock serves.
func (d *Directory) SetUsers(users []DirectoryUser) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = users
}

// SetFailing makes the mock answer every request with a server error.
func (d *Directory) SetFailing(failing bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failing = failing
}

// Queries returns the query parameters received so far, in request order.
func (d *Directory) Queries() []map[string]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]map[string]string(nil), d.queries...)
}

// Close shuts the mock server down.
func (d *Directory) Close() {
	d.server.Close()
}
