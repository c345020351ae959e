// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

const directorySuggestionLimit = 10

// httpUserDirectory fetches member candidates from a remote user API.
type httpUserDirectory struct {
	baseURL string
	client  *http.Client
}

// NewHTTPUserDirectory creates a directory backed by the remote user API at
// baseURL (e.g. https://dummyjson.com).
func NewHTTPUserDirectory(baseURL string) adapter.UserDirectory {
	return &httpUserDirectory{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type directoryResponse struct {
	Users []struct {
		ID        int    `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"users"`
}

// Suggest fetches up to ten users and maps them to display names.
func (d *httpUserDirectory) Suggest(ctx context.Context) ([]adapter.DirectoryUser, error) {
	url := fmt.Sprintf("%s/users?limit=%d", d.baseURL, directorySuggestionLimit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach user directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user directory returned status %d", resp.StatusCode)
	}

	var body directoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}

	users := make([]adapter.DirectoryUser, 0, len(body.Users))
	for _, u := range body.Users {
		users = append(users, adapter.DirectoryUser{
			ID:          u.ID,
			DisplayName: strings.TrimSpace(u.FirstName + " " + u.LastName),
		})
	}
	return users, nil
}

// noopUserDirectory always suggests nothing.
type noopUserDirectory struct{}

// NewNoopUserDirectory creates a directory that never suggests anyone, for
// deployments without the remote user API.
func NewNoopUserDirectory() adapter.UserDirectory {
	return noopUserDirectory{}
}

func (noopUserDirectory) Suggest(ctx context.Context) ([]adapter.DirectoryUser, error) {
	return nil, nil
}
