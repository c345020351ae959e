// Package dto defines request and response payloads for the API endpoints.
package dto

// ErrorResponse is the error payload returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}
