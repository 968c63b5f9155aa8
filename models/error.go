package models

import "fmt"

// FallbackErrorMessage is used when a failed response carries no parseable
// error body
const FallbackErrorMessage = "unexpected server error"

// ErrorBody is the wire shape of a failed response body
type ErrorBody struct {
	Error string `json:"error"`
}

// APIError is a server-rejected request: the backend answered with a
// non-2xx status and (usually) a JSON error body
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}
