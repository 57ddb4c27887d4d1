package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrInvalidIdentifier is returned when a project reference can be resolved
// to neither a numeric ID nor a path.
var ErrInvalidIdentifier = errors.New("invalid project identifier")

// APIError wraps a transport failure or unexpected HTTP status. Op names the
// operation that failed, Ref the identifier it was addressing.
type APIError struct {
	Op  string
	Ref string
	Err error
}

func (e *APIError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("gitlab: %s %s: %v", e.Op, e.Ref, e.Err)
	}
	return fmt.Sprintf("gitlab: %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// apiError builds an *APIError for the given operation
func apiError(op, ref string, err error) error {
	return &APIError{Op: op, Ref: ref, Err: err}
}

// unexpectedStatus turns a non-success response into an error carrying the
// status line and response body
func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("unexpected status %s - %s", resp.Status, strings.TrimSpace(string(body)))
}
