package llm

import "fmt"

// APIError carries the remote service's own error message. Error returns that
// message unchanged so it can be shown to the user as-is.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: request failed with status %d", e.Provider, e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.Err }
