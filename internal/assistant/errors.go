package assistant

import "errors"

var (
	// ErrMissingCredential means no API key was configured. Fatal at startup.
	ErrMissingCredential = errors.New("missing credential")
	// ErrEmptyInput means the question was empty or whitespace-only.
	ErrEmptyInput = errors.New("please enter a question")
)

// RemoteFailure wraps any error from the remote service. Message is the
// service's own error text.
type RemoteFailure struct {
	Message string
	Err     error
}

func (e *RemoteFailure) Error() string { return e.Message }

func (e *RemoteFailure) Unwrap() error { return e.Err }

// Error kinds reported by Kind.
const (
	KindMissingCredential = "missing_credential"
	KindEmptyInput        = "empty_input"
	KindRemoteFailure     = "remote_failure"
	KindUnknown           = "unknown"
)

// Kind classifies err as one of the Kind* constants, or "" for nil.
func Kind(err error) string {
	var remote *RemoteFailure
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return KindMissingCredential
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.As(err, &remote):
		return KindRemoteFailure
	default:
		return KindUnknown
	}
}
