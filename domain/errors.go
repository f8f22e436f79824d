package domain

import "errors"

var (
	// ErrUnknownProvider is returned before any upstream call is made.
	ErrUnknownProvider = errors.New("Unknown provider")
	// ErrEmptyText means sanitization left nothing to speak.
	ErrEmptyText = errors.New("Empty text")
)

// UpstreamError wraps any failure of a provider or speech engine.
// Its message is the cause's message unchanged.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return "upstream failure"
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func NewUpstreamError(err error) error {
	return &UpstreamError{Err: err}
}

// IsInputError reports whether err was caused by the caller's input.
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnknownProvider) || errors.Is(err, ErrEmptyText)
}
