package entities

import "fmt"

// MalformedDeckError is the deck-level fatal failure: raw text that cannot
// be decoded even after the repair pass, or a decoded value missing its
// theme or slides. It preserves the original parser diagnostic.
type MalformedDeckError struct {
	Reason string
	Err    error
}

func (e *MalformedDeckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed deck: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed deck: %s", e.Reason)
}

func (e *MalformedDeckError) Unwrap() error {
	return e.Err
}

// NewMalformedDeckError wraps the original decoding diagnostic.
func NewMalformedDeckError(reason string, err error) *MalformedDeckError {
	return &MalformedDeckError{Reason: reason, Err: err}
}
