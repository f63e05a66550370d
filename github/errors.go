package github

import "fmt"

// Fetch errors. They never leave the client; they only appear in diagnostic logs.
var (
	ErrInvalidBaseURL    = fmt.Errorf("invalid base url")
	ErrEmptyHandle       = fmt.Errorf("handle cannot be empty")
	ErrTransport         = fmt.Errorf("transport failure")
	ErrUnexpectedStatus  = fmt.Errorf("unexpected status")
	ErrMalformedResponse = fmt.Errorf("malformed response")
)
