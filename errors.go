package client

import "errors"

// Input validation errors. These are returned before any request is sent.
var (
	ErrInvalidField          = errors.New("invalid field")
	ErrInvalidOrderField     = errors.New("invalid order field")
	ErrInvalidOrderDirection = errors.New("invalid order direction")
	ErrMissingRequiredField  = errors.New("missing required field")
)

var (
	// ErrRequestFailed is wrapped by [PagedResult.Err] when a page request
	// returned a status other than 200.
	ErrRequestFailed = errors.New("request failed")

	// ErrServiceUnavailable is returned when the ping route cannot be reached.
	ErrServiceUnavailable = errors.New("joplin data API not available")

	// ErrAuthorizationDenied is returned when the user did not grant a token.
	ErrAuthorizationDenied = errors.New("user has denied access to joplin")

	ErrNotConnected = errors.New("client not connected - call Connect() first")
)
