package client

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Record is a single item as returned by the API.
type Record = map[string]any

// PagedResult is the aggregate of a paginated list or search call.
//
// Data is only set when Success is true; records from pages fetched before a
// failing page are discarded. Responses holds every raw page response, in
// request order, when debug output was requested.
type PagedResult struct {
	Success   bool
	Data      []Record
	Error     string
	Responses []*resty.Response

	// FailedPage and StatusCode identify the failing request when Success is false.
	FailedPage int
	StatusCode int
}

// Err returns nil for a successful result, and an error wrapping
// [ErrRequestFailed] otherwise.
func (r *PagedResult) Err() error {
	if r == nil || r.Success {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrRequestFailed, r.Error)
}

type page struct {
	Items   []Record `json:"items"`
	HasMore bool     `json:"has_more"`
}
