package client

import (
	"context"
	"errors"
	"net"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the default retry condition used by [APIClient]. It
// retries on transient connection errors only. A response with any status
// code is handed back to the caller untouched, so paginated calls report the
// failing page instead of silently re-requesting it. It does not retry on
// context cancellation, deadline exceeded, or DNS resolution failures.
//
// Retries only happen when a retry count is set via [WithRetryCount]. Supply a
// custom function via [WithRetryPolicy] to override this behaviour.
func DefaultRetryPolicy(_ *resty.Response, err error) bool {
	if err == nil {
		return false
	}

	// Don't retry on context cancellation or deadline exceeded
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Don't retry on DNS resolution errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return false
	}

	return true
}
