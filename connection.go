package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
)

// Authorization status values reported by the auth check route.
const (
	AuthStatusWaiting  = "waiting"
	AuthStatusAccepted = "accepted"
	AuthStatusRejected = "rejected"
)

// AuthResult is the final answer of the auth check route.
type AuthResult struct {
	Status string `json:"status"`
	Token  string `json:"token,omitempty"`
}

var errAuthPending = errors.New("authorization pending")

// CheckConnection reports whether the ping route answers. Only transport
// failures count as unreachable; any HTTP status means the service is up.
func (c *APIClient) CheckConnection(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	_, err := c.http.R().SetContext(ctx).Get(c.settings.PingRoute)
	if err != nil {
		c.options.requestLogger.Debugf("ping %s failed: %v", c.settings.BaseURL(), requestError(http.MethodGet, c.settings.PingRoute, err))
		return false
	}

	return true
}

// RequestToken starts the authorization handshake and polls until the user
// answers the prompt shown by Joplin. The returned result carries the
// terminal status and, when accepted, the token.
//
// Polling waits the configured poll interval between checks. It stops when
// ctx ends or, if set, when the auth timeout elapses.
func (c *APIClient) RequestToken(ctx context.Context) (*AuthResult, error) {
	initToken, err := c.initAuth(ctx)
	if err != nil {
		return nil, err
	}

	if c.options.authTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.authTimeout)
		defer cancel()
	}

	poll := func() (*AuthResult, error) {
		result, err := c.checkAuth(ctx, initToken)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		if result.Status == AuthStatusWaiting {
			return nil, errAuthPending
		}

		return result, nil
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(c.options.authPollInterval), ctx)

	result, err := backoff.RetryWithData(poll, b)
	if err != nil {
		if errors.Is(err, errAuthPending) || ctx.Err() != nil {
			return nil, fmt.Errorf("waiting for authorization: %w", ctx.Err())
		}

		return nil, err
	}

	return result, nil
}

// Authenticate checks the connection and runs the authorization handshake.
// It returns [ErrServiceUnavailable] if the API cannot be reached and
// [ErrAuthorizationDenied] if the user does not accept. A ctx that ends
// before the service answers yields ctx.Err().
func (c *APIClient) Authenticate(ctx context.Context) (string, error) {
	if !c.CheckConnection(ctx) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		return "", fmt.Errorf("%w at %s", ErrServiceUnavailable, c.settings.BaseURL())
	}

	result, err := c.RequestToken(ctx)
	if err != nil {
		return "", err
	}

	if result.Status != AuthStatusAccepted {
		return "", fmt.Errorf("%w: authorization status %q", ErrAuthorizationDenied, result.Status)
	}

	if result.Token == "" {
		return "", errors.New("authorization accepted but no token returned")
	}

	return result.Token, nil
}

func (c *APIClient) initAuth(ctx context.Context) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Post(c.settings.AuthInitRoute)
	if err != nil {
		return "", requestError(http.MethodPost, c.settings.AuthInitRoute, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("POST /%s failed with status code: %d", c.settings.AuthInitRoute, resp.StatusCode())
	}

	var body struct {
		AuthToken string `json:"auth_token"`
	}

	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("failed to decode auth init response: %w", err)
	}

	if body.AuthToken == "" {
		return "", errors.New("auth init response has no auth_token")
	}

	return body.AuthToken, nil
}

func (c *APIClient) checkAuth(ctx context.Context, initToken string) (*AuthResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("auth_token", initToken).
		Get(c.settings.AuthCheckRoute)
	if err != nil {
		return nil, requestError(http.MethodGet, c.settings.AuthCheckRoute, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("GET /%s failed with status code: %d", c.settings.AuthCheckRoute, resp.StatusCode())
	}

	var result AuthResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode auth check response: %w", err)
	}

	if result.Status == "" {
		return nil, errors.New("auth check response has no status")
	}

	return &result, nil
}
