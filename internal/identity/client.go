// Package identity is the client for the external identity provider. The
// provider owns sessions and user identifiers; this service only consumes
// them.
package identity

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"qrkeep/internal/pkg/config"

	"github.com/go-resty/resty/v2"
)

// User is the subset of the provider's account document this system cares
// about.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Client struct {
	http *resty.Client
}

// NewClient builds a provider client for cfg.Endpoint. It normalises and
// validates the base URL up front so a misconfigured endpoint fails at
// startup, not on the first session lookup.
func NewClient(cfg config.IdentityConfig) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid identity endpoint: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CurrentUser fetches the account bound to sessionToken via GET /account.
func (c *Client) CurrentUser(ctx context.Context, sessionToken string) (User, error) {
	var user User
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Session-Token", sessionToken).
		SetResult(&user).
		Get("/account")
	if err != nil {
		return User{}, fmt.Errorf("current user request: %w", err)
	}
	if resp.IsError() {
		return User{}, fmt.Errorf("current user request: provider returned %s", resp.Status())
	}
	if user.ID == "" {
		return User{}, fmt.Errorf("current user request: provider returned no user id")
	}
	return user, nil
}

// DeleteSession invalidates the current session (logout) via
// DELETE /account/sessions/current.
func (c *Client) DeleteSession(ctx context.Context, sessionToken string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Session-Token", sessionToken).
		Delete("/account/sessions/current")
	if err != nil {
		return fmt.Errorf("delete session request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("delete session request: provider returned %s", resp.Status())
	}
	return nil
}

// ResolveUser implements middleware.SessionResolver.
func (c *Client) ResolveUser(ctx context.Context, sessionToken string) (string, error) {
	user, err := c.CurrentUser(ctx, sessionToken)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}
