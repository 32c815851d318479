// Package client is the typed HTTP client for the QR record service.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"qrkeep/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

var (
	ErrNotFound  = errs.New("qr code not found")
	ErrForbidden = errs.New("not allowed to touch this qr code")
)

// QRCode is the wire shape of a record as the service returns it.
type QRCode struct {
	UserID    string `json:"userId"`
	CodeID    string `json:"qrCodeId"`
	Data      string `json:"data"`
	Image     string `json:"qrCodeImage"`
	CreatedAt string `json:"createdAt"`
}

type generateResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	QRCode  *QRCode `json:"qrCode"`
}

type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(normalized).
		SetTimeout(timeout).
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

// SetSessionToken attaches the identity provider's session token to all
// subsequent requests, so the server can resolve a verified user id.
func (c *Client) SetSessionToken(token string) {
	c.http.SetHeader("X-Session-Token", strings.TrimSpace(token))
}

func (c *Client) ListQRCodes(ctx context.Context, userID string) ([]QRCode, error) {
	var codes []QRCode
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&codes).
		Get("/api/user/" + url.PathEscape(userID) + "/qrcodes")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err := mapStatusError(resp); err != nil {
		return nil, err
	}
	return codes, nil
}

func (c *Client) Generate(ctx context.Context, userID, data string) (*QRCode, error) {
	var result generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"userId": userID, "data": data}).
		SetResult(&result).
		Post("/api/generate")
	if err != nil {
		return nil, fmt.Errorf("generate request: %w", err)
	}
	if err := mapStatusError(resp); err != nil {
		return nil, err
	}
	if result.QRCode == nil {
		return nil, errs.New("server returned no qr code")
	}
	return result.QRCode, nil
}

func (c *Client) UpdateQRCode(ctx context.Context, codeID, userID, data string) (*QRCode, error) {
	var result generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"userId": userID, "data": data}).
		SetResult(&result).
		Put("/api/qr/" + url.PathEscape(codeID))
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}
	if err := mapStatusError(resp); err != nil {
		return nil, err
	}
	if result.QRCode == nil {
		return nil, errs.New("server returned no qr code")
	}
	return result.QRCode, nil
}

func (c *Client) DeleteQRCode(ctx context.Context, codeID, userID string) error {
	req := c.http.R().SetContext(ctx)
	if userID != "" {
		req.SetQueryParam("userId", userID)
	}
	resp, err := req.Delete("/api/qr/" + url.PathEscape(codeID))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return mapStatusError(resp)
}

func mapStatusError(resp *resty.Response) error {
	switch {
	case !resp.IsError():
		return nil
	case resp.StatusCode() == 404:
		return ErrNotFound
	case resp.StatusCode() == 403:
		return ErrForbidden
	default:
		return fmt.Errorf("server returned %s: %s", resp.Status(), resp.String())
	}
}
