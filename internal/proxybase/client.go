// Package proxybase implements the REST client for the ProxyBase marketplace
// API. Each method issues exactly one HTTP request and classifies the reply;
// the decoded JSON body is passed through uninterpreted on success.
package proxybase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/proxybase/proxybase-mcp/internal/logger"
)

const apiKeyHeader = "X-API-Key"

// Client talks to the ProxyBase API. The zero value is not usable; construct
// with NewClient.
type Client struct {
	http    *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewClient builds a Client for the given base URL. A trailing slash on the
// base URL is stripped so path joining stays predictable.
func NewClient(baseURL string, timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		log:     logger.ForComponent("proxybase"),
	}
}

// RegisterAgent creates a new agent account. This is the only unauthenticated
// operation; the response carries the API key for all subsequent calls.
func (c *Client) RegisterAgent(ctx context.Context) (interface{}, error) {
	return c.do(ctx, http.MethodPost, "/v1/agents", "", nil)
}

// ListPackages returns the available bandwidth packages.
func (c *Client) ListPackages(ctx context.Context, apiKey string) (interface{}, error) {
	return c.do(ctx, http.MethodGet, "/v1/packages", apiKey, nil)
}

// ListCurrencies returns the payment currencies enabled on the merchant
// account.
func (c *Client) ListCurrencies(ctx context.Context, apiKey string) (interface{}, error) {
	return c.do(ctx, http.MethodGet, "/v1/currencies", apiKey, nil)
}

// CreateOrder places a new proxy order. Optional fields are omitted from the
// request body entirely when unset.
func (c *Client) CreateOrder(ctx context.Context, apiKey, packageID, payCurrency, callbackURL string) (interface{}, error) {
	payload := map[string]string{"package_id": packageID}
	if payCurrency != "" {
		payload["pay_currency"] = payCurrency
	}
	if callbackURL != "" {
		payload["callback_url"] = callbackURL
	}
	return c.do(ctx, http.MethodPost, "/v1/orders", apiKey, payload)
}

// CheckOrderStatus fetches payment and provisioning state for an order.
func (c *Client) CheckOrderStatus(ctx context.Context, apiKey, orderID string) (interface{}, error) {
	return c.do(ctx, http.MethodGet, orderPath(orderID, "status"), apiKey, nil)
}

// TopupOrder adds bandwidth to an existing order.
func (c *Client) TopupOrder(ctx context.Context, apiKey, orderID, packageID, payCurrency string) (interface{}, error) {
	payload := map[string]string{"package_id": packageID}
	if payCurrency != "" {
		payload["pay_currency"] = payCurrency
	}
	return c.do(ctx, http.MethodPost, orderPath(orderID, "topup"), apiKey, payload)
}

// RotateProxy requests a fresh IP for an active order.
func (c *Client) RotateProxy(ctx context.Context, apiKey, orderID string) (interface{}, error) {
	return c.do(ctx, http.MethodPost, orderPath(orderID, "rotate"), apiKey, nil)
}

func orderPath(orderID, action string) string {
	return fmt.Sprintf("/v1/orders/%s/%s", url.PathEscape(orderID), action)
}

// do performs a single round-trip and classifies the outcome. Any response
// body, success or failure, must decode as JSON; a non-2xx status turns into
// an error string embedding the status and the decoded body.
func (c *Client) do(ctx context.Context, method, path, apiKey string, payload interface{}) (interface{}, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("HTTP error: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("HTTP error: %v", err)
	}
	if apiKey != "" {
		req.Header.Set(apiKeyHeader, apiKey)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("backend request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP error: %v", err)
	}
	defer resp.Body.Close()

	var decoded interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("Parse error: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rendered, err := json.Marshal(decoded)
		if err != nil {
			rendered = []byte(fmt.Sprintf("%v", decoded))
		}
		return nil, fmt.Errorf("API error (%s): %s", resp.Status, rendered)
	}

	return decoded, nil
}
