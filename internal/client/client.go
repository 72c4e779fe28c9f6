// Package client is a small HTTP client for the sensor API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/api"
)

const (
	defaultBaseURL = "http://localhost:5000"
	defaultTimeout = 30 * time.Second

	// BaseURLEnv overrides the default base URL when Options.BaseURL is empty.
	BaseURLEnv = "SENSORAPI_BASE_URL"
)

// Options configures the client.
type Options struct {
	// BaseURL is the sensor API URL. Default: http://localhost:5000
	BaseURL string

	// Timeout is the HTTP request timeout. Default: 30s.
	Timeout time.Duration

	// HTTPClient overrides the default http.Client.
	HTTPClient *http.Client
}

// Client talks to one sensor API instance. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client.
//
// Configuration is resolved in order: explicit options > environment variables > defaults.
//
//	c := client.New(nil)
//	c := client.New(&client.Options{BaseURL: "http://sensors.local:5000"})
func New(opts *Options) *Client {
	baseURL := defaultBaseURL
	timeout := defaultTimeout
	var httpClient *http.Client

	if v := os.Getenv(BaseURLEnv); v != "" {
		baseURL = v
	}

	if opts != nil {
		if opts.BaseURL != "" {
			baseURL = opts.BaseURL
		}
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		httpClient = opts.HTTPClient
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the resolved base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Home returns the plain-text banner served at /.
func (c *Client) Home(ctx context.Context) (string, error) {
	body, err := c.do(ctx, "/")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var result api.HealthResponse
	if err := c.getJSON(ctx, "/health", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SensorData calls GET /data.
func (c *Client) SensorData(ctx context.Context) (*api.SensorDataResponse, error) {
	var result api.SensorDataResponse
	if err := c.getJSON(ctx, "/data", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CPULoad calls GET /cpu-load, which runs one gentle workload on the server.
func (c *Client) CPULoad(ctx context.Context) (*api.CPULoadResponse, error) {
	var result api.CPULoadResponse
	if err := c.getJSON(ctx, "/cpu-load", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	body, err := c.do(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("sensorapi: decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("sensorapi: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sensorapi: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sensorapi: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, errorFromResponse(resp.StatusCode, body)
	}
	return body, nil
}
