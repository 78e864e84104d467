// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pintransport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jeremyhahn/go-pinguard/pkg/pinguard"
)

const (
	// DefaultConnectTimeout is the default timeout for pinned HTTP requests.
	DefaultConnectTimeout = 10 * time.Second

	// MaxResponseSize is the maximum allowed response body size (1 MB).
	MaxResponseSize = 1 << 20
)

// ClientConfig configures the pinned HTTP client.
type ClientConfig struct {
	// ServerURL is the base URL of the server (e.g., "https://api.example.com:8443").
	ServerURL string

	// Host is the hostname the registry resolves policies against. It also
	// becomes the TLS server name.
	Host string

	// Registry supplies the pinning decision. Defaults to pinguard.Default().
	Registry *pinguard.Registry

	// Verify tunes the platform trust step of the pinned TLS configuration.
	Verify VerifyOptions

	// ConnectTimeout is the timeout for the HTTP request. Defaults to DefaultConnectTimeout.
	ConnectTimeout time.Duration

	// Logger for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client fetches resources over a connection verified by the pinning registry.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new pinned HTTP client.
func NewClient(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, ErrNoRegistry
	}
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("%w: server URL is required", ErrFetchFailed)
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrFetchFailed)
	}
	if cfg.Registry == nil {
		cfg.Registry = pinguard.Default()
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	tlsConfig, err := NewTLSConfig(cfg.Registry, cfg.Host, cfg.Verify)
	if err != nil {
		return nil, err
	}

	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.ConnectTimeout,
			Transport: &http.Transport{
				TLSClientConfig: tlsConfig,
			},
		},
		logger: cfg.Logger.With("component", "pintransport"),
	}, nil
}

// Fetch retrieves the resource at path relative to the configured server URL.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	url := c.config.ServerURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	c.logger.Debug("fetching over pinned connection", "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: server returned %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}

	c.logger.Info("pinned fetch completed", "size", len(body))
	return body, nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
