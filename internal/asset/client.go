package asset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Fetcher loads decorative animations. Implementations never fail loudly:
// anything other than a decoded 200 response is reported as absent.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Lottie, bool)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client fetches Lottie documents over HTTP with a single GET per call. It
// does not retry or cache.
type Client struct {
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

const (
	defaultUserAgent = "akshrail/0.1"
	requestTimeout   = 5 * time.Second
	maxBodyBytes     = 8 << 20
)

// NewClient builds a Client. A zero timeout uses the default and a nil logger
// discards diagnostics.
func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = requestTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
		logger:    logger,
	}
}

// Fetch retrieves and decodes the animation at rawURL. Failures are logged at
// debug level and reported as false.
func (c *Client) Fetch(ctx context.Context, rawURL string) (Lottie, bool) {
	if c == nil || strings.TrimSpace(rawURL) == "" {
		return Lottie{}, false
	}
	doc, err := c.get(ctx, rawURL)
	if err != nil {
		c.logger.Debug("animation unavailable", zap.String("url", rawURL), zap.Error(err))
		return Lottie{}, false
	}
	return doc, true
}

func (c *Client) get(ctx context.Context, rawURL string) (Lottie, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Lottie{}, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Lottie{}, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Lottie{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Lottie{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Lottie{}, fmt.Errorf("%s returned status %d", u.Host, resp.StatusCode)
	}

	var doc Lottie
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := decoder.Decode(&doc); err != nil {
		return Lottie{}, fmt.Errorf("decode response: %w", err)
	}
	return doc, nil
}
