package chromium

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
	"github.com/custodia-labs/tabfind/internal/logger"
)

const (
	// DefaultDevToolsURL is the conventional remote debugging endpoint.
	DefaultDevToolsURL = domain.DefaultDevToolsURL

	// DefaultRequestRate is the sustained DevTools request rate per second.
	DefaultRequestRate = 20

	// DefaultBurst is the number of requests allowed back to back.
	DefaultBurst = 5

	defaultTimeout = 5 * time.Second

	targetTypePage = "page"
)

// Ensure DevTools implements TabProvider.
var _ driven.TabProvider = (*DevTools)(nil)

// Target is one entry of the /json/list response.
type Target struct {
	ID                   string `json:"id"`
	Type                 string `json:"type"`
	Title                string `json:"title"`
	URL                  string `json:"url"`
	FaviconURL           string `json:"faviconUrl"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

// VersionInfo is the /json/version response.
type VersionInfo struct {
	Browser              string `json:"Browser"`
	ProtocolVersion      string `json:"Protocol-Version"`
	UserAgent            string `json:"User-Agent"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

// DevTools is a rate-limited client for the browser's HTTP debugging API.
type DevTools struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// DevToolsOption configures a DevTools client.
type DevToolsOption func(*DevTools)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) DevToolsOption {
	return func(d *DevTools) {
		d.client = c
	}
}

// WithRateLimit replaces the default request limiter.
func WithRateLimit(perSecond float64, burst int) DevToolsOption {
	return func(d *DevTools) {
		d.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewDevTools creates a client for the endpoint at baseURL.
// An empty baseURL uses DefaultDevToolsURL.
func NewDevTools(baseURL string, opts ...DevToolsOption) *DevTools {
	if baseURL == "" {
		baseURL = DefaultDevToolsURL
	}
	d := &DevTools{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestRate), DefaultBurst),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// BaseURL returns the endpoint the client talks to.
func (d *DevTools) BaseURL() string {
	return d.baseURL
}

// Version queries /json/version.
func (d *DevTools) Version(ctx context.Context) (VersionInfo, error) {
	var info VersionInfo
	err := d.getJSON(ctx, http.MethodGet, "/json/version", &info)
	return info, err
}

// Targets queries /json/list.
func (d *DevTools) Targets(ctx context.Context) ([]Target, error) {
	var targets []Target
	if err := d.getJSON(ctx, http.MethodGet, "/json/list", &targets); err != nil {
		return nil, err
	}
	return targets, nil
}

// ListOpenTabs returns the page targets in browser order.
func (d *DevTools) ListOpenTabs(ctx context.Context) ([]driven.TabPayload, error) {
	targets, err := d.Targets(ctx)
	if err != nil {
		return nil, err
	}

	tabs := make([]driven.TabPayload, 0, len(targets))
	for _, t := range targets {
		if t.Type != targetTypePage {
			continue
		}
		tabs = append(tabs, driven.TabPayload{
			ID:         t.ID,
			Title:      t.Title,
			URL:        t.URL,
			FavIconURL: t.FaviconURL,
		})
	}
	logger.Debug("devtools: %d page targets of %d", len(tabs), len(targets))
	return tabs, nil
}

// Activate brings the target to the front of its window.
func (d *DevTools) Activate(ctx context.Context, targetID string) error {
	if targetID == "" {
		return fmt.Errorf("%w: empty target id", domain.ErrInvalidInput)
	}
	_, err := d.do(ctx, http.MethodGet, "/json/activate/"+url.PathEscape(targetID))
	return err
}

// NewTab opens rawURL in a new tab.
func (d *DevTools) NewTab(ctx context.Context, rawURL string) (Target, error) {
	var t Target
	// Recent Chromium rejects GET on /json/new.
	err := d.getJSON(ctx, http.MethodPut, "/json/new?"+url.QueryEscape(rawURL), &t)
	return t, err
}

func (d *DevTools) getJSON(ctx context.Context, method, path string, out any) error {
	body, err := d.do(ctx, method, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func (d *DevTools) do(ctx context.Context, method, path string) ([]byte, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, d.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBrowserUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
