package deviceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HTTPClient implements Client over plain JSON/HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the backend at baseURL. timeout is a
// per-request upper bound; callers may impose shorter deadlines through
// the context (the connectivity probe does).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

func (c *HTTPClient) HotspotStats(ctx context.Context) (*StatsPayload, error) {
	var out StatsPayload
	if err := c.do(ctx, http.MethodGet, "/api/hotspot/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) HotspotConfig(ctx context.Context) (*ConfigPayload, error) {
	var out ConfigPayload
	if err := c.do(ctx, http.MethodGet, "/api/hotspot/config", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateHotspotConfig(ctx context.Context, cfg any) error {
	// The backend echoes the submitted configuration; the echo is not used.
	return c.do(ctx, http.MethodPut, "/api/hotspot/config", cfg, nil)
}

func (c *HTTPClient) ActiveUsers(ctx context.Context) ([]string, error) {
	var out struct {
		ActiveUsers []string `json:"active_users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/hotspot/active-users", nil, &out); err != nil {
		return nil, err
	}
	return out.ActiveUsers, nil
}

func (c *HTTPClient) Metrics(ctx context.Context) (*MetricsPayload, error) {
	var out MetricsPayload
	if err := c.do(ctx, http.MethodGet, "/api/monitoring/metrics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logs(ctx context.Context, limit int) ([]LogPayload, error) {
	var out []LogPayload
	if err := c.do(ctx, http.MethodGet, "/api/logs?limit="+strconv.Itoa(limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Analyze(ctx context.Context, code string) (*AnalysisPayload, error) {
	var out AnalysisPayload
	body := map[string]string{"code": code}
	if err := c.do(ctx, http.MethodPost, "/api/hotspot/analyze", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one JSON round trip. A nil out discards the response body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}
	return nil
}

// classify maps a transport failure onto the package sentinels so callers
// can errors.Is without caring about net/url wrapping.
func classify(err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
