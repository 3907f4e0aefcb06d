package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/teemow/gohub/internal/instrumentation"
	"github.com/teemow/gohub/internal/logging"
)

const (
	// DefaultBaseURL is the root of the GitHub v3 REST API.
	DefaultBaseURL = "https://api.github.com"

	// mediaType is the v3 media type sent with every request.
	mediaType = "application/vnd.github.v3+json"
)

// Client is the shared HTTP transport for all resource accessors. It holds
// the base URL, the User-Agent string presented to the API, and the
// underlying HTTP client. A single Client is safe for concurrent use; the
// accessors it hands out carry no state beyond path identifiers.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
	metrics   *instrumentation.Metrics
}

// NewClient creates a Client identified by the given User-Agent string.
// If token is non-empty the transport authenticates every request with an
// oauth2 static token source; otherwise requests are anonymous.
func NewClient(agent, token string) *Client {
	httpClient := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return NewClientWithHTTP(agent, httpClient)
}

// NewClientWithHTTP creates a Client on top of a caller-supplied HTTP
// client. The caller is responsible for any authentication transport.
func NewClientWithHTTP(agent string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:   DefaultBaseURL,
		userAgent: agent,
		http:      httpClient,
		logger:    slog.Default(),
	}
}

// WithBaseURL overrides the API root, e.g. for GitHub Enterprise or tests.
// The URL must not end with a trailing slash.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithLogger sets the structured logger used for request-level debug logs.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithMetrics enables per-request metrics recording through the given
// recorder. A nil recorder leaves metrics disabled.
func (c *Client) WithMetrics(metrics *instrumentation.Metrics) *Client {
	c.metrics = metrics
	return c
}

// Get issues a GET request for path and decodes the JSON response into v.
func (c *Client) Get(ctx context.Context, path string, v any) error {
	return c.do(ctx, http.MethodGet, path, nil, v)
}

// Post issues a POST request with body encoded as JSON and decodes the
// response into v.
func (c *Client) Post(ctx context.Context, path string, body, v any) error {
	return c.do(ctx, http.MethodPost, path, body, v)
}

// Put issues a PUT request with body encoded as JSON and decodes the
// response into v.
func (c *Client) Put(ctx context.Context, path string, body, v any) error {
	return c.do(ctx, http.MethodPut, path, body, v)
}

// Patch issues a PATCH request with body encoded as JSON and decodes the
// response into v.
func (c *Client) Patch(ctx context.Context, path string, body, v any) error {
	return c.do(ctx, http.MethodPatch, path, body, v)
}

// Delete issues a DELETE request for path. The API answers deletions with
// 204 No Content, so no response value is decoded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs a single request/response round trip. Transport errors and
// JSON decode errors are returned unchanged; non-2xx responses are
// converted into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, v any) error {
	ctx, span := instrumentation.StartRequestSpan(ctx, method, path)
	defer span.End()
	start := time.Now()

	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			instrumentation.SetSpanError(span, err)
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		buf = bytes.NewBuffer(data)
	}

	var req *http.Request
	var err error
	if buf != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", mediaType)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		c.metrics.RecordAPIRequest(ctx, method, path, 0, time.Since(start))
		return err
	}
	defer res.Body.Close()

	c.metrics.RecordAPIRequest(ctx, method, path, res.StatusCode, time.Since(start))
	c.logger.Debug("github api request",
		logging.Method(method),
		logging.Path(path),
		logging.StatusCode(res.StatusCode),
		logging.Duration(time.Since(start)))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := newAPIError(res)
		instrumentation.SetSpanError(span, apiErr)
		return apiErr
	}

	if v == nil || res.StatusCode == http.StatusNoContent {
		instrumentation.SetSpanSuccess(span)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		instrumentation.SetSpanError(span, err)
		return err
	}

	instrumentation.SetSpanSuccess(span)
	return nil
}
