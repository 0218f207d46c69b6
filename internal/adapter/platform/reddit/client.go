package reddit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campaign-sync/internal/core/port"
)

const (
	// DefaultBaseURL is the Reddit Ads API host.
	DefaultBaseURL = "https://ads-api.reddit.com"
	apiPrefix      = "/api/v3"
	maxErrorBody   = 64 << 10
	maxPages       = 50
)

var (
	// ErrTooManyPages is returned when a listing still has a next page after
	// maxPages. A partial listing must not be taken for the whole account.
	ErrTooManyPages = errors.New("reddit: listing exceeds page limit")
	// ErrForeignURL is returned for absolute URLs outside the API host; the
	// bearer token is never sent there.
	ErrForeignURL = errors.New("reddit: url outside the api host")
)

// StaticToken is a TokenProvider returning a fixed access token.
type StaticToken string

// AccessToken implements port.TokenProvider.
func (t StaticToken) AccessToken(context.Context) (string, error) { return string(t), nil }

// envelope wraps every request and response body.
type envelope[T any] struct {
	Data       T           `json:"data"`
	Pagination *pagination `json:"pagination,omitempty"`
}

type pagination struct {
	NextURL string `json:"next_url"`
}

// Client performs authenticated JSON calls against the Ads API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	tokens    port.TokenProvider
	userAgent string
	logger    *slog.Logger
	now       func() time.Time
}

// NewClient returns a client. timeout bounds every single request.
func NewClient(baseURL string, tokens port.TokenProvider, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse reddit base url: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:   u,
		http:      &http.Client{Timeout: timeout},
		tokens:    tokens,
		userAgent: "campaign-sync/1.0",
		logger:    logger,
		now:       time.Now,
	}, nil
}

// resolve turns an API path into a URL. Absolute URLs, as found in
// next_url, must point at the configured scheme and host.
func (c *Client) resolve(path string) (string, error) {
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		return c.baseURL.String() + apiPrefix + path, nil
	}
	u, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if !strings.EqualFold(u.Scheme, c.baseURL.Scheme) || !strings.EqualFold(u.Host, c.baseURL.Host) {
		return "", fmt.Errorf("%w: %s", ErrForeignURL, u.Host)
	}
	return path, nil
}

// do sends in (when non-nil) wrapped in a data envelope and decodes the
// response envelope into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(envelope[any]{Data: in})
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	target, err := c.resolve(path)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return &port.OperationError{Code: port.CodeUnauthorized, Message: "access token unavailable", Err: err}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("reddit api call",
		slog.String("method", method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", c.now().Sub(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return decodeAPIError(resp, b, c.now())
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// list follows next_url pagination and collects every item.
func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	for page := 0; path != "" && page < maxPages; page++ {
		var env envelope[[]T]
		if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
			return nil, err
		}
		items = append(items, env.Data...)
		path = ""
		if env.Pagination != nil {
			path = env.Pagination.NextURL
		}
	}
	if path != "" {
		return nil, fmt.Errorf("%w of %d", ErrTooManyPages, maxPages)
	}
	return items, nil
}
