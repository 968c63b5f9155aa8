package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/curalink/telehealth-client/models"
)

const (
	// apiPath is appended to the configured origin when not already present
	apiPath = "/api"

	defaultOrigin  = "http://localhost:4000/api"
	defaultTimeout = 15 * time.Second
)

var validate = validator.New()

// TransportError is a network-level failure: the request never produced an
// HTTP response, so no server-supplied message is available
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying transport failure
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is a network-level failure as opposed
// to a server-rejected request
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Client is the REST client for the telehealth backend. It performs no
// retries, caching or request de-duplication; every method is a single
// network call with a normalized result.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout overrides the default request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New returns a Client talking to the given origin. An empty origin falls
// back to the local default; the origin is normalized to always end in the
// API path segment.
func New(origin string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    normalizeOrigin(origin),
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokens:     tokens,
	}
	if c.tokens == nil {
		c.tokens = StaticTokenSource("")
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

func normalizeOrigin(origin string) string {
	if origin == "" {
		origin = defaultOrigin
	}
	origin = strings.TrimRight(origin, "/")
	if !strings.HasSuffix(origin, apiPath) {
		origin += apiPath
	}
	return origin
}

// do performs a single API call: JSON-encodes req when present, attaches the
// bearer token when one is available, and normalizes the result. A 204
// response leaves res untouched; a malformed success body is treated as
// absent data rather than an error.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, req, res interface{}) error {
	var body *bytes.Buffer
	if req != nil {
		body = &bytes.Buffer{}
		if err := json.NewEncoder(body).Encode(req); err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
	}

	u := c.baseURL + path
	if len(params) != 0 {
		u += "?" + params.Encode()
	}

	var httpReq *http.Request
	var err error
	if body != nil {
		httpReq, err = http.NewRequestWithContext(ctx, method, u, body)
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.New().String())
	if token, ok := c.tokens.Token(); ok {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode == http.StatusNoContent {
		return nil
	}

	if httpRes.StatusCode >= 200 && httpRes.StatusCode < 300 {
		if res == nil {
			return nil
		}
		if err := json.NewDecoder(httpRes.Body).Decode(res); err != nil {
			zap.S().Debugw("unparseable success body, treating as empty",
				"method", method,
				"path", path,
				"error", err,
			)
		}
		return nil
	}

	apiErr := &models.APIError{
		StatusCode: httpRes.StatusCode,
		Message:    models.FallbackErrorMessage,
	}
	var eb models.ErrorBody
	if err := json.NewDecoder(httpRes.Body).Decode(&eb); err == nil && eb.Error != "" {
		apiErr.Message = eb.Error
	}
	return apiErr
}
