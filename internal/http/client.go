// Package http implements the signed HTTP transport shared by every
// resource client.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	cleanhttp "github.com/hashicorp/go-cleanhttp"

	"github.com/fivetwenty-io/clevercloud/internal/constants"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// Authorizer decorates an outgoing request with authentication material.
type Authorizer interface {
	Authorize(req *http.Request) error
}

// Request describes one API exchange before serialization.
type Request struct {
	// Method: HTTP verb.
	Method string
	// Path: path joined to the base URL, or an absolute http(s) URL used
	// verbatim (pre-signed upload URLs, published execution URLs).
	Path string
	// Query: appended to the URL when non-empty.
	Query url.Values
	// Body: JSON-encoded request payload. Ignored when RawBody is set.
	Body interface{}
	// RawBody: sent verbatim with ContentType and an explicit
	// Content-Length.
	RawBody []byte
	// ContentType: Content-Type accompanying RawBody.
	ContentType string
	// Headers: additional headers, set after the defaults so they win.
	Headers map[string]string
	// Unauthenticated: skip the authorizer for this exchange.
	Unauthenticated bool
}

// Response is the raw half of an exchange: status, headers and the fully
// read body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes requests against a base URL, signing them through an
// optional Authorizer. It performs no retries of any kind: a failed exchange
// surfaces immediately, and replay policy belongs to the underlying
// *http.Client.
type Client struct {
	baseURL    string
	authorizer Authorizer
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     clevercloud.Logger
	debug      bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The replacement owns
// timeout, proxy and retry policy; WithTimeout is ignored once set.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug logging.
func WithLogger(logger clevercloud.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) ClientOption {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient creates a transport bound to baseURL. A nil authorizer leaves
// every request unauthenticated.
func NewClient(baseURL string, authorizer Authorizer, opts ...ClientOption) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		authorizer: authorizer,
		timeout:    constants.DefaultHTTPTimeout,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		httpClient := cleanhttp.DefaultPooledClient()
		httpClient.Timeout = client.timeout
		client.httpClient = httpClient
	}

	return client
}

// SetAuthorizer replaces the request authorizer. The caller must not invoke
// it concurrently with in-flight requests.
func (c *Client) SetAuthorizer(authorizer Authorizer) {
	c.authorizer = authorizer
}

// Do executes a single request. Non-2xx responses return both the Response
// and a *clevercloud.APIError; the transport does not interpret status
// semantics beyond that.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := req.Path
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = c.baseURL + fullURL
	}

	if len(req.Query) > 0 {
		separator := "?"
		if strings.Contains(fullURL, "?") {
			separator = "&"
		}

		fullURL += separator + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case req.RawBody != nil:
		body = bytes.NewReader(req.RawBody)
		contentType = req.ContentType
	case req.Body != nil:
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", clevercloud.ErrEncodeRequest, err)
		}

		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	if req.RawBody != nil {
		httpReq.ContentLength = int64(len(req.RawBody))
	}

	httpReq.Header.Set("Accept", "application/json")

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.authorizer != nil && !req.Unauthenticated {
		err = c.authorizer.Authorize(httpReq)
		if err != nil {
			return nil, fmt.Errorf("authorizing request: %w", err)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": httpResp.StatusCode,
			"bytes":  len(respBody),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, &clevercloud.APIError{StatusCode: httpResp.StatusCode, Body: respBody}
	}

	return resp, nil
}

// Get executes a GET request against the given path.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put executes a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch executes a PATCH request with a JSON-encoded body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete executes a DELETE request against the given path.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// DecodeJSON unmarshals a JSON response body into v.
func DecodeJSON(resp *Response, v interface{}) error {
	err := json.Unmarshal(resp.Body, v)
	if err != nil {
		return fmt.Errorf("%w: %v", clevercloud.ErrDecodeResponse, err)
	}

	return nil
}
