// Package sdk is the Go client for the Heart Beat REST backend.
//
// The backend authenticates with an ambient session cookie, so a Client
// carries a cookie jar and every call rides the same jar. The backend's
// internals are out of scope here; the client depends only on the endpoint
// contracts.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is where a local development backend listens.
const DefaultBaseURL = "http://localhost:5000/api"

// Client provides typed access to the Heart Beat API.
type Client struct {
	baseURL  string
	http     *http.Client
	log      zerolog.Logger
	validate *validator.Validate
}

// ClientOptions configures client construction.
type ClientOptions struct {
	HTTPClient     *http.Client
	Logger         zerolog.Logger
	OnUnauthorized func()
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls. The caller
// then owns cookie handling and 401 interception.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithLogger attaches a logger for wire-level debug output.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = log
	}
}

// WithOnUnauthorized installs a hook fired whenever any endpoint other than
// login/register answers 401, i.e. the ambient session has gone invalid.
func WithOnUnauthorized(hook func()) ClientOption {
	return func(opts *ClientOptions) {
		opts.OnUnauthorized = hook
	}
}

// NewClient creates a client for the API server at baseURL. When no HTTP
// client is supplied, one is built with a fresh cookie jar and the 401
// interceptor.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{Logger: zerolog.Nop()}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		jar, _ := cookiejar.New(nil)
		opts.HTTPClient = &http.Client{
			Jar: jar,
			Transport: &unauthorizedInterceptor{
				next: http.DefaultTransport,
				hook: opts.OnUnauthorized,
			},
		}
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     opts.HTTPClient,
		log:      opts.Logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// BaseURL returns the API server URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one JSON round trip. A nil out discards the response body; a
// nil body sends no payload. Non-2xx responses come back as *APIError with
// the backend's message field when present.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// checkInput validates a request struct before it hits the wire.
func (c *Client) checkInput(input any) error {
	if err := c.validate.Struct(input); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}
