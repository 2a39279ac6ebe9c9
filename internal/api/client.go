// Package api provides the single shared HTTP client for the resume service.
// A request interceptor attaches the bearer token to every call except the
// authentication endpoints; a response interceptor clears the session and
// navigates to the login page on any 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore is the slice of the storage accessor the client needs: the
// current token for the request interceptor and teardown for the 401 policy.
type SessionStore interface {
	Token() string
	Clear() error
}

// NavigateFunc hard-navigates the application to a path.
type NavigateFunc func(path string)

// Client is the shared HTTP client. All domain services go through it.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	session    SessionStore
	navigate   NavigateFunc
	log        *zap.Logger
}

// Paths that never carry a bearer token.
var authPaths = []string{"/auth/login", "/auth/register"}

// NewClient creates the shared client. navigate may be replaced later via
// SetNavigate once the router exists.
func NewClient(baseURL string, timeout time.Duration, session SessionStore, log *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: invalid base URL %q", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    u,
		session:    session,
		navigate:   func(string) {},
		log:        log,
	}, nil
}

// SetNavigate installs the navigation hook used by the 401 policy.
func (c *Client) SetNavigate(fn NavigateFunc) {
	if fn != nil {
		c.navigate = fn
	}
}

// Get performs a GET request, decoding the response into out when non-nil.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// PostMultipart uploads file content under field with optional extra form
// values, decoding the response into out when non-nil.
func (c *Client) PostMultipart(ctx context.Context, path, field, filename string, content io.Reader, extra map[string]string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("api: building multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("api: copying file content: %w", err)
	}
	for k, v := range extra {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("api: writing form field: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("api: closing multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.execute(req, path, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encoding request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.execute(req, path, out)
}

// newRequest builds the request and applies the request interceptor.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("api: invalid path %q: %w", path, err)
	}
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + ref.Path
	u.RawQuery = ref.RawQuery

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token := c.session.Token(); token != "" && !isAuthPath(path) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// execute runs the request and applies the response interceptor.
func (c *Client) execute(req *http.Request, path string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("network error, check your connection",
			zap.String("method", req.Method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: reading response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("api: decoding response body: %w", err)
		}
		return nil
	}

	apiErr := parseError(resp.StatusCode, raw)

	switch {
	case resp.StatusCode == http.StatusUnauthorized && !strings.HasPrefix(path, "/auth/login"):
		// Cross-cutting policy: any 401 during an authenticated session ends
		// it, regardless of which endpoint produced it.
		if err := c.session.Clear(); err != nil {
			c.log.Error("clearing session after 401", zap.Error(err))
		}
		c.navigate("/login")
	case resp.StatusCode == http.StatusForbidden:
		c.log.Error("access forbidden", zap.String("path", path))
	case resp.StatusCode >= 500:
		c.log.Error("server error occurred",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
	}

	return apiErr
}

func parseError(status int, raw []byte) *Error {
	apiErr := &Error{Status: status}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}

func isAuthPath(path string) bool {
	for _, p := range authPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
