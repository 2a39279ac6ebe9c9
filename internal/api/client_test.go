package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	token   string
	cleared bool
}

func (f *fakeSession) Token() string { return f.token }
func (f *fakeSession) Clear() error  { f.token = ""; f.cleared = true; return nil }

func newTestClient(t *testing.T, baseURL string, session *fakeSession) *Client {
	t.Helper()
	c, err := NewClient(baseURL, 5*time.Second, session, zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("not a url", time.Second, &fakeSession{}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewClient("localhost:8080", time.Second, &fakeSession{}, zap.NewNop())
	assert.Error(t, err)
}

func TestBearerAttachedToAuthenticatedCalls(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL+"/api", &fakeSession{token: "tok-1"})
	require.NoError(t, c.Get(context.Background(), "/resume", nil))

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestBearerSkippedOnAuthEndpoints(t *testing.T) {
	headers := map[string]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers[r.URL.Path] = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL+"/api", &fakeSession{token: "tok-1"})
	require.NoError(t, c.Post(context.Background(), "/auth/login", map[string]string{}, nil))
	require.NoError(t, c.Post(context.Background(), "/auth/register", map[string]string{}, nil))
	require.NoError(t, c.Get(context.Background(), "/auth/profile", nil))

	assert.Empty(t, headers["/api/auth/login"])
	assert.Empty(t, headers["/api/auth/register"])
	assert.Equal(t, "Bearer tok-1", headers["/api/auth/profile"])
}

func TestUnauthorizedClearsSessionAndNavigates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	session := &fakeSession{token: "stale"}
	c := newTestClient(t, server.URL+"/api", session)

	var navigatedTo string
	c.SetNavigate(func(path string) { navigatedTo = path })

	err := c.Get(context.Background(), "/resume/42", nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.True(t, session.cleared)
	assert.Equal(t, "/login", navigatedTo)
}

func TestUnauthorizedOnLoginDoesNotNavigate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer server.Close()

	session := &fakeSession{}
	c := newTestClient(t, server.URL+"/api", session)

	navigated := false
	c.SetNavigate(func(string) { navigated = true })

	err := c.Post(context.Background(), "/auth/login", map[string]string{}, nil)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, navigated)
	assert.False(t, session.cleared)
}

func TestForbiddenAndServerErrorsAreNotIntercepted(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"message":"nope"}`))
		}))

		session := &fakeSession{token: "tok"}
		c := newTestClient(t, server.URL+"/api", session)
		navigated := false
		c.SetNavigate(func(string) { navigated = true })

		err := c.Get(context.Background(), "/resume", nil)
		require.Error(t, err)
		assert.True(t, IsStatus(err, status))
		assert.False(t, navigated)
		assert.False(t, session.cleared)
		server.Close()
	}
}

func TestErrorBodyDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"title is required","code":"INVALID_INPUT"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL+"/api", &fakeSession{})
	err := c.Post(context.Background(), "/resume", map[string]string{}, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "INVALID_INPUT", apiErr.Code)
	assert.Equal(t, "title is required", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "title is required")
}

func TestNetworkErrorWrapped(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1/api", &fakeSession{})
	err := c.Get(context.Background(), "/resume", nil)
	require.Error(t, err)

	// Transport failures are not API errors; callers surface them per-call.
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
	assert.False(t, IsUnauthorized(err))
}

func TestPostMultipart(t *testing.T) {
	var contentType, fileContent, extraField string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("profilePic")
		require.NoError(t, err)
		defer file.Close()
		buf := make([]byte, 16)
		n, _ := file.Read(buf)
		fileContent = string(buf[:n])
		extraField = r.FormValue("kind")
		w.Write([]byte(`{"imageUrl":"https://cdn.example.com/a.png"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL+"/api", &fakeSession{token: "tok"})

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	err := c.PostMultipart(context.Background(), "/auth/upload-image", "profilePic", "a.png",
		strings.NewReader("png-bytes"), map[string]string{"kind": "avatar"}, &out)
	require.NoError(t, err)

	assert.Contains(t, contentType, "multipart/form-data")
	assert.Equal(t, "png-bytes", fileContent)
	assert.Equal(t, "avatar", extraField)
	assert.Equal(t, "https://cdn.example.com/a.png", out.ImageURL)
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL+"/api", &fakeSession{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Get(ctx, "/resume", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

