package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/resumeai/client/internal/api"
	"github.com/resumeai/client/internal/service"
	"github.com/resumeai/client/internal/storage"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newManager(t *testing.T, handler http.Handler) (*Manager, *storage.Store, *[]string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)

	client, err := api.NewClient(srv.URL, 5*time.Second, store, zap.NewNop())
	require.NoError(t, err)

	var visited []string
	navigate := func(path string) { visited = append(visited, path) }
	client.SetNavigate(navigate)

	m := NewManager(service.NewAuth(client), store, navigate, zap.NewNop())
	return m, store, &visited
}

func loginHandler(result service.LoginResult) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(result)
	})
}

func TestLoginEstablishesSession(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	m, store, _ := newManager(t, loginHandler(service.LoginResult{
		Token:         token,
		User:          service.User{ID: "u1", Name: "Ada", Email: "ada@example.com"},
		EmailVerified: true,
	}))

	err := m.Login(context.Background(), "ada@example.com", "Passw0rd")
	require.NoError(t, err)

	assert.Equal(t, token, store.Token())
	assert.True(t, m.IsAuthenticated())
	require.NotNil(t, m.User())
	assert.Equal(t, "Ada", m.User().Name)

	var persisted service.User
	assert.True(t, store.User(&persisted))
	assert.Equal(t, "ada@example.com", persisted.Email)
}

func TestLoginUnverifiedEmailLeavesNoSession(t *testing.T) {
	m, store, _ := newManager(t, loginHandler(service.LoginResult{
		Token:         signedToken(t, time.Now().Add(time.Hour)),
		User:          service.User{ID: "u1"},
		EmailVerified: false,
	}))

	err := m.Login(context.Background(), "ada@example.com", "Passw0rd")
	assert.ErrorIs(t, err, ErrEmailNotVerified)
	assert.Empty(t, store.Token())
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.User())
}

func TestLoginRejectedCredentials(t *testing.T) {
	m, store, _ := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))

	err := m.Login(context.Background(), "ada@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, store.Token())
}

func TestLoginValidatesInputBeforeRequest(t *testing.T) {
	m, _, _ := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for invalid input")
	}))

	err := m.Login(context.Background(), "not-an-email", "Passw0rd")
	assert.Error(t, err)

	err = m.Login(context.Background(), "ada@example.com", "shr")
	assert.Error(t, err)
}

func TestRegisterCreatesNoSession(t *testing.T) {
	var gotPayload service.RegisterPayload
	m, store, _ := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(map[string]any{
			"message": "registered",
			"user":    service.User{ID: "u2", Name: "Ada"},
		})
	}))

	err := m.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "Passw0rd1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", gotPayload.Name)
	assert.Empty(t, store.Token())
	assert.False(t, m.IsAuthenticated())
}

func TestLogoutClearsAndRedirects(t *testing.T) {
	m, store, visited := newManager(t, http.NotFoundHandler())
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(time.Hour))))
	require.NoError(t, store.SetUser(service.User{ID: "u1"}))

	m.Logout()

	assert.Empty(t, store.Token())
	assert.Nil(t, m.User())
	assert.Equal(t, []string{"/login"}, *visited)
}

func TestBootstrapDiscardsExpiredToken(t *testing.T) {
	m, store, _ := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for expired token")
	}))
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(-time.Hour))))

	m.Bootstrap(context.Background())

	assert.Empty(t, store.Token())
	assert.False(t, m.IsAuthenticated())
}

func TestBootstrapRefreshesProfile(t *testing.T) {
	m, store, _ := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/profile", r.URL.Path)
		json.NewEncoder(w).Encode(service.User{ID: "u1", Name: "Ada Lovelace", Plan: "pro"})
	}))
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(time.Hour))))
	require.NoError(t, store.SetUser(service.User{ID: "u1", Name: "Ada"}))

	m.Bootstrap(context.Background())

	require.NotNil(t, m.User())
	assert.Equal(t, "Ada Lovelace", m.User().Name)
	assert.Equal(t, "pro", m.User().Plan)

	var persisted service.User
	require.True(t, store.User(&persisted))
	assert.Equal(t, "Ada Lovelace", persisted.Name)
}

func TestBootstrapClearsOnProfileFailure(t *testing.T) {
	m, store, _ := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
	}))
	require.NoError(t, store.SetToken(signedToken(t, time.Now().Add(time.Hour))))

	m.Bootstrap(context.Background())

	assert.Empty(t, store.Token())
	assert.Nil(t, m.User())
}

func TestOpaqueTokenCountsAsAuthenticated(t *testing.T) {
	m, store, _ := newManager(t, http.NotFoundHandler())
	require.NoError(t, store.SetToken("opaque-session-token"))
	assert.True(t, m.IsAuthenticated())
}
