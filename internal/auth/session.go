// Package auth manages the client auth session: login, registration with
// optional avatar upload, logout, and bootstrap from persisted state.
package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/resumeai/client/internal/api"
	"github.com/resumeai/client/internal/service"
	"github.com/resumeai/client/internal/storage"
	"github.com/resumeai/client/internal/validate"
)

// Session failure modes callers branch on.
var (
	// ErrEmailNotVerified means the credentials were accepted but the account
	// awaits email confirmation. The caller routes to /verification-pending.
	ErrEmailNotVerified = errors.New("auth: email not verified")
	// ErrInvalidCredentials is the generic login failure.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
)

// RegisterInput is a registration submission. ImagePath optionally points at
// a local profile image uploaded before the registration call.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	ImagePath string
}

// Manager owns the auth session state exposed to the page tree.
type Manager struct {
	svc       *service.Auth
	store     *storage.Store
	validator *validate.Validator
	navigate  api.NavigateFunc
	log       *zap.Logger

	mu      sync.RWMutex
	user    *service.User
	loading bool
}

// NewManager creates the session manager. navigate is invoked on logout.
func NewManager(svc *service.Auth, store *storage.Store, navigate api.NavigateFunc, log *zap.Logger) *Manager {
	if navigate == nil {
		navigate = func(string) {}
	}
	return &Manager{
		svc:       svc,
		store:     store,
		validator: validate.New(),
		navigate:  navigate,
		log:       log,
	}
}

// IsAuthenticated reports whether a usable session exists: a stored token
// that has not passed its expiry.
func (m *Manager) IsAuthenticated() bool {
	token := m.store.Token()
	return token != "" && !tokenExpired(token)
}

// User returns the current user projection, nil when signed out.
func (m *Manager) User() *service.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Loading reports whether an auth operation is in flight.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Bootstrap restores the session from storage on app start. An expired token
// or a failed profile refresh clears the session.
func (m *Manager) Bootstrap(ctx context.Context) {
	token := m.store.Token()
	if token == "" {
		return
	}
	if tokenExpired(token) {
		m.log.Info("discarding expired session token")
		m.clear()
		return
	}

	var cached service.User
	if m.store.User(&cached) {
		m.setUser(&cached)
	}

	user, err := m.svc.Profile(ctx)
	if err != nil {
		m.log.Warn("failed to refresh profile on bootstrap", zap.Error(err))
		m.clear()
		return
	}
	m.setUser(user)
	if err := m.store.SetUser(user); err != nil {
		m.log.Error("persisting refreshed user", zap.Error(err))
	}
}

// Login authenticates and establishes the session. An unverified account
// fails with ErrEmailNotVerified and leaves no session behind.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := m.validator.Credentials(email, password); err != nil {
		return err
	}

	m.setLoading(true)
	defer m.setLoading(false)

	res, err := m.svc.Login(ctx, email, password)
	if err != nil {
		m.log.Error("login failed", zap.String("email", email), zap.Error(err))
		if api.IsUnauthorized(err) {
			return ErrInvalidCredentials
		}
		return err
	}
	if !res.EmailVerified {
		return ErrEmailNotVerified
	}

	if err := m.store.SetToken(res.Token); err != nil {
		return err
	}
	if err := m.store.SetUser(res.User); err != nil {
		return err
	}
	m.setUser(&res.User)
	return nil
}

// Register uploads the profile image when present, then submits the
// registration. The account stays unverified; no session is created.
func (m *Manager) Register(ctx context.Context, in RegisterInput) error {
	if err := m.validator.Registration(in.Name, in.Email, in.Password); err != nil {
		return err
	}

	m.setLoading(true)
	defer m.setLoading(false)

	payload := service.RegisterPayload{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}

	if in.ImagePath != "" {
		url, err := m.uploadImage(ctx, in.ImagePath)
		if err != nil {
			m.log.Error("profile image upload failed", zap.Error(err))
			return err
		}
		payload.ProfileImageURL = url
	}

	if _, err := m.svc.Register(ctx, payload); err != nil {
		m.log.Error("registration failed", zap.String("email", in.Email), zap.Error(err))
		return err
	}
	return nil
}

// Logout clears the session unconditionally and navigates to the login page.
func (m *Manager) Logout() {
	m.clear()
	m.navigate("/login")
}

func (m *Manager) uploadImage(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return m.svc.UploadImage(ctx, filepath.Base(path), file)
}

func (m *Manager) clear() {
	if err := m.store.Clear(); err != nil {
		m.log.Error("clearing session store", zap.Error(err))
	}
	m.setUser(nil)
}

func (m *Manager) setUser(u *service.User) {
	m.mu.Lock()
	m.user = u
	m.mu.Unlock()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job. Tokens that do not parse as
// JWTs are treated as unexpired opaque tokens.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
