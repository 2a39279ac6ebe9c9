// Package storage persists the client session (auth token, user projection,
// theme preference) as a single JSON document on disk, replacing what the
// browser build kept in localStorage under fixed keys.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Fixed storage keys, mirrored in the on-disk JSON document.
const (
	KeyToken = "auth_token"
	KeyUser  = "user_data"
	KeyTheme = "theme"
)

// Theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const fileName = "session.json"

// Store is a file-backed key/value store for the client session. All methods
// are safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Open loads the session document from dir, creating the directory when
// needed. A missing or unreadable document starts an empty session.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("storage: creating %s: %w", dir, err)
	}

	s := &Store{
		path: filepath.Join(dir, fileName),
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("storage: reading %s: %w", s.path, err)
	}
	// A corrupt session file is discarded rather than blocking startup.
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = make(map[string]json.RawMessage)
	}
	return s, nil
}

// Token returns the stored bearer token, or "" when absent.
func (s *Store) Token() string {
	return s.getString(KeyToken)
}

// SetToken persists the bearer token.
func (s *Store) SetToken(token string) error {
	return s.setString(KeyToken, token)
}

// ClearToken removes the stored bearer token.
func (s *Store) ClearToken() error {
	return s.delete(KeyToken)
}

// User unmarshals the stored user projection into v, reporting whether one
// was present.
func (s *Store) User(v any) bool {
	s.mu.Lock()
	raw, ok := s.data[KeyUser]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// SetUser persists the user projection.
func (s *Store) SetUser(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encoding user: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyUser] = raw
	return s.flush()
}

// ClearUser removes the stored user projection.
func (s *Store) ClearUser() error {
	return s.delete(KeyUser)
}

// Theme returns the stored theme preference, falling back to the OS
// preference when none is set.
func (s *Store) Theme() string {
	if t := s.getString(KeyTheme); t == ThemeDark || t == ThemeLight {
		return t
	}
	if systemPrefersDark() {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return fmt.Errorf("storage: unknown theme %q", theme)
	}
	return s.setString(KeyTheme, theme)
}

// Clear removes every stored key. Used on logout and on any 401 response.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]json.RawMessage)
	return s.flush()
}

func (s *Store) getString(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

func (s *Store) setString(key, value string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flush()
}

func (s *Store) delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.flush()
}

// flush writes the document atomically. Callers hold s.mu.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encoding session: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("storage: writing session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("storage: replacing session: %w", err)
	}
	return nil
}

// systemPrefersDark approximates the OS dark-mode preference from the
// COLORFGBG terminal hint ("fg;bg", background 0-6 is dark).
func systemPrefersDark() bool {
	hint := os.Getenv("COLORFGBG")
	if hint == "" {
		return false
	}
	parts := strings.Split(hint, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false
	}
	return bg <= 6
}
