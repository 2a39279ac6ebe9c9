// Package service provides typed wrappers around the resume service's REST
// endpoints. Response shapes follow the server contract and are treated as
// given.
package service

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/resumeai/client/internal/api"
)

// User is the minimal user projection persisted with the session.
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
	Plan            string `json:"plan"`
}

// LoginResult is the successful login response.
type LoginResult struct {
	Token         string `json:"token"`
	User          User   `json:"user"`
	EmailVerified bool   `json:"isEmailVerified"`
}

// RegisterPayload is the registration request body. ProfileImageURL is filled
// from a prior upload-image call when the user picked an avatar.
type RegisterPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// Auth wraps the /auth endpoints.
type Auth struct {
	client *api.Client
}

// NewAuth creates the auth service.
func NewAuth(client *api.Client) *Auth {
	return &Auth{client: client}
}

// Login exchanges credentials for a session token, the user projection, and
// the email-verified flag.
func (s *Auth) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := s.client.Post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register submits a registration. The created account stays unverified until
// the emailed confirmation link is followed.
func (s *Auth) Register(ctx context.Context, p RegisterPayload) (*User, error) {
	var out struct {
		Message string `json:"message"`
		User    User   `json:"user"`
	}
	if err := s.client.Post(ctx, "/auth/register", p, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UploadImage uploads a profile image and returns its served URL.
func (s *Auth) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	err := s.client.PostMultipart(ctx, "/auth/upload-image", "image", filename, content, nil, &out)
	if err != nil {
		return "", err
	}
	if out.ImageURL == "" {
		return "", fmt.Errorf("service: upload-image returned no url")
	}
	return out.ImageURL, nil
}

// Profile fetches the full profile projection for the current session.
func (s *Auth) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := s.client.Get(ctx, "/auth/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyEmail redeems an email verification token.
func (s *Auth) VerifyEmail(ctx context.Context, token string) error {
	return s.client.Get(ctx, "/auth/verify-email/"+url.PathEscape(token), nil)
}

// ResendVerification requests a new verification email.
func (s *Auth) ResendVerification(ctx context.Context, email string) error {
	return s.client.Post(ctx, "/auth/resend-verification", map[string]string{"email": email}, nil)
}
