package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/resumeai/client/internal/auth"
	"github.com/resumeai/client/internal/router"
)

func (a *App) landingPage(ctx context.Context, req *router.Request) {
	a.println()
	a.println(a.cfg.App.Name, "- build a professional resume in minutes")
	if a.auth.IsAuthenticated() {
		a.nav.Go("/dashboard")
		return
	}
	a.println("  1) Sign in")
	a.println("  2) Create an account")
	a.println("  q) Quit")

	switch a.prompt("Choose") {
	case "1":
		a.nav.Go("/login")
	case "2":
		a.nav.Go("/register")
	case "q", "quit":
		a.println("Goodbye.")
	default:
		if a.eof {
			return
		}
		a.nav.Go("/")
	}
}

func (a *App) loginPage(ctx context.Context, req *router.Request) {
	a.println()
	a.println("Sign in")
	email := a.prompt("Email")
	password := a.prompt("Password")

	err := a.auth.Login(ctx, email, password)
	switch {
	case err == nil:
		a.nav.Go("/dashboard")
	case errors.Is(err, auth.ErrEmailNotVerified):
		a.println("Your email is not verified yet.")
		a.nav.GoWith("/verification-pending", map[string]any{"email": email})
	case errors.Is(err, auth.ErrInvalidCredentials):
		a.println("Invalid email or password.")
		a.nav.Go("/login")
	default:
		a.println("Sign in failed:", err)
		a.nav.Go("/")
	}
}

func (a *App) registerPage(ctx context.Context, req *router.Request) {
	a.println()
	a.println("Create an account")
	in := auth.RegisterInput{
		Name:     a.prompt("Full name"),
		Email:    a.prompt("Email"),
		Password: a.prompt("Password"),
	}
	if path := a.prompt("Profile image path (optional)"); path != "" {
		in.ImagePath = path
	}

	if err := a.auth.Register(ctx, in); err != nil {
		a.println("Registration failed:", err)
		a.nav.Go("/register")
		return
	}
	a.println("Account created. Check your inbox for the verification link.")
	a.nav.GoWith("/verification-pending", map[string]any{"email": in.Email})
}

func (a *App) verificationPendingPage(ctx context.Context, req *router.Request) {
	email, _ := req.State["email"].(string)
	a.println()
	a.println("Verify your email")
	if email != "" {
		a.printf("We sent a verification link to %s.\n", email)
	}
	a.println("  1) Resend the email")
	a.println("  2) Back to sign in")

	switch a.prompt("Choose") {
	case "1":
		if email == "" {
			email = a.prompt("Email")
		}
		if err := a.authSvc.ResendVerification(ctx, email); err != nil {
			a.println("Could not resend:", err)
		} else {
			a.println("Verification email sent.")
		}
		a.nav.GoWith("/verification-pending", map[string]any{"email": email})
	default:
		a.nav.Go("/login")
	}
}

func (a *App) verifyEmailPage(ctx context.Context, req *router.Request) {
	token := req.Params["token"]
	a.println()
	if err := a.authSvc.VerifyEmail(ctx, token); err != nil {
		a.log.Warn("email verification failed", zap.Error(err))
		a.println("Verification failed. The link may be expired.")
		a.nav.Go("/verification-pending")
		return
	}
	a.println("Email verified. You can sign in now.")
	a.nav.Go("/login")
}
