// Package app is the terminal front end: it binds the route table to
// interactive pages driven over stdin/stdout.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/resumeai/client/internal/auth"
	"github.com/resumeai/client/internal/config"
	"github.com/resumeai/client/internal/preview"
	"github.com/resumeai/client/internal/router"
	"github.com/resumeai/client/internal/service"
	"github.com/resumeai/client/internal/storage"
)

// App owns the page tree and the services the pages call.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	store    *storage.Store
	auth     *auth.Manager
	authSvc  *service.Auth
	resumes  *service.Resumes
	renderer *preview.Renderer
	nav      *router.Navigator

	in  *bufio.Reader
	out io.Writer
	eof bool
}

// Options collects the collaborators the app needs.
type Options struct {
	Config   *config.Config
	Logger   *zap.Logger
	Store    *storage.Store
	Auth     *auth.Manager
	AuthSvc  *service.Auth
	Resumes  *service.Resumes
	Renderer *preview.Renderer
	In       io.Reader
	Out      io.Writer
}

// New builds the app and registers its routes, returning the navigator that
// drives it.
func New(opts Options) (*App, *router.Navigator) {
	a := &App{
		cfg:      opts.Config,
		log:      opts.Logger,
		store:    opts.Store,
		auth:     opts.Auth,
		authSvc:  opts.AuthSvc,
		resumes:  opts.Resumes,
		renderer: opts.Renderer,
		in:       bufio.NewReader(opts.In),
		out:      opts.Out,
	}

	r := router.New(a.auth.IsAuthenticated, opts.Logger)
	r.Handle("/", a.landingPage)
	r.Handle("/login", a.loginPage)
	r.Handle("/register", a.registerPage)
	r.Handle("/verification-pending", a.verificationPendingPage)
	r.Handle("/verify-email/:token", a.verifyEmailPage)
	r.Handle(router.NotFoundPath, a.notFoundPage)
	r.HandleProtected("/dashboard", a.dashboardPage)
	r.HandleProtected("/get-resumes", a.resumeListPage)
	r.HandleProtected("/create-resume", a.createResumePage)
	r.HandleProtected("/create-resume/:id", a.builderPage)

	a.nav = router.NewNavigator(r, opts.Logger)
	return a, a.nav
}

// Run starts the page loop at start.
func (a *App) Run(ctx context.Context, start string) error {
	return a.nav.Run(ctx, start)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// prompt reads one trimmed line after printing the label. Once stdin is
// exhausted it keeps returning empty strings with eof set, so pages can stop
// instead of looping on empty input.
func (a *App) prompt(label string) string {
	a.printf("%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		a.eof = true
	}
	return strings.TrimSpace(line)
}

// promptDefault reads a line, keeping current when the input is blank.
func (a *App) promptDefault(label, current string) string {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	if in := a.prompt(label); in != "" {
		return in
	}
	return current
}

// promptInt reads an integer, keeping current on blank or invalid input.
func (a *App) promptInt(label string, current int) int {
	in := a.prompt(fmt.Sprintf("%s [%d]", label, current))
	if in == "" {
		return current
	}
	n, err := strconv.Atoi(in)
	if err != nil {
		a.println("not a number, keeping", current)
		return current
	}
	return n
}

// confirm asks a yes/no question, defaulting to no.
func (a *App) confirm(label string) bool {
	in := strings.ToLower(a.prompt(label + " (y/N)"))
	return in == "y" || in == "yes"
}

func (a *App) notFoundPage(ctx context.Context, req *router.Request) {
	a.println()
	a.println("Page not found:", req.Path)
	a.nav.Go("/")
}
