package app

import (
	"context"
	"strconv"

	"github.com/resumeai/client/internal/router"
	"github.com/resumeai/client/internal/storage"
)

func (a *App) dashboardPage(ctx context.Context, req *router.Request) {
	a.println()
	if u := a.auth.User(); u != nil {
		a.printf("Dashboard - signed in as %s (%s)\n", u.Name, u.Email)
	} else {
		a.println("Dashboard")
	}
	a.println("  1) My resumes")
	a.println("  2) New resume")
	a.println("  3) Toggle dark mode")
	a.println("  4) Sign out")
	a.println("  q) Quit")

	switch a.prompt("Choose") {
	case "1":
		a.nav.Go("/get-resumes")
	case "2":
		a.nav.Go("/create-resume")
	case "3":
		a.toggleTheme()
		a.nav.Go("/dashboard")
	case "4":
		a.auth.Logout()
	case "q", "quit":
		a.println("Goodbye.")
	default:
		if a.eof {
			return
		}
		a.nav.Go("/dashboard")
	}
}

func (a *App) toggleTheme() {
	next := storage.ThemeDark
	if a.store.Theme() == storage.ThemeDark {
		next = storage.ThemeLight
	}
	if err := a.store.SetTheme(next); err != nil {
		a.println("Could not switch theme:", err)
		return
	}
	a.println("Theme set to", next)
}

func (a *App) resumeListPage(ctx context.Context, req *router.Request) {
	a.println()
	a.println("My resumes")
	list, err := a.resumes.List(ctx)
	if err != nil {
		a.println("Could not load resumes:", err)
		a.nav.Go("/dashboard")
		return
	}
	if len(list) == 0 {
		a.println("No resumes yet.")
	}
	for i, r := range list {
		a.printf("  %d) %s (updated %s)\n", i+1, r.Title, r.UpdatedAt)
	}
	a.println("Commands: <n> open, d<n> duplicate, x<n> delete, c create, b back")

	input := a.prompt("Choose")
	switch {
	case input == "b" || input == "":
		a.nav.Go("/dashboard")
	case input == "c":
		a.nav.Go("/create-resume")
	case input[0] == 'd':
		if r, ok := pick(list, input[1:]); ok {
			if dup, err := a.resumes.Duplicate(ctx, r.ID); err != nil {
				a.println("Could not duplicate:", err)
			} else {
				a.printf("Duplicated as %q.\n", dup.Title)
			}
		}
		a.nav.Go("/get-resumes")
	case input[0] == 'x':
		if r, ok := pick(list, input[1:]); ok && a.confirm("Delete \""+r.Title+"\"?") {
			if err := a.resumes.Delete(ctx, r.ID); err != nil {
				a.println("Could not delete:", err)
			}
		}
		a.nav.Go("/get-resumes")
	default:
		if r, ok := pick(list, input); ok {
			a.nav.Go("/create-resume/" + r.ID)
			return
		}
		a.nav.Go("/get-resumes")
	}
}

func (a *App) createResumePage(ctx context.Context, req *router.Request) {
	a.println()
	title := a.prompt("Resume title")
	if title == "" {
		a.nav.Go("/dashboard")
		return
	}
	r, err := a.resumes.Create(ctx, title)
	if err != nil {
		a.println("Could not create resume:", err)
		a.nav.Go("/dashboard")
		return
	}
	a.nav.Go("/create-resume/" + r.ID)
}

// pick resolves a 1-based index string against the listed resumes.
func pick[T any](list []T, raw string) (T, bool) {
	var zero T
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > len(list) {
		return zero, false
	}
	return list[n-1], true
}
