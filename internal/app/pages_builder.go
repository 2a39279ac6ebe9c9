package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/resumeai/client/internal/api"
	"github.com/resumeai/client/internal/editor"
	"github.com/resumeai/client/internal/resume"
	"github.com/resumeai/client/internal/router"
	"github.com/resumeai/client/internal/validate"
)

func (a *App) builderPage(ctx context.Context, req *router.Request) {
	sess := editor.NewSession(a.resumes, a.log)
	if err := sess.Load(ctx, req.Params["id"]); err != nil {
		a.println("Could not open resume:", err)
		a.nav.Go("/get-resumes")
		return
	}

	for {
		a.renderBuilder(sess)
		input := a.prompt("Command")
		if a.eof {
			return
		}
		switch input {
		case "e":
			a.editSection(sess)
		case "t":
			sess.SetTitle(a.promptDefault("Title", sess.Form().Title))
		case "m":
			a.editTemplate(sess)
		case "p":
			a.writePreview(sess)
		case "s":
			a.saveResume(ctx, sess)
		case "b":
			if sess.Dirty() && !a.confirm("Discard unsaved changes?") {
				continue
			}
			a.nav.Go("/get-resumes")
			return
		default:
			if n, err := strconv.Atoi(input); err == nil {
				sections := editor.Sections()
				if n >= 1 && n <= len(sections) {
					sess.Toggle(sections[n-1].ID)
				}
			}
		}
	}
}

func (a *App) renderBuilder(sess *editor.Session) {
	f := sess.Form()
	done, total := editor.Progress(f)
	a.println()
	a.printf("%s  (%d/%d sections complete", f.Title, done, total)
	if sess.Dirty() {
		a.printf(", unsaved changes")
	}
	a.println(")")

	for i, s := range editor.Sections() {
		marker := " "
		if editor.Complete(s.ID, f) {
			marker = "x"
		}
		cursor := "  "
		if s.ID == sess.Expanded() {
			cursor = "> "
		}
		a.printf("%s%d) [%s] %s\n", cursor, i+1, marker, s.Title)
	}
	a.println("Commands: <n> section, e edit, t title, m template, p preview, s save, b back")
}

func (a *App) editSection(sess *editor.Session) {
	switch sess.Expanded() {
	case editor.SectionNone:
		a.println("Expand a section first.")
	case editor.SectionProfile:
		f := sess.Form()
		sess.UpdateProfile(func(p *resume.ProfileInfo) {
			p.FullName = a.promptDefault("Full name", f.ProfileInfo.FullName)
			p.Designation = a.promptDefault("Designation", f.ProfileInfo.Designation)
			p.Summary = a.promptDefault("Summary", f.ProfileInfo.Summary)
		})
	case editor.SectionContact:
		f := sess.Form()
		sess.UpdateContact(func(c *resume.ContactInfo) {
			c.Email = a.promptDefault("Email", f.ContactInfo.Email)
			c.Phone = a.promptDefault("Phone", f.ContactInfo.Phone)
			c.Location = a.promptDefault("Location", f.ContactInfo.Location)
			c.LinkedIn = a.promptDefault("LinkedIn", f.ContactInfo.LinkedIn)
			c.GitHub = a.promptDefault("GitHub", f.ContactInfo.GitHub)
			c.Website = a.promptDefault("Website", f.ContactInfo.Website)
		})
		a.warnContact(sess.Form().ContactInfo)
	case editor.SectionWork:
		a.editWork(sess)
	case editor.SectionEducation:
		a.editEducation(sess)
	case editor.SectionSkills:
		a.editSkills(sess)
	case editor.SectionProjects:
		a.editProjects(sess)
	case editor.SectionCertifications:
		a.editCertifications(sess)
	case editor.SectionLanguages:
		a.editLanguages(sess)
	case editor.SectionInterests:
		a.editInterests(sess)
	}
}

// warnContact flags implausible contact fields. The values are kept; the
// server owns authoritative validation.
func (a *App) warnContact(c resume.ContactInfo) {
	if c.Phone != "" && !validate.Phone(c.Phone) {
		a.println("Warning: phone number looks invalid.")
	}
	for _, link := range []struct{ label, value string }{
		{"LinkedIn", c.LinkedIn},
		{"GitHub", c.GitHub},
		{"Website", c.Website},
	} {
		if link.value != "" && !validate.URL(link.value) {
			a.printf("Warning: %s link is not an absolute URL.\n", link.label)
		}
	}
}

// listCommand shows numbered entries and reads one list command: a add,
// r<n> remove, <n> edit, blank done. It returns the action and the 0-based
// index when one applies.
func (a *App) listCommand(labels []string) (action string, index int) {
	for i, l := range labels {
		a.printf("  %d) %s\n", i+1, l)
	}
	input := a.prompt("a add, r<n> remove, <n> edit, enter done")
	switch {
	case input == "":
		return "done", 0
	case input == "a":
		return "add", 0
	case input[0] == 'r':
		if n, err := strconv.Atoi(input[1:]); err == nil && n >= 1 && n <= len(labels) {
			return "remove", n - 1
		}
	default:
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(labels) {
			return "edit", n - 1
		}
	}
	return "done", 0
}

func (a *App) editWork(sess *editor.Session) {
	for {
		f := sess.Form()
		labels := make([]string, len(f.WorkExperiences))
		for i, w := range f.WorkExperiences {
			labels[i] = fmt.Sprintf("%s at %s", w.Role, w.Company)
		}
		action, i := a.listCommand(labels)
		switch action {
		case "add":
			i = sess.AddWork()
			fallthrough
		case "edit":
			cur := sess.Form().WorkExperiences[i]
			sess.PatchWork(i, func(w *resume.WorkExperience) {
				w.Role = a.promptDefault("Role", cur.Role)
				w.Company = a.promptDefault("Company", cur.Company)
				w.StartDate = a.promptDefault("Start date", cur.StartDate)
				w.EndDate = a.promptDefault("End date", cur.EndDate)
				w.Description = a.promptDefault("Description", cur.Description)
			})
		case "remove":
			sess.RemoveWork(i)
		case "done":
			return
		}
	}
}

func (a *App) editEducation(sess *editor.Session) {
	for {
		f := sess.Form()
		labels := make([]string, len(f.Education))
		for i, e := range f.Education {
			labels[i] = fmt.Sprintf("%s, %s", e.Degree, e.Institution)
		}
		action, i := a.listCommand(labels)
		switch action {
		case "add":
			i = sess.AddEducation()
			fallthrough
		case "edit":
			cur := sess.Form().Education[i]
			sess.PatchEducation(i, func(e *resume.Education) {
				e.Degree = a.promptDefault("Degree", cur.Degree)
				e.Institution = a.promptDefault("Institution", cur.Institution)
				e.StartDate = a.promptDefault("Start date", cur.StartDate)
				e.EndDate = a.promptDefault("End date", cur.EndDate)
			})
		case "remove":
			sess.RemoveEducation(i)
		case "done":
			return
		}
	}
}

func (a *App) editSkills(sess *editor.Session) {
	for {
		f := sess.Form()
		labels := make([]string, len(f.Skills))
		for i, s := range f.Skills {
			labels[i] = fmt.Sprintf("%s (%d%%)", s.Name, s.Progress)
		}
		action, i := a.listCommand(labels)
		switch action {
		case "add":
			i = sess.AddSkill()
			fallthrough
		case "edit":
			cur := sess.Form().Skills[i]
			sess.PatchSkill(i, func(s *resume.Skill) {
				s.Name = a.promptDefault("Skill", cur.Name)
				s.Progress = a.promptInt("Proficiency (0-100)", cur.Progress)
			})
		case "remove":
			sess.RemoveSkill(i)
		case "done":
			return
		}
	}
}

func (a *App) editProjects(sess *editor.Session) {
	for {
		f := sess.Form()
		labels := make([]string, len(f.Projects))
		for i, p := range f.Projects {
			labels[i] = p.Title
		}
		action, i := a.listCommand(labels)
		switch action {
		case "add":
			i = sess.AddProject()
			fallthrough
		case "edit":
			cur := sess.Form().Projects[i]
			sess.PatchProject(i, func(p *resume.Project) {
				p.Title = a.promptDefault("Title", cur.Title)
				p.Description = a.promptDefault("Description", cur.Description)
				p.GitHub = a.promptDefault("GitHub link", cur.GitHub)
				p.LiveDemo = a.promptDefault("Live demo link", cur.LiveDemo)
			})
		case "remove":
			sess.RemoveProject(i)
		case "done":
			return
		}
	}
}

func (a *App) editCertifications(sess *editor.Session) {
	for {
		f := sess.Form()
		labels := make([]string, len(f.Certifications))
		for i, c := range f.Certifications {
			labels[i] = fmt.Sprintf("%s (%s)", c.Title, c.Issuer)
		}
		action, i := a.listCommand(labels)
		switch action {
		case "add":
			i = sess.AddCertification()
			fallthrough
		case "edit":
			cur := sess.Form().Certifications[i]
			sess.PatchCertification(i, func(c *resume.Certification) {
				c.Title = a.promptDefault("Title", cur.Title)
				c.Issuer = a.promptDefault("Issuer", cur.Issuer)
				c.Year = a.promptDefault("Year", cur.Year)
			})
		case "remove":
			sess.RemoveCertification(i)
		case "done":
			return
		}
	}
}

func (a *App) editLanguages(sess *editor.Session) {
	for {
		f := sess.Form()
		labels := make([]string, len(f.Languages))
		for i, l := range f.Languages {
			labels[i] = fmt.Sprintf("%s (%d%%)", l.Name, l.Progress)
		}
		action, i := a.listCommand(labels)
		switch action {
		case "add":
			i = sess.AddLanguage()
			fallthrough
		case "edit":
			cur := sess.Form().Languages[i]
			sess.PatchLanguage(i, func(l *resume.Language) {
				l.Name = a.promptDefault("Language", cur.Name)
				l.Progress = a.promptInt("Proficiency (0-100)", cur.Progress)
			})
		case "remove":
			sess.RemoveLanguage(i)
		case "done":
			return
		}
	}
}

func (a *App) editInterests(sess *editor.Session) {
	for {
		f := sess.Form()
		for i, in := range f.Interests {
			a.printf("  %d) %s\n", i+1, in)
		}
		a.println("Suggestions:")
		for i, sug := range editor.SuggestedInterests {
			a.printf("  s%d) %s\n", i+1, sug)
		}
		input := a.prompt("Type an interest to add, s<n> add suggestion, r<n> remove, enter done")
		switch {
		case input == "":
			return
		case input[0] == 'r' && len(input) > 1:
			if n, err := strconv.Atoi(input[1:]); err == nil {
				sess.RemoveInterest(n - 1)
			}
		case input[0] == 's' && len(input) > 1:
			if n, err := strconv.Atoi(input[1:]); err == nil {
				if !sess.AddSuggestedInterest(n - 1) {
					a.println("Already on the list.")
				}
			}
		default:
			if !sess.AddInterest(input) {
				a.println("Already on the list.")
			}
		}
	}
}

func (a *App) editTemplate(sess *editor.Session) {
	a.println("Themes:")
	themes := resume.Themes()
	for i, th := range themes {
		a.printf("  %d) %s\n", i+1, th)
	}
	theme := sess.Template().Theme
	if th, ok := pick(themes, a.prompt("Theme")); ok {
		theme = th
	}

	a.println("Palettes:")
	palettes := resume.Palettes()
	for i, p := range palettes {
		a.printf("  %d) %s %v\n", i+1, p.Name, p.Colors)
	}
	palette := resume.ResolvePalette(sess.Template().ColorPalette)
	if p, ok := pick(palettes, a.prompt("Palette")); ok {
		palette = p
	}

	if err := sess.SetTemplate(theme, palette); err != nil {
		a.println("Could not apply template:", err)
	}
}

func (a *App) writePreview(sess *editor.Session) {
	name := fmt.Sprintf("resume-%s.html", sess.ID())
	dir := filepath.Join(a.cfg.Storage.Dir, "previews")
	path, err := a.renderer.WriteFile(dir, name, sess.Form(), sess.Template())
	if err != nil {
		a.println("Could not write preview:", err)
		return
	}
	a.println("Preview written to", path)
}

func (a *App) saveResume(ctx context.Context, sess *editor.Session) {
	err := sess.Save(ctx)
	switch {
	case err == nil:
		a.println("Saved.")
	case errors.Is(err, editor.ErrSaveInFlight):
		a.println("A save is already running.")
	case api.IsForbidden(err):
		a.println("You don't have permission to modify this resume.")
	default:
		a.println("Save failed:", err)
	}
}
