// Package preview renders the live HTML preview of a resume under edit.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/resumeai/client/internal/resume"
)

// Placeholder text shown for fields the user has not filled in yet.
const (
	placeholderName        = "Your Name"
	placeholderDesignation = "Professional Title"
	placeholderRole        = "Position Title"
	placeholderCompany     = "Company Name"
	placeholderDegree      = "Degree"
	placeholderInstitution = "Institution"
	placeholderSkill       = "Skill"
	placeholderStart       = "Start"
	placeholderPresent     = "Present"
	placeholderEnd         = "End"
)

// Renderer turns the current form state into a standalone HTML page.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded resume template.
func New() (*Renderer, error) {
	tmpl, err := template.New("resume").Parse(resumeTemplate)
	if err != nil {
		return nil, fmt.Errorf("preview: parsing template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// resumeView is the render-ready projection of a form: placeholders applied,
// section visibility precomputed.
type resumeView struct {
	Title          string
	Empty          bool
	Theme          string
	Primary        string
	Secondary      string
	FullName       string
	Designation    string
	Summary        string
	Email          string
	Phone          string
	Location       string
	LinkedIn       string
	GitHub         string
	Website        string
	HasWork        bool
	Work           []workView
	HasEducation   bool
	Education      []educationView
	HasSkills      bool
	Skills         []meterView
	HasProjects    bool
	Projects       []resume.Project
	HasCerts       bool
	Certifications []resume.Certification
	HasLanguages   bool
	Languages      []meterView
	HasInterests   bool
	Interests      []string
}

type workView struct {
	Role        string
	Company     string
	Period      string
	Description string
}

type educationView struct {
	Degree      string
	Institution string
	Period      string
}

type meterView struct {
	Name     string
	Progress int
}

// Render produces the preview HTML for the given form and template
// selection. Entries keep their insertion order.
func (r *Renderer) Render(f resume.FormData, tpl resume.Template) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, buildView(f, tpl)); err != nil {
		return "", fmt.Errorf("preview: rendering: %w", err)
	}
	return buf.String(), nil
}

// WriteFile renders the preview and writes it next to other previews in dir,
// returning the written path.
func (r *Renderer) WriteFile(dir, name string, f resume.FormData, tpl resume.Template) (string, error) {
	html, err := r.Render(f, tpl)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("preview: creating output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("preview: writing %s: %w", path, err)
	}
	return path, nil
}

func buildView(f resume.FormData, tpl resume.Template) resumeView {
	palette := resume.ResolvePalette(tpl.ColorPalette)
	theme := tpl.Theme
	if !resume.ValidTheme(theme) {
		theme = resume.ThemeModern
	}

	v := resumeView{
		Title:          f.Title,
		Empty:          isEmpty(f),
		Theme:          theme,
		Primary:        palette.Colors[0],
		Secondary:      palette.Colors[1],
		FullName:       fallback(f.ProfileInfo.FullName, placeholderName),
		Designation:    fallback(f.ProfileInfo.Designation, placeholderDesignation),
		Summary:        f.ProfileInfo.Summary,
		Email:          f.ContactInfo.Email,
		Phone:          f.ContactInfo.Phone,
		Location:       f.ContactInfo.Location,
		LinkedIn:       f.ContactInfo.LinkedIn,
		GitHub:         f.ContactInfo.GitHub,
		Website:        f.ContactInfo.Website,
		HasWork:        len(f.WorkExperiences) > 0,
		HasEducation:   len(f.Education) > 0,
		HasSkills:      len(f.Skills) > 0,
		HasProjects:    len(f.Projects) > 0,
		HasCerts:       len(f.Certifications) > 0,
		HasLanguages:   len(f.Languages) > 0,
		HasInterests:   len(f.Interests) > 0,
		Projects:       f.Projects,
		Certifications: f.Certifications,
		Interests:      f.Interests,
	}

	for _, w := range f.WorkExperiences {
		v.Work = append(v.Work, workView{
			Role:        fallback(w.Role, placeholderRole),
			Company:     fallback(w.Company, placeholderCompany),
			Period:      period(w.StartDate, w.EndDate, placeholderPresent),
			Description: w.Description,
		})
	}
	for _, e := range f.Education {
		v.Education = append(v.Education, educationView{
			Degree:      fallback(e.Degree, placeholderDegree),
			Institution: fallback(e.Institution, placeholderInstitution),
			Period:      period(e.StartDate, e.EndDate, placeholderEnd),
		})
	}
	for _, s := range f.Skills {
		v.Skills = append(v.Skills, meterView{Name: fallback(s.Name, placeholderSkill), Progress: clampProgress(s.Progress)})
	}
	for _, l := range f.Languages {
		v.Languages = append(v.Languages, meterView{Name: fallback(l.Name, placeholderSkill), Progress: clampProgress(l.Progress)})
	}
	return v
}

// isEmpty reports whether the user has entered nothing at all yet, which
// switches the preview to its empty-state block.
func isEmpty(f resume.FormData) bool {
	return f.ProfileInfo == (resume.ProfileInfo{}) &&
		f.ContactInfo == (resume.ContactInfo{}) &&
		len(f.WorkExperiences) == 0 &&
		len(f.Education) == 0 &&
		len(f.Skills) == 0 &&
		len(f.Projects) == 0 &&
		len(f.Certifications) == 0 &&
		len(f.Languages) == 0 &&
		len(f.Interests) == 0
}

func fallback(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func period(start, end, endPlaceholder string) string {
	return fallback(start, placeholderStart) + " - " + fallback(end, endPlaceholder)
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
