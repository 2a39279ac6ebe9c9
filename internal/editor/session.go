// Package editor implements the resume builder: an accordion of section
// editors over a FormData snapshot, with explicit whole-document saves.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/resumeai/client/internal/resume"
	"github.com/resumeai/client/internal/service"
)

// ErrSaveInFlight is returned when Save is called while a previous save has
// not finished.
var ErrSaveInFlight = errors.New("editor: save already in progress")

// ErrNotLoaded is returned by operations that need a loaded resume.
var ErrNotLoaded = errors.New("editor: no resume loaded")

// Session is one resume editing session. All methods are safe for concurrent
// use; reads hand out copies so callers never alias internal state.
type Session struct {
	svc *service.Resumes
	log *zap.Logger

	mu       sync.Mutex
	id       string
	form     resume.FormData
	template resume.Template
	expanded SectionID
	dirty    bool
	saving   bool
}

// NewSession creates an empty editing session.
func NewSession(svc *service.Resumes, log *zap.Logger) *Session {
	return &Session{
		svc:      svc,
		log:      log,
		form:     resume.NewFormData(),
		template: defaultTemplate(),
		expanded: SectionProfile,
	}
}

func defaultTemplate() resume.Template {
	return resume.Template{
		Theme:        resume.ThemeModern,
		ColorPalette: resume.DefaultPalette().Slice(),
	}
}

// Load fetches the resume and resets the session onto it. The accordion
// returns to the profile section and the dirty flag clears.
func (s *Session) Load(ctx context.Context, id string) error {
	r, err := s.svc.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("editor: loading resume %s: %w", id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adopt(r)
	s.expanded = SectionProfile
	s.log.Info("resume loaded", zap.String("id", id), zap.String("title", s.form.Title))
	return nil
}

// adopt resets session state from a server document. Caller holds s.mu.
func (s *Session) adopt(r *resume.Resume) {
	s.id = r.ID
	s.form = resume.FromResume(r)
	if r.Template != nil && resume.ValidTheme(r.Template.Theme) {
		s.template = resume.Template{
			Theme:        r.Template.Theme,
			ColorPalette: resume.ResolvePalette(r.Template.ColorPalette).Slice(),
		}
	} else {
		s.template = defaultTemplate()
	}
	s.dirty = false
}

// ID returns the loaded resume's id, empty before Load.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Form returns a deep copy of the current form state.
func (s *Session) Form() resume.FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Clone()
}

// Template returns the active template selection.
func (s *Session) Template() resume.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resume.Template{
		Theme:        s.template.Theme,
		ColorPalette: append([]string(nil), s.template.ColorPalette...),
	}
}

// Dirty reports whether the form diverged from the last loaded or saved
// state.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// SectionNone is the accordion state with every section collapsed.
const SectionNone SectionID = ""

// Expanded returns the currently expanded accordion section, SectionNone
// when all are collapsed.
func (s *Session) Expanded() SectionID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded
}

// Toggle flips the accordion for id: toggling the expanded section collapses
// it, toggling a collapsed one expands it and closes any other. At most one
// section is expanded at a time. Unknown ids are ignored.
func (s *Session) Toggle(id SectionID) {
	if !ValidSection(id) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expanded == id {
		s.expanded = SectionNone
		return
	}
	s.expanded = id
}

// SetTitle replaces the resume title.
func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Title = title
	s.dirty = true
}

// SetTemplate replaces the theme and palette selection.
func (s *Session) SetTemplate(theme string, palette resume.Palette) error {
	if !resume.ValidTheme(theme) {
		return fmt.Errorf("editor: unknown theme %q", theme)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = resume.Template{Theme: theme, ColorPalette: palette.Slice()}
	s.dirty = true
	return nil
}

// UpdateProfile applies a patch to the profile section.
func (s *Session) UpdateProfile(patch func(*resume.ProfileInfo)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch(&s.form.ProfileInfo)
	s.dirty = true
}

// UpdateContact applies a patch to the contact section.
func (s *Session) UpdateContact(patch func(*resume.ContactInfo)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch(&s.form.ContactInfo)
	s.dirty = true
}

// AddWork appends a blank work entry and returns its index.
func (s *Session) AddWork() int {
	return addTo(s, &s.form.WorkExperiences, resume.WorkExperience{})
}

// RemoveWork deletes the work entry at i.
func (s *Session) RemoveWork(i int) bool {
	return removeFrom(s, &s.form.WorkExperiences, i)
}

// PatchWork applies a patch to the work entry at i.
func (s *Session) PatchWork(i int, patch func(*resume.WorkExperience)) bool {
	return patchIn(s, &s.form.WorkExperiences, i, patch)
}

// AddEducation appends a blank education entry and returns its index.
func (s *Session) AddEducation() int {
	return addTo(s, &s.form.Education, resume.Education{})
}

// RemoveEducation deletes the education entry at i.
func (s *Session) RemoveEducation(i int) bool {
	return removeFrom(s, &s.form.Education, i)
}

// PatchEducation applies a patch to the education entry at i.
func (s *Session) PatchEducation(i int, patch func(*resume.Education)) bool {
	return patchIn(s, &s.form.Education, i, patch)
}

// AddSkill appends a blank skill at 50 percent proficiency and returns its
// index.
func (s *Session) AddSkill() int {
	return addTo(s, &s.form.Skills, resume.Skill{Progress: 50})
}

// RemoveSkill deletes the skill at i.
func (s *Session) RemoveSkill(i int) bool {
	return removeFrom(s, &s.form.Skills, i)
}

// PatchSkill applies a patch to the skill at i.
func (s *Session) PatchSkill(i int, patch func(*resume.Skill)) bool {
	return patchIn(s, &s.form.Skills, i, patch)
}

// AddProject appends a blank project entry and returns its index.
func (s *Session) AddProject() int {
	return addTo(s, &s.form.Projects, resume.Project{})
}

// RemoveProject deletes the project entry at i.
func (s *Session) RemoveProject(i int) bool {
	return removeFrom(s, &s.form.Projects, i)
}

// PatchProject applies a patch to the project entry at i.
func (s *Session) PatchProject(i int, patch func(*resume.Project)) bool {
	return patchIn(s, &s.form.Projects, i, patch)
}

// AddCertification appends a blank certification entry and returns its index.
func (s *Session) AddCertification() int {
	return addTo(s, &s.form.Certifications, resume.Certification{})
}

// RemoveCertification deletes the certification entry at i.
func (s *Session) RemoveCertification(i int) bool {
	return removeFrom(s, &s.form.Certifications, i)
}

// PatchCertification applies a patch to the certification entry at i.
func (s *Session) PatchCertification(i int, patch func(*resume.Certification)) bool {
	return patchIn(s, &s.form.Certifications, i, patch)
}

// AddLanguage appends a blank language at 50 percent proficiency and returns
// its index.
func (s *Session) AddLanguage() int {
	return addTo(s, &s.form.Languages, resume.Language{Progress: 50})
}

// RemoveLanguage deletes the language at i.
func (s *Session) RemoveLanguage(i int) bool {
	return removeFrom(s, &s.form.Languages, i)
}

// PatchLanguage applies a patch to the language at i.
func (s *Session) PatchLanguage(i int, patch func(*resume.Language)) bool {
	return patchIn(s, &s.form.Languages, i, patch)
}

// AddInterest appends a trimmed interest, ignoring blanks and duplicates.
func (s *Session) AddInterest(interest string) bool {
	interest = strings.TrimSpace(interest)
	if interest == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.form.Interests {
		if strings.EqualFold(existing, interest) {
			return false
		}
	}
	s.form.Interests = appendItem(s.form.Interests, interest)
	s.dirty = true
	return true
}

// AddSuggestedInterest adds the i-th entry of the fixed suggestion list,
// skipping duplicates.
func (s *Session) AddSuggestedInterest(i int) bool {
	if i < 0 || i >= len(SuggestedInterests) {
		return false
	}
	return s.AddInterest(SuggestedInterests[i])
}

// RemoveInterest deletes the interest at i.
func (s *Session) RemoveInterest(i int) bool {
	return removeFrom(s, &s.form.Interests, i)
}

// Save validates the whole document and sends it to the server in one PUT.
// Only one save runs at a time; the server's echo becomes the new baseline
// and the dirty flag clears.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.id == "" {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	if s.saving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	s.saving = true
	id := s.id
	doc := s.form.Clone().Document(s.template)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	if err := resume.ValidateDocument(doc); err != nil {
		return err
	}

	updated, err := s.svc.Update(ctx, id, doc)
	if err != nil {
		s.log.Error("saving resume", zap.String("id", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.adopt(updated)
	s.mu.Unlock()
	s.log.Info("resume saved", zap.String("id", id))
	return nil
}

// The list helpers take the field pointer so every collection shares one
// locked copy-on-write path. Field addresses are stable; the slice value is
// only read and written under s.mu.

func addTo[T any](s *Session, field *[]T, item T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	*field = appendItem(*field, item)
	s.dirty = true
	return len(*field) - 1
}

func removeFrom[T any](s *Session, field *[]T, i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, ok := removeAt(*field, i)
	if !ok {
		return false
	}
	*field = out
	s.dirty = true
	return true
}

func patchIn[T any](s *Session, field *[]T, i int, patch func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, ok := patchAt(*field, i, patch)
	if !ok {
		return false
	}
	*field = out
	s.dirty = true
	return true
}
