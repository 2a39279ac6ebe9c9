package service

import (
	"context"
	"net/url"

	"github.com/resumeai/client/internal/api"
	"github.com/resumeai/client/internal/resume"
)

// Resumes wraps the /resume endpoints.
type Resumes struct {
	client *api.Client
}

// NewResumes creates the resume service.
func NewResumes(client *api.Client) *Resumes {
	return &Resumes{client: client}
}

// List fetches all resumes owned by the current user.
func (s *Resumes) List(ctx context.Context) ([]resume.Resume, error) {
	var out []resume.Resume
	if err := s.client.Get(ctx, "/resume", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one resume by id.
func (s *Resumes) Get(ctx context.Context, id string) (*resume.Resume, error) {
	var out resume.Resume
	if err := s.client.Get(ctx, "/resume/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create makes a new resume holding only a title.
func (s *Resumes) Create(ctx context.Context, title string) (*resume.Resume, error) {
	var out resume.Resume
	if err := s.client.Post(ctx, "/resume", map[string]string{"title": title}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the whole document and returns the saved state.
func (s *Resumes) Update(ctx context.Context, id string, doc resume.Document) (*resume.Resume, error) {
	var out resume.Resume
	if err := s.client.Put(ctx, "/resume/"+url.PathEscape(id), doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a resume.
func (s *Resumes) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/resume/"+url.PathEscape(id))
}

// Duplicate copies a resume server-side and returns the copy.
func (s *Resumes) Duplicate(ctx context.Context, id string) (*resume.Resume, error) {
	var out resume.Resume
	if err := s.client.Post(ctx, "/resume/"+url.PathEscape(id)+"/duplicate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
