package editor

import "github.com/resumeai/client/internal/resume"

// SectionID identifies one accordion section of the builder.
type SectionID string

// The fixed section set in accordion order.
const (
	SectionProfile        SectionID = "profile"
	SectionContact        SectionID = "contact"
	SectionWork           SectionID = "work"
	SectionEducation      SectionID = "education"
	SectionSkills         SectionID = "skills"
	SectionProjects       SectionID = "projects"
	SectionCertifications SectionID = "certifications"
	SectionLanguages      SectionID = "languages"
	SectionInterests      SectionID = "interests"
)

// Section describes one builder section for the page chrome.
type Section struct {
	ID    SectionID
	Title string
	Icon  string
}

var sections = []Section{
	{ID: SectionProfile, Title: "Personal Information", Icon: "user"},
	{ID: SectionContact, Title: "Contact Information", Icon: "phone"},
	{ID: SectionWork, Title: "Work Experience", Icon: "briefcase"},
	{ID: SectionEducation, Title: "Education", Icon: "book"},
	{ID: SectionSkills, Title: "Skills", Icon: "award"},
	{ID: SectionProjects, Title: "Projects", Icon: "folder"},
	{ID: SectionCertifications, Title: "Certifications", Icon: "medal"},
	{ID: SectionLanguages, Title: "Languages", Icon: "globe"},
	{ID: SectionInterests, Title: "Interests", Icon: "heart"},
}

// Sections returns the builder sections in accordion order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// ValidSection reports whether id names a builder section.
func ValidSection(id SectionID) bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// SuggestedInterests is the fixed suggestion list offered by the interests
// section.
var SuggestedInterests = []string{
	"Photography", "Travel", "Reading", "Gaming", "Music",
	"Cooking", "Sports", "Technology", "Blogging", "Volunteering",
}

// Complete reports whether a section has enough content to count toward the
// progress indicator. Profile needs both name and designation, contact needs
// a way to be reached, and list sections need at least one entry.
func Complete(id SectionID, f resume.FormData) bool {
	switch id {
	case SectionProfile:
		return f.ProfileInfo.FullName != "" && f.ProfileInfo.Designation != ""
	case SectionContact:
		return f.ContactInfo.Email != "" || f.ContactInfo.Phone != ""
	case SectionWork:
		return len(f.WorkExperiences) > 0
	case SectionEducation:
		return len(f.Education) > 0
	case SectionSkills:
		return len(f.Skills) > 0
	case SectionProjects:
		return len(f.Projects) > 0
	case SectionCertifications:
		return len(f.Certifications) > 0
	case SectionLanguages:
		return len(f.Languages) > 0
	case SectionInterests:
		return len(f.Interests) > 0
	}
	return false
}

// Progress counts completed sections against the section total.
func Progress(f resume.FormData) (done, total int) {
	for _, s := range sections {
		if Complete(s.ID, f) {
			done++
		}
	}
	return done, len(sections)
}
