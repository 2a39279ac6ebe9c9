// Package resume defines the resume document as served by the API and the
// client-local FormData mirror edited by the builder.
package resume

// Template is the per-resume styling selection: one theme and a two-color
// palette.
type Template struct {
	Theme        string   `json:"theme"`
	ColorPalette []string `json:"colorPalette"`
}

// ProfileInfo holds the header block of a resume.
type ProfileInfo struct {
	FullName          string `json:"fullName"`
	Designation       string `json:"designation"`
	Summary           string `json:"summary"`
	ProfilePreviewURL string `json:"profilePreviewUrl"`
}

// ContactInfo holds contact and social links.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedIn"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// WorkExperience is one entry in the work history.
type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Skill is a named skill with a 0-100 proficiency.
type Skill struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// Project is one portfolio project.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GitHub      string `json:"github"`
	LiveDemo    string `json:"liveDemo"`
}

// Certification is one certification entry.
type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Language is a spoken language with a 0-100 proficiency.
type Language struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// Resume is the full document as the API serves it. Child collections are
// embedded; there is no cross-resume referencing.
type Resume struct {
	ID              string           `json:"_id"`
	UserID          string           `json:"userId"`
	Title           string           `json:"title"`
	ThumbnailLink   string           `json:"thumbnailLink"`
	Template        *Template        `json:"template"`
	ProfileInfo     *ProfileInfo     `json:"profileInfo"`
	ContactInfo     *ContactInfo     `json:"contactInfo"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Education       []Education      `json:"education"`
	Skills          []Skill          `json:"skills"`
	Projects        []Project        `json:"projects"`
	Certifications  []Certification  `json:"certifications"`
	Languages       []Language       `json:"languages"`
	Interests       []string         `json:"interests"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
}

// FormData is the transient in-memory mirror of a Resume while editing. It is
// total: every scalar is a string and every collection a non-nil slice, so
// downstream rendering needs no existence checks.
type FormData struct {
	Title           string           `json:"title"`
	ProfileInfo     ProfileInfo      `json:"profileInfo"`
	ContactInfo     ContactInfo      `json:"contactInfo"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Education       []Education      `json:"education"`
	Skills          []Skill          `json:"skills"`
	Projects        []Project        `json:"projects"`
	Certifications  []Certification  `json:"certifications"`
	Languages       []Language       `json:"languages"`
	Interests       []string         `json:"interests"`
}

// Document is the whole-document payload sent on save: the FormData plus the
// active template selection.
type Document struct {
	Title           string           `json:"title"`
	Template        Template         `json:"template"`
	ProfileInfo     ProfileInfo      `json:"profileInfo"`
	ContactInfo     ContactInfo      `json:"contactInfo"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Education       []Education      `json:"education"`
	Skills          []Skill          `json:"skills"`
	Projects        []Project        `json:"projects"`
	Certifications  []Certification  `json:"certifications"`
	Languages       []Language       `json:"languages"`
	Interests       []string         `json:"interests"`
}

// Document assembles the save payload for f with the given template.
func (f FormData) Document(t Template) Document {
	return Document{
		Title:           f.Title,
		Template:        t,
		ProfileInfo:     f.ProfileInfo,
		ContactInfo:     f.ContactInfo,
		WorkExperiences: f.WorkExperiences,
		Education:       f.Education,
		Skills:          f.Skills,
		Projects:        f.Projects,
		Certifications:  f.Certifications,
		Languages:       f.Languages,
		Interests:       f.Interests,
	}
}
