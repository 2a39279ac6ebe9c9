package resume

// FromResume projects a server document into total FormData: absent scalars
// default to the empty string and absent collections to empty slices, never
// nil.
func FromResume(r *Resume) FormData {
	f := FormData{
		Title:           r.Title,
		WorkExperiences: emptyIfNil(r.WorkExperiences),
		Education:       emptyIfNil(r.Education),
		Skills:          emptyIfNil(r.Skills),
		Projects:        emptyIfNil(r.Projects),
		Certifications:  emptyIfNil(r.Certifications),
		Languages:       emptyIfNil(r.Languages),
		Interests:       emptyIfNil(r.Interests),
	}
	if f.Title == "" {
		f.Title = DefaultTitle
	}
	if r.ProfileInfo != nil {
		f.ProfileInfo = *r.ProfileInfo
	}
	if r.ContactInfo != nil {
		f.ContactInfo = *r.ContactInfo
	}
	return f
}

// NewFormData returns an empty, total FormData for a fresh editing session.
func NewFormData() FormData {
	return FromResume(&Resume{})
}

// Clone deep-copies f so mutations on the copy never alias the original.
func (f FormData) Clone() FormData {
	out := f
	out.WorkExperiences = cloneSlice(f.WorkExperiences)
	out.Education = cloneSlice(f.Education)
	out.Skills = cloneSlice(f.Skills)
	out.Projects = cloneSlice(f.Projects)
	out.Certifications = cloneSlice(f.Certifications)
	out.Languages = cloneSlice(f.Languages)
	out.Interests = cloneSlice(f.Interests)
	return out
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func cloneSlice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
