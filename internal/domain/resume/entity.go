package resume

// Contact is the personal header block of a résumé. Name and email are the
// only required fields; the remaining links are rendered only when present.
type Contact struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	LinkedinURL string `json:"linkedin_url,omitempty"`
	GithubURL   string `json:"github_url,omitempty"`
	WebsiteURL  string `json:"website_url,omitempty"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	DateRange   string `json:"date_range"`
	Location    string `json:"location,omitempty"`
}

type ExperienceEntry struct {
	Title            string   `json:"title"`
	Dates            string   `json:"dates"`
	Organization     string   `json:"organization"`
	Location         string   `json:"location,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Technologies string   `json:"technologies"`
	DateRange    string   `json:"date_range,omitempty"`
	Details      []string `json:"details"`
}

type SkillCategory struct {
	CategoryName string   `json:"category_name"`
	Skills       []string `json:"skills"`
}

// Request is one immutable generation request. Slice order is preserved
// verbatim into the rendered document.
type Request struct {
	Contact           Contact
	EducationEntries  []EducationEntry
	ExperienceEntries []ExperienceEntry
	ProjectEntries    []ProjectEntry
	SkillCategories   []SkillCategory
	OutputFilename    string
}

// Normalized returns a copy with nil list fields replaced by empty slices and
// the output filename defaulted, so renderers never see absent collections.
func (r Request) Normalized() Request {
	out := r
	if out.EducationEntries == nil {
		out.EducationEntries = []EducationEntry{}
	}
	if out.ExperienceEntries == nil {
		out.ExperienceEntries = []ExperienceEntry{}
	}
	for i := range out.ExperienceEntries {
		if out.ExperienceEntries[i].Responsibilities == nil {
			out.ExperienceEntries[i].Responsibilities = []string{}
		}
	}
	if out.ProjectEntries == nil {
		out.ProjectEntries = []ProjectEntry{}
	}
	for i := range out.ProjectEntries {
		if out.ProjectEntries[i].Details == nil {
			out.ProjectEntries[i].Details = []string{}
		}
	}
	if out.SkillCategories == nil {
		out.SkillCategories = []SkillCategory{}
	}
	for i := range out.SkillCategories {
		if out.SkillCategories[i].Skills == nil {
			out.SkillCategories[i].Skills = []string{}
		}
	}
	if out.OutputFilename == "" {
		out.OutputFilename = "resume.pdf"
	}
	return out
}
