package dto

import "resume-forge/internal/domain/resume"

// GenerateResumeRequest is the inbound payload of POST /resume/generate.
type GenerateResumeRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	LinkedinURL string `json:"linkedin_url"`
	GithubURL   string `json:"github_url"`
	WebsiteURL  string `json:"website_url"`

	EducationEntries  []EducationEntry  `json:"education_entries"`
	ExperienceEntries []ExperienceEntry `json:"experience_entries"`
	ProjectEntries    []ProjectEntry    `json:"project_entries"`
	SkillCategories   []SkillCategory   `json:"skill_categories"`

	OutputFilename string `json:"output_filename"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	DateRange   string `json:"date_range"`
	Location    string `json:"location"`
}

type ExperienceEntry struct {
	Title            string   `json:"title"`
	Dates            string   `json:"dates"`
	Organization     string   `json:"organization"`
	Location         string   `json:"location"`
	Responsibilities []string `json:"responsibilities"`
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Technologies string   `json:"technologies"`
	DateRange    string   `json:"date_range"`
	Details      []string `json:"details"`
}

type SkillCategory struct {
	CategoryName string   `json:"category_name"`
	Skills       []string `json:"skills"`
}

func (r GenerateResumeRequest) ToDomain() resume.Request {
	out := resume.Request{
		Contact: resume.Contact{
			FullName:    r.FullName,
			Email:       r.Email,
			PhoneNumber: r.PhoneNumber,
			LinkedinURL: r.LinkedinURL,
			GithubURL:   r.GithubURL,
			WebsiteURL:  r.WebsiteURL,
		},
		OutputFilename: r.OutputFilename,
	}

	for _, e := range r.EducationEntries {
		out.EducationEntries = append(out.EducationEntries, resume.EducationEntry{
			Institution: e.Institution,
			Degree:      e.Degree,
			DateRange:   e.DateRange,
			Location:    e.Location,
		})
	}
	for _, e := range r.ExperienceEntries {
		out.ExperienceEntries = append(out.ExperienceEntries, resume.ExperienceEntry{
			Title:            e.Title,
			Dates:            e.Dates,
			Organization:     e.Organization,
			Location:         e.Location,
			Responsibilities: e.Responsibilities,
		})
	}
	for _, p := range r.ProjectEntries {
		out.ProjectEntries = append(out.ProjectEntries, resume.ProjectEntry{
			Name:         p.Name,
			Technologies: p.Technologies,
			DateRange:    p.DateRange,
			Details:      p.Details,
		})
	}
	for _, s := range r.SkillCategories {
		out.SkillCategories = append(out.SkillCategories, resume.SkillCategory{
			CategoryName: s.CategoryName,
			Skills:       s.Skills,
		})
	}

	return out
}
