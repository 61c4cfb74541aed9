package resume

import (
	"fmt"
	"strings"
)

// ValidationError names the first missing or blank required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "required and must be non-empty"}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Validate applies the field-presence rules: fail fast on the first violation.
// List fields are allowed to be empty; required scalar fields must be
// non-blank.
func (r Request) Validate() error {
	if blank(r.Contact.FullName) {
		return missing("full_name")
	}
	if blank(r.Contact.Email) {
		return missing("email")
	}

	for i, e := range r.EducationEntries {
		switch {
		case blank(e.Institution):
			return missing(fmt.Sprintf("education_entries[%d].institution", i))
		case blank(e.Degree):
			return missing(fmt.Sprintf("education_entries[%d].degree", i))
		case blank(e.DateRange):
			return missing(fmt.Sprintf("education_entries[%d].date_range", i))
		}
	}

	for i, e := range r.ExperienceEntries {
		switch {
		case blank(e.Title):
			return missing(fmt.Sprintf("experience_entries[%d].title", i))
		case blank(e.Dates):
			return missing(fmt.Sprintf("experience_entries[%d].dates", i))
		case blank(e.Organization):
			return missing(fmt.Sprintf("experience_entries[%d].organization", i))
		}
	}

	for i, p := range r.ProjectEntries {
		switch {
		case blank(p.Name):
			return missing(fmt.Sprintf("project_entries[%d].name", i))
		case blank(p.Technologies):
			return missing(fmt.Sprintf("project_entries[%d].technologies", i))
		}
	}

	for i, s := range r.SkillCategories {
		if blank(s.CategoryName) {
			return missing(fmt.Sprintf("skill_categories[%d].category_name", i))
		}
	}

	return nil
}
