package latex

import (
	"strings"
	"testing"

	"resume-forge/internal/domain/resume"
)

func TestRenderHeader_AllLinks(t *testing.T) {
	got := RenderHeader(resume.Contact{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+44 123",
		LinkedinURL: "linkedin.com/in/ada",
		GithubURL:   "github.com/ada",
		WebsiteURL:  "ada.dev",
	})

	for _, want := range []string{
		`\textbf{\Huge \scshape Ada Lovelace}`,
		`\href{mailto:ada@example.com}{\underline{ada@example.com}}`,
		`\href{https://linkedin.com/in/ada}{\underline{linkedin.com/in/ada}}`,
		`\href{https://github.com/ada}{\underline{github.com/ada}}`,
		`\href{https://ada.dev}{\underline{ada.dev}}`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("header missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, " $|$ ") != 3 {
		t.Fatalf("expected 3 link separators, got %d:\n%s", strings.Count(got, " $|$ "), got)
	}
}

func TestRenderHeader_OmitsAbsentLinks(t *testing.T) {
	got := RenderHeader(resume.Contact{FullName: "Ada Lovelace", Email: "ada@example.com"})

	if strings.Contains(got, "https://") {
		t.Fatalf("expected no profile links:\n%s", got)
	}
	if !strings.Contains(got, `\href{mailto:ada@example.com}`) {
		t.Fatalf("email link should always render:\n%s", got)
	}
	if strings.Contains(got, " $|$ ") {
		t.Fatalf("no separator expected with a single link:\n%s", got)
	}
}

func TestRenderHeader_EscapesUserText(t *testing.T) {
	got := RenderHeader(resume.Contact{FullName: "A & B", Email: "a_b@example.com"})
	if !strings.Contains(got, `A \& B`) {
		t.Fatalf("name not escaped:\n%s", got)
	}
	if !strings.Contains(got, `a\_b@example.com`) {
		t.Fatalf("email not escaped:\n%s", got)
	}
}

func TestRenderEducation(t *testing.T) {
	got := RenderEducation([]resume.EducationEntry{
		{Institution: "MIT & Caltech", Degree: "B.S. 100%", DateRange: "2019 -- 2023", Location: "Cambridge"},
	})

	if !strings.Contains(got, `\section{Education}`) {
		t.Fatalf("missing section heading:\n%s", got)
	}
	if !strings.Contains(got, `{MIT \& Caltech}{Cambridge}`) {
		t.Fatalf("institution line wrong:\n%s", got)
	}
	if !strings.Contains(got, `{B.S. 100\%}{2019 -- 2023}`) {
		t.Fatalf("degree line wrong:\n%s", got)
	}
}

func TestRenderExperience_PreservesItemOrder(t *testing.T) {
	got := RenderExperience([]resume.ExperienceEntry{
		{
			Title:            "Engineer",
			Dates:            "2020 -- Present",
			Organization:     "Acme",
			Location:         "Remote",
			Responsibilities: []string{"first", "second", "third"},
		},
	})

	a := strings.Index(got, `\resumeItem{first}`)
	b := strings.Index(got, `\resumeItem{second}`)
	c := strings.Index(got, `\resumeItem{third}`)
	if a < 0 || b < 0 || c < 0 || !(a < b && b < c) {
		t.Fatalf("items missing or reordered (%d, %d, %d):\n%s", a, b, c, got)
	}
}

func TestRenderExperience_EmptyResponsibilities(t *testing.T) {
	got := RenderExperience([]resume.ExperienceEntry{
		{Title: "Engineer", Dates: "2020", Organization: "Acme", Responsibilities: []string{}},
	})

	if !strings.Contains(got, `\begin{resumeItemListStart}`) || !strings.Contains(got, `\end{resumeItemListStart}`) {
		t.Fatalf("item list block must render even when empty:\n%s", got)
	}
	if strings.Contains(got, `\resumeItem{`) {
		t.Fatalf("no items expected:\n%s", got)
	}
}

func TestRenderProjects(t *testing.T) {
	got := RenderProjects([]resume.ProjectEntry{
		{Name: "Engine #1", Technologies: "Go, Postgres", DateRange: "2024", Details: []string{"did a thing"}},
	})

	if !strings.Contains(got, `{\textbf{Engine \#1} $|$ \emph{Go, Postgres}}{2024}`) {
		t.Fatalf("project heading wrong:\n%s", got)
	}
	if !strings.Contains(got, `\resumeItem{did a thing}`) {
		t.Fatalf("detail missing:\n%s", got)
	}
}

func TestRenderSkills(t *testing.T) {
	got := RenderSkills([]resume.SkillCategory{
		{CategoryName: "Languages", Skills: []string{"Python", "C++"}},
		{CategoryName: "Tools & Infra", Skills: []string{"Docker"}},
	})

	if !strings.Contains(got, `\textbf{Languages}{: Python, C++}`) {
		t.Fatalf("languages line wrong:\n%s", got)
	}
	if !strings.Contains(got, `\textbf{Tools \& Infra}{: Docker}`) {
		t.Fatalf("tools line wrong:\n%s", got)
	}
	if !strings.Contains(got, " \\\\\n") {
		t.Fatalf("lines not joined with a LaTeX line break:\n%s", got)
	}
}
