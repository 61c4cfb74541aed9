package latex

import (
	"fmt"
	"strings"

	"resume-forge/internal/domain/resume"
)

// Section renderers are pure functions from validated records to LaTeX
// fragments. Every leaf user string goes through Escape exactly once here;
// structural markup emitted by the renderers themselves is never escaped.

const linkSeparator = " $|$ "

// RenderHeader builds the contact block. The name is always shown; contact
// links appear only for present fields, each as a clickable \href, joined
// with a fixed separator.
func RenderHeader(c resume.Contact) string {
	var b strings.Builder

	b.WriteString("%----------HEADING----------\n")
	b.WriteString("\\begin{tabular*}{\\textwidth}{l@{\\extracolsep{\\fill}}r}\n")
	fmt.Fprintf(&b, "    \\textbf{\\Huge \\scshape %s} & %s \\\\\n", Escape(c.FullName), Escape(c.PhoneNumber))

	links := []string{
		fmt.Sprintf("\\href{mailto:%s}{\\underline{%s}}", Escape(c.Email), Escape(c.Email)),
	}
	for _, handle := range []string{c.LinkedinURL, c.GithubURL, c.WebsiteURL} {
		if strings.TrimSpace(handle) == "" {
			continue
		}
		links = append(links, fmt.Sprintf("\\href{https://%s}{\\underline{%s}}", Escape(handle), Escape(handle)))
	}
	b.WriteString("    " + strings.Join(links, linkSeparator) + "\n")
	b.WriteString("\\end{tabular*}\n")

	return b.String()
}

func RenderEducation(entries []resume.EducationEntry) string {
	var b strings.Builder

	b.WriteString("%-----------EDUCATION-----------\n")
	b.WriteString("\\section{Education}\n")
	b.WriteString("  \\begin{resumeSubHeadingListStart}\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "    \\resumeSubheading\n      {%s}{%s}\n      {%s}{%s}\n",
			Escape(e.Institution), Escape(e.Location), Escape(e.Degree), Escape(e.DateRange))
	}
	b.WriteString("  \\end{resumeSubHeadingListStart}\n")

	return b.String()
}

func RenderExperience(entries []resume.ExperienceEntry) string {
	var b strings.Builder

	b.WriteString("%-----------EXPERIENCE-----------\n")
	b.WriteString("\\section{Experience}\n")
	b.WriteString("  \\begin{resumeSubHeadingListStart}\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "    \\resumeSubheading\n      {%s}{%s}\n      {%s}{%s}\n",
			Escape(e.Title), Escape(e.Dates), Escape(e.Organization), Escape(e.Location))
		b.WriteString("      \\begin{resumeItemListStart}\n")
		for _, r := range e.Responsibilities {
			fmt.Fprintf(&b, "        \\resumeItem{%s}\n", Escape(r))
		}
		b.WriteString("      \\end{resumeItemListStart}\n")
	}
	b.WriteString("  \\end{resumeSubHeadingListStart}\n")

	return b.String()
}

func RenderProjects(entries []resume.ProjectEntry) string {
	var b strings.Builder

	b.WriteString("%-----------PROJECTS-----------\n")
	b.WriteString("\\section{Projects}\n")
	b.WriteString("  \\begin{resumeSubHeadingListStart}\n")
	for _, p := range entries {
		fmt.Fprintf(&b, "    \\resumeProjectHeading\n      {\\textbf{%s} $|$ \\emph{%s}}{%s}\n",
			Escape(p.Name), Escape(p.Technologies), Escape(p.DateRange))
		b.WriteString("      \\begin{resumeItemListStart}\n")
		for _, d := range p.Details {
			fmt.Fprintf(&b, "        \\resumeItem{%s}\n", Escape(d))
		}
		b.WriteString("      \\end{resumeItemListStart}\n")
	}
	b.WriteString("  \\end{resumeSubHeadingListStart}\n")

	return b.String()
}

// RenderSkills emits one line per category in input order: the category name
// bolded, its skills joined with ", ".
func RenderSkills(categories []resume.SkillCategory) string {
	var b strings.Builder

	b.WriteString("%-----------TECHNICAL SKILLS-----------\n")
	b.WriteString("\\section{Technical Skills}\n")
	b.WriteString(" \\begin{itemize}[leftmargin=0.15in, label={}]\n")
	b.WriteString("    \\small{\\item{\n")

	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		escaped := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			escaped = append(escaped, Escape(s))
		}
		lines = append(lines, fmt.Sprintf("     \\textbf{%s}{: %s}", Escape(c.CategoryName), strings.Join(escaped, ", ")))
	}
	b.WriteString(strings.Join(lines, " \\\\\n"))
	b.WriteString("\n    }}\n")
	b.WriteString(" \\end{itemize}\n")

	return b.String()
}
