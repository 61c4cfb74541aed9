package latex

import (
	"strings"

	"resume-forge/internal/domain/resume"
)

// preamble is the fixed style block of the document (Jake Gutierrez's résumé
// template, MIT licensed). It is opaque to content: nothing request-specific
// is ever interpolated into it.
const preamble = `%-------------------------
% Resume in Latex
% Author : Jake Gutierrez
% Based off of: https://github.com/sb2nov/resume
% License : MIT
%------------------------

\documentclass[letterpaper,11pt]{article}

\usepackage{latexsym}
\usepackage[empty]{fullpage}
\usepackage{titlesec}
\usepackage{marvosym}
\usepackage[usenames,dvipsnames]{color}
\usepackage{verbatim}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\usepackage{fancyhdr}
\usepackage[english]{babel}
\usepackage{tabularx}
\usepackage{graphicx}
\usepackage{float}
\usepackage{geometry}
\usepackage{xparse}
\input{glyphtounicode}

\pagestyle{fancy}
\fancyhf{}
\fancyfoot{}
\renewcommand{\headrulewidth}{0pt}
\renewcommand{\footrulewidth}{0pt}

% Adjust margins
\addtolength{\oddsidemargin}{-0.5in}
\addtolength{\evensidemargin}{-0.5in}
\addtolength{\textwidth}{1in}
\addtolength{\topmargin}{-.5in}
\addtolength{\textheight}{1.0in}

\urlstyle{same}

\raggedbottom
\raggedright
\setlength{\tabcolsep}{0in}

% Sections formatting
\titleformat{\section}{
  \vspace{-4pt}\scshape\raggedright\large
}{}{0em}{}[\color{black}\titlerule \vspace{-5pt}]

% Ensure the generated pdf is machine readable/ATS parsable
\pdfgentounicode=1

%-------------------------
% Custom commands
\NewDocumentCommand{\resumeItem}{m}{
  \item\small{
    {#1 \vspace{-2pt}}
  }
}

\NewDocumentCommand{\resumeSubheading}{mmmm}{
  \vspace{-2pt}\item
    \begin{tabular*}{0.97\textwidth}[t]{l@{\extracolsep{\fill}}r}
      \textbf{#1} & #2 \\
      \textit{\small#3} & \textit{\small #4} \\
    \end{tabular*}\vspace{-7pt}
}

\NewDocumentCommand{\resumeProjectHeading}{mm}{
    \item
    \begin{tabular*}{0.97\textwidth}{l@{\extracolsep{\fill}}r}
      \small#1 & #2 \\
    \end{tabular*}\vspace{-7pt}
}

\renewcommand\labelitemii{$\vcenter{\hbox{\tiny$\bullet$}}$}

\NewDocumentEnvironment{resumeSubHeadingListStart}{}{
  \begin{itemize}[leftmargin=0.15in, label={}]
}{
  \end{itemize}
}

\NewDocumentEnvironment{resumeItemListStart}{}{
  \begin{itemize}
}{
  \end{itemize}\vspace{-5pt}
}

%-------------------------------------------

\begin{document}
`

const terminator = `
%-------------------------------------------
\end{document}
`

// Document assembles one complete LaTeX document from a normalized request:
// fixed preamble, contact header, then the sections in canonical order, each
// omitted entirely when its backing collection is empty. Deterministic for
// identical input; the output filename never appears here.
func Document(req resume.Request) string {
	var b strings.Builder

	b.WriteString(preamble)
	b.WriteString("\n")
	b.WriteString(RenderHeader(req.Contact))

	if len(req.EducationEntries) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderEducation(req.EducationEntries))
	}
	if len(req.ExperienceEntries) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderExperience(req.ExperienceEntries))
	}
	if len(req.ProjectEntries) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderProjects(req.ProjectEntries))
	}
	if len(req.SkillCategories) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderSkills(req.SkillCategories))
	}

	b.WriteString(terminator)
	return b.String()
}
