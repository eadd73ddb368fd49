package rendering

import (
	"fmt"
	"strings"

	"github.com/hansriess/academic-site/internal/db"
)

// BuildDocument assembles the complete LaTeX CV from a record snapshot.
// It is a pure function of the snapshot: the same records always produce
// byte-identical output. Sections with no records are absent entirely.
// The caller guarantees snap.Profile is non-nil.
func BuildDocument(snap *db.Snapshot) string {
	var doc []string

	doc = append(doc, `\documentclass{article}`)
	doc = append(doc, `\usepackage{academic-cv}`)
	doc = append(doc, headerMacros(snap.Profile)...)
	doc = append(doc, `\begin{document}`)
	doc = append(doc, `\makecvheader`)

	// Section order is a policy choice; it must stay stable across runs.
	doc = append(doc, formatExperience(snap.Experience)...)
	doc = append(doc, formatEducation(snap.Education)...)
	doc = append(doc, formatGrants(snap.Grants)...)
	doc = append(doc, formatPublications(snap)...)
	doc = append(doc, formatTalks(snap.Talks)...)
	doc = append(doc, formatCourses(snap.Courses)...)
	doc = append(doc, formatServices(snap.Services)...)

	doc = append(doc, `\end{document}`)
	return strings.Join(doc, "\n") + "\n"
}

// headerMacros renders the document header from the profile. Optional
// fields emit no macro at all when absent.
func headerMacros(p *db.Profile) []string {
	macro := func(name, value string) string {
		return fmt.Sprintf(`\%s{%s}`, name, EscapeLaTeX(value))
	}

	out := []string{macro("cvname", p.Name)}

	occupation := p.LongTitle
	if occupation == "" {
		occupation = p.Occupation
	}
	if occupation != "" {
		out = append(out, macro("cvoccupation", occupation))
	}
	if p.Email != "" {
		out = append(out, macro("cvemail", p.Email))
	}
	if p.Phone != "" {
		out = append(out, macro("cvphone", p.Phone))
	}
	if p.Website != "" {
		out = append(out, macro("cvwebsite", p.Website))
	}
	if p.LinkedIn != "" {
		out = append(out, macro("cvlinkedin", p.LinkedIn))
	}
	if p.GitHub != "" {
		out = append(out, macro("cvgithub", p.GitHub))
	}
	if p.GoogleScholar != "" {
		out = append(out, macro("cvscholar", p.GoogleScholar))
	}
	if p.ORCID != "" {
		out = append(out, macro("cvorcid", p.ORCID))
	}
	if addr := FormatAddress(p); addr != "" {
		out = append(out, fmt.Sprintf(`\cvaddress{%s}`, addr))
	}
	return out
}

func formatExperience(items []db.Experience) []string {
	if len(items) == 0 {
		return nil
	}
	out := []string{`\section{Appointments}`, `\begin{cventries}`}
	for i := range items {
		e := &items[i]
		where := joinPresent(", ",
			EscapeLaTeX(e.Institution),
			EscapeLaTeX(e.Department),
			EscapeLaTeX(e.Location))
		out = append(out, fmt.Sprintf(`\cventry{%s}{%s}{%s}{%s}`,
			EscapeLaTeX(e.Title), where,
			DateRange(e.StartDate, e.EndDate, e.Current),
			EscapeLaTeX(e.Description)))
	}
	return append(out, `\end{cventries}`)
}

func formatEducation(items []db.Education) []string {
	if len(items) == 0 {
		return nil
	}
	out := []string{`\section{Education}`, `\begin{cventries}`}
	for i := range items {
		e := &items[i]
		degree := joinPresent(" in ", EscapeLaTeX(e.DegreeType), EscapeLaTeX(e.Field))
		details := joinPresent("; ",
			prefixed("Thesis: ", e.Thesis),
			prefixed("Advisor: ", e.Advisor),
			EscapeLaTeX(e.Honors),
			prefixed("GPA: ", e.GPA))
		out = append(out, fmt.Sprintf(`\cventry{%s}{%s}{%d}{%s}`,
			degree, EscapeLaTeX(e.Institution), e.GraduationYear, details))
	}
	return append(out, `\end{cventries}`)
}

// prefixed escapes value and prepends the label, or returns "" when the
// value is absent so no dangling label is emitted.
func prefixed(label, value string) string {
	if value == "" {
		return ""
	}
	return label + EscapeLaTeX(value)
}

func formatGrants(items []db.Grant) []string {
	if len(items) == 0 {
		return nil
	}
	out := []string{`\section{Funding}`, `\begin{cventries}`}
	for i := range items {
		g := &items[i]
		title := EscapeLaTeX(g.Title)
		if g.Number != "" {
			title += ", No. " + EscapeLaTeX(g.Number)
		}
		details := joinPresent("; ",
			"Role: "+g.Role.Display(),
			FormatAmount(g.Amount, g.Currency),
			prefixed("with ", g.CoPIs))
		out = append(out, fmt.Sprintf(`\cventry{%s}{%s}{%s}{%s}`,
			title, EscapeLaTeX(g.Agency),
			YearRange(g.StartYear, g.EndYear), details))
	}
	return append(out, `\end{cventries}`)
}

func formatPublications(snap *db.Snapshot) []string {
	var groups []db.PublicationGroup
	for _, g := range snap.Publications {
		if len(g.Items) > 0 {
			groups = append(groups, g)
		}
	}
	if len(groups) == 0 {
		return nil
	}

	out := []string{`\section{Publications}`}
	for _, group := range groups {
		out = append(out, fmt.Sprintf(`\subsection*{%s}`,
			EscapeLaTeX(group.Type.Display())))
		out = append(out, `\begin{publications}`)
		for i := range group.Items {
			r := &group.Items[i]
			out = append(out, fmt.Sprintf(`\publication{%s}{%s}{%s}{%s}`,
				FormatAuthors(r, snap.Collaborators),
				EscapeLaTeX(r.Title),
				publicationDetails(r),
				FormatLinks(r)))
		}
		out = append(out, `\end{publications}`)
	}
	return out
}

// publicationDetails renders the venue line: journal, volume(issue),
// pages, year. Absent pieces leave no separator behind.
func publicationDetails(r *db.Reference) string {
	volume := EscapeLaTeX(r.Volume)
	if volume != "" && r.Issue != "" {
		volume += "(" + EscapeLaTeX(r.Issue) + ")"
	}
	return joinPresent(", ",
		EscapeLaTeX(r.Journal),
		volume,
		EscapeLaTeX(r.Pages),
		fmt.Sprintf("%d", r.Year))
}

func formatTalks(items []db.Talk) []string {
	if len(items) == 0 {
		return nil
	}
	out := []string{`\section{Presentations}`, `\begin{publications}`}
	for i := range items {
		t := &items[i]
		title := EscapeLaTeX(t.Title)
		if t.Invited {
			title += ` \textit{(invited)}`
		}
		location := joinPresent(" ",
			EscapeLaTeX(t.Location),
			href(t.SlidesURL, "Slides"))
		var when string
		if t.Date != nil {
			when = t.Date.Format("January 2006")
		}
		out = append(out, fmt.Sprintf(`\cvtalk{%s}{%s}{%s}{%s}`,
			title, EscapeLaTeX(t.Venue), location, when))
	}
	return append(out, `\end{publications}`)
}

func formatCourses(items []db.Course) []string {
	if len(items) == 0 {
		return nil
	}
	out := []string{`\section{Teaching}`, `\begin{cventries}`}
	for i := range items {
		c := &items[i]
		title := joinPresent(": ", EscapeLaTeX(c.Code), EscapeLaTeX(c.Title))
		term := fmt.Sprintf("%s %d", c.Semester.Display(), c.Year)
		details := joinPresent("; ", c.Role.Display(), EscapeLaTeX(c.Description))
		out = append(out, fmt.Sprintf(`\cventry{%s}{%s}{%s}{%s}`,
			title, EscapeLaTeX(c.Institution), term, details))
	}
	return append(out, `\end{cventries}`)
}

func formatServices(items []db.Service) []string {
	if len(items) == 0 {
		return nil
	}
	out := []string{`\section{Professional Service}`, `\begin{cventries}`}
	for i := range items {
		s := &items[i]
		where := joinPresent(", ",
			EscapeLaTeX(s.Organization),
			EscapeLaTeX(s.Location))
		out = append(out, fmt.Sprintf(`\cventry{%s}{%s}{%d}{%s}`,
			EscapeLaTeX(s.Title), where, s.Year, s.Role.Display()))
	}
	return append(out, `\end{cventries}`)
}
