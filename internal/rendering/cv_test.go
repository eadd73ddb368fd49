package rendering

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansriess/academic-site/internal/db"
)

func mustDate(year int, month time.Month) *db.Date {
	return &db.Date{Time: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

func minimalSnapshot() *db.Snapshot {
	return &db.Snapshot{
		Profile: &db.Profile{
			Name:  "Ada Example",
			Email: "ada@example.edu",
		},
	}
}

func TestBuildDocument_MinimalProfile(t *testing.T) {
	doc := BuildDocument(minimalSnapshot())

	assert.True(t, strings.HasPrefix(doc, "\\documentclass{article}\n\\usepackage{academic-cv}\n"))
	assert.Contains(t, doc, `\cvname{Ada Example}`)
	assert.Contains(t, doc, `\cvemail{ada@example.edu}`)
	assert.Contains(t, doc, `\begin{document}`)
	assert.Contains(t, doc, `\makecvheader`)
	assert.True(t, strings.HasSuffix(doc, "\\end{document}\n"))

	// Unset profile fields emit no macro at all.
	assert.NotContains(t, doc, `\cvphone`)
	assert.NotContains(t, doc, `\cvlinkedin`)
	assert.NotContains(t, doc, `\cvorcid`)
	assert.NotContains(t, doc, `\cvaddress`)

	// No records means no sections.
	assert.NotContains(t, doc, `\section`)
	assert.NotContains(t, doc, `\begin{cventries}`)
}

func TestBuildDocument_LongTitlePreferredOverOccupation(t *testing.T) {
	snap := minimalSnapshot()
	snap.Profile.Occupation = "Professor"
	snap.Profile.LongTitle = "Assistant Professor of Mathematics"

	doc := BuildDocument(snap)
	assert.Contains(t, doc, `\cvoccupation{Assistant Professor of Mathematics}`)
	assert.NotContains(t, doc, `\cvoccupation{Professor}`)
}

func TestBuildDocument_EducationEntries(t *testing.T) {
	snap := minimalSnapshot()
	snap.Education = []db.Education{
		{
			DegreeType:     "PhD",
			Field:          "Electrical Engineering",
			Institution:    "University of Pennsylvania",
			GraduationYear: 2022,
			Thesis:         "Lattice Theory of Consensus",
			Advisor:        "R. Ghrist",
		},
		{
			DegreeType:     "BS",
			Field:          "Mathematics",
			Institution:    "State College",
			GraduationYear: 2016,
			Honors:         "summa cum laude",
		},
	}

	doc := BuildDocument(snap)
	assert.Contains(t, doc, `\section{Education}`)
	assert.Contains(t, doc,
		`\cventry{PhD in Electrical Engineering}{University of Pennsylvania}{2022}{Thesis: Lattice Theory of Consensus; Advisor: R. Ghrist}`)
	assert.Contains(t, doc,
		`\cventry{BS in Mathematics}{State College}{2016}{summa cum laude}`)

	// Entries render in snapshot order: the store returns them newest first.
	phd := strings.Index(doc, "{2022}")
	bs := strings.Index(doc, "{2016}")
	require.True(t, phd >= 0 && bs >= 0)
	assert.Less(t, phd, bs)
}

func TestBuildDocument_GrantEntry(t *testing.T) {
	amount := int64(50000)
	snap := minimalSnapshot()
	snap.Grants = []db.Grant{
		{
			Title:     "Sheaves for Networks",
			Agency:    "NSF",
			Role:      db.GrantPI,
			Amount:    &amount,
			Currency:  "USD",
			StartYear: 2023,
			EndYear:   2026,
			Number:    "2301234",
			CoPIs:     "J. Doe",
		},
		{
			Title:     "Seed Grant",
			Agency:    "College of Engineering",
			Role:      db.GrantCoPI,
			StartYear: 2024,
		},
	}

	doc := BuildDocument(snap)
	assert.Contains(t, doc, `\section{Funding}`)
	assert.Contains(t, doc,
		`\cventry{Sheaves for Networks, No. 2301234}{NSF}{2023 -- 2026}{Role: PI; 50,000 USD; with J. Doe}`)
	// No grant number means no ", No." fragment; no amount means no money line.
	assert.Contains(t, doc,
		`\cventry{Seed Grant}{College of Engineering}{2024 -- Present}{Role: Co-PI}`)
}

func TestBuildDocument_PublicationsGrouped(t *testing.T) {
	snap := minimalSnapshot()
	snap.Publications = []db.PublicationGroup{
		{Type: db.RefJournalArticle, Items: []db.Reference{
			{
				Type:    db.RefJournalArticle,
				Title:   "Tarski Laplacians",
				Authors: "H. Riess, R. Ghrist",
				Journal: "SIAM Journal on Applied Algebra and Geometry",
				Volume:  "6",
				Issue:   "2",
				Pages:   "1--24",
				Year:    2022,
			},
		}},
		{Type: db.RefPreprint, Items: nil},
	}

	doc := BuildDocument(snap)
	assert.Contains(t, doc, `\section{Publications}`)
	assert.Contains(t, doc, `\subsection*{Journal Articles}`)
	assert.Contains(t, doc,
		`\publication{H. Riess, R. Ghrist}{Tarski Laplacians}{SIAM Journal on Applied Algebra and Geometry, 6(2), 1--24, 2022}{}`)

	// A group with no items contributes no heading.
	assert.NotContains(t, doc, `\subsection*{Preprints}`)
}

func TestBuildDocument_TalkEntry(t *testing.T) {
	snap := minimalSnapshot()
	snap.Talks = []db.Talk{
		{
			Title:   "Order Theory in Engineering",
			Venue:   "Applied Topology Seminar",
			Invited: true,
			Date:    mustDate(2024, 3),
		},
	}

	doc := BuildDocument(snap)
	assert.Contains(t, doc, `\section{Presentations}`)
	assert.Contains(t, doc,
		`\cvtalk{Order Theory in Engineering \textit{(invited)}}{Applied Topology Seminar}{}{March 2024}`)
}

func TestBuildDocument_CourseAndServiceEntries(t *testing.T) {
	snap := minimalSnapshot()
	snap.Courses = []db.Course{
		{
			Code:        "MATH 501",
			Title:       "Applied Category Theory",
			Institution: "State College",
			Semester:    db.SemesterFall,
			Year:        2025,
			Role:        db.CourseInstructor,
		},
	}
	snap.Services = []db.Service{
		{
			Title:        "Program Committee",
			Organization: "ACT Conference",
			Year:         2025,
			Role:         db.ServiceMember,
		},
	}

	doc := BuildDocument(snap)
	assert.Contains(t, doc, `\section{Teaching}`)
	assert.Contains(t, doc,
		`\cventry{MATH 501: Applied Category Theory}{State College}{Fall 2025}{Instructor}`)
	assert.Contains(t, doc, `\section{Professional Service}`)
	assert.Contains(t, doc,
		`\cventry{Program Committee}{ACT Conference}{2025}{Member}`)
}

func TestBuildDocument_SectionOrder(t *testing.T) {
	amount := int64(1000)
	snap := minimalSnapshot()
	snap.Experience = []db.Experience{{Title: "Postdoc", Institution: "U", StartDate: mustDate(2022, 9), Current: true}}
	snap.Education = []db.Education{{DegreeType: "PhD", Institution: "U", GraduationYear: 2022}}
	snap.Grants = []db.Grant{{Title: "G", Agency: "A", Role: db.GrantPI, Amount: &amount, Currency: "USD", StartYear: 2023}}
	snap.Publications = []db.PublicationGroup{{Type: db.RefJournalArticle, Items: []db.Reference{{Title: "P", Authors: "A", Year: 2022}}}}
	snap.Talks = []db.Talk{{Title: "T", Venue: "V", Date: mustDate(2024, 1)}}
	snap.Courses = []db.Course{{Code: "C", Title: "T", Institution: "U", Semester: db.SemesterFall, Year: 2024, Role: db.CourseInstructor}}
	snap.Services = []db.Service{{Title: "S", Organization: "O", Year: 2024, Role: db.ServiceChair}}

	doc := BuildDocument(snap)
	order := []string{
		`\section{Appointments}`,
		`\section{Education}`,
		`\section{Funding}`,
		`\section{Publications}`,
		`\section{Presentations}`,
		`\section{Teaching}`,
		`\section{Professional Service}`,
	}
	last := -1
	for _, heading := range order {
		idx := strings.Index(doc, heading)
		require.GreaterOrEqual(t, idx, 0, heading)
		assert.Greater(t, idx, last, heading)
		last = idx
	}
}

func TestBuildDocument_Deterministic(t *testing.T) {
	snap := minimalSnapshot()
	snap.Education = []db.Education{{DegreeType: "PhD", Institution: "U", GraduationYear: 2022}}
	snap.Collaborators = map[uuid.UUID]db.Collaborator{
		idAlice: {ID: idAlice, Name: "Alice Archer"},
		idBob:   {ID: idBob, Name: "Bob Builder", IsMe: true},
	}
	snap.Publications = []db.PublicationGroup{{Type: db.RefJournalArticle, Items: []db.Reference{
		{Title: "P", AuthorIDs: db.UUIDList{idAlice, idBob}, Year: 2022},
	}}}

	first := BuildDocument(snap)
	second := BuildDocument(snap)
	assert.Equal(t, first, second)
}
