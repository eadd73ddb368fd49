package rendering

import (
	"sort"

	"github.com/google/uuid"

	"github.com/hansriess/academic-site/internal/db"
)

// FormatAuthors renders the author list of a reference.
//
// When collaborator records are linked, they render in the stored display
// order, or sorted by name when the alphabetical flag is set. The site
// owner (is-me collaborator) is emphasized. Shared first authorship marks
// the first two authors with an asterisk. References without linked
// collaborators fall back to the escaped free-text author string.
func FormatAuthors(r *db.Reference, collaborators map[uuid.UUID]db.Collaborator) string {
	if len(r.AuthorIDs) == 0 {
		return EscapeLaTeX(r.Authors)
	}

	authors := make([]db.Collaborator, 0, len(r.AuthorIDs))
	for _, id := range r.AuthorIDs {
		if c, ok := collaborators[id]; ok {
			authors = append(authors, c)
		}
	}
	if len(authors) == 0 {
		return EscapeLaTeX(r.Authors)
	}

	if r.AlphabeticalOrder {
		sort.Slice(authors, func(i, j int) bool {
			return authors[i].Name < authors[j].Name
		})
	}

	names := make([]string, len(authors))
	for i, a := range authors {
		name := EscapeLaTeX(a.Name)
		if a.IsMe {
			name = `\textbf{` + name + `}`
		}
		if r.SharedFirstAuthor && i < 2 {
			name += `\textsuperscript{*}`
		}
		names[i] = name
	}
	return joinPresent(", ", names...)
}
