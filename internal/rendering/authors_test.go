package rendering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hansriess/academic-site/internal/db"
)

var (
	idAlice = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	idBob   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	idCarol = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func testCollaborators() map[uuid.UUID]db.Collaborator {
	return map[uuid.UUID]db.Collaborator{
		idAlice: {ID: idAlice, Name: "Alice Archer"},
		idBob:   {ID: idBob, Name: "Bob Builder", IsMe: true},
		idCarol: {ID: idCarol, Name: "Carol Chen"},
	}
}

func TestFormatAuthors_StoredOrder(t *testing.T) {
	r := &db.Reference{
		AuthorIDs: db.UUIDList{idCarol, idAlice, idBob},
	}
	out := FormatAuthors(r, testCollaborators())
	assert.Equal(t, `Carol Chen, Alice Archer, \textbf{Bob Builder}`, out)
}

func TestFormatAuthors_Alphabetical(t *testing.T) {
	r := &db.Reference{
		AuthorIDs:         db.UUIDList{idCarol, idBob, idAlice},
		AlphabeticalOrder: true,
	}
	out := FormatAuthors(r, testCollaborators())
	assert.Equal(t, `Alice Archer, \textbf{Bob Builder}, Carol Chen`, out)
}

func TestFormatAuthors_SharedFirstAuthor(t *testing.T) {
	r := &db.Reference{
		AuthorIDs:         db.UUIDList{idAlice, idBob, idCarol},
		SharedFirstAuthor: true,
	}
	out := FormatAuthors(r, testCollaborators())
	assert.Equal(t,
		`Alice Archer\textsuperscript{*}, \textbf{Bob Builder}\textsuperscript{*}, Carol Chen`,
		out)
}

func TestFormatAuthors_FreeTextFallback(t *testing.T) {
	r := &db.Reference{Authors: "Smith & Jones"}
	assert.Equal(t, `Smith \& Jones`, FormatAuthors(r, testCollaborators()))
}

func TestFormatAuthors_UnresolvableIDsFallBack(t *testing.T) {
	r := &db.Reference{
		Authors:   "A. Nonymous",
		AuthorIDs: db.UUIDList{uuid.MustParse("99999999-9999-9999-9999-999999999999")},
	}
	assert.Equal(t, "A. Nonymous", FormatAuthors(r, testCollaborators()))
}

func TestFormatAuthors_SkipsUnknownKeepsKnown(t *testing.T) {
	r := &db.Reference{
		AuthorIDs: db.UUIDList{
			idAlice,
			uuid.MustParse("99999999-9999-9999-9999-999999999999"),
			idCarol,
		},
	}
	assert.Equal(t, "Alice Archer, Carol Chen", FormatAuthors(r, testCollaborators()))
}
