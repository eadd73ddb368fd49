package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const referenceColumns = `id, title, authors, author_ids, alphabetical_order,
	shared_first_author, year, reference_type, journal, volume, issue, pages,
	doi, url, pdf_url, code_url, abstract, keywords, created_at, updated_at`

func scanReference(row pgx.Row) (*Reference, error) {
	var r Reference
	err := row.Scan(&r.ID, &r.Title, &r.Authors, &r.AuthorIDs,
		&r.AlphabeticalOrder, &r.SharedFirstAuthor, &r.Year, &r.Type,
		&r.Journal, &r.Volume, &r.Issue, &r.Pages, &r.DOI, &r.URL, &r.PDFURL,
		&r.CodeURL, &r.Abstract, &r.Keywords, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ResolveAuthorOrder merges a stored author order with the current
// membership of a reference's author set. Stored ids that are still members
// keep their position (duplicates collapse to the first occurrence); members
// missing from the stored order are appended in natural order. Resolution
// happens once, when the owning reference is written; reads never re-derive
// the order, so later membership edits cannot silently reshuffle it.
func ResolveAuthorOrder(stored, natural UUIDList) UUIDList {
	if len(natural) == 0 {
		return nil
	}

	member := make(map[uuid.UUID]bool, len(natural))
	for _, id := range natural {
		member[id] = true
	}

	resolved := make(UUIDList, 0, len(natural))
	placed := make(map[uuid.UUID]bool, len(natural))
	for _, id := range stored {
		if member[id] && !placed[id] {
			resolved = append(resolved, id)
			placed[id] = true
		}
	}
	for _, id := range natural {
		if !placed[id] {
			resolved = append(resolved, id)
			placed[id] = true
		}
	}
	return resolved
}

// CreateReference inserts a new reference. The author order is resolved
// against the supplied author ids before persisting.
func (db *DB) CreateReference(ctx context.Context, r *Reference) (*Reference, error) {
	if !r.Type.Valid() {
		return nil, fmt.Errorf("invalid reference type: %q", r.Type)
	}
	order := ResolveAuthorOrder(r.AuthorIDs, r.AuthorIDs)

	row := db.pool.QueryRow(ctx,
		`INSERT INTO "references" (title, authors, author_ids, alphabetical_order,
		   shared_first_author, year, reference_type, journal, volume, issue,
		   pages, doi, url, pdf_url, code_url, abstract, keywords)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		 RETURNING `+referenceColumns,
		r.Title, r.Authors, order, r.AlphabeticalOrder, r.SharedFirstAuthor,
		r.Year, r.Type, r.Journal, r.Volume, r.Issue, r.Pages, r.DOI, r.URL,
		r.PDFURL, r.CodeURL, r.Abstract, r.Keywords)
	saved, err := scanReference(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create reference: %w", err)
	}
	return saved, nil
}

// UpdateReference updates an existing reference. The submitted author list
// is authoritative for order; dedup aside, it is stored as sent.
func (db *DB) UpdateReference(ctx context.Context, r *Reference) (*Reference, error) {
	if !r.Type.Valid() {
		return nil, fmt.Errorf("invalid reference type: %q", r.Type)
	}

	order := ResolveAuthorOrder(r.AuthorIDs, r.AuthorIDs)

	row := db.pool.QueryRow(ctx,
		`UPDATE "references" SET title = $1, authors = $2, author_ids = $3,
		   alphabetical_order = $4, shared_first_author = $5, year = $6,
		   reference_type = $7, journal = $8, volume = $9, issue = $10,
		   pages = $11, doi = $12, url = $13, pdf_url = $14, code_url = $15,
		   abstract = $16, keywords = $17, updated_at = NOW()
		 WHERE id = $18
		 RETURNING `+referenceColumns,
		r.Title, r.Authors, order, r.AlphabeticalOrder, r.SharedFirstAuthor,
		r.Year, r.Type, r.Journal, r.Volume, r.Issue, r.Pages, r.DOI, r.URL,
		r.PDFURL, r.CodeURL, r.Abstract, r.Keywords, r.ID)
	saved, err := scanReference(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update reference: %w", err)
	}
	return saved, nil
}

// GetReference retrieves a reference by ID, or nil when absent.
func (db *DB) GetReference(ctx context.Context, id uuid.UUID) (*Reference, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+referenceColumns+` FROM "references" WHERE id = $1`, id)
	r, err := scanReference(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reference: %w", err)
	}
	return r, nil
}

// ListReferences retrieves all references ordered by descending year then
// title, the listing order of the admin surface.
func (db *DB) ListReferences(ctx context.Context) ([]Reference, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+referenceColumns+` FROM "references" ORDER BY year DESC, title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	defer rows.Close()
	return collectReferences(rows)
}

// ListReferencesByType retrieves one publication category ordered by
// descending year, the order CV sections render in.
func (db *DB) ListReferencesByType(ctx context.Context, t ReferenceType) ([]Reference, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+referenceColumns+` FROM "references"
		 WHERE reference_type = $1 ORDER BY year DESC, title`, t)
	if err != nil {
		return nil, fmt.Errorf("failed to list references by type: %w", err)
	}
	defer rows.Close()
	return collectReferences(rows)
}

func collectReferences(rows pgx.Rows) ([]Reference, error) {
	var out []Reference
	for rows.Next() {
		r, err := scanReference(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reference: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// DeleteReference removes a reference by ID.
func (db *DB) DeleteReference(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM "references" WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reference: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("reference not found: %s", id)
	}
	return nil
}
