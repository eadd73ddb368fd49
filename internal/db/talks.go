package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const talkColumns = `id, title, abstract, venue, location, talk_type, invited,
	date, slides_url, created_at, updated_at`

func scanTalk(row pgx.Row) (*Talk, error) {
	var t Talk
	err := row.Scan(&t.ID, &t.Title, &t.Abstract, &t.Venue, &t.Location,
		&t.Type, &t.Invited, &t.Date, &t.SlidesURL, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTalk inserts a new talk record.
func (db *DB) CreateTalk(ctx context.Context, t *Talk) (*Talk, error) {
	if !t.Type.Valid() {
		return nil, fmt.Errorf("invalid talk type: %q", t.Type)
	}
	row := db.pool.QueryRow(ctx,
		`INSERT INTO talks (title, abstract, venue, location, talk_type,
		   invited, date, slides_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+talkColumns,
		t.Title, t.Abstract, t.Venue, t.Location, t.Type, t.Invited,
		t.Date, t.SlidesURL)
	saved, err := scanTalk(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create talk: %w", err)
	}
	return saved, nil
}

// GetTalk retrieves a talk by ID, or nil when absent.
func (db *DB) GetTalk(ctx context.Context, id uuid.UUID) (*Talk, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+talkColumns+` FROM talks WHERE id = $1`, id)
	t, err := scanTalk(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get talk: %w", err)
	}
	return t, nil
}

// ListTalks retrieves talks by descending date.
func (db *DB) ListTalks(ctx context.Context) ([]Talk, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+talkColumns+` FROM talks ORDER BY date DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list talks: %w", err)
	}
	defer rows.Close()

	var out []Talk
	for rows.Next() {
		t, err := scanTalk(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan talk: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// UpdateTalk updates an existing talk record.
func (db *DB) UpdateTalk(ctx context.Context, t *Talk) (*Talk, error) {
	if !t.Type.Valid() {
		return nil, fmt.Errorf("invalid talk type: %q", t.Type)
	}
	row := db.pool.QueryRow(ctx,
		`UPDATE talks SET title = $1, abstract = $2, venue = $3, location = $4,
		   talk_type = $5, invited = $6, date = $7, slides_url = $8,
		   updated_at = NOW()
		 WHERE id = $9
		 RETURNING `+talkColumns,
		t.Title, t.Abstract, t.Venue, t.Location, t.Type, t.Invited,
		t.Date, t.SlidesURL, t.ID)
	saved, err := scanTalk(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update talk: %w", err)
	}
	return saved, nil
}

// DeleteTalk removes a talk by ID.
func (db *DB) DeleteTalk(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM talks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete talk: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("talk not found: %s", id)
	}
	return nil
}
