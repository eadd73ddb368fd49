package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const collaboratorColumns = `id, name, email, website, institution, location, is_me,
	created_at, updated_at`

func scanCollaborator(row pgx.Row) (*Collaborator, error) {
	var c Collaborator
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Website, &c.Institution,
		&c.Location, &c.IsMe, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCollaborator inserts a new collaborator record.
func (db *DB) CreateCollaborator(ctx context.Context, c *Collaborator) (*Collaborator, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO collaborators (name, email, website, institution, location, is_me)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+collaboratorColumns,
		c.Name, c.Email, c.Website, c.Institution, c.Location, c.IsMe)
	saved, err := scanCollaborator(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create collaborator: %w", err)
	}
	return saved, nil
}

// GetCollaborator retrieves a collaborator by ID, or nil when absent.
func (db *DB) GetCollaborator(ctx context.Context, id uuid.UUID) (*Collaborator, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+collaboratorColumns+` FROM collaborators WHERE id = $1`, id)
	c, err := scanCollaborator(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collaborator: %w", err)
	}
	return c, nil
}

// ListCollaborators retrieves all collaborators ordered by name.
func (db *DB) ListCollaborators(ctx context.Context) ([]Collaborator, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+collaboratorColumns+` FROM collaborators ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	defer rows.Close()

	var out []Collaborator
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collaborator: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// UpdateCollaborator updates an existing collaborator.
func (db *DB) UpdateCollaborator(ctx context.Context, c *Collaborator) (*Collaborator, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE collaborators SET name = $1, email = $2, website = $3,
		   institution = $4, location = $5, is_me = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING `+collaboratorColumns,
		c.Name, c.Email, c.Website, c.Institution, c.Location, c.IsMe, c.ID)
	saved, err := scanCollaborator(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update collaborator: %w", err)
	}
	return saved, nil
}

// DeleteCollaborator removes a collaborator by ID.
func (db *DB) DeleteCollaborator(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM collaborators WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collaborator: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("collaborator not found: %s", id)
	}
	return nil
}
