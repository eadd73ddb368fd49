package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const grantColumns = `id, title, agency, role, amount, currency, start_year,
	end_year, co_pis, grant_number, created_at, updated_at`

func scanGrant(row pgx.Row) (*Grant, error) {
	var g Grant
	err := row.Scan(&g.ID, &g.Title, &g.Agency, &g.Role, &g.Amount, &g.Currency,
		&g.StartYear, &g.EndYear, &g.CoPIs, &g.Number, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGrant inserts a new grant record.
func (db *DB) CreateGrant(ctx context.Context, g *Grant) (*Grant, error) {
	if !g.Role.Valid() {
		return nil, fmt.Errorf("invalid grant role: %q", g.Role)
	}
	row := db.pool.QueryRow(ctx,
		`INSERT INTO grants (title, agency, role, amount, currency, start_year,
		   end_year, co_pis, grant_number)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+grantColumns,
		g.Title, g.Agency, g.Role, g.Amount, g.Currency, g.StartYear,
		g.EndYear, g.CoPIs, g.Number)
	saved, err := scanGrant(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create grant: %w", err)
	}
	return saved, nil
}

// GetGrant retrieves a grant by ID, or nil when absent.
func (db *DB) GetGrant(ctx context.Context, id uuid.UUID) (*Grant, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+grantColumns+` FROM grants WHERE id = $1`, id)
	g, err := scanGrant(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}
	return g, nil
}

// ListGrants retrieves grants by descending start year.
func (db *DB) ListGrants(ctx context.Context) ([]Grant, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+grantColumns+` FROM grants
		 ORDER BY start_year DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}
	defer rows.Close()

	var out []Grant
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", err)
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

// UpdateGrant updates an existing grant record.
func (db *DB) UpdateGrant(ctx context.Context, g *Grant) (*Grant, error) {
	if !g.Role.Valid() {
		return nil, fmt.Errorf("invalid grant role: %q", g.Role)
	}
	row := db.pool.QueryRow(ctx,
		`UPDATE grants SET title = $1, agency = $2, role = $3, amount = $4,
		   currency = $5, start_year = $6, end_year = $7, co_pis = $8,
		   grant_number = $9, updated_at = NOW()
		 WHERE id = $10
		 RETURNING `+grantColumns,
		g.Title, g.Agency, g.Role, g.Amount, g.Currency, g.StartYear,
		g.EndYear, g.CoPIs, g.Number, g.ID)
	saved, err := scanGrant(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update grant: %w", err)
	}
	return saved, nil
}

// DeleteGrant removes a grant by ID.
func (db *DB) DeleteGrant(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM grants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete grant: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("grant not found: %s", id)
	}
	return nil
}
