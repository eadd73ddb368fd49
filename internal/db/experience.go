package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const experienceColumns = `id, title, institution, department, location,
	start_date, end_date, current, description, created_at, updated_at`

func scanExperience(row pgx.Row) (*Experience, error) {
	var e Experience
	err := row.Scan(&e.ID, &e.Title, &e.Institution, &e.Department, &e.Location,
		&e.StartDate, &e.EndDate, &e.Current, &e.Description,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateExperience inserts a new position record.
func (db *DB) CreateExperience(ctx context.Context, e *Experience) (*Experience, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO experience (title, institution, department, location,
		   start_date, end_date, current, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+experienceColumns,
		e.Title, e.Institution, e.Department, e.Location, e.StartDate,
		e.EndDate, e.Current, e.Description)
	saved, err := scanExperience(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return saved, nil
}

// GetExperience retrieves a position record by ID, or nil when absent.
func (db *DB) GetExperience(ctx context.Context, id uuid.UUID) (*Experience, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM experience WHERE id = $1`, id)
	e, err := scanExperience(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return e, nil
}

// ListExperience retrieves position records by descending start date.
func (db *DB) ListExperience(ctx context.Context) ([]Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+experienceColumns+` FROM experience
		 ORDER BY start_date DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	var out []Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// UpdateExperience updates an existing position record.
func (db *DB) UpdateExperience(ctx context.Context, e *Experience) (*Experience, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE experience SET title = $1, institution = $2, department = $3,
		   location = $4, start_date = $5, end_date = $6, current = $7,
		   description = $8, updated_at = NOW()
		 WHERE id = $9
		 RETURNING `+experienceColumns,
		e.Title, e.Institution, e.Department, e.Location, e.StartDate,
		e.EndDate, e.Current, e.Description, e.ID)
	saved, err := scanExperience(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return saved, nil
}

// DeleteExperience removes a position record by ID.
func (db *DB) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM experience WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience not found: %s", id)
	}
	return nil
}
