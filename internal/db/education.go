package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const educationColumns = `id, degree_type, field, institution, graduation_year,
	thesis, advisor, honors, gpa, created_at, updated_at`

func scanEducation(row pgx.Row) (*Education, error) {
	var e Education
	err := row.Scan(&e.ID, &e.DegreeType, &e.Field, &e.Institution,
		&e.GraduationYear, &e.Thesis, &e.Advisor, &e.Honors, &e.GPA,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEducation inserts a new education record.
func (db *DB) CreateEducation(ctx context.Context, e *Education) (*Education, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO education (degree_type, field, institution, graduation_year,
		   thesis, advisor, honors, gpa)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+educationColumns,
		e.DegreeType, e.Field, e.Institution, e.GraduationYear, e.Thesis,
		e.Advisor, e.Honors, e.GPA)
	saved, err := scanEducation(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create education: %w", err)
	}
	return saved, nil
}

// GetEducation retrieves an education record by ID, or nil when absent.
func (db *DB) GetEducation(ctx context.Context, id uuid.UUID) (*Education, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+educationColumns+` FROM education WHERE id = $1`, id)
	e, err := scanEducation(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get education: %w", err)
	}
	return e, nil
}

// ListEducation retrieves education records by descending graduation year.
func (db *DB) ListEducation(ctx context.Context) ([]Education, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+educationColumns+` FROM education
		 ORDER BY graduation_year DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	var out []Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// UpdateEducation updates an existing education record.
func (db *DB) UpdateEducation(ctx context.Context, e *Education) (*Education, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE education SET degree_type = $1, field = $2, institution = $3,
		   graduation_year = $4, thesis = $5, advisor = $6, honors = $7,
		   gpa = $8, updated_at = NOW()
		 WHERE id = $9
		 RETURNING `+educationColumns,
		e.DegreeType, e.Field, e.Institution, e.GraduationYear, e.Thesis,
		e.Advisor, e.Honors, e.GPA, e.ID)
	saved, err := scanEducation(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update education: %w", err)
	}
	return saved, nil
}

// DeleteEducation removes an education record by ID.
func (db *DB) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("education not found: %s", id)
	}
	return nil
}
