package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const courseColumns = `id, code, title, institution, department, semester, year,
	role, description, created_at, updated_at`

func scanCourse(row pgx.Row) (*Course, error) {
	var c Course
	err := row.Scan(&c.ID, &c.Code, &c.Title, &c.Institution, &c.Department,
		&c.Semester, &c.Year, &c.Role, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCourse inserts a new course record.
func (db *DB) CreateCourse(ctx context.Context, c *Course) (*Course, error) {
	if !c.Semester.Valid() {
		return nil, fmt.Errorf("invalid semester: %q", c.Semester)
	}
	if !c.Role.Valid() {
		return nil, fmt.Errorf("invalid course role: %q", c.Role)
	}
	row := db.pool.QueryRow(ctx,
		`INSERT INTO courses (code, title, institution, department, semester,
		   year, role, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+courseColumns,
		c.Code, c.Title, c.Institution, c.Department, c.Semester, c.Year,
		c.Role, c.Description)
	saved, err := scanCourse(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return saved, nil
}

// GetCourse retrieves a course by ID, or nil when absent.
func (db *DB) GetCourse(ctx context.Context, id uuid.UUID) (*Course, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
	c, err := scanCourse(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return c, nil
}

// ListCourses retrieves courses by descending year, later semesters first
// within the same year.
func (db *DB) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM courses
		 ORDER BY year DESC,
		   CASE semester
		     WHEN 'winter' THEN 4
		     WHEN 'fall' THEN 3
		     WHEN 'summer' THEN 2
		     ELSE 1
		   END DESC,
		   created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var out []Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// UpdateCourse updates an existing course record.
func (db *DB) UpdateCourse(ctx context.Context, c *Course) (*Course, error) {
	if !c.Semester.Valid() {
		return nil, fmt.Errorf("invalid semester: %q", c.Semester)
	}
	if !c.Role.Valid() {
		return nil, fmt.Errorf("invalid course role: %q", c.Role)
	}
	row := db.pool.QueryRow(ctx,
		`UPDATE courses SET code = $1, title = $2, institution = $3,
		   department = $4, semester = $5, year = $6, role = $7,
		   description = $8, updated_at = NOW()
		 WHERE id = $9
		 RETURNING `+courseColumns,
		c.Code, c.Title, c.Institution, c.Department, c.Semester, c.Year,
		c.Role, c.Description, c.ID)
	saved, err := scanCourse(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return saved, nil
}

// DeleteCourse removes a course by ID.
func (db *DB) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("course not found: %s", id)
	}
	return nil
}
