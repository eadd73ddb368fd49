package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const serviceColumns = `id, title, role, organization, service_type, year,
	location, created_at, updated_at`

func scanService(row pgx.Row) (*Service, error) {
	var s Service
	err := row.Scan(&s.ID, &s.Title, &s.Role, &s.Organization, &s.Type,
		&s.Year, &s.Location, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateService inserts a new service record.
func (db *DB) CreateService(ctx context.Context, s *Service) (*Service, error) {
	if !s.Role.Valid() {
		return nil, fmt.Errorf("invalid service role: %q", s.Role)
	}
	if !s.Type.Valid() {
		return nil, fmt.Errorf("invalid service type: %q", s.Type)
	}
	row := db.pool.QueryRow(ctx,
		`INSERT INTO services (title, role, organization, service_type, year, location)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+serviceColumns,
		s.Title, s.Role, s.Organization, s.Type, s.Year, s.Location)
	saved, err := scanService(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return saved, nil
}

// GetService retrieves a service record by ID, or nil when absent.
func (db *DB) GetService(ctx context.Context, id uuid.UUID) (*Service, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	s, err := scanService(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return s, nil
}

// ListServices retrieves service records by descending year.
func (db *DB) ListServices(ctx context.Context) ([]Service, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY year DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var out []Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// UpdateService updates an existing service record.
func (db *DB) UpdateService(ctx context.Context, s *Service) (*Service, error) {
	if !s.Role.Valid() {
		return nil, fmt.Errorf("invalid service role: %q", s.Role)
	}
	if !s.Type.Valid() {
		return nil, fmt.Errorf("invalid service type: %q", s.Type)
	}
	row := db.pool.QueryRow(ctx,
		`UPDATE services SET title = $1, role = $2, organization = $3,
		   service_type = $4, year = $5, location = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING `+serviceColumns,
		s.Title, s.Role, s.Organization, s.Type, s.Year, s.Location, s.ID)
	saved, err := scanService(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return saved, nil
}

// DeleteService removes a service record by ID.
func (db *DB) DeleteService(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("service not found: %s", id)
	}
	return nil
}
