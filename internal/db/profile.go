package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ErrNoProfile indicates the record store holds no profile. Document
// assembly aborts before any file I/O when this is returned.
var ErrNoProfile = errors.New("no profile record exists")

const profileColumns = `id, name, occupation, title, long_title, department, school,
	institution, bio, email, phone, room_number, building, street, city, state,
	zip_code, country, website, twitter, blue_sky, youtube, linkedin, github,
	google_scholar, orcid, under_construction, created_at, updated_at`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.Name, &p.Occupation, &p.Title, &p.LongTitle,
		&p.Department, &p.School, &p.Institution, &p.Bio, &p.Email, &p.Phone,
		&p.RoomNumber, &p.Building, &p.Street, &p.City, &p.State, &p.ZipCode,
		&p.Country, &p.Website, &p.Twitter, &p.BlueSky, &p.YouTube, &p.LinkedIn,
		&p.GitHub, &p.GoogleScholar, &p.ORCID, &p.UnderConstruction,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfile returns the site profile. The store is singleton-per-site; the
// oldest record wins if more than one exists.
func (db *DB) GetProfile(ctx context.Context) (*Profile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at ASC LIMIT 1`)
	p, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// SaveProfile creates the profile if absent and updates it otherwise.
func (db *DB) SaveProfile(ctx context.Context, p *Profile) (*Profile, error) {
	existing, err := db.GetProfile(ctx)
	if err != nil && err != ErrNoProfile {
		return nil, err
	}

	if existing == nil {
		row := db.pool.QueryRow(ctx,
			`INSERT INTO profiles (name, occupation, title, long_title, department,
			   school, institution, bio, email, phone, room_number, building, street,
			   city, state, zip_code, country, website, twitter, blue_sky, youtube,
			   linkedin, github, google_scholar, orcid, under_construction)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,
			   $19,$20,$21,$22,$23,$24,$25,$26)
			 RETURNING `+profileColumns,
			p.Name, p.Occupation, p.Title, p.LongTitle, p.Department, p.School,
			p.Institution, p.Bio, p.Email, p.Phone, p.RoomNumber, p.Building,
			p.Street, p.City, p.State, p.ZipCode, p.Country, p.Website, p.Twitter,
			p.BlueSky, p.YouTube, p.LinkedIn, p.GitHub, p.GoogleScholar, p.ORCID,
			p.UnderConstruction)
		saved, err := scanProfile(row)
		if err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		return saved, nil
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE profiles SET name = $1, occupation = $2, title = $3, long_title = $4,
		   department = $5, school = $6, institution = $7, bio = $8, email = $9,
		   phone = $10, room_number = $11, building = $12, street = $13, city = $14,
		   state = $15, zip_code = $16, country = $17, website = $18, twitter = $19,
		   blue_sky = $20, youtube = $21, linkedin = $22, github = $23,
		   google_scholar = $24, orcid = $25, under_construction = $26,
		   updated_at = NOW()
		 WHERE id = $27
		 RETURNING `+profileColumns,
		p.Name, p.Occupation, p.Title, p.LongTitle, p.Department, p.School,
		p.Institution, p.Bio, p.Email, p.Phone, p.RoomNumber, p.Building,
		p.Street, p.City, p.State, p.ZipCode, p.Country, p.Website, p.Twitter,
		p.BlueSky, p.YouTube, p.LinkedIn, p.GitHub, p.GoogleScholar, p.ORCID,
		p.UnderConstruction, existing.ID)
	saved, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return saved, nil
}
