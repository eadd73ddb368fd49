package db

import (
	"context"
	"fmt"
	"log"
)

type migrationStep struct {
	Name string
	SQL  string
}

var migrationSteps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS profiles (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name               TEXT        NOT NULL,
  occupation         TEXT        NOT NULL DEFAULT '',
  title              TEXT        NOT NULL DEFAULT '',
  long_title         TEXT        NOT NULL DEFAULT '',
  department         TEXT        NOT NULL DEFAULT '',
  school             TEXT        NOT NULL DEFAULT '',
  institution        TEXT        NOT NULL DEFAULT '',
  bio                TEXT        NOT NULL DEFAULT '',
  email              TEXT        NOT NULL DEFAULT '',
  phone              TEXT        NOT NULL DEFAULT '',
  room_number        TEXT        NOT NULL DEFAULT '',
  building           TEXT        NOT NULL DEFAULT '',
  street             TEXT        NOT NULL DEFAULT '',
  city               TEXT        NOT NULL DEFAULT '',
  state              TEXT        NOT NULL DEFAULT '',
  zip_code           TEXT        NOT NULL DEFAULT '',
  country            TEXT        NOT NULL DEFAULT '',
  website            TEXT        NOT NULL DEFAULT '',
  twitter            TEXT        NOT NULL DEFAULT '',
  blue_sky           TEXT        NOT NULL DEFAULT '',
  youtube            TEXT        NOT NULL DEFAULT '',
  linkedin           TEXT        NOT NULL DEFAULT '',
  github             TEXT        NOT NULL DEFAULT '',
  google_scholar     TEXT        NOT NULL DEFAULT '',
  orcid              TEXT        NOT NULL DEFAULT '',
  under_construction BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_collaborators",
		SQL: `CREATE TABLE IF NOT EXISTS collaborators (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT        NOT NULL,
  email       TEXT,
  website     TEXT,
  institution TEXT,
  location    TEXT,
  is_me       BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_references",
		SQL: `CREATE TABLE IF NOT EXISTS "references" (
  id                  UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title               TEXT        NOT NULL,
  authors             TEXT        NOT NULL DEFAULT '',
  author_ids          JSONB,
  alphabetical_order  BOOLEAN     NOT NULL DEFAULT FALSE,
  shared_first_author BOOLEAN     NOT NULL DEFAULT FALSE,
  year                INT         NOT NULL,
  reference_type      TEXT        NOT NULL,
  journal             TEXT        NOT NULL DEFAULT '',
  volume              TEXT        NOT NULL DEFAULT '',
  issue               TEXT        NOT NULL DEFAULT '',
  pages               TEXT        NOT NULL DEFAULT '',
  doi                 TEXT        NOT NULL DEFAULT '',
  url                 TEXT        NOT NULL DEFAULT '',
  pdf_url             TEXT        NOT NULL DEFAULT '',
  code_url            TEXT        NOT NULL DEFAULT '',
  abstract            TEXT        NOT NULL DEFAULT '',
  keywords            TEXT        NOT NULL DEFAULT '',
  created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_references_type_year",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_references_type_year ON "references" (reference_type, year DESC);`,
	},
	{
		Name: "create_table_education",
		SQL: `CREATE TABLE IF NOT EXISTS education (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  degree_type     TEXT        NOT NULL,
  field           TEXT        NOT NULL,
  institution     TEXT        NOT NULL,
  graduation_year INT         NOT NULL,
  thesis          TEXT        NOT NULL DEFAULT '',
  advisor         TEXT        NOT NULL DEFAULT '',
  honors          TEXT        NOT NULL DEFAULT '',
  gpa             TEXT        NOT NULL DEFAULT '',
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_experience",
		SQL: `CREATE TABLE IF NOT EXISTS experience (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title       TEXT        NOT NULL,
  institution TEXT        NOT NULL,
  department  TEXT        NOT NULL DEFAULT '',
  location    TEXT        NOT NULL DEFAULT '',
  start_date  DATE        NOT NULL,
  end_date    DATE,
  current     BOOLEAN     NOT NULL DEFAULT FALSE,
  description TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_grants",
		SQL: `CREATE TABLE IF NOT EXISTS grants (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title        TEXT        NOT NULL,
  agency       TEXT        NOT NULL,
  role         TEXT        NOT NULL,
  amount       BIGINT,
  currency     TEXT        NOT NULL DEFAULT '',
  start_year   INT         NOT NULL,
  end_year     INT         NOT NULL DEFAULT 0,
  co_pis       TEXT        NOT NULL DEFAULT '',
  grant_number TEXT        NOT NULL DEFAULT '',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_talks",
		SQL: `CREATE TABLE IF NOT EXISTS talks (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title      TEXT        NOT NULL,
  abstract   TEXT        NOT NULL DEFAULT '',
  venue      TEXT        NOT NULL,
  location   TEXT        NOT NULL DEFAULT '',
  talk_type  TEXT        NOT NULL,
  invited    BOOLEAN     NOT NULL DEFAULT FALSE,
  date       DATE        NOT NULL,
  slides_url TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_courses",
		SQL: `CREATE TABLE IF NOT EXISTS courses (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  code        TEXT        NOT NULL,
  title       TEXT        NOT NULL,
  institution TEXT        NOT NULL,
  department  TEXT        NOT NULL DEFAULT '',
  semester    TEXT        NOT NULL,
  year        INT         NOT NULL,
  role        TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_services",
		SQL: `CREATE TABLE IF NOT EXISTS services (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title        TEXT        NOT NULL,
  role         TEXT        NOT NULL,
  organization TEXT        NOT NULL,
  service_type TEXT        NOT NULL,
  year         INT         NOT NULL,
  location     TEXT        NOT NULL DEFAULT '',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// Migrate applies all schema steps. Each step is idempotent, so re-running
// against an existing database is safe.
func (db *DB) Migrate(ctx context.Context) error {
	for _, step := range migrationSteps {
		if _, err := db.pool.Exec(ctx, step.SQL); err != nil {
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Printf("migration: applied %s", step.Name)
	}
	return nil
}
