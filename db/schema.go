// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open opens a connection for the given database type and verifies it.
// SQLite connections get foreign keys and a busy timeout through the DSN
// and are limited to one open connection.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypePostgres:
	case TypeSQLite:
		url = withSQLitePragmas(url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

func withSQLitePragmas(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	_, err := db.Exec(SchemaFor(dbType))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SchemaFor renders the schema for a database type.
func SchemaFor(dbType string) string {
	pk, ts := "BIGSERIAL PRIMARY KEY", "TIMESTAMPTZ"
	if dbType == TypeSQLite {
		pk, ts = "INTEGER PRIMARY KEY AUTOINCREMENT", "DATETIME"
	}
	return strings.NewReplacer("{{pk}}", pk, "{{ts}}", ts).Replace(schema)
}

const schema = `
-- Admins
CREATE TABLE IF NOT EXISTS admin (
    id {{pk}},
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    is_verified BOOLEAN NOT NULL DEFAULT FALSE,
    created_at {{ts}} NOT NULL
);

-- Groups
CREATE TABLE IF NOT EXISTS student_group (
    id {{pk}},
    name TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT '',
    admin_id BIGINT NOT NULL REFERENCES admin(id) ON DELETE CASCADE,
    created_at {{ts}} NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_student_group_admin_id ON student_group(admin_id);

-- Students
CREATE TABLE IF NOT EXISTS student (
    id {{pk}},
    name TEXT NOT NULL DEFAULT '',
    matricule TEXT NOT NULL UNIQUE,
    group_id BIGINT REFERENCES student_group(id) ON DELETE SET NULL,
    created_at {{ts}} NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_student_group_id ON student(group_id);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id {{pk}},
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    start_date {{ts}} NOT NULL,
    end_date {{ts}} NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'active', 'completed', 'cancelled')),
    group_id BIGINT NOT NULL REFERENCES student_group(id) ON DELETE CASCADE,
    admin_id BIGINT NOT NULL REFERENCES admin(id) ON DELETE CASCADE,
    created_at {{ts}} NOT NULL,
    CHECK (start_date <= end_date)
);

CREATE INDEX IF NOT EXISTS idx_vote_status ON vote(status);
CREATE INDEX IF NOT EXISTS idx_vote_group_id ON vote(group_id);

-- Categories
CREATE TABLE IF NOT EXISTS category (
    id {{pk}},
    vote_id BIGINT NOT NULL REFERENCES vote(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_category_vote_id ON category(vote_id);

-- Candidacies
CREATE TABLE IF NOT EXISTS candidacy (
    id {{pk}},
    vote_id BIGINT NOT NULL REFERENCES vote(id) ON DELETE CASCADE,
    category_id BIGINT NOT NULL REFERENCES category(id) ON DELETE CASCADE,
    student_id BIGINT NOT NULL REFERENCES student(id) ON DELETE CASCADE,
    created_at {{ts}} NOT NULL,
    UNIQUE (vote_id, category_id, student_id)
);

CREATE INDEX IF NOT EXISTS idx_candidacy_category_id ON candidacy(category_id);

-- Ballots
CREATE TABLE IF NOT EXISTS ballot (
    id {{pk}},
    vote_id BIGINT NOT NULL REFERENCES vote(id) ON DELETE CASCADE,
    category_id BIGINT NOT NULL REFERENCES category(id) ON DELETE CASCADE,
    voter_student_id BIGINT NOT NULL REFERENCES student(id) ON DELETE CASCADE,
    candidate_student_id BIGINT NOT NULL REFERENCES student(id) ON DELETE CASCADE,
    cast_at {{ts}} NOT NULL,
    UNIQUE (vote_id, category_id, voter_student_id)
);

CREATE INDEX IF NOT EXISTS idx_ballot_vote_id ON ballot(vote_id);
CREATE INDEX IF NOT EXISTS idx_ballot_voter ON ballot(vote_id, voter_student_id);
`
