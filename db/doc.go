// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connections

Open accepts "postgres" (lib/pq) or "sqlite" (modernc.org/sqlite):

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite connections always run with foreign keys enabled, a busy timeout,
and a single open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - admin: Administrator accounts
  - student_group: Groups of students owned by an admin
  - student: Students, identified by matricule
  - vote: Time-boxed vote events with status
  - category: Award categories per vote
  - candidacy: Students eligible in a category
  - ballot: One ballot per voter per category per vote

# Relationships

	admin 1──* student_group 1──* vote 1──* category
	student_group 1──* student      (ON DELETE SET NULL)
	category 1──* candidacy *──1 student
	category 1──* ballot    *──1 student (voter, candidate)

All other foreign keys use ON DELETE CASCADE.

# Uniqueness

  - admin.email, student_group.name, student.matricule
  - candidacy (vote_id, category_id, student_id)
  - ballot (vote_id, category_id, voter_student_id)
*/
package db
