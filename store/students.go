// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/danielhkuo/campus-awards/models"
)

const studentColumns = `id, name, matricule, group_id, created_at`

func scanStudent(row scanner) (models.Student, error) {
	var s models.Student
	err := row.Scan(&s.ID, &s.Name, &s.Matricule, &s.GroupID, &s.CreatedAt)
	return s, err
}

func (q *Queries) CreateStudent(ctx context.Context, name, matricule string, groupID *int64, now time.Time) (models.Student, error) {
	s := models.Student{Name: name, Matricule: matricule, GroupID: groupID, CreatedAt: DBTime(now)}
	err := q.q.QueryRowContext(ctx, `
		INSERT INTO student (name, matricule, group_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, s.Name, s.Matricule, s.GroupID, s.CreatedAt).Scan(&s.ID)
	if err != nil {
		return models.Student{}, classify(err, "student")
	}
	return s, nil
}

// UpsertStudent inserts a student or, when the matricule already exists,
// updates its name. created reports which happened.
func (q *Queries) UpsertStudent(ctx context.Context, name, matricule string, groupID *int64, now time.Time) (s models.Student, created bool, err error) {
	var id int64
	err = q.q.QueryRowContext(ctx, `
		INSERT INTO student (name, matricule, group_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (matricule) DO NOTHING
		RETURNING id
	`, name, matricule, groupID, DBTime(now)).Scan(&id)
	switch {
	case err == nil:
		created = true
	case isNoRows(err):
		err = q.q.QueryRowContext(ctx, `
			UPDATE student SET name = $1 WHERE matricule = $2
			RETURNING id
		`, name, matricule).Scan(&id)
		if err != nil {
			return models.Student{}, false, classify(err, "student")
		}
	default:
		return models.Student{}, false, classify(err, "student")
	}

	s, err = q.GetStudent(ctx, id)
	return s, created, err
}

func (q *Queries) GetStudent(ctx context.Context, id int64) (models.Student, error) {
	s, err := scanStudent(q.q.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM student WHERE id = $1`, id))
	if err != nil {
		return models.Student{}, classify(err, "student")
	}
	return s, nil
}

func (q *Queries) GetStudentByMatricule(ctx context.Context, matricule string) (models.Student, error) {
	s, err := scanStudent(q.q.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM student WHERE matricule = $1`, matricule))
	if err != nil {
		return models.Student{}, classify(err, "student")
	}
	return s, nil
}

func (q *Queries) ListStudentsByGroup(ctx context.Context, groupID int64) ([]models.Student, error) {
	rows, err := q.q.QueryContext(ctx,
		`SELECT `+studentColumns+` FROM student WHERE group_id = $1 ORDER BY id`, groupID)
	if err != nil {
		return nil, classify(err, "students")
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, classify(err, "student")
		}
		students = append(students, s)
	}
	return students, classify(rows.Err(), "students")
}
