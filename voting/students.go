// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/store"
)

func (s *Service) CreateStudent(ctx context.Context, req models.CreateStudentRequest) (models.Student, error) {
	matricule := strings.TrimSpace(req.Matricule)
	if matricule == "" {
		return models.Student{}, validationf("matricule is required")
	}

	student, err := s.store.CreateStudent(ctx, strings.TrimSpace(req.Name), matricule, req.GroupID, s.now())
	if err != nil {
		return models.Student{}, err
	}

	s.logger.Info("student created", "student_id", student.ID)
	return student, nil
}

// ImportStudents creates or renames students keyed by matricule. The batch
// runs in one transaction: any failing row rolls back the whole import.
func (s *Service) ImportStudents(ctx context.Context, p *models.Principal, rows []models.CreateStudentRequest) (models.ImportReport, error) {
	if err := requireAdmin(p); err != nil {
		return models.ImportReport{}, err
	}
	if len(rows) == 0 {
		return models.ImportReport{}, validationf("at least one student is required")
	}
	for i, row := range rows {
		if strings.TrimSpace(row.Matricule) == "" {
			return models.ImportReport{}, validationf("row %d: matricule is required", i)
		}
	}

	var report models.ImportReport
	now := s.now()
	err := s.store.WithTx(ctx, func(q *store.Queries) error {
		for i, row := range rows {
			_, created, err := q.UpsertStudent(ctx, strings.TrimSpace(row.Name), strings.TrimSpace(row.Matricule), row.GroupID, now)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			if created {
				report.Created++
			} else {
				report.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return models.ImportReport{}, err
	}

	report.TotalProcessed = len(rows)
	s.logger.Info("students imported", "created", report.Created, "updated", report.Updated, "admin_id", p.ID)
	return report, nil
}

// LoginStudent looks a student up by matricule.
func (s *Service) LoginStudent(ctx context.Context, matricule string) (models.Student, error) {
	matricule = strings.TrimSpace(matricule)
	if matricule == "" {
		return models.Student{}, validationf("matricule is required")
	}
	return s.store.GetStudentByMatricule(ctx, matricule)
}
