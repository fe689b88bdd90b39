package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-genie-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type studentRepository struct {
	db *pgxpool.Pool
}

func NewStudentRepository(db *pgxpool.Pool) domain.StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `
	user_id, name, surname, age, country, languages, current_status,
	current_field_of_study, job_role, financial_support_per_year,
	financial_support_duration, financial_support_return, description, created_at`

func (r *studentRepository) Upsert(ctx context.Context, p *domain.StudentProfile) error {
	// Full overwrite on conflict: the Nth upsert for a user_id leaves exactly
	// the Nth payload in the row, never a merge.
	query := `
		INSERT INTO students (
			user_id, name, surname, age, country, languages, current_status,
			current_field_of_study, job_role, financial_support_per_year,
			financial_support_duration, financial_support_return, description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			surname = EXCLUDED.surname,
			age = EXCLUDED.age,
			country = EXCLUDED.country,
			languages = EXCLUDED.languages,
			current_status = EXCLUDED.current_status,
			current_field_of_study = EXCLUDED.current_field_of_study,
			job_role = EXCLUDED.job_role,
			financial_support_per_year = EXCLUDED.financial_support_per_year,
			financial_support_duration = EXCLUDED.financial_support_duration,
			financial_support_return = EXCLUDED.financial_support_return,
			description = EXCLUDED.description`

	_, err := r.db.Exec(ctx, query,
		p.UserID, p.Name, p.Surname, p.Age, p.Country, pq.Array(p.Languages),
		p.CurrentStatus, p.CurrentFieldOfStudy, p.JobRole,
		p.FinancialSupportPerYear, p.FinancialSupportDuration,
		p.FinancialSupportReturn, p.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert student %s: %w", p.UserID, err)
	}
	return nil
}

func (r *studentRepository) GetByUserID(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1`

	p, err := scanStudent(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *studentRepository) ListByUserIDs(ctx context.Context, userIDs []string) ([]domain.StudentProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students by ids: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

func (r *studentRepository) List(ctx context.Context, limit int) ([]domain.StudentProfile, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

func scanStudent(row pgx.Row) (*domain.StudentProfile, error) {
	var p domain.StudentProfile
	var languages []string

	err := row.Scan(
		&p.UserID, &p.Name, &p.Surname, &p.Age, &p.Country, pq.Array(&languages),
		&p.CurrentStatus, &p.CurrentFieldOfStudy, &p.JobRole,
		&p.FinancialSupportPerYear, &p.FinancialSupportDuration,
		&p.FinancialSupportReturn, &p.Description, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Languages = languages
	return &p, nil
}

func collectStudents(rows pgx.Rows) ([]domain.StudentProfile, error) {
	var students []domain.StudentProfile
	for rows.Next() {
		p, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *p)
	}
	return students, rows.Err()
}
