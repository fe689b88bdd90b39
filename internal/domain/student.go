package domain

import (
	"context"
	"time"
)

// StudentProfile is the single persisted Genius (student) record. The
// user_id is the idempotent upsert key: repeated submissions overwrite
// the row in full rather than duplicating it.
type StudentProfile struct {
	UserID                   string    `json:"user_id"`
	Name                     *string   `json:"name"`
	Surname                  *string   `json:"surname"`
	Age                      *int      `json:"age"`
	Country                  *string   `json:"country"`
	Languages                []string  `json:"languages"`
	CurrentStatus            *string   `json:"current_status"`
	CurrentFieldOfStudy      *string   `json:"current_field_of_study"`
	JobRole                  *string   `json:"job_role"`
	FinancialSupportPerYear  *int      `json:"financial_support_per_year"`
	FinancialSupportDuration *int      `json:"financial_support_duration"`
	FinancialSupportReturn   *string   `json:"financial_support_return"`
	Description              *string   `json:"description"`
	CreatedAt                time.Time `json:"created_at"`
}

// StudentUpsertRequest mirrors the loosely-typed JSON the frontend sends.
// Numeric fields may arrive as numbers or strings, languages as a scalar or
// an array; coercion happens in the usecase, never in the handler.
type StudentUpsertRequest struct {
	UserID                   any `json:"user_id"`
	Name                     any `json:"name"`
	Surname                  any `json:"surname"`
	Age                      any `json:"age"`
	Country                  any `json:"country"`
	Languages                any `json:"languages"`
	CurrentStatus            any `json:"current_status"`
	CurrentFieldOfStudy      any `json:"current_field_of_study"`
	JobRole                  any `json:"job_role"`
	FinancialSupportPerYear  any `json:"financial_support_per_year"`
	FinancialSupportDuration any `json:"financial_support_duration"`
	FinancialSupportReturn   any `json:"financial_support_return"`
	Description              any `json:"description"`
}

type StudentRepository interface {
	Upsert(ctx context.Context, profile *StudentProfile) error
	GetByUserID(ctx context.Context, userID string) (*StudentProfile, error)
	// ListByUserIDs is the single batched lookup behind the discover join.
	ListByUserIDs(ctx context.Context, userIDs []string) ([]StudentProfile, error)
	List(ctx context.Context, limit int) ([]StudentProfile, error)
}

type StudentUsecase interface {
	Upsert(ctx context.Context, req *StudentUpsertRequest) error
	GetProfile(ctx context.Context, userID string) (*StudentProfile, error)
	ListProfiles(ctx context.Context, limit int) ([]StudentProfile, error)
}
