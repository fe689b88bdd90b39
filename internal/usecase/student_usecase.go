package usecase

import (
	"context"

	"go-genie-backend/internal/domain"
	"go-genie-backend/pkg/apperror"
)

type studentUsecase struct {
	repo domain.StudentRepository
}

func NewStudentUsecase(repo domain.StudentRepository) domain.StudentUsecase {
	return &studentUsecase{repo: repo}
}

// Upsert coerces the loose payload and writes one row. Enum values are not
// checked here; invalid ones are rejected by the database constraints.
func (u *studentUsecase) Upsert(ctx context.Context, req *domain.StudentUpsertRequest) error {
	userID, ok := req.UserID.(string)
	if !ok || userID == "" {
		return apperror.BadRequest("user_id is required")
	}

	profile := &domain.StudentProfile{
		UserID:                   userID,
		Name:                     toOptionalString(req.Name),
		Surname:                  toOptionalString(req.Surname),
		Age:                      toOptionalInt(req.Age),
		Country:                  toOptionalString(req.Country),
		Languages:                toLanguages(req.Languages),
		CurrentStatus:            toOptionalString(req.CurrentStatus),
		CurrentFieldOfStudy:      toOptionalString(req.CurrentFieldOfStudy),
		JobRole:                  toOptionalString(req.JobRole),
		FinancialSupportPerYear:  toOptionalInt(req.FinancialSupportPerYear),
		FinancialSupportDuration: toOptionalInt(req.FinancialSupportDuration),
		FinancialSupportReturn:   toOptionalString(req.FinancialSupportReturn),
		Description:              toOptionalString(req.Description),
	}

	return u.repo.Upsert(ctx, profile)
}

func (u *studentUsecase) GetProfile(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	if userID == "" {
		return nil, apperror.BadRequest("user_id is required")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Student profile not found")
	}
	return profile, nil
}

func (u *studentUsecase) ListProfiles(ctx context.Context, limit int) ([]domain.StudentProfile, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return u.repo.List(ctx, limit)
}
