package usecase

import (
	"context"

	"go-genie-backend/internal/domain"
	"go-genie-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type genieUsecase struct {
	repo     domain.GenieRepository
	validate *validator.Validate
}

func NewGenieUsecase(repo domain.GenieRepository, validate *validator.Validate) domain.GenieUsecase {
	return &genieUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *genieUsecase) UpsertProfile(ctx context.Context, profile *domain.GenieProfile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	// Force the UserID to the authenticated subject so a donor cannot write
	// someone else's profile.
	profile.UserID = ctxUserID

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	return u.repo.Upsert(ctx, profile)
}

func (u *genieUsecase) GetProfile(ctx context.Context, userID string) (*domain.GenieProfile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Genie profile not found")
	}
	return profile, nil
}
