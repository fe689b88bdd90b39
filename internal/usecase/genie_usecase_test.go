package usecase_test

import (
	"context"
	"testing"

	"go-genie-backend/internal/domain"
	"go-genie-backend/internal/usecase"
	"go-genie-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGenieRepo struct {
	mock.Mock
}

func (m *MockGenieRepo) Upsert(ctx context.Context, profile *domain.GenieProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockGenieRepo) GetByUserID(ctx context.Context, userID string) (*domain.GenieProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenieProfile), args.Error(1)
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func TestGenieUpsertForcesAuthenticatedSubject(t *testing.T) {
	repo := new(MockGenieRepo)
	uc := usecase.NewGenieUsecase(repo, validator.New())

	var captured *domain.GenieProfile
	repo.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.GenieProfile)
		}).
		Return(nil)

	// The payload claims another user's id; the token subject wins.
	err := uc.UpsertProfile(authedCtx("donor-1"), &domain.GenieProfile{UserID: "someone-else"})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "donor-1", captured.UserID)
}

func TestGenieUpsertRejectsUnauthenticated(t *testing.T) {
	repo := new(MockGenieRepo)
	uc := usecase.NewGenieUsecase(repo, validator.New())

	err := uc.UpsertProfile(context.Background(), &domain.GenieProfile{})
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Code)

	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestGenieGetProfileOwnership(t *testing.T) {
	repo := new(MockGenieRepo)
	uc := usecase.NewGenieUsecase(repo, validator.New())

	t.Run("own profile", func(t *testing.T) {
		repo.On("GetByUserID", mock.Anything, "donor-1").
			Return(&domain.GenieProfile{UserID: "donor-1"}, nil).Once()

		profile, err := uc.GetProfile(authedCtx("donor-1"), "donor-1")
		require.NoError(t, err)
		assert.Equal(t, "donor-1", profile.UserID)
	})

	t.Run("someone else's profile", func(t *testing.T) {
		_, err := uc.GetProfile(authedCtx("donor-1"), "donor-2")
		require.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("missing profile", func(t *testing.T) {
		repo.On("GetByUserID", mock.Anything, "donor-1").Return(nil, nil).Once()

		_, err := uc.GetProfile(authedCtx("donor-1"), "donor-1")
		require.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})
}
