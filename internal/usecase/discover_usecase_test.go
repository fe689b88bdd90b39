package usecase_test

import (
	"context"
	"testing"

	"go-genie-backend/internal/domain"
	"go-genie-backend/internal/repository/prefstore"
	"go-genie-backend/internal/usecase"
	"go-genie-backend/pkg/apperror"
	"go-genie-backend/pkg/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories and Clients

type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Upsert(ctx context.Context, profile *domain.StudentProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockStudentRepo) GetByUserID(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentProfile), args.Error(1)
}

func (m *MockStudentRepo) ListByUserIDs(ctx context.Context, userIDs []string) ([]domain.StudentProfile, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudentProfile), args.Error(1)
}

func (m *MockStudentRepo) List(ctx context.Context, limit int) ([]domain.StudentProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StudentProfile), args.Error(1)
}

type MockMatchClient struct {
	mock.Mock
}

func (m *MockMatchClient) MatchStudents(ctx context.Context, query *domain.MatchQuery) (*domain.MatchResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchResponse), args.Error(1)
}

func (m *MockMatchClient) RegisterStudent(ctx context.Context, profile *domain.StudentProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func TestDiscoverRequiresBelieverText(t *testing.T) {
	repo := new(MockStudentRepo)
	matcher := new(MockMatchClient)
	uc := usecase.NewDiscoverUsecase(repo, matcher, nil)

	cases := map[string]*domain.DiscoverRequest{
		"missing":    {},
		"empty":      {BelieverText: ""},
		"not a text": {BelieverText: 42.0},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Discover(context.Background(), req)
			require.Error(t, err)

			appErr, ok := err.(*apperror.AppError)
			require.True(t, ok)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, "believer_text is required", appErr.Message)
		})
	}

	// The backend must never have been called for a rejected request.
	matcher.AssertNotCalled(t, "MatchStudents", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ListByUserIDs", mock.Anything, mock.Anything)
}

func TestDiscoverNormalizesFilters(t *testing.T) {
	repo := new(MockStudentRepo)
	matcher := new(MockMatchClient)
	uc := usecase.NewDiscoverUsecase(repo, matcher, nil)

	var captured *domain.MatchQuery
	matcher.On("MatchStudents", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.MatchQuery)
		}).
		Return(&domain.MatchResponse{Queries: map[string]any{}, CombinedResults: []domain.MatchResult{}}, nil)

	req := &domain.DiscoverRequest{
		BelieverText:  "ambitious engineers from southern europe",
		Country:       "Italy",                          // scalar wraps into a list
		Languages:     []any{"Italian", "English"},      // arrays pass through
		AgeMin:        "21",                             // string numbers do NOT pass
		AgeMax:        30.0,                             // native numbers do
		CurrentStatus: nil,                              // absent stays null
	}

	_, err := uc.Discover(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, "ambitious engineers from southern europe", captured.BelieverText)
	assert.Equal(t, []string{"Italy"}, captured.Country)
	assert.Equal(t, []string{"Italian", "English"}, captured.Languages)
	assert.Nil(t, captured.AgeMin)
	require.NotNil(t, captured.AgeMax)
	assert.Equal(t, 30.0, *captured.AgeMax)
	assert.Nil(t, captured.CurrentStatus)
	assert.Nil(t, captured.FieldOfStudy)
}

func TestDiscoverForwardsUpstreamFailure(t *testing.T) {
	repo := new(MockStudentRepo)
	matcher := new(MockMatchClient)
	uc := usecase.NewDiscoverUsecase(repo, matcher, nil)

	matcher.On("MatchStudents", mock.Anything, mock.Anything).
		Return(nil, &matching.UpstreamError{StatusCode: 500, Body: "no embeddings"})

	_, err := uc.Discover(context.Background(), &domain.DiscoverRequest{BelieverText: "anyone"})
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 502, appErr.Code)
	assert.Contains(t, appErr.Message, "no embeddings")

	repo.AssertNotCalled(t, "ListByUserIDs", mock.Anything, mock.Anything)
}

func TestDiscoverJoinsProfiles(t *testing.T) {
	repo := new(MockStudentRepo)
	matcher := new(MockMatchClient)
	uc := usecase.NewDiscoverUsecase(repo, matcher, nil)

	score := 0.91
	matcher.On("MatchStudents", mock.Anything, mock.Anything).
		Return(&domain.MatchResponse{
			Queries: map[string]any{"field": "physics"},
			CombinedResults: []domain.MatchResult{
				{StudentID: "s1", User: "u1", OverallMatch: &score},
				{StudentID: "s2"}, // no user field: falls back to student_id
			},
		}, nil)

	name := "Ada"
	repo.On("ListByUserIDs", mock.Anything, []string{"u1", "s2"}).
		Return([]domain.StudentProfile{{UserID: "u1", Name: &name}}, nil)

	resp, err := uc.Discover(context.Background(), &domain.DiscoverRequest{BelieverText: "physicists"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	assert.Equal(t, map[string]any{"field": "physics"}, resp.Queries)

	assert.Equal(t, "u1", resp.Results[0].UserID)
	require.NotNil(t, resp.Results[0].Profile)
	assert.Equal(t, "u1", resp.Results[0].Profile.UserID)
	require.NotNil(t, resp.Results[0].OverallMatch)
	assert.Equal(t, 0.91, *resp.Results[0].OverallMatch)

	// A match referencing an unknown identifier still comes back, profile-less.
	assert.Equal(t, "s2", resp.Results[1].UserID)
	assert.Nil(t, resp.Results[1].Profile)

	repo.AssertNumberOfCalls(t, "ListByUserIDs", 1)
}

func TestDiscoverSkipsLookupWithoutMatches(t *testing.T) {
	repo := new(MockStudentRepo)
	matcher := new(MockMatchClient)
	uc := usecase.NewDiscoverUsecase(repo, matcher, nil)

	matcher.On("MatchStudents", mock.Anything, mock.Anything).
		Return(&domain.MatchResponse{Queries: map[string]any{}, CombinedResults: []domain.MatchResult{}}, nil)

	resp, err := uc.Discover(context.Background(), &domain.DiscoverRequest{BelieverText: "anyone"})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)

	repo.AssertNotCalled(t, "ListByUserIDs", mock.Anything, mock.Anything)
}

func TestDiscoverDeduplicatesSubjectIDs(t *testing.T) {
	repo := new(MockStudentRepo)
	matcher := new(MockMatchClient)
	uc := usecase.NewDiscoverUsecase(repo, matcher, nil)

	matcher.On("MatchStudents", mock.Anything, mock.Anything).
		Return(&domain.MatchResponse{
			Queries: map[string]any{},
			CombinedResults: []domain.MatchResult{
				{StudentID: "s1", User: "u1"},
				{StudentID: "s9", User: "u1"},
			},
		}, nil)

	repo.On("ListByUserIDs", mock.Anything, []string{"u1"}).
		Return([]domain.StudentProfile{{UserID: "u1"}}, nil)

	resp, err := uc.Discover(context.Background(), &domain.DiscoverRequest{BelieverText: "anyone"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	require.NotNil(t, resp.Results[0].Profile)
	require.NotNil(t, resp.Results[1].Profile)
	assert.Same(t, resp.Results[0].Profile, resp.Results[1].Profile)
}

func TestDiscoverCachesLastSearchForAuthenticatedUser(t *testing.T) {
	repo := new(MockStudentRepo)
	matcher := new(MockMatchClient)
	prefs := usecase.NewPreferenceUsecase(prefstore.NewMemoryStore())
	uc := usecase.NewDiscoverUsecase(repo, matcher, prefs)

	matcher.On("MatchStudents", mock.Anything, mock.Anything).
		Return(&domain.MatchResponse{
			Queries:         map[string]any{},
			CombinedResults: []domain.MatchResult{{StudentID: "s1"}},
		}, nil)
	repo.On("ListByUserIDs", mock.Anything, []string{"s1"}).
		Return([]domain.StudentProfile{}, nil)

	ctx := authedCtx("donor-1")
	_, err := uc.Discover(ctx, &domain.DiscoverRequest{BelieverText: "anyone"})
	require.NoError(t, err)

	// Repeating the identical query serves the cached search.
	cached, err := uc.LastSearch(ctx, &domain.DiscoverRequest{BelieverText: "anyone"})
	require.NoError(t, err)
	require.Len(t, cached.Results, 1)
	assert.Equal(t, "s1", cached.Results[0].UserID)

	// A changed query is a miss.
	_, err = uc.LastSearch(ctx, &domain.DiscoverRequest{BelieverText: "someone else"})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)

	// Anonymous callers never touch the cache.
	_, err = uc.LastSearch(context.Background(), &domain.DiscoverRequest{BelieverText: "anyone"})
	require.Error(t, err)
	appErr, ok = err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Code)
}
