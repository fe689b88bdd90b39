package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-genie-backend/internal/delivery/http/middleware"
	v1 "go-genie-backend/internal/delivery/http/v1"
	"go-genie-backend/internal/domain"
	"go-genie-backend/pkg/apperror"
	"go-genie-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDiscoverUsecase struct {
	mock.Mock
}

func (m *MockDiscoverUsecase) Discover(ctx context.Context, req *domain.DiscoverRequest) (*domain.DiscoverResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiscoverResponse), args.Error(1)
}

func (m *MockDiscoverUsecase) LastSearch(ctx context.Context, req *domain.DiscoverRequest) (*domain.CachedSearch, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedSearch), args.Error(1)
}

func noLimit(c *gin.Context) { c.Next() }

func setupDiscoverRouter(uc *MockDiscoverUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	v1.NewDiscoverHandler(api, api, uc, noLimit)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDiscoverEndpointRejectsMissingBelieverText(t *testing.T) {
	uc := new(MockDiscoverUsecase)
	uc.On("Discover", mock.Anything, mock.Anything).
		Return(nil, apperror.BadRequest("believer_text is required"))
	r := setupDiscoverRouter(uc)

	w := postJSON(r, "/api/discover", `{"country": "Italy"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "believer_text is required"}`, w.Body.String())
}

func TestDiscoverEndpointRejectsMalformedJSON(t *testing.T) {
	uc := new(MockDiscoverUsecase)
	r := setupDiscoverRouter(uc)

	w := postJSON(r, "/api/discover", `{"believer_text": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "believer_text is required"}`, w.Body.String())
	uc.AssertNotCalled(t, "Discover", mock.Anything, mock.Anything)
}

func TestDiscoverEndpointForwardsUpstreamFailure(t *testing.T) {
	uc := new(MockDiscoverUsecase)
	uc.On("Discover", mock.Anything, mock.Anything).
		Return(nil, apperror.BadGateway("no embeddings", nil))
	r := setupDiscoverRouter(uc)

	w := postJSON(r, "/api/discover", `{"believer_text": "anyone"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error": "no embeddings"}`, w.Body.String())
}

func TestDiscoverEndpointReturnsJoinedResults(t *testing.T) {
	uc := new(MockDiscoverUsecase)
	name := "Ada"
	uc.On("Discover", mock.Anything, mock.Anything).
		Return(&domain.DiscoverResponse{
			Queries: map[string]any{"field": "physics"},
			Results: []domain.MatchWithProfile{
				{
					MatchResult: domain.MatchResult{StudentID: "s1", User: "u1"},
					UserID:      "u1",
					Profile:     &domain.StudentProfile{UserID: "u1", Name: &name, Languages: []string{}},
				},
				{
					MatchResult: domain.MatchResult{StudentID: "s2"},
					UserID:      "s2",
				},
			},
		}, nil)
	r := setupDiscoverRouter(uc)

	w := postJSON(r, "/api/discover", `{"believer_text": "physicists"}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"queries":{"field":"physics"}`)
	assert.Contains(t, body, `"user_id":"u1"`)
	// Unknown students keep their slot with an explicit null profile.
	assert.Contains(t, body, `"profile":null`)
}

func TestLastSearchEndpointReportsMiss(t *testing.T) {
	uc := new(MockDiscoverUsecase)
	uc.On("LastSearch", mock.Anything, mock.Anything).
		Return(nil, apperror.NotFound("no cached search"))
	r := setupDiscoverRouter(uc)

	w := postJSON(r, "/api/discover/last", `{"believer_text": "anyone"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "no cached search"}`, w.Body.String())
}
