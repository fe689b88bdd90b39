package usecase

import (
	"context"
	"errors"

	"go-genie-backend/internal/domain"
	"go-genie-backend/pkg/apperror"
	"go-genie-backend/pkg/logger"
	"go-genie-backend/pkg/matching"
)

type discoverUsecase struct {
	students domain.StudentRepository
	matcher  domain.MatchClient
	prefs    domain.PreferenceUsecase
}

// NewDiscoverUsecase wires the discover pipeline. prefs may be nil when no
// cache backend is configured; caching then turns off entirely.
func NewDiscoverUsecase(students domain.StudentRepository, matcher domain.MatchClient, prefs domain.PreferenceUsecase) domain.DiscoverUsecase {
	return &discoverUsecase{
		students: students,
		matcher:  matcher,
		prefs:    prefs,
	}
}

func (u *discoverUsecase) Discover(ctx context.Context, req *domain.DiscoverRequest) (*domain.DiscoverResponse, error) {
	query, err := normalizeQuery(req)
	if err != nil {
		// Required-field violation: the backend is never called.
		return nil, err
	}

	matchResp, err := u.matcher.MatchStudents(ctx, query)
	if err != nil {
		var upstream *matching.UpstreamError
		if errors.As(err, &upstream) {
			msg := upstream.Body
			if msg == "" {
				msg = "Failed to match students"
			}
			return nil, apperror.BadGateway(msg, err)
		}
		return nil, apperror.BadGateway("Failed to match students", err)
	}

	results, err := u.joinProfiles(ctx, matchResp.CombinedResults)
	if err != nil {
		return nil, err
	}

	resp := &domain.DiscoverResponse{
		Queries: matchResp.Queries,
		Results: results,
	}
	if resp.Queries == nil {
		resp.Queries = map[string]any{}
	}

	u.cacheSearch(ctx, query, resp)

	return resp, nil
}

func (u *discoverUsecase) LastSearch(ctx context.Context, req *domain.DiscoverRequest) (*domain.CachedSearch, error) {
	query, err := normalizeQuery(req)
	if err != nil {
		return nil, err
	}

	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if u.prefs == nil {
		return nil, apperror.NotFound("No cached search")
	}

	cached, err := u.prefs.LastSearch(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	if cached == nil {
		return nil, apperror.NotFound("No cached search")
	}
	return cached, nil
}

// joinProfiles enriches matches with stored profiles in one batched lookup.
func (u *discoverUsecase) joinProfiles(ctx context.Context, matches []domain.MatchResult) ([]domain.MatchWithProfile, error) {
	userIDs := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		id := subjectID(m)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		userIDs = append(userIDs, id)
	}

	profilesByID := make(map[string]*domain.StudentProfile, len(userIDs))
	if len(userIDs) > 0 {
		profiles, err := u.students.ListByUserIDs(ctx, userIDs)
		if err != nil {
			return nil, err
		}
		for i := range profiles {
			profilesByID[profiles[i].UserID] = &profiles[i]
		}
	}

	results := make([]domain.MatchWithProfile, 0, len(matches))
	for _, m := range matches {
		id := subjectID(m)
		results = append(results, domain.MatchWithProfile{
			MatchResult: m,
			UserID:      id,
			Profile:     profilesByID[id],
		})
	}
	return results, nil
}

// cacheSearch records the last successful search per authenticated user.
// Anonymous calls and cache write failures are both non-events.
func (u *discoverUsecase) cacheSearch(ctx context.Context, query *domain.MatchQuery, resp *domain.DiscoverResponse) {
	if u.prefs == nil {
		return
	}
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return
	}

	search := &domain.CachedSearch{
		Query:   query,
		Queries: resp.Queries,
		Results: resp.Results,
	}
	if err := u.prefs.SaveLastSearch(ctx, userID, search); err != nil {
		logger.Log.Warn("Failed to cache last search", "user_id", userID, "error", err)
	}
}

// subjectID prefers the backend's user field, falling back to student_id.
func subjectID(m domain.MatchResult) string {
	if m.User != "" {
		return m.User
	}
	return m.StudentID
}

// normalizeQuery turns the loose request shape into the backend contract:
// scalars wrapped into one-element lists, absent filters as nulls, numeric
// filters only when they arrived as native numbers.
func normalizeQuery(req *domain.DiscoverRequest) (*domain.MatchQuery, error) {
	believerText, ok := req.BelieverText.(string)
	if !ok || believerText == "" {
		return nil, apperror.BadRequest("believer_text is required")
	}

	return &domain.MatchQuery{
		BelieverText:             believerText,
		FieldOfStudy:             toStringList(req.FieldOfStudy),
		Country:                  toStringList(req.Country),
		Languages:                toStringList(req.Languages),
		CurrentStatus:            toStringList(req.CurrentStatus),
		JobRole:                  toStringList(req.JobRole),
		AgeMin:                   toNumber(req.AgeMin),
		AgeMax:                   toNumber(req.AgeMax),
		FinancialSupportPerYear:  toNumber(req.FinancialSupportPerYear),
		FinancialSupportDuration: toNumber(req.FinancialSupportDuration),
		FinancialSupportReturn:   toStringList(req.FinancialSupportReturn),
	}, nil
}
