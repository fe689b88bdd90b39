package domain

import (
	"context"
	"time"
)

// DiscoverRequest is the donor's raw discover payload. Every filter may be a
// scalar or an array, so fields stay untyped until normalization.
type DiscoverRequest struct {
	BelieverText             any `json:"believer_text"`
	FieldOfStudy             any `json:"field_of_study"`
	Country                  any `json:"country"`
	Languages                any `json:"languages"`
	CurrentStatus            any `json:"current_status"`
	JobRole                  any `json:"job_role"`
	AgeMin                   any `json:"age_min"`
	AgeMax                   any `json:"age_max"`
	FinancialSupportPerYear  any `json:"financial_support_per_year"`
	FinancialSupportDuration any `json:"financial_support_duration"`
	FinancialSupportReturn   any `json:"financial_support_return"`
}

// MatchQuery is the normalized payload sent to the matching backend. Nil
// slices and nil numbers marshal as JSON null, which is the backend's
// "filter absent" convention.
type MatchQuery struct {
	BelieverText             string   `json:"believer_text"`
	FieldOfStudy             []string `json:"field_of_study"`
	Country                  []string `json:"country"`
	Languages                []string `json:"languages"`
	CurrentStatus            []string `json:"current_status"`
	JobRole                  []string `json:"job_role"`
	AgeMin                   *float64 `json:"age_min"`
	AgeMax                   *float64 `json:"age_max"`
	FinancialSupportPerYear  *float64 `json:"financial_support_per_year"`
	FinancialSupportDuration *float64 `json:"financial_support_duration"`
	FinancialSupportReturn   []string `json:"financial_support_return"`
}

// MatchResult is one row of the backend's combined_results. All scores are
// computed upstream and merely displayed here.
type MatchResult struct {
	StudentID        string   `json:"student_id"`
	User             string   `json:"user,omitempty"`
	FieldScore       *float64 `json:"field_score,omitempty"`
	BehaviourScore   *float64 `json:"behaviour_score,omitempty"`
	FinancialScore   *float64 `json:"financial_score,omitempty"`
	OverallMatch     *float64 `json:"overall_match,omitempty"`
	SummaryField     string   `json:"summary_field,omitempty"`
	SummaryBehaviour string   `json:"summary_behaviour,omitempty"`
}

type MatchResponse struct {
	Queries         map[string]any `json:"queries"`
	CombinedResults []MatchResult  `json:"combined_results"`
}

// MatchWithProfile enriches a backend match with the locally stored profile.
// Profile is nil when the referenced student is unknown to the store.
type MatchWithProfile struct {
	MatchResult
	UserID  string          `json:"user_id"`
	Profile *StudentProfile `json:"profile"`
}

type DiscoverResponse struct {
	Queries map[string]any     `json:"queries"`
	Results []MatchWithProfile `json:"results"`
}

// CachedSearch is the server-side replacement for the frontend's
// "discover-last-search" localStorage entry.
type CachedSearch struct {
	Query   *MatchQuery        `json:"query"`
	Queries map[string]any     `json:"queries"`
	Results []MatchWithProfile `json:"results"`
	SavedAt time.Time          `json:"saved_at"`
}

// MatchClient talks to the external matching backend. The backend is an
// opaque JSON contract; errors from it surface as upstream failures.
type MatchClient interface {
	MatchStudents(ctx context.Context, query *MatchQuery) (*MatchResponse, error)
	RegisterStudent(ctx context.Context, profile *StudentProfile) error
}

type DiscoverUsecase interface {
	Discover(ctx context.Context, req *DiscoverRequest) (*DiscoverResponse, error)
	// LastSearch returns the caller's cached search only when the normalized
	// query equals the cached one.
	LastSearch(ctx context.Context, req *DiscoverRequest) (*CachedSearch, error)
}
