package domain

import "context"

// PreferenceStore is a narrow key-value abstraction over whatever backs the
// per-user discover state (Redis in production, an in-memory map in tests).
// Get returns nil, nil when the key is absent.
type PreferenceStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// DiscoverPreferences is the saved search form state, field for field what
// the frontend kept under "discover-preferences".
type DiscoverPreferences struct {
	BelieverText             string   `json:"believerText"`
	AgeMin                   string   `json:"ageMin"`
	AgeMax                   string   `json:"ageMax"`
	Country                  []string `json:"country"`
	Languages                []string `json:"languages"`
	CurrentStatus            []string `json:"currentStatus"`
	FieldOfStudy             []string `json:"fieldOfStudy"`
	JobRole                  []string `json:"jobRole"`
	FinancialSupportPerYear  string   `json:"financialSupportPerYear"`
	FinancialSupportDuration string   `json:"financialSupportDuration"`
	FinancialSupportReturn   []string `json:"financialSupportReturn"`
}

type PreferenceUsecase interface {
	GetPreferences(ctx context.Context, userID string) (*DiscoverPreferences, error)
	SavePreferences(ctx context.Context, userID string, prefs *DiscoverPreferences) error
	SaveLastSearch(ctx context.Context, userID string, search *CachedSearch) error
	// LastSearch returns nil when there is no cached search or the cached
	// query differs from the given one.
	LastSearch(ctx context.Context, userID string, query *MatchQuery) (*CachedSearch, error)
}
