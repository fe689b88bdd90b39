package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"go-genie-backend/internal/domain"
)

const (
	prefKeyPrefix       = "genie:prefs:"
	lastSearchKeyPrefix = "genie:lastsearch:"
)

type preferenceUsecase struct {
	store domain.PreferenceStore
}

func NewPreferenceUsecase(store domain.PreferenceStore) domain.PreferenceUsecase {
	return &preferenceUsecase{store: store}
}

func (u *preferenceUsecase) GetPreferences(ctx context.Context, userID string) (*domain.DiscoverPreferences, error) {
	raw, err := u.store.Get(ctx, prefKeyPrefix+userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if raw == nil {
		return &domain.DiscoverPreferences{}, nil
	}

	var prefs domain.DiscoverPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		// A corrupt blob behaves like no blob; the next save repairs it.
		return &domain.DiscoverPreferences{}, nil
	}
	return &prefs, nil
}

func (u *preferenceUsecase) SavePreferences(ctx context.Context, userID string, prefs *domain.DiscoverPreferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	return u.store.Set(ctx, prefKeyPrefix+userID, raw)
}

func (u *preferenceUsecase) SaveLastSearch(ctx context.Context, userID string, search *domain.CachedSearch) error {
	search.SavedAt = time.Now().UTC()
	raw, err := json.Marshal(search)
	if err != nil {
		return fmt.Errorf("failed to encode last search: %w", err)
	}
	return u.store.Set(ctx, lastSearchKeyPrefix+userID, raw)
}

// LastSearch serves the cached result only when the new normalized query
// equals the cached one. Anything else is a miss, never an error.
func (u *preferenceUsecase) LastSearch(ctx context.Context, userID string, query *domain.MatchQuery) (*domain.CachedSearch, error) {
	raw, err := u.store.Get(ctx, lastSearchKeyPrefix+userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load last search: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var cached domain.CachedSearch
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, nil
	}
	if cached.Query == nil || !reflect.DeepEqual(cached.Query, query) {
		return nil, nil
	}
	return &cached, nil
}
