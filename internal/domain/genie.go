package domain

import (
	"context"
	"time"
)

// GenieProfile is the donor-side profile, a deliberately narrow mirror of
// the student table.
type GenieProfile struct {
	UserID    string    `json:"user_id" validate:"required"`
	Name      *string   `json:"name"`
	Surname   *string   `json:"surname"`
	Country   *string   `json:"country"`
	Language  *string   `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

type GenieRepository interface {
	Upsert(ctx context.Context, profile *GenieProfile) error
	GetByUserID(ctx context.Context, userID string) (*GenieProfile, error)
}

type GenieUsecase interface {
	UpsertProfile(ctx context.Context, profile *GenieProfile) error
	GetProfile(ctx context.Context, userID string) (*GenieProfile, error)
}
