package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-genie-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type genieRepository struct {
	db *pgxpool.Pool
}

func NewGenieRepository(db *pgxpool.Pool) domain.GenieRepository {
	return &genieRepository{db: db}
}

func (r *genieRepository) Upsert(ctx context.Context, p *domain.GenieProfile) error {
	query := `
		INSERT INTO genie (user_id, name, surname, country, language)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			surname = EXCLUDED.surname,
			country = EXCLUDED.country,
			language = EXCLUDED.language`

	_, err := r.db.Exec(ctx, query, p.UserID, p.Name, p.Surname, p.Country, p.Language)
	if err != nil {
		return fmt.Errorf("failed to upsert genie %s: %w", p.UserID, err)
	}
	return nil
}

func (r *genieRepository) GetByUserID(ctx context.Context, userID string) (*domain.GenieProfile, error) {
	query := `
		SELECT user_id, name, surname, country, language, created_at
		FROM genie WHERE user_id = $1`

	var p domain.GenieProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.Surname, &p.Country, &p.Language, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
