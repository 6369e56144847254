package repository

import (
	"context"
	"errors"
	"time"

	"pixelboard/internal/infra"
	"pixelboard/internal/infra/db"
	"pixelboard/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CooldownRepository struct {
	db db.DBTX
}

func NewCooldownRepository(dbtx db.DBTX) shared.CooldownRepository {
	return &CooldownRepository{db: dbtx}
}

// FindForUpdate takes a row lock so two in-flight placements by the same
// user serialize on it. First-time placers have no row and get (nil, nil).
func (r *CooldownRepository) FindForUpdate(ctx context.Context, userID uuid.UUID) (*shared.CooldownEntry, error) {
	const query = `
		SELECT user_id, last_placed_at
		FROM placement_cooldowns
		WHERE user_id = $1
		FOR UPDATE`

	entry := shared.CooldownEntry{}
	err := r.db.QueryRow(ctx, query, userID).Scan(&entry.UserID, &entry.LastPlacedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read cooldown", err)
	}
	return &entry, nil
}

func (r *CooldownRepository) Upsert(ctx context.Context, userID uuid.UUID, lastPlacedAt time.Time) error {
	const query = `
		INSERT INTO placement_cooldowns (user_id, last_placed_at)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET last_placed_at = EXCLUDED.last_placed_at`

	if _, err := r.db.Exec(ctx, query, userID, lastPlacedAt); err != nil {
		return infra.WrapRepoErr("failed to upsert cooldown", err)
	}
	return nil
}
