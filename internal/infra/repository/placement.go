package repository

import (
	"context"

	"pixelboard/internal/domain/canvas"
	"pixelboard/internal/infra"
	"pixelboard/internal/infra/db"
	"pixelboard/internal/usecase/shared"
)

type PlacementRepository struct {
	db db.DBTX
}

func NewPlacementRepository(dbtx db.DBTX) shared.PlacementRepository {
	return &PlacementRepository{db: dbtx}
}

// Append-only: placements are never updated or deleted.
func (r *PlacementRepository) Append(ctx context.Context, placement *canvas.Placement) error {
	const query = `
		INSERT INTO canvas_placements (id, x, y, color, user_id, username, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		placement.ID(), placement.X(), placement.Y(), placement.Color().String(),
		placement.UserID(), placement.Username().String(), placement.PlacedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to append placement record", err)
	}
	return nil
}
