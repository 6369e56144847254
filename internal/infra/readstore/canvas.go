package readstore

import (
	"context"
	"errors"

	"pixelboard/internal/infra"
	"pixelboard/internal/infra/db"
	"pixelboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CanvasReadStore struct {
	db db.DBTX
}

func NewCanvasReadStore(dbtx db.DBTX) *CanvasReadStore {
	return &CanvasReadStore{db: dbtx}
}

func (r *CanvasReadStore) AllCells(ctx context.Context) ([]queries.CellView, error) {
	const query = `
		SELECT x, y, color, user_id, username, placed_at
		FROM canvas_cells
		ORDER BY y, x`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read cells", err)
	}
	defer rows.Close()

	cells := []queries.CellView{}
	for rows.Next() {
		var cell queries.CellView
		if err := rows.Scan(&cell.X, &cell.Y, &cell.Color, &cell.UserID, &cell.Username, &cell.PlacedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cell row", err)
		}
		cells = append(cells, cell)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cell rows", err)
	}
	return cells, nil
}

// Stats are derived from the append-only placement log, not from the cells:
// overwritten pixels still count toward totals.
func (r *CanvasReadStore) Stats(ctx context.Context) (*queries.CanvasStatsView, error) {
	const query = `
		SELECT COUNT(*), COUNT(DISTINCT user_id), MAX(placed_at)
		FROM canvas_placements`

	stats := queries.CanvasStatsView{}
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalPlacements, &stats.UniqueContributors, &stats.LastUpdated)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read canvas stats", err)
	}
	return &stats, nil
}

func (r *CanvasReadStore) CooldownByUser(ctx context.Context, userID uuid.UUID) (*queries.CooldownView, error) {
	const query = `
		SELECT user_id, last_placed_at
		FROM placement_cooldowns
		WHERE user_id = $1`

	cd := queries.CooldownView{}
	err := r.db.QueryRow(ctx, query, userID).Scan(&cd.UserID, &cd.LastPlacedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read cooldown", err)
	}
	return &cd, nil
}
