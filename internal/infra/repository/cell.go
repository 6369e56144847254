package repository

import (
	"context"

	"pixelboard/internal/domain/canvas"
	"pixelboard/internal/infra"
	"pixelboard/internal/infra/db"
	"pixelboard/internal/usecase/shared"
)

type CellRepository struct {
	db db.DBTX
}

func NewCellRepository(dbtx db.DBTX) shared.CellRepository {
	return &CellRepository{db: dbtx}
}

// Upsert overwrites whatever is at (x, y). No version check: contested cells
// are last-write-wins by commit order.
func (r *CellRepository) Upsert(ctx context.Context, cell canvas.Cell) error {
	const query = `
		INSERT INTO canvas_cells (x, y, color, user_id, username, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (x, y) DO UPDATE SET
			color     = EXCLUDED.color,
			user_id   = EXCLUDED.user_id,
			username  = EXCLUDED.username,
			placed_at = EXCLUDED.placed_at`

	_, err := r.db.Exec(ctx, query,
		cell.X(), cell.Y(), cell.Color().String(), cell.UserID(), cell.Username(), cell.PlacedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to upsert cell", err)
	}
	return nil
}

func (r *CellRepository) All(ctx context.Context) ([]canvas.Cell, error) {
	const query = `
		SELECT x, y, color, user_id, username, placed_at
		FROM canvas_cells
		ORDER BY y, x`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read cells", err)
	}
	defer rows.Close()

	var cells []canvas.Cell
	for rows.Next() {
		var row cellRow
		if err := rows.Scan(&row.X, &row.Y, &row.Color, &row.UserID, &row.Username, &row.PlacedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cell row", err)
		}
		cell, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cell rows", err)
	}
	return cells, nil
}
