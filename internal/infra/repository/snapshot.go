package repository

import (
	"context"

	"pixelboard/internal/domain/snapshot"
	"pixelboard/internal/infra"
	"pixelboard/internal/infra/db"
	"pixelboard/internal/usecase/shared"
)

type SnapshotRepository struct {
	db db.DBTX
}

func NewSnapshotRepository(dbtx db.DBTX) shared.SnapshotRepository {
	return &SnapshotRepository{db: dbtx}
}

func (r *SnapshotRepository) Create(ctx context.Context, snap *snapshot.Snapshot) error {
	const query = `
		INSERT INTO canvas_snapshots (id, week, image, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		snap.ID(), snap.Week().String(), snap.Image(), snap.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to store snapshot", err)
	}
	return nil
}
