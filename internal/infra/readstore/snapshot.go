package readstore

import (
	"context"
	"errors"

	"pixelboard/internal/infra"
	"pixelboard/internal/infra/db"
	"pixelboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type SnapshotReadStore struct {
	db db.DBTX
}

func NewSnapshotReadStore(dbtx db.DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: dbtx}
}

func (r *SnapshotReadStore) Latest(ctx context.Context) (*queries.SnapshotView, error) {
	const query = `
		SELECT id, week, image, created_at
		FROM canvas_snapshots
		ORDER BY created_at DESC
		LIMIT 1`

	snap := queries.SnapshotView{}
	err := r.db.QueryRow(ctx, query).Scan(&snap.ID, &snap.Week, &snap.Image, &snap.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no snapshot stored", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read latest snapshot", err)
	}
	return &snap, nil
}
