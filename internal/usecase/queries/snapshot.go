package queries

import (
	"context"
	"time"

	"pixelboard/internal/infra"
	"pixelboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSnapshotNotFound = errs.New("no snapshot captured yet")

type SnapshotView struct {
	ID        uuid.UUID `json:"id"`
	Week      string    `json:"week"`
	Image     []byte    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

type SnapshotReadStore interface {
	// Latest returns the snapshot with the newest created_at.
	Latest(ctx context.Context) (*SnapshotView, error)
}

type SnapshotQueries interface {
	GetCurrentSnapshot(ctx context.Context) (*SnapshotView, error)
}

type snapshotQueriesImpl struct {
	store SnapshotReadStore
}

func NewSnapshotQueries(store SnapshotReadStore) SnapshotQueries {
	return &snapshotQueriesImpl{store: store}
}

func (q *snapshotQueriesImpl) GetCurrentSnapshot(ctx context.Context) (*SnapshotView, error) {
	snap, err := q.store.Latest(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	return snap, nil
}
