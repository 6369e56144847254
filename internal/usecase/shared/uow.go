package shared

import (
	"context"
	"time"

	"pixelboard/internal/domain/canvas"
	"pixelboard/internal/domain/snapshot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Cells() CellRepository
	Cooldowns() CooldownRepository
	Placements() PlacementRepository
	Snapshots() SnapshotRepository
}

// CooldownEntry is the write-side view of one user's gate: created on first
// placement, overwritten on every later one, never deleted.
type CooldownEntry struct {
	UserID       uuid.UUID
	LastPlacedAt time.Time
}

type CellRepository interface {
	// Upsert overwrites the cell unconditionally (last write wins).
	Upsert(ctx context.Context, cell canvas.Cell) error
	All(ctx context.Context) ([]canvas.Cell, error)
}

type CooldownRepository interface {
	// FindForUpdate locks the user's cooldown row for the rest of the
	// transaction; returns (nil, nil) when the user has never placed.
	FindForUpdate(ctx context.Context, userID uuid.UUID) (*CooldownEntry, error)
	Upsert(ctx context.Context, userID uuid.UUID, lastPlacedAt time.Time) error
}

type PlacementRepository interface {
	Append(ctx context.Context, placement *canvas.Placement) error
}

type SnapshotRepository interface {
	Create(ctx context.Context, snap *snapshot.Snapshot) error
}
