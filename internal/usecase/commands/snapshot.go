package commands

import (
	"context"
	"time"

	"pixelboard/internal/domain/canvas"
	"pixelboard/internal/domain/snapshot"
	"pixelboard/internal/pkg/clock"
	"pixelboard/internal/pkg/config"
	"pixelboard/internal/usecase/shared"

	"github.com/google/uuid"
)

// CaptureResult distinguishes "ran and produced a snapshot" from "ran on the
// wrong day and did nothing" — an off-schedule invocation is a normal
// outcome, not an error.
type CaptureResult struct {
	Skipped    bool
	SnapshotID uuid.UUID
	Week       string
}

type SnapshotCommands interface {
	CaptureWeeklySnapshot(ctx context.Context) (*CaptureResult, error)
}

type snapshotCommandsImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	bounds     canvas.Bounds
	scale      int
	triggerDay time.Weekday
}

func NewSnapshotCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.CanvasConfig) (SnapshotCommands, error) {
	bounds, err := canvas.NewBounds(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	day, err := cfg.SnapshotWeekday()
	if err != nil {
		return nil, err
	}
	return &snapshotCommandsImpl{
		uow:        uow,
		clock:      clk,
		bounds:     bounds,
		scale:      cfg.SnapshotScale,
		triggerDay: day,
	}, nil
}

// CaptureWeeklySnapshot renders the current grid to a PNG and stores it
// tagged with the ISO week. The external scheduler may fire on any day; only
// the trigger day produces a snapshot. Firing twice on the trigger day
// stores two rows, which is harmless — readers always resolve the newest.
func (uc *snapshotCommandsImpl) CaptureWeeklySnapshot(ctx context.Context) (*CaptureResult, error) {
	now := uc.clock.Now().UTC()
	week := snapshot.WeekOf(now)

	if now.Weekday() != uc.triggerDay {
		return &CaptureResult{Skipped: true, Week: week.String()}, nil
	}

	var snapshotID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cells, derr := tx.Cells().All(ctx)
		if derr != nil {
			return derr
		}

		img, derr := snapshot.Render(uc.bounds, cells, uc.scale)
		if derr != nil {
			return derr
		}

		snap, derr := snapshot.NewSnapshot(uuid.Nil, week, img, now)
		if derr != nil {
			return derr
		}
		snapshotID = snap.ID()

		return tx.Snapshots().Create(ctx, snap)
	})
	if err != nil {
		return nil, err
	}

	return &CaptureResult{SnapshotID: snapshotID, Week: week.String()}, nil
}
