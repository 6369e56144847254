package commands

import (
	"context"
	"fmt"
	"time"

	"pixelboard/internal/domain/canvas"
	"pixelboard/internal/pkg/clock"
	"pixelboard/internal/pkg/config"
	"pixelboard/internal/usecase/shared"

	"github.com/google/uuid"
)

// CooldownActiveError is an expected, frequent rejection: the user placed a
// pixel less than one cooldown window ago. It is not a bug and carries the
// remaining wait so callers can render a countdown.
type CooldownActiveError struct {
	Remaining time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("cooldown active: %s remaining", e.Remaining)
}

// RemainingMinutes rounds up to whole minutes, matching the user-facing
// message ("please wait 1 more minute" for a 20s wait).
func (e *CooldownActiveError) RemainingMinutes() int {
	return int((e.Remaining + time.Minute - 1) / time.Minute)
}

func (e *CooldownActiveError) RemainingSeconds() int {
	return int((e.Remaining + time.Second - 1) / time.Second)
}

type PlacePixelRequest struct {
	X        int
	Y        int
	Color    string
	Username string
}

type PlacePixelResult struct {
	PlacementID uuid.UUID
}

type CanvasCommands interface {
	PlacePixel(ctx context.Context, req PlacePixelRequest, userID uuid.UUID) (*PlacePixelResult, error)
}

type canvasCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	bounds   canvas.Bounds
	cooldown time.Duration
}

func NewCanvasCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.CanvasConfig) (CanvasCommands, error) {
	bounds, err := canvas.NewBounds(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &canvasCommandsImpl{
		uow:      uow,
		clock:    clk,
		bounds:   bounds,
		cooldown: cfg.CooldownDuration,
	}, nil
}

// PlacePixel validates the request shape, then performs the cooldown check
// and the three writes (cell, cooldown, log entry) in one transaction. The
// cooldown row lock serializes same-user races; different users share no
// rows and interleave freely. Contested cells are last-write-wins.
func (uc *canvasCommandsImpl) PlacePixel(ctx context.Context, req PlacePixelRequest, userID uuid.UUID) (*PlacePixelResult, error) {
	now := uc.clock.Now().UTC()

	placement, err := canvas.NewPlacement(uuid.Nil, req.X, req.Y, uc.bounds, req.Color, userID, req.Username, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Authoritative re-check: the query-side status endpoint is only
		// advisory and may race with this write.
		entry, derr := tx.Cooldowns().FindForUpdate(ctx, userID)
		if derr != nil {
			return derr
		}
		if entry != nil {
			if elapsed := now.Sub(entry.LastPlacedAt); elapsed < uc.cooldown {
				return &CooldownActiveError{Remaining: uc.cooldown - elapsed}
			}
		}

		if derr = tx.Cells().Upsert(ctx, placement.Cell()); derr != nil {
			return derr
		}
		if derr = tx.Cooldowns().Upsert(ctx, userID, now); derr != nil {
			return derr
		}
		return tx.Placements().Append(ctx, placement)
	})
	if err != nil {
		return nil, err
	}

	return &PlacePixelResult{PlacementID: placement.ID()}, nil
}
