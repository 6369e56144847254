package queries

import (
	"context"
	"time"

	"pixelboard/internal/pkg/clock"
	"pixelboard/internal/pkg/config"

	"github.com/google/uuid"
)

type CellView struct {
	X        int       `json:"x"`
	Y        int       `json:"y"`
	Color    string    `json:"color"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	PlacedAt time.Time `json:"placed_at"`
}

type CanvasStatsView struct {
	TotalPlacements    int64      `json:"total_placements"`
	UniqueContributors int64      `json:"unique_contributors"`
	LastUpdated        *time.Time `json:"last_updated,omitempty"`
}

type CanvasView struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Cells  []CellView      `json:"cells"`
	Stats  CanvasStatsView `json:"stats"`
}

type CooldownStatusView struct {
	CanPlace         bool       `json:"can_place"`
	RemainingSeconds int        `json:"remaining_seconds,omitempty"`
	RemainingMinutes int        `json:"remaining_minutes,omitempty"`
	AvailableAt      *time.Time `json:"available_at,omitempty"`
}

type CooldownView struct {
	UserID       uuid.UUID
	LastPlacedAt time.Time
}

type CanvasReadStore interface {
	AllCells(ctx context.Context) ([]CellView, error)
	Stats(ctx context.Context) (*CanvasStatsView, error)
	// CooldownByUser returns (nil, nil) for users who have never placed.
	CooldownByUser(ctx context.Context, userID uuid.UUID) (*CooldownView, error)
}

type CanvasQueries interface {
	GetCanvas(ctx context.Context) (*CanvasView, error)
	GetCooldownStatus(ctx context.Context, userID uuid.UUID) (*CooldownStatusView, error)
}

type canvasQueriesImpl struct {
	store    CanvasReadStore
	clock    clock.Clock
	width    int
	height   int
	cooldown time.Duration
}

func NewCanvasQueries(store CanvasReadStore, clk clock.Clock, cfg config.CanvasConfig) CanvasQueries {
	return &canvasQueriesImpl{
		store:    store,
		clock:    clk,
		width:    cfg.Width,
		height:   cfg.Height,
		cooldown: cfg.CooldownDuration,
	}
}

// GetCanvas returns the sparse grid plus aggregate stats. Reads go straight
// to the store; there is no cache layer to go stale behind.
func (q *canvasQueriesImpl) GetCanvas(ctx context.Context) (*CanvasView, error) {
	cells, err := q.store.AllCells(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := q.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &CanvasView{
		Width:  q.width,
		Height: q.height,
		Cells:  cells,
		Stats:  *stats,
	}, nil
}

// GetCooldownStatus is a pure read used by callers to short-circuit doomed
// placements. PlacePixel re-checks authoritatively; this view may lose a
// race with a concurrent write.
func (q *canvasQueriesImpl) GetCooldownStatus(ctx context.Context, userID uuid.UUID) (*CooldownStatusView, error) {
	cd, err := q.store.CooldownByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cd == nil {
		return &CooldownStatusView{CanPlace: true}, nil
	}

	now := q.clock.Now().UTC()
	remaining := q.cooldown - now.Sub(cd.LastPlacedAt)
	if remaining <= 0 {
		return &CooldownStatusView{CanPlace: true}, nil
	}

	availableAt := cd.LastPlacedAt.Add(q.cooldown)
	return &CooldownStatusView{
		CanPlace:         false,
		RemainingSeconds: int((remaining + time.Second - 1) / time.Second),
		RemainingMinutes: int((remaining + time.Minute - 1) / time.Minute),
		AvailableAt:      &availableAt,
	}, nil
}
