package response

import (
	"time"

	"pixelboard/internal/usecase/commands"
	"pixelboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlacePixelResponse struct {
	PlacementID uuid.UUID `json:"placement_id"`
	Message     string    `json:"message"`
}

func FromPlaceResult(result *commands.PlacePixelResult) PlacePixelResponse {
	return PlacePixelResponse{
		PlacementID: result.PlacementID,
		Message:     "pixel placed",
	}
}

type CellResponse struct {
	X        int       `json:"x"`
	Y        int       `json:"y"`
	Color    string    `json:"color"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	PlacedAt time.Time `json:"placed_at"`
}

type CanvasStatsResponse struct {
	TotalPlacements    int64      `json:"total_placements"`
	UniqueContributors int64      `json:"unique_contributors"`
	LastUpdated        *time.Time `json:"last_updated,omitempty"`
}

type CanvasResponse struct {
	Width  int                 `json:"width"`
	Height int                 `json:"height"`
	Cells  []CellResponse      `json:"cells"`
	Stats  CanvasStatsResponse `json:"stats"`
}

func FromCanvasView(view *queries.CanvasView) CanvasResponse {
	cells := make([]CellResponse, 0, len(view.Cells))
	for _, c := range view.Cells {
		cells = append(cells, CellResponse{
			X:        c.X,
			Y:        c.Y,
			Color:    c.Color,
			UserID:   c.UserID,
			Username: c.Username,
			PlacedAt: c.PlacedAt,
		})
	}
	return CanvasResponse{
		Width:  view.Width,
		Height: view.Height,
		Cells:  cells,
		Stats: CanvasStatsResponse{
			TotalPlacements:    view.Stats.TotalPlacements,
			UniqueContributors: view.Stats.UniqueContributors,
			LastUpdated:        view.Stats.LastUpdated,
		},
	}
}

type CooldownStatusResponse struct {
	CanPlace         bool       `json:"can_place"`
	RemainingSeconds int        `json:"remaining_seconds,omitempty"`
	RemainingMinutes int        `json:"remaining_minutes,omitempty"`
	AvailableAt      *time.Time `json:"available_at,omitempty"`
}

func FromCooldownStatus(view *queries.CooldownStatusView) CooldownStatusResponse {
	return CooldownStatusResponse{
		CanPlace:         view.CanPlace,
		RemainingSeconds: view.RemainingSeconds,
		RemainingMinutes: view.RemainingMinutes,
		AvailableAt:      view.AvailableAt,
	}
}
