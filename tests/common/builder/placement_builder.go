//go:build unit || e2e

package builder

import (
	"time"

	"pixelboard/internal/domain/canvas"
	reqdto "pixelboard/internal/handler/dto/request"

	"github.com/google/uuid"
)

type PlacementBuilder struct {
	X        int
	Y        int
	Width    int
	Height   int
	Color    string
	UserID   uuid.UUID
	Username string
	Now      time.Time
}

func NewPlacementBuilder() *PlacementBuilder {
	return &PlacementBuilder{
		X:        2,
		Y:        3,
		Width:    10,
		Height:   10,
		Color:    "#FF0000",
		UserID:   uuid.New(),
		Username: "alice",
		// 2026-02-15 is a Sunday; snapshot tests rely on that.
		Now: time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PlacementBuilder) With(mutate func(*PlacementBuilder)) *PlacementBuilder {
	mutate(b)
	return b
}

func (b *PlacementBuilder) BuildDomain() (*canvas.Placement, error) {
	bounds, err := canvas.NewBounds(b.Width, b.Height)
	if err != nil {
		return nil, err
	}
	return canvas.NewPlacement(uuid.Nil, b.X, b.Y, bounds, b.Color, b.UserID, b.Username, b.Now)
}

func (b *PlacementBuilder) BuildPlaceRequestDTO() reqdto.PlacePixelRequest {
	x := b.X
	y := b.Y
	return reqdto.PlacePixelRequest{
		X:        &x,
		Y:        &y,
		Color:    b.Color,
		UserID:   b.UserID,
		Username: b.Username,
	}
}
