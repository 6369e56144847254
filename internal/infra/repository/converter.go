package repository

import (
	"time"

	"pixelboard/internal/domain/canvas"
	"pixelboard/internal/infra"

	"github.com/google/uuid"
)

type cellRow struct {
	X        int
	Y        int
	Color    string
	UserID   uuid.UUID
	Username string
	PlacedAt time.Time
}

func (row cellRow) toDomain() (canvas.Cell, error) {
	color, err := canvas.NewColor(row.Color)
	if err != nil {
		// Colors are validated on the way in; a bad one here means the row
		// was tampered with outside the service.
		return canvas.Cell{}, infra.WrapRepoErr("stored cell color is not a valid hex token", err, infra.KindCorruptData)
	}
	return canvas.ReconstructCell(row.X, row.Y, color, row.UserID, row.Username, row.PlacedAt), nil
}
