package response

import (
	"time"

	"pixelboard/internal/usecase/commands"
	"pixelboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type CaptureSnapshotResponse struct {
	Skipped    bool      `json:"skipped"`
	SnapshotID uuid.UUID `json:"snapshot_id,omitempty"`
	Week       string    `json:"week"`
	Message    string    `json:"message"`
}

func FromCaptureResult(result *commands.CaptureResult) CaptureSnapshotResponse {
	resp := CaptureSnapshotResponse{
		Skipped: result.Skipped,
		Week:    result.Week,
	}
	if result.Skipped {
		resp.Message = "not the snapshot day, nothing captured"
	} else {
		resp.SnapshotID = result.SnapshotID
		resp.Message = "snapshot captured"
	}
	return resp
}

// Image marshals as base64, the JSON encoding of []byte.
type SnapshotResponse struct {
	ID        uuid.UUID `json:"id"`
	Week      string    `json:"week"`
	Image     []byte    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSnapshotView(view *queries.SnapshotView) SnapshotResponse {
	return SnapshotResponse{
		ID:        view.ID,
		Week:      view.Week,
		Image:     view.Image,
		CreatedAt: view.CreatedAt,
	}
}
