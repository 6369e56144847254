package request

import "github.com/google/uuid"

// X/Y are pointers because 0 is a valid coordinate and must survive
// `binding:"required"`.
type PlacePixelRequest struct {
	X        *int      `json:"x" binding:"required"`
	Y        *int      `json:"y" binding:"required"`
	Color    string    `json:"color" binding:"required"`
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	Username string    `json:"username" binding:"required"`
}
