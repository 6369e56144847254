package canvas

import (
	"time"

	"github.com/google/uuid"
)

// Placement is one append-only log entry for a successful pixel write. The
// constructor is the single validation gate for user input; everything past
// it is shape-checked.
type Placement struct {
	id       uuid.UUID
	coords   Coordinates
	color    Color
	userID   uuid.UUID
	username Username
	placedAt time.Time
}

func NewPlacement(id uuid.UUID, x, y int, bounds Bounds, colorValue string, userID uuid.UUID, username string, now time.Time) (*Placement, error) {
	coords, err := NewCoordinates(x, y, bounds)
	if err != nil {
		return nil, err
	}

	color, err := NewColor(colorValue)
	if err != nil {
		return nil, err
	}

	uname, err := NewUsername(username)
	if err != nil {
		return nil, err
	}

	if userID == uuid.Nil {
		return nil, ErrNilUserID
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Placement{
		id:       id,
		coords:   coords,
		color:    color,
		userID:   userID,
		username: uname,
		placedAt: now,
	}, nil
}

func (p *Placement) ID() uuid.UUID       { return p.id }
func (p *Placement) X() int              { return p.coords.X() }
func (p *Placement) Y() int              { return p.coords.Y() }
func (p *Placement) Color() Color        { return p.color }
func (p *Placement) UserID() uuid.UUID   { return p.userID }
func (p *Placement) Username() Username  { return p.username }
func (p *Placement) PlacedAt() time.Time { return p.placedAt }

// Cell returns the grid cell state this placement writes.
func (p *Placement) Cell() Cell {
	return Cell{
		x:        p.coords.X(),
		y:        p.coords.Y(),
		color:    p.color,
		userID:   p.userID,
		username: p.username.String(),
		placedAt: p.placedAt,
	}
}

// Cell is the current state of one grid position: the color plus the last
// writer. Contested writes are last-write-wins; there is deliberately no
// version field.
type Cell struct {
	x        int
	y        int
	color    Color
	userID   uuid.UUID
	username string
	placedAt time.Time
}

// ReconstructCell rebuilds a cell from persisted state. Coordinates are
// trusted; they were bounds-checked on the way in.
func ReconstructCell(x, y int, color Color, userID uuid.UUID, username string, placedAt time.Time) Cell {
	return Cell{
		x:        x,
		y:        y,
		color:    color,
		userID:   userID,
		username: username,
		placedAt: placedAt,
	}
}

func (c Cell) X() int              { return c.x }
func (c Cell) Y() int              { return c.y }
func (c Cell) Color() Color        { return c.color }
func (c Cell) UserID() uuid.UUID   { return c.userID }
func (c Cell) Username() string    { return c.username }
func (c Cell) PlacedAt() time.Time { return c.placedAt }
