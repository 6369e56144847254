package snapshot

import (
	"fmt"
	"time"

	"pixelboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyImage = errs.New("snapshot image must not be empty")

// Week is an ISO week tag like "2026-W35".
type Week struct {
	value string
}

func WeekOf(t time.Time) Week {
	year, week := t.ISOWeek()
	return Week{value: fmt.Sprintf("%d-W%02d", year, week)}
}

func (w Week) String() string { return w.value }

// Snapshot is an immutable rendered capture of the canvas. Snapshots are
// never updated or deleted; readers resolve the newest one by CreatedAt.
type Snapshot struct {
	id        uuid.UUID
	week      Week
	image     []byte
	createdAt time.Time
}

func NewSnapshot(id uuid.UUID, week Week, image []byte, createdAt time.Time) (*Snapshot, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Snapshot{
		id:        id,
		week:      week,
		image:     image,
		createdAt: createdAt,
	}, nil
}

func (s *Snapshot) ID() uuid.UUID        { return s.id }
func (s *Snapshot) Week() Week           { return s.week }
func (s *Snapshot) Image() []byte        { return s.image }
func (s *Snapshot) CreatedAt() time.Time { return s.createdAt }
