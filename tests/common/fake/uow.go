//go:build unit

// Package fake provides an in-memory store implementing the write-side
// UnitOfWork and both read stores, so command and query tests share one
// consistent world without a database.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"pixelboard/internal/domain/canvas"
	"pixelboard/internal/domain/snapshot"
	"pixelboard/internal/infra"
	"pixelboard/internal/usecase/queries"
	"pixelboard/internal/usecase/shared"

	"github.com/google/uuid"
)

type coord struct {
	x int
	y int
}

// Store holds canvas state in memory. Transactions are serialized by a
// single mutex; there is no rollback — callers that need to observe
// failure paths use FailWith, which rejects before any mutation.
type Store struct {
	mu         sync.Mutex
	cells      map[coord]canvas.Cell
	cooldowns  map[uuid.UUID]time.Time
	placements []*canvas.Placement
	snapshots  []*snapshot.Snapshot

	// FailWith makes every repository operation return this error.
	FailWith error
}

func NewStore() *Store {
	return &Store{
		cells:     make(map[coord]canvas.Cell),
		cooldowns: make(map[uuid.UUID]time.Time),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &fakeTx{s: s})
}

// CellAt exposes cell state for assertions.
func (s *Store) CellAt(x, y int) (canvas.Cell, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cells[coord{x: x, y: y}]
	return c, ok
}

func (s *Store) CellCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cells)
}

func (s *Store) PlacementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.placements)
}

func (s *Store) SnapshotCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snapshots)
}

func (s *Store) LastPlacedAt(userID uuid.UUID) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.cooldowns[userID]
	return t, ok
}

type fakeTx struct {
	s *Store
}

func (t *fakeTx) Cells() shared.CellRepository         { return &fakeCells{s: t.s} }
func (t *fakeTx) Cooldowns() shared.CooldownRepository { return &fakeCooldowns{s: t.s} }
func (t *fakeTx) Placements() shared.PlacementRepository {
	return &fakePlacements{s: t.s}
}
func (t *fakeTx) Snapshots() shared.SnapshotRepository { return &fakeSnapshots{s: t.s} }

type fakeCells struct {
	s *Store
}

func (r *fakeCells) Upsert(_ context.Context, cell canvas.Cell) error {
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	r.s.cells[coord{x: cell.X(), y: cell.Y()}] = cell
	return nil
}

func (r *fakeCells) All(_ context.Context) ([]canvas.Cell, error) {
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	return r.s.sortedCells(), nil
}

func (s *Store) sortedCells() []canvas.Cell {
	cells := make([]canvas.Cell, 0, len(s.cells))
	for _, c := range s.cells {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y() != cells[j].Y() {
			return cells[i].Y() < cells[j].Y()
		}
		return cells[i].X() < cells[j].X()
	})
	return cells
}

type fakeCooldowns struct {
	s *Store
}

func (r *fakeCooldowns) FindForUpdate(_ context.Context, userID uuid.UUID) (*shared.CooldownEntry, error) {
	if r.s.FailWith != nil {
		return nil, r.s.FailWith
	}
	t, ok := r.s.cooldowns[userID]
	if !ok {
		return nil, nil
	}
	return &shared.CooldownEntry{UserID: userID, LastPlacedAt: t}, nil
}

func (r *fakeCooldowns) Upsert(_ context.Context, userID uuid.UUID, lastPlacedAt time.Time) error {
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	r.s.cooldowns[userID] = lastPlacedAt
	return nil
}

type fakePlacements struct {
	s *Store
}

func (r *fakePlacements) Append(_ context.Context, placement *canvas.Placement) error {
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	r.s.placements = append(r.s.placements, placement)
	return nil
}

type fakeSnapshots struct {
	s *Store
}

func (r *fakeSnapshots) Create(_ context.Context, snap *snapshot.Snapshot) error {
	if r.s.FailWith != nil {
		return r.s.FailWith
	}
	r.s.snapshots = append(r.s.snapshots, snap)
	return nil
}

// Read-side views over the same state.

func (s *Store) AllCells(_ context.Context) ([]queries.CellView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	cells := s.sortedCells()
	views := make([]queries.CellView, 0, len(cells))
	for _, c := range cells {
		views = append(views, queries.CellView{
			X:        c.X(),
			Y:        c.Y(),
			Color:    c.Color().String(),
			UserID:   c.UserID(),
			Username: c.Username(),
			PlacedAt: c.PlacedAt(),
		})
	}
	return views, nil
}

func (s *Store) Stats(_ context.Context) (*queries.CanvasStatsView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	stats := queries.CanvasStatsView{TotalPlacements: int64(len(s.placements))}
	users := make(map[uuid.UUID]struct{})
	for _, p := range s.placements {
		users[p.UserID()] = struct{}{}
		if stats.LastUpdated == nil || p.PlacedAt().After(*stats.LastUpdated) {
			t := p.PlacedAt()
			stats.LastUpdated = &t
		}
	}
	stats.UniqueContributors = int64(len(users))
	return &stats, nil
}

func (s *Store) CooldownByUser(_ context.Context, userID uuid.UUID) (*queries.CooldownView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	t, ok := s.cooldowns[userID]
	if !ok {
		return nil, nil
	}
	return &queries.CooldownView{UserID: userID, LastPlacedAt: t}, nil
}

func (s *Store) Latest(_ context.Context) (*queries.SnapshotView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	var newest *snapshot.Snapshot
	for _, snap := range s.snapshots {
		if newest == nil || snap.CreatedAt().After(newest.CreatedAt()) {
			newest = snap
		}
	}
	if newest == nil {
		return nil, infra.WrapRepoErr("no snapshot stored", nil, infra.KindNotFound)
	}
	return &queries.SnapshotView{
		ID:        newest.ID(),
		Week:      newest.Week().String(),
		Image:     newest.Image(),
		CreatedAt: newest.CreatedAt(),
	}, nil
}
