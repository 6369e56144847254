//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"pixelboard/internal/pkg/clock"
	"pixelboard/internal/pkg/config"
	"pixelboard/internal/usecase/commands"
	"pixelboard/internal/usecase/queries"
	"pixelboard/tests/common/fake"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

// seeds state through the real command path so the read side sees exactly
// what a live system would have stored
func seedPlacement(t *testing.T, store *fake.Store, clk *clock.MockClock, x, y int, color, username string, userID uuid.UUID) {
	t.Helper()
	uc, err := commands.NewCanvasCommands(store, clk, config.NewTestConfig().Canvas)
	require.NoError(t, err)
	_, err = uc.PlacePixel(context.Background(), commands.PlacePixelRequest{
		X: x, Y: y, Color: color, Username: username,
	}, userID)
	require.NoError(t, err)
}

func TestGetCanvas(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig().Canvas

	t.Run("empty canvas has dimensions and zero stats", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewCanvasQueries(store, clock.NewMockClock(baseTime), cfg)

		view, err := q.GetCanvas(ctx)
		require.NoError(t, err)

		expected := &queries.CanvasView{
			Width:  cfg.Width,
			Height: cfg.Height,
			Cells:  []queries.CellView{},
			Stats:  queries.CanvasStatsView{},
		}
		if diff := cmp.Diff(expected, view); diff != "" {
			t.Errorf("CanvasView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("placed cells and stats are reflected", func(t *testing.T) {
		store := fake.NewStore()
		clk := clock.NewMockClock(baseTime)
		alice := uuid.New()
		bob := uuid.New()

		seedPlacement(t, store, clk, 2, 3, "#FF0000", "alice", alice)
		clk.Add(time.Second)
		seedPlacement(t, store, clk, 2, 3, "#0000FF", "bob", bob) // overwrites
		seedPlacement(t, store, clk, 7, 1, "#00FF00", "bob2", bob)

		q := queries.NewCanvasQueries(store, clk, cfg)
		view, err := q.GetCanvas(ctx)
		require.NoError(t, err)

		require.Len(t, view.Cells, 2, "overwritten cell appears once")
		assert.Equal(t, "#00FF00", view.Cells[0].Color) // (7,1) sorts before (2,3)
		assert.Equal(t, "#0000FF", view.Cells[1].Color)
		assert.Equal(t, bob, view.Cells[1].UserID)

		assert.Equal(t, int64(3), view.Stats.TotalPlacements)
		assert.Equal(t, int64(2), view.Stats.UniqueContributors)
		require.NotNil(t, view.Stats.LastUpdated)
		assert.Equal(t, baseTime.Add(time.Second), *view.Stats.LastUpdated)
	})
}

func TestGetCooldownStatus(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig().Canvas

	t.Run("user who never placed can place", func(t *testing.T) {
		store := fake.NewStore()
		q := queries.NewCanvasQueries(store, clock.NewMockClock(baseTime), cfg)

		status, err := q.GetCooldownStatus(ctx, uuid.New())
		require.NoError(t, err)
		assert.True(t, status.CanPlace)
		assert.Zero(t, status.RemainingSeconds)
		assert.Nil(t, status.AvailableAt)
	})

	t.Run("active cooldown reports the remaining wait", func(t *testing.T) {
		store := fake.NewStore()
		clk := clock.NewMockClock(baseTime)
		userID := uuid.New()
		seedPlacement(t, store, clk, 0, 0, "#FF0000", "alice", userID)

		clk.Add(10 * time.Second)
		q := queries.NewCanvasQueries(store, clk, cfg)
		status, err := q.GetCooldownStatus(ctx, userID)
		require.NoError(t, err)

		assert.False(t, status.CanPlace)
		assert.Equal(t, 20, status.RemainingSeconds)
		assert.Equal(t, 1, status.RemainingMinutes)
		require.NotNil(t, status.AvailableAt)
		assert.Equal(t, baseTime.Add(30*time.Second), *status.AvailableAt)
	})

	t.Run("expired cooldown can place again", func(t *testing.T) {
		store := fake.NewStore()
		clk := clock.NewMockClock(baseTime)
		userID := uuid.New()
		seedPlacement(t, store, clk, 0, 0, "#FF0000", "alice", userID)

		clk.Add(30 * time.Second)
		q := queries.NewCanvasQueries(store, clk, cfg)
		status, err := q.GetCooldownStatus(ctx, userID)
		require.NoError(t, err)
		assert.True(t, status.CanPlace)
		assert.Nil(t, status.AvailableAt)
	})
}
