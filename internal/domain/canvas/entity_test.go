//go:build unit

package canvas_test

import (
	"strings"
	"testing"

	"pixelboard/internal/domain/canvas"
	"pixelboard/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PlacementBuilder)
	errIs  error
}

func TestPlacement(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewPlacementBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.X, actual.X())
		assert.Equal(t, b.Y, actual.Y())
		assert.Equal(t, b.Color, actual.Color().String())
		assert.Equal(t, b.UserID, actual.UserID())
		assert.Equal(t, b.Username, actual.Username().String())
		assert.Equal(t, b.Now, actual.PlacedAt())
	})

	t.Run("coordinate bounds", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "origin OK",
				mutate: func(b *builder.PlacementBuilder) { b.X, b.Y = 0, 0 },
			},
			{
				name:   "far corner OK",
				mutate: func(b *builder.PlacementBuilder) { b.X, b.Y = 9, 9 },
			},
			{
				name:   "negative x NG",
				mutate: func(b *builder.PlacementBuilder) { b.X = -1 },
				errIs:  canvas.ErrOutOfBounds,
			},
			{
				name:   "negative y NG",
				mutate: func(b *builder.PlacementBuilder) { b.Y = -1 },
				errIs:  canvas.ErrOutOfBounds,
			},
			{
				name:   "x equal to width NG",
				mutate: func(b *builder.PlacementBuilder) { b.X = 10 },
				errIs:  canvas.ErrOutOfBounds,
			},
			{
				name:   "y equal to height NG",
				mutate: func(b *builder.PlacementBuilder) { b.Y = 10 },
				errIs:  canvas.ErrOutOfBounds,
			},
		})
	})

	t.Run("color validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "uppercase hex OK",
				mutate: func(b *builder.PlacementBuilder) { b.Color = "#FF8800" },
			},
			{
				name:   "lowercase hex OK",
				mutate: func(b *builder.PlacementBuilder) { b.Color = "#ff8800" },
			},
			{
				name:   "missing hash NG",
				mutate: func(b *builder.PlacementBuilder) { b.Color = "FF0000" },
				errIs:  canvas.ErrInvalidColor,
			},
			{
				name:   "short form NG",
				mutate: func(b *builder.PlacementBuilder) { b.Color = "#FFF" },
				errIs:  canvas.ErrInvalidColor,
			},
			{
				name:   "non-hex digit NG",
				mutate: func(b *builder.PlacementBuilder) { b.Color = "#GG0000" },
				errIs:  canvas.ErrInvalidColor,
			},
			{
				name:   "empty NG",
				mutate: func(b *builder.PlacementBuilder) { b.Color = "" },
				errIs:  canvas.ErrInvalidColor,
			},
		})
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "max length OK (50 chars)",
				mutate: func(b *builder.PlacementBuilder) { b.Username = strings.Repeat("a", 50) },
			},
			{
				name:   "too long NG (51 chars)",
				mutate: func(b *builder.PlacementBuilder) { b.Username = strings.Repeat("a", 51) },
				errIs:  canvas.ErrUsernameTooLong,
			},
			{
				name:   "empty NG",
				mutate: func(b *builder.PlacementBuilder) { b.Username = "" },
				errIs:  canvas.ErrEmptyUsername,
			},
			{
				name:   "whitespace only NG",
				mutate: func(b *builder.PlacementBuilder) { b.Username = "   " },
				errIs:  canvas.ErrEmptyUsername,
			},
		})
	})

	t.Run("username is trimmed", func(t *testing.T) {
		p, err := builder.NewPlacementBuilder().
			With(func(b *builder.PlacementBuilder) { b.Username = "  alice  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "alice", p.Username().String())
	})

	t.Run("nil user id NG", func(t *testing.T) {
		_, err := builder.NewPlacementBuilder().
			With(func(b *builder.PlacementBuilder) { b.UserID = uuid.Nil }).
			BuildDomain()
		assert.ErrorIs(t, err, canvas.ErrNilUserID)
	})

	t.Run("generated ids are unique", func(t *testing.T) {
		p1, err := builder.NewPlacementBuilder().BuildDomain()
		require.NoError(t, err)
		p2, err := builder.NewPlacementBuilder().BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, p1.ID(), p2.ID())
	})

	t.Run("cell projection carries the placement state", func(t *testing.T) {
		b := builder.NewPlacementBuilder()
		p, err := b.BuildDomain()
		require.NoError(t, err)

		cell := p.Cell()
		assert.Equal(t, b.X, cell.X())
		assert.Equal(t, b.Y, cell.Y())
		assert.Equal(t, b.Color, cell.Color().String())
		assert.Equal(t, b.UserID, cell.UserID())
		assert.Equal(t, b.Username, cell.Username())
		assert.Equal(t, b.Now, cell.PlacedAt())
	})
}

func TestColorRGB(t *testing.T) {
	c, err := canvas.NewColor("#1A2b3C")
	require.NoError(t, err)

	r, g, b := c.RGB()
	assert.Equal(t, uint8(0x1A), r)
	assert.Equal(t, uint8(0x2B), g)
	assert.Equal(t, uint8(0x3C), b)
	assert.Equal(t, "#1A2b3C", c.String(), "raw string must round-trip unchanged")
}

func TestBounds(t *testing.T) {
	_, err := canvas.NewBounds(0, 10)
	assert.ErrorIs(t, err, canvas.ErrInvalidBounds)

	_, err = canvas.NewBounds(10, -1)
	assert.ErrorIs(t, err, canvas.ErrInvalidBounds)

	bounds, err := canvas.NewBounds(100, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, bounds.Width())
	assert.Equal(t, 100, bounds.Height())
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, canvas.IsValidationError(canvas.ErrOutOfBounds))
	assert.True(t, canvas.IsValidationError(canvas.ErrInvalidColor))
	assert.False(t, canvas.IsValidationError(assert.AnError))
	assert.False(t, canvas.IsValidationError(nil))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPlacementBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
