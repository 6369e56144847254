package canvas

import "strings"

const MaxUsernameLength = 50

type Bounds struct {
	width  int
	height int
}

func NewBounds(width, height int) (Bounds, error) {
	if width <= 0 || height <= 0 {
		return Bounds{}, ErrInvalidBounds
	}
	return Bounds{width: width, height: height}, nil
}

func (b Bounds) Width() int  { return b.width }
func (b Bounds) Height() int { return b.height }

type Coordinates struct {
	x int
	y int
}

func NewCoordinates(x, y int, bounds Bounds) (Coordinates, error) {
	if x < 0 || x >= bounds.width || y < 0 || y >= bounds.height {
		return Coordinates{}, ErrOutOfBounds
	}
	return Coordinates{x: x, y: y}, nil
}

func (c Coordinates) X() int { return c.x }
func (c Coordinates) Y() int { return c.y }

// Color is a #RRGGBB token. The raw string is preserved as received so that
// colors round-trip through persistence byte for byte.
type Color struct {
	value string
}

func NewColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, ErrInvalidColor
	}
	for i := 1; i < len(s); i++ {
		if hexNibble(s[i]) < 0 {
			return Color{}, ErrInvalidColor
		}
	}
	return Color{value: s}, nil
}

func (c Color) String() string { return c.value }

func (c Color) RGB() (r, g, b uint8) {
	r = uint8(hexNibble(c.value[1])<<4 | hexNibble(c.value[2]))
	g = uint8(hexNibble(c.value[3])<<4 | hexNibble(c.value[4]))
	b = uint8(hexNibble(c.value[5])<<4 | hexNibble(c.value[6]))
	return r, g, b
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Username{}, ErrEmptyUsername
	}
	if len(t) > MaxUsernameLength {
		return Username{}, ErrUsernameTooLong
	}
	return Username{value: t}, nil
}

func (u Username) String() string { return u.value }
