package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"pixelboard/internal/domain/canvas"

	"pixelboard/internal/pkg/errs"
)

var ErrInvalidScale = errs.New("snapshot scale must be positive")

// background for cells nobody has written yet
var emptyCellColor = color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}

// Render serializes the grid to a PNG, scale screen pixels per cell.
// Rendering is deterministic: the same cells always produce the same bytes.
func Render(bounds canvas.Bounds, cells []canvas.Cell, scale int) ([]byte, error) {
	if scale <= 0 {
		return nil, ErrInvalidScale
	}

	img := image.NewNRGBA(image.Rect(0, 0, bounds.Width()*scale, bounds.Height()*scale))
	for y := 0; y < bounds.Height()*scale; y++ {
		for x := 0; x < bounds.Width()*scale; x++ {
			img.SetNRGBA(x, y, emptyCellColor)
		}
	}

	for _, cell := range cells {
		r, g, b := cell.Color().RGB()
		c := color.NRGBA{R: r, G: g, B: b, A: 0xFF}
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				img.SetNRGBA(cell.X()*scale+dx, cell.Y()*scale+dy, c)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errs.Wrap(err, "failed to encode canvas PNG")
	}
	return buf.Bytes(), nil
}
