package heightfield

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

// ErrInvalidResolution reports a malformed mesh resolution specifier.
var ErrInvalidResolution = errors.New("invalid mesh resolution")

// Resolution specifies the target grid size for resampling.
//
// The zero value means "keep the source resolution". A width with zero
// height means "scale to this width, derive the height from the source
// aspect ratio". Both set means "use exactly this size".
type Resolution struct {
	Width  int
	Height int
}

// IsZero reports whether the resolution is unset (no resampling).
func (r Resolution) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

// Target computes the output grid size for a source of the given shape.
func (r Resolution) Target(srcWidth, srcHeight int) (width, height int) {
	if r.IsZero() {
		return srcWidth, srcHeight
	}
	if r.Height == 0 {
		aspect := float64(srcHeight) / float64(srcWidth)
		return r.Width, int(math.Round(float64(r.Width) * aspect))
	}
	return r.Width, r.Height
}

// ParseResolution parses a resolution specifier string.
//
// Accepted forms: "" (unset), "W" (width only) and "WxH". Anything else,
// including fractional or non-positive values, is an invalid
// configuration.
func ParseResolution(s string) (Resolution, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Resolution{}, nil
	}
	parts := strings.Split(s, "x")
	if len(parts) > 2 {
		return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
	}
	var res Resolution
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
		}
		if i == 0 {
			res.Width = n
		} else {
			res.Height = n
		}
	}
	return res, nil
}

// Resample scales the grid to the requested resolution using bilinear
// interpolation. An unset resolution returns the grid unchanged.
func Resample(g *Grid, res Resolution) (*Grid, error) {
	if res.IsZero() {
		return g, nil
	}
	if res.Width <= 0 || res.Height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, res.Width, res.Height)
	}
	dstW, dstH := res.Target(g.Width(), g.Height())
	if dstW < 1 || dstH < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, dstW, dstH)
	}

	// x/image/draw scalers work on images, so the grid round-trips
	// through 16-bit grayscale. Lossless for 8-bit image sources.
	src := image.NewGray16(image.Rect(0, 0, g.Width(), g.Height()))
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			v := uint16(math.Round(g.At(row, col) * math.MaxUint16))
			src.SetGray16(col, row, color.Gray16{Y: v})
		}
	}

	dst := image.NewGray16(image.Rect(0, 0, dstW, dstH))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := NewGrid(dstW, dstH)
	for row := 0; row < dstH; row++ {
		for col := 0; col < dstW; col++ {
			out.Set(row, col, float64(dst.Gray16At(col, row).Y)/math.MaxUint16)
		}
	}
	return out, nil
}
