// Package heightfield loads grayscale depthmap images into normalized
// sample grids and resamples them to a target mesh resolution.
package heightfield

import (
	"image"
	"image/color"
)

// Grid is a row-major 2D field of normalized height samples in [0, 1].
// A sample of 1.0 means no carving (full surface height) and 0.0 means
// maximum carving depth.
type Grid struct {
	width   int
	height  int
	samples []float64
}

// NewGrid creates a zero-filled grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:   width,
		height:  height,
		samples: make([]float64, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the sample at the given row and column.
func (g *Grid) At(row, col int) float64 {
	return g.samples[row*g.width+col]
}

// Set stores a sample at the given row and column.
func (g *Grid) Set(row, col int, v float64) {
	g.samples[row*g.width+col] = v
}

// FlipVertical reverses the row order in place so that row 0 becomes the
// bottom edge. Image convention puts row 0 at the top of the picture;
// modeling convention puts row 0 at minimum y.
func (g *Grid) FlipVertical() {
	for top, bottom := 0, g.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := g.samples[top*g.width : (top+1)*g.width]
		b := g.samples[bottom*g.width : (bottom+1)*g.width]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// FromImage converts any decoded image to a normalized grayscale grid.
// Color images are reduced to 8-bit luminance first, matching how
// grayscale depthmaps are authored.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	grid := NewGrid(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			grid.Set(y-bounds.Min.Y, x-bounds.Min.X, float64(gray.Y)/255.0)
		}
	}
	return grid
}
