package relief

import (
	"errors"
	"fmt"

	"github.com/timothywong731/depthmap2mesh/pkg/geom"
	"github.com/timothywong731/depthmap2mesh/pkg/heightfield"
)

// Builder errors.
var (
	ErrInvalidParams          = errors.New("invalid relief parameters")
	ErrInsufficientResolution = errors.New("insufficient grid resolution")
)

// Params describes the physical dimensions of the carved solid, all in
// millimetres.
type Params struct {
	// Width is the design width along x. The physical height along y is
	// derived from the grid aspect ratio.
	Width float64
	// Depth is the maximum carving depth: a fully dark sample is carved
	// this far below the resting surface.
	Depth float64
	// BaseThickness is the minimum material left under the deepest cut.
	BaseThickness float64
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if p.Width <= 0 {
		return fmt.Errorf("%w: width %g mm, must be positive", ErrInvalidParams, p.Width)
	}
	if p.Depth <= 0 {
		return fmt.Errorf("%w: depth %g mm, must be positive", ErrInvalidParams, p.Depth)
	}
	if p.BaseThickness < 0 {
		return fmt.Errorf("%w: base thickness %g mm, must not be negative", ErrInvalidParams, p.BaseThickness)
	}
	return nil
}

// Build converts a heightfield into a closed solid mesh.
//
// The grid is assumed to be in modeling orientation (row 0 at minimum
// y). Sample 1.0 maps to the resting surface, 0.0 to the deepest cut.
// After assembly the whole solid is shifted down by the base thickness,
// so the resting surface sits at z = -BaseThickness and the bottom at
// z = -(Depth + 2*BaseThickness), leaving BaseThickness of material
// under the deepest cut.
func Build(g *heightfield.Grid, p Params) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	h, w := g.Height(), g.Width()
	if h < 2 || w < 2 {
		return nil, fmt.Errorf("%w: %dx%d grid, need at least 2x2 to form a surface", ErrInsufficientResolution, w, h)
	}

	n := h * w
	quads := (h - 1) * (w - 1)
	wallQuads := 2 * ((h - 1) + (w - 1))
	m := &Mesh{
		Vertices: make([]geom.Vec3, 0, 2*n),
		Faces:    make([][3]int, 0, 2*2*quads+2*wallQuads),
	}

	// Physical extent: x spans [0, Width]; y preserves the grid aspect.
	heightMM := p.Width * float64(h) / float64(w)
	bottomZ := -(p.Depth + p.BaseThickness)

	// Top vertices, row-major.
	for i := 0; i < h; i++ {
		y := heightMM * float64(i) / float64(h-1)
		for j := 0; j < w; j++ {
			x := p.Width * float64(j) / float64(w-1)
			z := -p.Depth * (1 - g.At(i, j))
			m.Vertices = append(m.Vertices, geom.Vec3{X: x, Y: y, Z: z})
		}
	}
	// Bottom vertices: same x,y at a constant floor level.
	for i := 0; i < n; i++ {
		v := m.Vertices[i]
		m.Vertices = append(m.Vertices, geom.Vec3{X: v.X, Y: v.Y, Z: bottomZ})
	}

	m.surfaceFaces(h, w)
	m.wallFaces(h, w)
	m.bottomFaces(h, w)

	// Global shift so BaseThickness of stock remains under the deepest
	// cut and the resting surface sits at -BaseThickness.
	for i := range m.Vertices {
		m.Vertices[i].Z -= p.BaseThickness
	}
	return m, nil
}

// surfaceFaces triangulates the top grid. Each cell quad splits along
// the diagonal from (i, j+1) to (i+1, j), wound counter-clockwise seen
// from above.
func (m *Mesh) surfaceFaces(h, w int) {
	for i := 0; i < h-1; i++ {
		for j := 0; j < w-1; j++ {
			idx := i*w + j
			m.Faces = append(m.Faces,
				[3]int{idx, idx + 1, idx + w},
				[3]int{idx + 1, idx + w + 1, idx + w},
			)
		}
	}
}

// wallFaces closes the four sides. Each boundary chain pairs a top-edge
// segment with the bottom-edge segment below it; the two walls of each
// opposite pair use mirrored windings so normals face away from the
// solid. Every quad keeps the top(k) to bottom(k+1) diagonal so the
// panels meet cleanly along the corner columns.
func (m *Mesh) wallFaces(h, w int) {
	n := h * w

	// Left (faces -x) and right (faces +x) columns.
	for i := 0; i < h-1; i++ {
		t := i * w
		b := n + t
		tn, bn := t+w, b+w
		m.Faces = append(m.Faces,
			[3]int{t, bn, b},
			[3]int{t, tn, bn},
		)

		t = i*w + (w - 1)
		b = n + t
		tn, bn = t+w, b+w
		m.Faces = append(m.Faces,
			[3]int{t, b, bn},
			[3]int{t, bn, tn},
		)
	}

	// Front (faces -y) and back (faces +y) rows.
	for j := 0; j < w-1; j++ {
		t := j
		b := n + t
		tn, bn := t+1, b+1
		m.Faces = append(m.Faces,
			[3]int{t, b, bn},
			[3]int{t, bn, tn},
		)

		t = (h-1)*w + j
		b = n + t
		tn, bn = t+1, b+1
		m.Faces = append(m.Faces,
			[3]int{t, bn, b},
			[3]int{t, tn, bn},
		)
	}
}

// bottomFaces mirrors the top triangulation over the bottom grid with
// the winding reversed, so normals face down.
func (m *Mesh) bottomFaces(h, w int) {
	n := h * w
	for i := 0; i < h-1; i++ {
		for j := 0; j < w-1; j++ {
			idx := n + i*w + j
			m.Faces = append(m.Faces,
				[3]int{idx, idx + w, idx + 1},
				[3]int{idx + 1, idx + w, idx + w + 1},
			)
		}
	}
}
