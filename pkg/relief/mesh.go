// Package relief turns a normalized heightfield into a watertight solid
// triangle mesh: a carved top surface closed off by four vertical walls
// and a flat bottom, suitable for CNC milling or 3D printing.
package relief

import (
	"github.com/timothywong731/depthmap2mesh/pkg/geom"
)

// Mesh is an indexed triangle mesh. Faces reference Vertices by
// position. The vertex layout is fixed by the builder: for an HxW grid,
// top-surface vertex (row, col) sits at index row*W+col and its bottom
// counterpart at row*W+col+H*W.
type Mesh struct {
	Vertices []geom.Vec3
	Faces    [][3]int
}

// FaceNormal returns the unit normal of face i under the right-hand
// rule. The builder winds every face counter-clockwise viewed from
// outside the solid, so normals point outward.
func (m *Mesh) FaceNormal(i int) geom.Vec3 {
	f := m.Faces[i]
	a := m.Vertices[f[0]]
	b := m.Vertices[f[1]]
	c := m.Vertices[f[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max geom.Vec3) {
	if len(m.Vertices) == 0 {
		return geom.Vec3{}, geom.Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max
}
