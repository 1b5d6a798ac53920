package relief

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"

	"github.com/timothywong731/depthmap2mesh/pkg/geom"
)

// WriteSTL serializes the mesh to a binary STL file. Triangles are
// written exactly as built, with no welding or simplification.
func WriteSTL(path string, m *Mesh) error {
	tris := make([]*model3d.Triangle, 0, len(m.Faces))
	for _, f := range m.Faces {
		tris = append(tris, &model3d.Triangle{
			coord3D(m.Vertices[f[0]]),
			coord3D(m.Vertices[f[1]]),
			coord3D(m.Vertices[f[2]]),
		})
	}
	if err := model3d.NewMeshTriangles(tris).SaveGroupedSTL(path); err != nil {
		return errors.Wrapf(err, "write STL %s", path)
	}
	return nil
}

func coord3D(v geom.Vec3) model3d.Coord3D {
	return model3d.XYZ(v.X, v.Y, v.Z)
}
