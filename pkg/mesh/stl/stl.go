// Package stl implements the mesh.Writer interface on top of the
// github.com/deadsy/sdfx STL renderer.
package stl

import (
	"errors"
	"fmt"

	"github.com/chazu/spall/pkg/mesh"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ mesh.Writer = (*Writer)(nil)

// Writer writes binary STL files.
type Writer struct{}

// New returns a new STL writer.
func New() *Writer {
	return &Writer{}
}

// Write serializes the mesh to a binary STL file at path. Facet normals
// are derived from the triangle winding by the renderer.
func (w *Writer) Write(m *mesh.Mesh, path string) error {
	if m == nil || m.IsEmpty() {
		return errors.New("stl: empty mesh")
	}

	triangles := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for t := 0; t < m.TriangleCount(); t++ {
		var tri sdf.Triangle3
		for j := 0; j < 3; j++ {
			vi := int(m.Indices[t*3+j]) * 3
			tri[j] = v3.Vec{
				X: m.Vertices[vi],
				Y: m.Vertices[vi+1],
				Z: m.Vertices[vi+2],
			}
		}
		triangles = append(triangles, &tri)
	}

	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	return nil
}
