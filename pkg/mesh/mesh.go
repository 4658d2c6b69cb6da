// Package mesh defines the exportable triangle mesh produced by
// generation and the writer seam used to serialize it. The mesh is pure
// data; all geometric work happens upstream.
package mesh

import (
	"fmt"

	"github.com/chazu/spall/pkg/hull"
)

// Mesh is a triangulated surface ready for export.
// Arrays are flat: vertices has 3 floats per vertex (x,y,z),
// indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float64 // [x0,y0,z0, x1,y1,z1, ...]
	Indices  []uint32  // [i0,i1,i2, ...] triangles

	// CharacteristicLength is the achieved maximum pairwise distance of
	// the scaled cloud, in mm. Equal to the requested value up to
	// float64 rounding.
	CharacteristicLength float64
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// FromPolyhedron packages a hull polyhedron and its achieved
// characteristic length into a Mesh. It performs no geometric
// computation; its one job is guaranteeing that every triangle index is
// in range, since a writer fed an out-of-range index produces garbage.
func FromPolyhedron(p *hull.Polyhedron, achievedLength float64) (*Mesh, error) {
	m := &Mesh{
		Vertices:             make([]float64, 0, len(p.Vertices)*3),
		Indices:              make([]uint32, 0, len(p.Faces)*3),
		CharacteristicLength: achievedLength,
	}
	for _, v := range p.Vertices {
		m.Vertices = append(m.Vertices, v.X, v.Y, v.Z)
	}
	for fi, f := range p.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(p.Vertices) {
				return nil, fmt.Errorf("mesh: face %d references vertex %d, have %d vertices",
					fi, idx, len(p.Vertices))
			}
			m.Indices = append(m.Indices, uint32(idx))
		}
	}
	return m, nil
}

// Writer serializes a mesh to a triangulated-surface file. The byte-level
// format is the implementation's business; triangle normals come from
// vertex winding.
type Writer interface {
	Write(m *Mesh, path string) error
}
