package mesh

import (
	"strings"
	"testing"

	"github.com/chazu/spall/pkg/hull"
	"github.com/golang/geo/r3"
)

// --- Mesh helper method tests ---

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float64
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float64{1, 2, 3}, 1},
		{"four vertices", []float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
	})
	t.Run("non-empty mesh", func(t *testing.T) {
		m := &Mesh{Vertices: []float64{1, 2, 3}}
		if m.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty mesh, want false")
		}
	})
}

// --- Adapter tests ---

func testTetrahedron() *hull.Polyhedron {
	return &hull.Polyhedron{
		Vertices: []r3.Vector{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Faces: [][3]int{
			{0, 2, 1},
			{0, 1, 3},
			{0, 3, 2},
			{1, 2, 3},
		},
	}
}

func TestFromPolyhedron(t *testing.T) {
	m, err := FromPolyhedron(testTetrahedron(), 42.5)
	if err != nil {
		t.Fatalf("FromPolyhedron: %v", err)
	}
	if got := m.VertexCount(); got != 4 {
		t.Errorf("VertexCount = %d, want 4", got)
	}
	if got := m.TriangleCount(); got != 4 {
		t.Errorf("TriangleCount = %d, want 4", got)
	}
	if m.CharacteristicLength != 42.5 {
		t.Errorf("CharacteristicLength = %v, want 42.5", m.CharacteristicLength)
	}
	// Flat layout: vertex 1 is (1,0,0).
	if m.Vertices[3] != 1 || m.Vertices[4] != 0 || m.Vertices[5] != 0 {
		t.Errorf("vertex 1 = (%v,%v,%v), want (1,0,0)", m.Vertices[3], m.Vertices[4], m.Vertices[5])
	}
}

func TestFromPolyhedronIndexOutOfRange(t *testing.T) {
	p := testTetrahedron()
	p.Faces[2] = [3]int{0, 3, 7} // 7 does not exist
	m, err := FromPolyhedron(p, 10)
	if m != nil {
		t.Error("got a mesh despite out-of-range index")
	}
	if err == nil || !strings.Contains(err.Error(), "references vertex 7") {
		t.Errorf("err = %v, want out-of-range index error", err)
	}
}

func TestFromPolyhedronNegativeIndex(t *testing.T) {
	p := testTetrahedron()
	p.Faces[0] = [3]int{-1, 2, 1}
	if _, err := FromPolyhedron(p, 10); err == nil {
		t.Error("negative index accepted")
	}
}
