// Package hull extracts the convex hull of a 3D point cloud as a closed
// triangulated polyhedron. Hull construction is delegated to a QuickHull
// implementation; this package adds the validity checks the rest of the
// pipeline relies on.
package hull

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"
)

const (
	// Epsilon is the coplanarity tolerance handed to the QuickHull solver.
	Epsilon = 1e-10

	// minVolumeRatio is the enclosed-volume floor, relative to the cube of
	// the bounding-box diagonal. Hulls below it are flat sandwiches from
	// (near-)coplanar input, not usable solids.
	minVolumeRatio = 1e-9
)

var (
	// ErrInsufficientPoints means fewer than four points were supplied.
	ErrInsufficientPoints = errors.New("hull: at least 4 points required")

	// ErrDegenerate means the points admit no non-degenerate 3D hull
	// (coplanar, collinear, or coincident configurations).
	ErrDegenerate = errors.New("hull: degenerate point configuration")
)

// Polyhedron is a closed triangulated convex surface. Vertices is the
// hull-extreme subset of the input cloud; every face indexes into it.
// Faces wind counterclockwise seen from outside, so cross products of
// their edges point outward.
type Polyhedron struct {
	Vertices []r3.Vector
	Faces    [][3]int
}

// Build computes the convex hull of points. Input points interior to the
// hull are dropped, so the result can have fewer vertices than the cloud;
// that is expected, not an error. Configurations the solver cannot
// triangulate into a solid return ErrDegenerate.
func Build(points []r3.Vector) (*Polyhedron, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%w, got %d", ErrInsufficientPoints, len(points))
	}

	// The solver's native winding is already counterclockwise seen from
	// outside; its ccw flag flips that, so it stays off.
	var qh quickhull.QuickHull
	ch := qh.ConvexHull(points, false, false, Epsilon)
	if len(ch.Indices)%3 != 0 {
		return nil, fmt.Errorf("hull: solver returned %d indices, not a triangle list", len(ch.Indices))
	}

	p := &Polyhedron{
		Vertices: ch.Vertices,
		Faces:    make([][3]int, 0, len(ch.Indices)/3),
	}
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		p.Faces = append(p.Faces, [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]})
	}

	// A solid needs at least a tetrahedron.
	if len(p.Vertices) < 4 || len(p.Faces) < 4 {
		return nil, fmt.Errorf("%w: hull collapsed to %d vertices, %d faces",
			ErrDegenerate, len(p.Vertices), len(p.Faces))
	}
	d := p.diagonal()
	if d == 0 || math.Abs(p.Volume()) < minVolumeRatio*d*d*d {
		return nil, fmt.Errorf("%w: enclosed volume is zero", ErrDegenerate)
	}
	return p, nil
}

// Volume returns the enclosed volume via the divergence theorem: the sum
// of signed tetrahedra spanned by the origin and each face. Positive for
// an outward-consistent winding.
func (p *Polyhedron) Volume() float64 {
	var six float64
	for _, f := range p.Faces {
		a, b, c := p.Vertices[f[0]], p.Vertices[f[1]], p.Vertices[f[2]]
		six += a.Dot(b.Cross(c))
	}
	return six / 6
}

// diagonal returns the axis-aligned bounding box diagonal of the hull
// vertices, used as the hull's size scale.
func (p *Polyhedron) diagonal() float64 {
	if len(p.Vertices) == 0 {
		return 0
	}
	min, max := p.Vertices[0], p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		min.Z = math.Min(min.Z, v.Z)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
		max.Z = math.Max(max.Z, v.Z)
	}
	return max.Sub(min).Norm()
}
