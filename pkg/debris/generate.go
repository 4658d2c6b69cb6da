package debris

import (
	"fmt"
	"math/rand/v2"

	"github.com/chazu/spall/pkg/hull"
	"github.com/chazu/spall/pkg/mesh"
)

// Generator runs the generation pipeline. The random source is injected
// and caller-owned: a seeded source makes runs reproducible, a shared
// source makes consecutive runs draw fresh geometry.
type Generator struct {
	src rand.Source
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{src: src}
}

// Generate runs the four stages in order: sample, normalize, hull, mesh.
// It returns the exportable mesh, or an error if the parameters are out
// of range or the random draw produced a degenerate point configuration.
// The stages run synchronously to completion; no partial mesh is ever
// returned.
func (g *Generator) Generate(p Params) (*mesh.Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	points := Sample(g.src, p.VertexCount, p.Irregularity)

	achieved, err := Normalize(points, p.CharacteristicLength)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	poly, err := hull.Build(points)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	m, err := mesh.FromPolyhedron(poly, achieved)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return m, nil
}
