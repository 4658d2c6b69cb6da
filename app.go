package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/chazu/spall/pkg/debris"
	"github.com/chazu/spall/pkg/mesh"
	"github.com/chazu/spall/pkg/mesh/stl"
)

// ErrNothingGenerated is returned by Export when no generation has run
// yet. It is a caller-contract violation, distinct from generation errors.
var ErrNothingGenerated = errors.New("no fragment generated yet")

// App ties the generator to the mesh writer and owns the most recent
// mesh. Each Generate overwrites it; Export serializes whatever is
// current. There is no shared state beyond that one field, so an App is
// meant for a single caller at a time.
type App struct {
	gen     *debris.Generator
	writer  mesh.Writer
	current *mesh.Mesh
}

// NewApp creates an App drawing randomness from src and writing STL.
func NewApp(src rand.Source) *App {
	return &App{
		gen:    debris.NewGenerator(src),
		writer: stl.New(),
	}
}

// Generate runs one generation with the given parameters. On success the
// result becomes the current mesh; on failure the previous mesh, if any,
// is kept untouched.
func (a *App) Generate(p debris.Params) (*mesh.Mesh, error) {
	m, err := a.gen.Generate(p)
	if err != nil {
		return nil, err
	}
	a.current = m
	return m, nil
}

// Export writes the current mesh to an STL file at path.
func (a *App) Export(path string) error {
	if a.current == nil {
		return ErrNothingGenerated
	}
	if err := a.writer.Write(a.current, path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
