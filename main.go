// Command spall generates a random convex debris fragment and writes it
// to a binary STL file.
package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/chazu/spall/pkg/debris"
)

func main() {
	vertices := flag.Int("vertices", 10, "number of seed vertices (5-20)")
	length := flag.Float64("length", 10, "characteristic length in mm (1-100)")
	irregularity := flag.Float64("irregularity", 0.5, "surface irregularity (0.0-1.0)")
	seed := flag.Uint64("seed", 0, "random seed, 0 means time-derived")
	out := flag.String("o", "debris.stl", "output STL path")
	flag.Parse()

	app := NewApp(newSource(*seed))

	m, err := app.Generate(debris.Params{
		VertexCount:          *vertices,
		CharacteristicLength: *length,
		Irregularity:         *irregularity,
	})
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	log.Printf("fragment: %d hull vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	log.Printf("achieved characteristic length: %.2f mm (%.2f cm)",
		m.CharacteristicLength, m.CharacteristicLength/10)

	if err := app.Export(*out); err != nil {
		log.Fatalf("export: %v", err)
	}
	log.Printf("wrote %s", *out)
}

// newSource builds the PCG source for a run. Seed 0 derives one from the
// wall clock; anything else reproduces a previous run exactly.
func newSource(seed uint64) rand.Source {
	if seed == 0 {
		now := uint64(time.Now().UnixNano())
		return rand.NewPCG(now, now^0x9e3779b97f4a7c15)
	}
	return rand.NewPCG(seed, seed)
}
