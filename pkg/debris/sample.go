package debris

import (
	"math"
	"math/rand/v2"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample draws n seed points on the unit sphere and perturbs each
// coordinate with zero-mean Gaussian noise of standard deviation
// irregularity. All draws come from src, so a seeded source reproduces
// the cloud bit for bit.
//
// The polar angle is drawn uniformly from [0, pi]. That biases point
// density toward the poles (a uniform surface distribution would draw
// cos(phi) uniformly instead); the bias is kept as an extra source of
// shape irregularity, not corrected.
func Sample(src rand.Source, n int, irregularity float64) []r3.Vector {
	azimuth := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
	polar := distuv.Uniform{Min: 0, Max: math.Pi, Src: src}
	noise := distuv.Normal{Mu: 0, Sigma: irregularity, Src: src}

	points := make([]r3.Vector, n)
	for i := range points {
		theta := azimuth.Rand()
		phi := polar.Rand()
		sinPhi, cosPhi := math.Sincos(phi)

		x := sinPhi*math.Cos(theta) + noise.Rand()
		y := sinPhi*math.Sin(theta) + noise.Rand()
		z := cosPhi + noise.Rand()
		points[i] = r3.Vector{X: x, Y: y, Z: z}
	}
	return points
}
