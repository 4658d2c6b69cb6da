package debris

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix returns the symmetric pairwise Euclidean distance matrix
// of the cloud (zero diagonal). The cloud must hold at least one point;
// mat.SymDense has no zero-size form.
func DistanceMatrix(points []r3.Vector) *mat.SymDense {
	n := len(points)
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(i, j, points[i].Sub(points[j]).Norm())
		}
	}
	return d
}

// MaxPairwiseDistance returns the largest entry of the pairwise distance
// matrix: the cloud's characteristic length. Clouds with fewer than two
// points have no pairs and report zero.
func MaxPairwiseDistance(points []r3.Vector) float64 {
	if len(points) < 2 {
		return 0
	}
	d := DistanceMatrix(points)
	max := 0.0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if v := d.At(i, j); v > max {
				max = v
			}
		}
	}
	return max
}

// Normalize rescales the cloud in place by a single isotropic factor so
// its maximum pairwise distance equals length, and returns the achieved
// value (equal to length up to one float64 rounding). The unscaled cloud
// is gone after the call.
//
// A cloud whose points all coincide has no scale; that returns
// ErrDegenerateGeometry rather than dividing by zero.
func Normalize(points []r3.Vector, length float64) (float64, error) {
	maxDist := MaxPairwiseDistance(points)
	if maxDist == 0 {
		return 0, fmt.Errorf("normalize: zero maximum pairwise distance: %w", ErrDegenerateGeometry)
	}
	scale := length / maxDist
	for i := range points {
		points[i] = points[i].Mul(scale)
	}
	return maxDist * scale, nil
}
