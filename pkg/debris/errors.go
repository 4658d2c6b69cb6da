package debris

import (
	"fmt"

	"github.com/chazu/spall/pkg/hull"
)

// ParamError reports a generation parameter outside its documented range.
type ParamError struct {
	Field    string
	Value    float64
	Min, Max float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %g outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// Geometry failures surfaced by a generation attempt. These alias the
// pkg/hull sentinels so errors.Is matches whether the failure came from
// scale normalization or from hull construction. Both are terminal for
// the attempt: no partial mesh is ever returned. A caller may retry with
// a fresh random draw; retrying is caller policy, never done internally.
var (
	ErrDegenerateGeometry = hull.ErrDegenerate
	ErrInsufficientPoints = hull.ErrInsufficientPoints
)
