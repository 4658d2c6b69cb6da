package debris

// Documented parameter ranges. Generation refuses to run outside them.
const (
	MinVertexCount = 5
	MaxVertexCount = 20

	MinCharacteristicLength = 1.0   // mm
	MaxCharacteristicLength = 100.0 // mm

	MinIrregularity = 0.0
	MaxIrregularity = 1.0
)

// Params are the inputs to a single generation run. Immutable once
// constructed; Validate must pass before any stage runs.
type Params struct {
	VertexCount          int     // number of seed points on the sphere
	CharacteristicLength float64 // target maximum pairwise distance, in mm
	Irregularity         float64 // sigma of the per-axis Gaussian perturbation
}

// DefaultParams returns the stock parameter set: a mid-sized, moderately
// rough fragment.
func DefaultParams() Params {
	return Params{
		VertexCount:          10,
		CharacteristicLength: 10,
		Irregularity:         0.5,
	}
}

// Validate checks every field against its documented range and returns a
// ParamError naming the first offending field.
func (p Params) Validate() error {
	if p.VertexCount < MinVertexCount || p.VertexCount > MaxVertexCount {
		return &ParamError{
			Field: "vertex_count",
			Value: float64(p.VertexCount),
			Min:   MinVertexCount,
			Max:   MaxVertexCount,
		}
	}
	if p.CharacteristicLength < MinCharacteristicLength || p.CharacteristicLength > MaxCharacteristicLength {
		return &ParamError{
			Field: "characteristic_length",
			Value: p.CharacteristicLength,
			Min:   MinCharacteristicLength,
			Max:   MaxCharacteristicLength,
		}
	}
	if p.Irregularity < MinIrregularity || p.Irregularity > MaxIrregularity {
		return &ParamError{
			Field: "irregularity",
			Value: p.Irregularity,
			Min:   MinIrregularity,
			Max:   MaxIrregularity,
		}
	}
	return nil
}
