package builder

// Default tuning for the embedded variant's aspect-quality gate. These are
// deliberately small: min_area bounds how fine a face may be subdivided
// before it is retired from the valid pool, and min_coeff keeps inserted
// points away from a face's boundary.
const (
	defaultMinArea   = float32(1e-5)
	defaultMinCoeff  = float32(0.01)
	minCoeffConstant = float32(0.33)
)
