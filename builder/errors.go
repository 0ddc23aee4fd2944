package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a requested vertex count below the minimum a
// triangulation can represent (3).
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrNeedRandSource indicates Generate was called without a seeded RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidProbability indicates a flip-probability component outside
// [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

func builderErrorf(op string, err error) error {
	return fmt.Errorf("builder: %s: %w", op, err)
}
