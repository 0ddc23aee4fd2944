package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvplane/geom"
)

// Option customizes a Generate/GenerateAbs call.
type Option func(cfg *config)

type config struct {
	rng      *rand.Rand
	minArea  float32
	minCoeff float32
	square   bool
	trans    geom.Aff2
	flipProb geom.Vec2
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		minArea:  defaultMinArea,
		minCoeff: defaultMinCoeff,
		trans:    geom.Identity2(),
		flipProb: geom.Vec2{0, 0},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand sets the RNG source. Required: Generate/GenerateAbs return
// ErrNeedRandSource without one.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed seeds a fresh RNG for reproducible generation.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMinArea sets the embedded variant's subdivision floor. Panics if a
// is not positive.
func WithMinArea(a float32) Option {
	if a <= 0 {
		panic("builder: WithMinArea: area must be positive")
	}
	return func(cfg *config) { cfg.minArea = a }
}

// WithMinCoeff sets the minimum barycentric coefficient used when placing a
// new point inside a face. Panics outside (0, 1/3].
func WithMinCoeff(c float32) Option {
	if c <= 0 || c > 1.0/3.0 {
		panic("builder: WithMinCoeff: coefficient out of range")
	}
	return func(cfg *config) { cfg.minCoeff = c }
}

// WithSquareOuterFace selects the four-point square outer face variant
// instead of the default outer triangle.
func WithSquareOuterFace() Option {
	return func(cfg *config) { cfg.square = true }
}

// WithTransform applies t to the initial outer-face points.
func WithTransform(t geom.Aff2) Option {
	return func(cfg *config) { cfg.trans = t }
}

// WithFlipProbability sets the two flip-probability thresholds consumed by
// GenerateAbs: a uniform draw r generates 0, 1, or 2 edge flips per
// inserted vertex depending on how many thresholds r exceeds.
func WithFlipProbability(p geom.Vec2) Option {
	return func(cfg *config) { cfg.flipProb = p }
}
