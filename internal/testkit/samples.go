package testkit

import (
	"math"
	"math/rand"
)

// Shape names the population a synthetic sample is drawn from
type Shape string

const (
	ShapeNormal      Shape = "normal"
	ShapeUniform     Shape = "uniform"
	ShapeExponential Shape = "exponential"
	ShapeLogNormal   Shape = "lognormal"
	ShapeBimodal     Shape = "bimodal"
)

// SampleConfig configures the sample generator
type SampleConfig struct {
	Shape Shape   `json:"shape"`
	N     int     `json:"n"`
	Mean  float64 `json:"mean"`
	Scale float64 `json:"scale"`
	Seed  int64   `json:"seed"`
}

// DefaultSampleConfig returns a standard normal sample of 100 observations
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{
		Shape: ShapeNormal,
		N:     100,
		Mean:  0,
		Scale: 1,
		Seed:  42,
	}
}

// SampleGenerator produces reproducible samples for tests. The same config
// always yields the same observations.
type SampleGenerator struct {
	config SampleConfig
	rng    *rand.Rand
}

// NewSampleGenerator creates a new sample generator
func NewSampleGenerator(config SampleConfig) *SampleGenerator {
	if config.Scale <= 0 {
		config.Scale = 1
	}
	return &SampleGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate draws config.N observations
func (g *SampleGenerator) Generate() []float64 {
	out := make([]float64, g.config.N)
	for i := range out {
		out[i] = g.config.Mean + g.config.Scale*g.draw()
	}
	return out
}

func (g *SampleGenerator) draw() float64 {
	switch g.config.Shape {
	case ShapeUniform:
		return g.rng.Float64()*2 - 1
	case ShapeExponential:
		return g.rng.ExpFloat64()
	case ShapeLogNormal:
		return math.Exp(g.rng.NormFloat64())
	case ShapeBimodal:
		// two well separated modes, an easy rejection for every test
		if g.rng.Intn(2) == 0 {
			return g.rng.NormFloat64()*0.5 - 3
		}
		return g.rng.NormFloat64()*0.5 + 3
	default:
		return g.rng.NormFloat64()
	}
}

// Sample is shorthand for drawing n observations of shape with a seed.
func Sample(shape Shape, n int, seed int64) []float64 {
	cfg := DefaultSampleConfig()
	cfg.Shape, cfg.N, cfg.Seed = shape, n, seed
	return NewSampleGenerator(cfg).Generate()
}
