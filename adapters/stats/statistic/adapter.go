package statistic

import (
	"context"
	"fmt"
	"math"
	"sort"

	"normtest/domain/core"
	"normtest/domain/normality"
	"normtest/internal"
	"normtest/ports"

	"github.com/montanaflynn/stats"
)

// MaxShapiroWilkN is the largest sample the Royston approximation covers.
const MaxShapiroWilkN = 5000

// calculator computes the statistic of one test from a sorted sample.
type calculator func(s sample) (value float64, pValue *float64, err error)

// sample is a validated, sorted copy of the observations with its moments.
type sample struct {
	x    []float64
	n    int
	mean float64
	sd   float64
}

// Adapter implements ports.StatisticPort for the five registered tests
type Adapter struct {
	calculators map[normality.TestID]calculator
	logger      *internal.Logger
}

// NewAdapter creates the statistic adapter logging through the LOG_LEVEL default
func NewAdapter() *Adapter {
	return NewAdapterWithLogger(internal.DefaultLogger)
}

// NewAdapterWithLogger creates the statistic adapter with a leveled logger
func NewAdapterWithLogger(logger *internal.Logger) *Adapter {
	return &Adapter{
		logger: logger.WithComponent("StatisticAdapter"),
		calculators: map[normality.TestID]calculator{
			normality.ShapiroWilk:       shapiroWilk,
			normality.KolmogorovSmirnov: kolmogorovSmirnov,
			normality.Lilliefors:        lilliefors,
			normality.AndersonDarling:   andersonDarling,
			normality.AbdiMolin:         abdiMolin,
		},
	}
}

var _ ports.StatisticPort = (*Adapter)(nil)

// Compute validates the observations and evaluates the statistic of test.
// alpha is accepted for interface symmetry; none of the statistics depend on it.
func (a *Adapter) Compute(ctx context.Context, test normality.TestID, observations []float64, alpha float64) (normality.SampleStatistic, error) {
	if err := ctx.Err(); err != nil {
		return normality.SampleStatistic{}, err
	}

	d, err := normality.Describe(test)
	if err != nil {
		return normality.SampleStatistic{}, err
	}
	calc, ok := a.calculators[d.ID]
	if !ok {
		return normality.SampleStatistic{}, normality.NewUnknownTestError(string(test))
	}

	s, err := prepare(d, observations)
	if err != nil {
		return normality.SampleStatistic{}, err
	}

	value, pValue, err := calc(s)
	if err != nil {
		return normality.SampleStatistic{}, fmt.Errorf("%s statistic: %w", d.ID, err)
	}
	a.logger.Debug("%s n=%d statistic=%.6f", d.ID, s.n, value)

	return normality.SampleStatistic{
		Test:   d.ID,
		N:      s.n,
		Value:  value,
		PValue: pValue,
	}, nil
}

// prepare rejects samples no test can use and returns a sorted copy.
func prepare(d normality.TestDescriptor, observations []float64) (sample, error) {
	n := len(observations)
	if n == 0 {
		return sample{}, core.ErrEmptySample
	}
	for i, v := range observations {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return sample{}, core.NewNonFiniteError(i, v)
		}
	}
	if n < d.MinimumN {
		return sample{}, normality.NewSampleTooSmallError(d.ID, d.MinimumN, n)
	}
	if d.ID == normality.ShapiroWilk && n > MaxShapiroWilkN {
		return sample{}, fmt.Errorf("%w: %s supports at most %d observations, got %d",
			core.ErrSampleTooLarge, d.ID, MaxShapiroWilkN, n)
	}
	// every statistic below standardizes with the sample sd, so n=1 is
	// rejected here even though the KS table starts at n=1
	if n < 2 {
		return sample{}, fmt.Errorf("%w: a single observation has no spread", core.ErrZeroVariance)
	}

	x := append([]float64(nil), observations...)
	sort.Float64s(x)
	if x[n-1]-x[0] == 0 {
		return sample{}, core.ErrZeroVariance
	}

	mean, err := stats.Mean(x)
	if err != nil {
		return sample{}, err
	}
	sd, err := stats.StandardDeviationSample(x)
	if err != nil {
		return sample{}, err
	}
	if sd == 0 || math.IsNaN(sd) {
		return sample{}, core.ErrZeroVariance
	}

	return sample{x: x, n: n, mean: mean, sd: sd}, nil
}

func ptr(v float64) *float64 { return &v }

// clamp01 bounds approximated p-values to a probability
func clamp01(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}

// poly evaluates c[0] + c[1]*x + c[2]*x^2 + ...
func poly(c []float64, x float64) float64 {
	result := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		result = result*x + c[i]
	}
	return result
}
