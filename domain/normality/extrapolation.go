package normality

import (
	"math"
	"sort"
)

// ExtrapolationKind names how a table answers for n above its last row
type ExtrapolationKind int

const (
	// ExtrapolateNone leaves the critical value absent beyond the table.
	ExtrapolateNone ExtrapolationKind = iota
	// ExtrapolateFlat reuses the last tabulated row unchanged.
	ExtrapolateFlat
	// ExtrapolateInverseSqrt evaluates constant(alpha) / sqrt(n).
	ExtrapolateInverseSqrt
	// ExtrapolateAbdiMolin evaluates constant(alpha) / FnAbdiMolin(n).
	ExtrapolateAbdiMolin
)

func (k ExtrapolationKind) String() string {
	switch k {
	case ExtrapolateNone:
		return "none"
	case ExtrapolateFlat:
		return "flat"
	case ExtrapolateInverseSqrt:
		return "c/sqrt(n)"
	case ExtrapolateAbdiMolin:
		return "c/fn(n)"
	default:
		return "unknown"
	}
}

// AbdiMolinMinN is the smallest n for which FnAbdiMolin is defined.
const AbdiMolinMinN = 51

// alphaTolerance absorbs decimal parsing noise when matching a requested
// alpha to a tabulated column.
const alphaTolerance = 1e-9

// Extrapolation is the asymptotic formula of one test family
type Extrapolation struct {
	Kind      ExtrapolationKind
	constants map[float64]float64
}

func newExtrapolation(kind ExtrapolationKind, constants map[float64]float64) Extrapolation {
	c := make(map[float64]float64, len(constants))
	for a, v := range constants {
		c[a] = v
	}
	return Extrapolation{Kind: kind, constants: c}
}

// Constant returns the alpha-specific numerator of the formula.
func (e Extrapolation) Constant(alpha float64) (float64, bool) {
	for a, v := range e.constants {
		if math.Abs(a-alpha) <= alphaTolerance {
			return v, true
		}
	}
	return 0, false
}

// Alphas lists the alphas the formula has constants for, ascending.
func (e Extrapolation) Alphas() []float64 {
	out := make([]float64, 0, len(e.constants))
	for a := range e.constants {
		out = append(out, a)
	}
	sort.Float64s(out)
	return out
}

// Evaluate computes the extrapolated critical value at n. last is the
// final tabulated entry for alpha, used only by ExtrapolateFlat.
func (e Extrapolation) Evaluate(n int, alpha, last float64) (float64, bool, error) {
	switch e.Kind {
	case ExtrapolateFlat:
		return last, true, nil
	case ExtrapolateInverseSqrt:
		c, ok := e.Constant(alpha)
		if !ok {
			return 0, false, nil
		}
		return c / math.Sqrt(float64(n)), true, nil
	case ExtrapolateAbdiMolin:
		c, ok := e.Constant(alpha)
		if !ok {
			return 0, false, nil
		}
		fn, err := FnAbdiMolin(n)
		if err != nil {
			return 0, false, err
		}
		return c / fn, true, nil
	default:
		return 0, false, nil
	}
}

// FnAbdiMolin is the divisor of the Abdi-Molin large-sample approximation,
// (0.83 + n)/sqrt(n) - 0.01. It is only defined for n >= 51.
func FnAbdiMolin(n int) (float64, error) {
	if n < AbdiMolinMinN {
		return 0, NewSampleTooSmallError(AbdiMolin, AbdiMolinMinN, n)
	}
	fn := float64(n)
	return (0.83+fn)/math.Sqrt(fn) - 0.01, nil
}
