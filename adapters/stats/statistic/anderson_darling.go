package statistic

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// andersonDarling computes A^2 against Normal(mean, sd). The p-value uses the
// D'Agostino & Stephens (1986) piecewise fit on the adjusted statistic.
func andersonDarling(s sample) (float64, *float64, error) {
	n := s.n
	z := make([]float64, n)
	for i, v := range s.x {
		z[i] = (v - s.mean) / s.sd
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		logCDF := math.Log(distuv.UnitNormal.CDF(z[i]))
		logSurvival := math.Log(distuv.UnitNormal.Survival(z[n-1-i]))
		sum += float64(2*i+1) * (logCDF + logSurvival)
	}
	a2 := -float64(n) - sum/float64(n)

	return a2, ptr(andersonDarlingPValue(a2, n)), nil
}

func andersonDarlingPValue(a2 float64, n int) float64 {
	fn := float64(n)
	aa := a2 * (1 + 0.75/fn + 2.25/(fn*fn))

	var p float64
	switch {
	case aa < 0.2:
		p = 1 - math.Exp(-13.436+101.14*aa-223.73*aa*aa)
	case aa < 0.34:
		p = 1 - math.Exp(-8.318+42.796*aa-59.938*aa*aa)
	case aa < 0.6:
		p = math.Exp(0.9177 - 4.279*aa - 1.38*aa*aa)
	case aa < 10:
		p = math.Exp(1.2937 - 5.709*aa + 0.0186*aa*aa)
	default:
		p = 3.7e-24
	}
	return clamp01(p)
}
