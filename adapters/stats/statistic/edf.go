package statistic

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// dStatistic is the two-sided Kolmogorov distance between the empirical CDF
// and Normal(mean, sd) fitted to the sample.
func dStatistic(s sample) float64 {
	dist := distuv.Normal{Mu: s.mean, Sigma: s.sd}
	n := float64(s.n)
	d := 0.0
	for i, v := range s.x {
		z := dist.CDF(v)
		d = math.Max(d, math.Max(float64(i+1)/n-z, z-float64(i)/n))
	}
	return d
}

func kolmogorovSmirnov(s sample) (float64, *float64, error) {
	d := dStatistic(s)
	return d, ptr(kolmogorovPValue(d, s.n)), nil
}

// kolmogorovPValue evaluates the asymptotic Kolmogorov survival function at
// Stephens' corrected lambda = (sqrt(n) + 0.12 + 0.11/sqrt(n)) * D.
func kolmogorovPValue(d float64, n int) float64 {
	sn := math.Sqrt(float64(n))
	lambda := (sn + 0.12 + 0.11/sn) * d
	if lambda < 0.2 {
		return 1
	}
	sum := 0.0
	for j := 1; j <= 100; j++ {
		sign := 1.0
		if j%2 == 0 {
			sign = -1
		}
		term := 2 * sign * math.Exp(-2*float64(j*j)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12 {
			break
		}
	}
	return clamp01(sum)
}

func lilliefors(s sample) (float64, *float64, error) {
	d := dStatistic(s)
	return d, ptr(lillieforsPValue(d, s.n)), nil
}

// lillieforsPValue is the Dallal-Wilkinson (1986) approximation with the
// Stephens (1974) modified statistic above p=0.1.
func lillieforsPValue(d float64, n int) float64 {
	kd, nd := d, float64(n)
	if n > 100 {
		kd = d * math.Pow(float64(n)/100, 0.49)
		nd = 100
	}
	p := math.Exp(-7.01256*kd*kd*(nd+2.78019) +
		2.99587*kd*math.Sqrt(nd+2.78019) -
		0.122119 + 0.974598/math.Sqrt(nd) + 1.67997/nd)
	if p <= 0.1 {
		return clamp01(p)
	}

	sn := math.Sqrt(float64(n))
	kk := (sn - 0.01 + 0.85/sn) * d
	switch {
	case kk <= 0.302:
		p = 1
	case kk <= 0.5:
		p = poly([]float64{2.76773, -19.828315, 80.709644, -138.55152, 81.218052}, kk)
	case kk <= 0.9:
		p = poly([]float64{-4.901232, 40.662806, -97.490286, 94.029866, -32.355711}, kk)
	case kk <= 1.31:
		p = poly([]float64{6.198765, -19.558097, 23.186922, -12.234627, 2.423045}, kk)
	default:
		p = 0
	}
	return clamp01(p)
}

// abdiMolin uses the Lilliefors distance; its critical values come from the
// Abdi-Molin table and there is no p-value approximation.
func abdiMolin(s sample) (float64, *float64, error) {
	return dStatistic(s), nil, nil
}
