package statistic

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Royston (1992, 1995) polynomial coefficients
var (
	swG  = []float64{-2.273, 0.459}
	swC1 = []float64{0, 0.221157, -0.147981, -2.07119, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.544, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
)

// shapiroWilk computes W and its Royston normal-approximation p-value.
func shapiroWilk(s sample) (float64, *float64, error) {
	n := s.n
	a := shapiroWilkCoefficients(n)

	b := 0.0
	for i, ai := range a {
		b += ai * (s.x[n-1-i] - s.x[i])
	}
	ssq := 0.0
	for _, v := range s.x {
		d := v - s.mean
		ssq += d * d
	}
	w := math.Min(b*b/ssq, 1)

	return w, ptr(shapiroWilkPValue(w, n)), nil
}

// shapiroWilkCoefficients returns the first n/2 weights a_i; the remaining
// half is antisymmetric and the middle weight of an odd sample is zero.
func shapiroWilkCoefficients(n int) []float64 {
	half := n / 2
	if n == 3 {
		return []float64{math.Sqrt(0.5)}
	}

	an25 := float64(n) + 0.25
	m := make([]float64, half)
	summ2 := 0.0
	for i := range m {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / an25)
		summ2 += m[i] * m[i]
	}
	summ2 *= 2
	ssumm2 := math.Sqrt(summ2)
	rsn := 1 / math.Sqrt(float64(n))

	a := make([]float64, half)
	a1 := poly(swC1, rsn) - m[0]/ssumm2

	first := 1
	var fac float64
	if n > 5 {
		first = 2
		a2 := -m[1]/ssumm2 + poly(swC2, rsn)
		fac = math.Sqrt((summ2 - 2*m[0]*m[0] - 2*m[1]*m[1]) / (1 - 2*a1*a1 - 2*a2*a2))
		a[1] = a2
	} else {
		fac = math.Sqrt((summ2 - 2*m[0]*m[0]) / (1 - 2*a1*a1))
	}
	a[0] = a1
	for i := first; i < half; i++ {
		a[i] = -m[i] / fac
	}
	return a
}

func shapiroWilkPValue(w float64, n int) float64 {
	if n == 3 {
		// exact distribution for three observations
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Pi/3)
		return clamp01(p)
	}

	an := float64(n)
	w1 := math.Log(1 - w)
	var mu, sigma float64
	if n <= 11 {
		gamma := poly(swG, an)
		if w1 >= gamma {
			return 1e-99
		}
		w1 = -math.Log(gamma - w1)
		mu = poly(swC3, an)
		sigma = math.Exp(poly(swC4, an))
	} else {
		ln := math.Log(an)
		mu = poly(swC5, ln)
		sigma = math.Exp(poly(swC6, ln))
	}
	return clamp01(distuv.Normal{Mu: mu, Sigma: sigma}.Survival(w1))
}
