package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Profile summarizes the shape of a sample. It travels alongside a battery
// report so a reader can see why tests agree or disagree.
type Profile struct {
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"excess_kurtosis"`
	Outliers int     `json:"outliers"`
}

// Analyzer computes sample profiles.
type Analyzer struct{}

// NewAnalyzer creates a new analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze profiles data. The standard deviation is the sample (n-1) one.
func (a *Analyzer) Analyze(data []float64) (Profile, error) {
	p := Profile{N: len(data)}

	mean, err := stats.Mean(data)
	if err != nil {
		return p, err
	}
	p.Mean = mean

	if len(data) > 1 {
		if p.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return p, err
		}
	}
	if p.Min, err = stats.Min(data); err != nil {
		return p, err
	}
	if p.Max, err = stats.Max(data); err != nil {
		return p, err
	}
	if p.Median, err = stats.Median(data); err != nil {
		return p, err
	}

	// a single observation has no quartile split
	p.Q25, p.Q75 = p.Median, p.Median
	if len(data) > 1 {
		q, err := stats.Quartile(data)
		if err != nil {
			return p, err
		}
		p.Q25, p.Q75 = q.Q1, q.Q3
	}

	p.Skewness = skewness(data, mean)
	p.Kurtosis = excessKurtosis(data, mean)
	p.Outliers = countOutliers(data, p.Q25, p.Q75)
	return p, nil
}

// skewness is the adjusted Fisher-Pearson coefficient G1.
func skewness(data []float64, mean float64) float64 {
	n := float64(len(data))
	if n < 3 {
		return 0
	}
	m2, m3 := 0.0, 0.0
	for _, x := range data {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return 0
	}
	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// excessKurtosis is the bias-corrected G2, zero for a normal population.
func excessKurtosis(data []float64, mean float64) float64 {
	n := float64(len(data))
	if n < 4 {
		return 0
	}
	m2, m4 := 0.0, 0.0
	for _, x := range data {
		d := x - mean
		m2 += d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m4 /= n
	if m2 == 0 {
		return 0
	}
	g2 := m4/(m2*m2) - 3
	return ((n+1)*g2 + 6) * (n - 1) / ((n - 2) * (n - 3))
}

// countOutliers applies Tukey's 1.5 IQR fences.
func countOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lower := q25 - 1.5*iqr
	upper := q75 + 1.5*iqr

	count := 0
	for _, x := range data {
		if x < lower || x > upper {
			count++
		}
	}
	return count
}
