package ports

import (
	"context"

	"normtest/domain/normality"
)

// StatisticPort computes a normality test statistic, and its p-value where
// one exists, from raw observations. Implementations must not modify sample.
type StatisticPort interface {
	Compute(ctx context.Context, test normality.TestID, sample []float64, alpha float64) (normality.SampleStatistic, error)
}
