package normality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit_CriticalMode(t *testing.T) {
	tc := DefaultTestContext()

	tests := []struct {
		name      string
		req       FitRequest
		critical  float64
		wantCode  ConclusionCode
		wantValue int
	}{
		{
			name:     "shapiro-wilk accepts a high W",
			req:      FitRequest{Test: ShapiroWilk, N: 20, Statistic: 0.969, PValue: f64(0.73), Mode: ModeCritical, Detail: DetailBinary},
			critical: 0.905,
			wantCode: CodeNormal,
		},
		{
			name:      "shapiro-wilk rejects a low W",
			req:       FitRequest{Test: ShapiroWilk, N: 20, Statistic: 0.850, Mode: ModeCritical, Detail: DetailBinary},
			critical:  0.905,
			wantCode:  CodeNotNormal,
			wantValue: 1,
		},
		{
			name:     "kolmogorov-smirnov accepts a small D",
			req:      FitRequest{Test: KolmogorovSmirnov, N: 5, Statistic: 0.20, Mode: ModeCritical, Detail: DetailBinary},
			critical: 0.565,
			wantCode: CodeNormal,
		},
		{
			name:      "lilliefors rejects a large D in the snapped range",
			req:       FitRequest{Test: Lilliefors, N: 23, Statistic: 0.2, Mode: ModeCritical, Detail: DetailBinary},
			critical:  0.173,
			wantCode:  CodeNotNormal,
			wantValue: 1,
		},
		{
			name:     "abdi-molin accepts at the extrapolated boundary",
			req:      FitRequest{Test: AbdiMolin, N: 54, Statistic: 0.12, Mode: ModeCritical, Detail: DetailBinary},
			critical: 0.895 / ((0.83+54)/math.Sqrt(54) - 0.01),
			wantCode: CodeNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Fit(tc, tt.req)
			require.NoError(t, err)
			require.NotNil(t, res.Critical)
			assert.InDelta(t, tt.critical, *res.Critical, floatTolerance)
			assert.Nil(t, res.PValue, "critical mode carries the p-value as absent")
			assert.Equal(t, tt.wantCode, res.Conclusion.Code)
			require.NotNil(t, res.Conclusion.Binary)
			assert.Equal(t, tt.wantValue, *res.Conclusion.Binary)
			assert.Equal(t, tc.Alpha, res.Alpha)
			assert.Equal(t, tt.req.N, res.N)
		})
	}
}

func TestFit_PValueMode(t *testing.T) {
	// alpha 0.12 has no table but p-value mode never consults one
	tc := DefaultTestContext().WithAlpha(0.12)

	res, err := Fit(tc, FitRequest{
		Test:      KolmogorovSmirnov,
		N:         26,
		Statistic: 0.1,
		PValue:    f64(0.3),
		Mode:      ModePValue,
		Detail:    DetailFull,
	})
	require.NoError(t, err)
	assert.Nil(t, res.Critical)
	require.NotNil(t, res.PValue)
	assert.True(t, res.Conclusion.Normal)
	require.NotNil(t, res.Conclusion.Comparison)
	assert.Equal(t, 0.3, res.Conclusion.Comparison.Observed)
	assert.Equal(t, 0.12, res.Conclusion.Comparison.Reference)
	assert.Equal(t, 88.0, res.Conclusion.ConfidenceLevel)
}

func TestFit_AndersonDarlingLargeSample(t *testing.T) {
	tc := DefaultTestContext()

	_, err := Fit(tc, FitRequest{Test: AndersonDarling, N: 40, Statistic: 0.3, Mode: ModeCritical, Detail: DetailShort})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingComparisonValue)
	assert.True(t, IsIntegrationError(err))

	res, err := Fit(tc, FitRequest{Test: AndersonDarling, N: 40, Statistic: 0.3, PValue: f64(0.55), Mode: ModePValue, Detail: DetailShort})
	require.NoError(t, err)
	assert.True(t, res.Conclusion.Normal)
}

func TestFit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tc      TestContext
		req     FitRequest
		wantErr error
	}{
		{
			name:    "unknown test",
			tc:      DefaultTestContext(),
			req:     FitRequest{Test: "cramer_von_mises", N: 10, Mode: ModeCritical, Detail: DetailShort},
			wantErr: ErrUnknownTest,
		},
		{
			name:    "alpha zero",
			tc:      DefaultTestContext().WithAlpha(0),
			req:     FitRequest{Test: ShapiroWilk, N: 10, Mode: ModePValue, PValue: f64(0.5), Detail: DetailShort},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "alpha one",
			tc:      DefaultTestContext().WithAlpha(1),
			req:     FitRequest{Test: ShapiroWilk, N: 10, Mode: ModeCritical, Detail: DetailShort},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "alpha NaN",
			tc:      DefaultTestContext().WithAlpha(math.NaN()),
			req:     FitRequest{Test: ShapiroWilk, N: 10, Mode: ModeCritical, Detail: DetailShort},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "unsupported alpha in critical mode",
			tc:      DefaultTestContext().WithAlpha(0.12),
			req:     FitRequest{Test: KolmogorovSmirnov, N: 26, Statistic: 0.1, Mode: ModeCritical, Detail: DetailShort},
			wantErr: ErrUnsupportedSignificanceLevel,
		},
		{
			name:    "sample too small",
			tc:      DefaultTestContext(),
			req:     FitRequest{Test: ShapiroWilk, N: 2, Mode: ModeCritical, Detail: DetailShort},
			wantErr: ErrSampleTooSmall,
		},
		{
			name:    "invalid detail level",
			tc:      DefaultTestContext(),
			req:     FitRequest{Test: ShapiroWilk, N: 10, Mode: ModeCritical},
			wantErr: ErrInvalidDetailLevel,
		},
		{
			name:    "invalid mode",
			tc:      DefaultTestContext(),
			req:     FitRequest{Test: ShapiroWilk, N: 10, Detail: DetailShort},
			wantErr: ErrInvalidMode,
		},
		{
			name:    "missing p-value",
			tc:      DefaultTestContext(),
			req:     FitRequest{Test: AbdiMolin, N: 10, Statistic: 0.2, Mode: ModePValue, Detail: DetailShort},
			wantErr: ErrMissingComparisonValue,
		},
		{
			name:    "negative digits",
			tc:      TestContext{Alpha: 0.05, Digits: -1},
			req:     FitRequest{Test: ShapiroWilk, N: 10, Mode: ModeCritical, Detail: DetailShort},
			wantErr: ErrInvalidDigits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.tc, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFit_UnsupportedAlphaListsAlternatives(t *testing.T) {
	_, err := Fit(DefaultTestContext().WithAlpha(0.12), FitRequest{
		Test: KolmogorovSmirnov, N: 26, Statistic: 0.1, Mode: ModeCritical, Detail: DetailShort,
	})

	var unsupported *UnsupportedSignificanceLevelError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, KolmogorovSmirnov, unsupported.Test)
	assert.Equal(t, 0.12, unsupported.Alpha)
	assert.Equal(t, []float64{0.01, 0.05, 0.10, 0.15, 0.20}, unsupported.Supported)
	assert.Contains(t, err.Error(), "0.01, 0.05, 0.1, 0.15, 0.2")
}

func TestFit_SampleTooSmallPayload(t *testing.T) {
	_, err := Fit(DefaultTestContext(), FitRequest{Test: AbdiMolin, N: 3, Mode: ModeCritical, Detail: DetailShort})

	var small *SampleTooSmallError
	require.ErrorAs(t, err, &small)
	assert.Equal(t, AbdiMolin, small.Test)
	assert.Equal(t, 4, small.Minimum)
	assert.Equal(t, 3, small.Got)
	assert.Contains(t, err.Error(), "abdi_molin requires at least 4 observations, got 3")
}

func TestFit_ReturnsFreshResults(t *testing.T) {
	tc := DefaultTestContext()
	req := FitRequest{Test: ShapiroWilk, N: 10, Statistic: 0.9, Mode: ModeCritical, Detail: DetailFull}

	first, err := Fit(tc, req)
	require.NoError(t, err)
	*first.Critical = 0

	second, err := Fit(tc, req)
	require.NoError(t, err)
	assert.Equal(t, 0.842, *second.Critical)
}
