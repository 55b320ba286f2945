package normality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const floatTolerance = 1e-12

func TestGetCriticalValue_PublishedEntries(t *testing.T) {
	tests := []struct {
		name  string
		test  TestID
		n     int
		alpha float64
		want  float64
	}{
		{"kolmogorov-smirnov n=5", KolmogorovSmirnov, 5, 0.05, 0.565},
		{"kolmogorov-smirnov n=1", KolmogorovSmirnov, 1, 0.01, 0.995},
		{"lilliefors n=6", Lilliefors, 6, 0.05, 0.319},
		{"lilliefors n=20 alpha=0.01", Lilliefors, 20, 0.01, 0.231},
		{"shapiro-wilk n=5", ShapiroWilk, 5, 0.05, 0.762},
		{"shapiro-wilk n=20 alpha=0.01", ShapiroWilk, 20, 0.01, 0.868},
		{"abdi-molin n=6", AbdiMolin, 6, 0.05, 0.3245},
		{"abdi-molin n=4 alpha=0.20", AbdiMolin, 4, 0.20, 0.3027},
		{"abdi-molin n=11", AbdiMolin, 11, 0.05, 0.2506},
		{"abdi-molin n=12", AbdiMolin, 12, 0.05, 0.2426},
		{"abdi-molin n=20 alpha=0.01", AbdiMolin, 20, 0.01, 0.2226},
		{"abdi-molin n=30", AbdiMolin, 30, 0.05, 0.1590},
		{"abdi-molin n=40 alpha=0.15", AbdiMolin, 40, 0.15, 0.1204},
		{"abdi-molin n=50", AbdiMolin, 50, 0.05, 0.1246},
		{"abdi-molin n=50 alpha=0.20", AbdiMolin, 50, 0.20, 0.1030},
		{"anderson-darling n=20", AndersonDarling, 20, 0.05, 0.754},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, err := GetCriticalValue(tt.test, tt.n, tt.alpha)
			require.NoError(t, err)
			require.True(t, cv.Found)
			assert.Equal(t, tt.want, cv.Value)
			assert.Equal(t, SourceExact, cv.Source)
		})
	}
}

// Every literal entry must come back unchanged through the public lookup.
func TestGetCriticalValue_EveryTabulatedEntry(t *testing.T) {
	for _, d := range Descriptors() {
		sizes := d.Table.Sizes()
		for _, alpha := range d.SupportedAlphas {
			col, ok := d.Table.Column(alpha)
			require.True(t, ok, "%s alpha=%g", d.ID, alpha)
			for i, n := range sizes {
				if n < d.MinimumN {
					continue
				}
				cv, err := GetCriticalValue(d.ID, n, alpha)
				require.NoError(t, err)
				require.True(t, cv.Found, "%s n=%d alpha=%g", d.ID, n, alpha)
				if cv.Value != col[i] {
					t.Errorf("%s n=%d alpha=%g: got %v, want literal %v", d.ID, n, alpha, cv.Value, col[i])
				}
			}
		}
	}
}

func TestGetCriticalValue_Extrapolation(t *testing.T) {
	fn54 := 7.451417922044536

	tests := []struct {
		name  string
		test  TestID
		n     int
		alpha float64
		want  float64
	}{
		{"kolmogorov-smirnov n=76", KolmogorovSmirnov, 76, 0.05, 1.36 / math.Sqrt(76)},
		{"kolmogorov-smirnov n=36", KolmogorovSmirnov, 36, 0.01, 1.63 / 6},
		{"kolmogorov-smirnov n=400", KolmogorovSmirnov, 400, 0.20, 1.07 / 20},
		{"lilliefors n=31", Lilliefors, 31, 0.05, 0.866 / math.Sqrt(31)},
		{"lilliefors n=100", Lilliefors, 100, 0.15, 0.768 / 10},
		{"abdi-molin n=54", AbdiMolin, 54, 0.05, 0.895 / fn54},
		{"abdi-molin n=51", AbdiMolin, 51, 0.01, 1.035 / ((0.83+51)/math.Sqrt(51) - 0.01)},
		{"shapiro-wilk n=51 flat", ShapiroWilk, 51, 0.05, 0.947},
		{"shapiro-wilk n=5000 flat", ShapiroWilk, 5000, 0.01, 0.930},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, err := GetCriticalValue(tt.test, tt.n, tt.alpha)
			require.NoError(t, err)
			require.True(t, cv.Found)
			assert.InDelta(t, tt.want, cv.Value, floatTolerance)
			assert.Equal(t, SourceExtrapolated, cv.Source)
		})
	}
}

func TestGetCriticalValue_GapSnapping(t *testing.T) {
	tests := []struct {
		name       string
		test       TestID
		n          int
		want       float64
		wantSource LookupSource
		wantAnchor int
	}{
		{"ks 21 snaps to 25", KolmogorovSmirnov, 21, 0.27, SourceSnapped, 25},
		{"ks 22 snaps to 25", KolmogorovSmirnov, 22, 0.27, SourceSnapped, 25},
		{"ks 25 is the anchor", KolmogorovSmirnov, 25, 0.27, SourceExact, 0},
		{"ks 26 snaps to 30", KolmogorovSmirnov, 26, 0.24, SourceSnapped, 30},
		{"ks 30 is the anchor", KolmogorovSmirnov, 30, 0.24, SourceExact, 0},
		{"ks 32 snaps to 35", KolmogorovSmirnov, 32, 0.23, SourceSnapped, 35},
		{"ks 35 is the anchor", KolmogorovSmirnov, 35, 0.23, SourceExact, 0},
		{"lilliefors 21 snaps to 25", Lilliefors, 21, 0.173, SourceSnapped, 25},
		{"lilliefors 26 snaps to 30", Lilliefors, 26, 0.161, SourceSnapped, 30},
		{"anderson-darling 21 snaps to 25", AndersonDarling, 21, 0.761, SourceSnapped, 25},
		{"anderson-darling 24 snaps to 25", AndersonDarling, 24, 0.761, SourceSnapped, 25},
		{"anderson-darling 25 is exact", AndersonDarling, 25, 0.761, SourceExact, 0},
		{"anderson-darling 29 snaps to 30", AndersonDarling, 29, 0.766, SourceSnapped, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, err := GetCriticalValue(tt.test, tt.n, 0.05)
			require.NoError(t, err)
			require.True(t, cv.Found)
			assert.Equal(t, tt.want, cv.Value)
			assert.Equal(t, tt.wantSource, cv.Source)
			assert.Equal(t, tt.wantAnchor, cv.Anchor)
		})
	}
}

// The snap is staged: neighbouring gaps land on different anchors.
func TestGetCriticalValue_StagedSnapIsNotContinuous(t *testing.T) {
	at30, err := GetCriticalValue(KolmogorovSmirnov, 30, 0.05)
	require.NoError(t, err)
	at32, err := GetCriticalValue(KolmogorovSmirnov, 32, 0.05)
	require.NoError(t, err)

	assert.Equal(t, 0.24, at30.Value)
	assert.Equal(t, 0.23, at32.Value)
	assert.NotEqual(t, at30.Value, at32.Value)
}

func TestGetCriticalValue_AbsentValues(t *testing.T) {
	tests := []struct {
		name  string
		test  TestID
		n     int
		alpha float64
	}{
		{"ks untabulated alpha", KolmogorovSmirnov, 26, 0.12},
		{"ks untabulated alpha in extrapolated range", KolmogorovSmirnov, 80, 0.12},
		{"shapiro-wilk untabulated alpha", ShapiroWilk, 10, 0.03},
		{"lilliefors alpha 0.025", Lilliefors, 10, 0.025},
		{"anderson-darling beyond table", AndersonDarling, 31, 0.05},
		{"anderson-darling far beyond table", AndersonDarling, 500, 0.01},
		{"abdi-molin untabulated alpha beyond table", AbdiMolin, 60, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, err := GetCriticalValue(tt.test, tt.n, tt.alpha)
			require.NoError(t, err)
			assert.False(t, cv.Found)
			assert.Nil(t, cv.Ptr())
			assert.Equal(t, SourceAbsent, cv.Source)
			assert.Zero(t, cv.Value)
		})
	}
}

func TestGetCriticalValue_Errors(t *testing.T) {
	_, err := GetCriticalValue(Lilliefors, 3, 0.05)
	var small *SampleTooSmallError
	require.ErrorAs(t, err, &small)
	assert.Equal(t, Lilliefors, small.Test)
	assert.Equal(t, 4, small.Minimum)
	assert.Equal(t, 3, small.Got)

	_, err = GetCriticalValue(ShapiroWilk, 10, 1.0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = GetCriticalValue(TestID("jarque_bera"), 10, 0.05)
	assert.ErrorIs(t, err, ErrUnknownTest)
}

func TestGetCriticalValue_AlphaParsingNoise(t *testing.T) {
	// 0.1 + 0.2 - 0.2 is not bit-identical to 0.1.
	alpha := 0.1 + 0.2 - 0.2
	cv, err := GetCriticalValue(KolmogorovSmirnov, 10, alpha)
	require.NoError(t, err)
	require.True(t, cv.Found)
	assert.Equal(t, 0.368, cv.Value)
	assert.Equal(t, 0.10, cv.Alpha)
}

// For the D-type tables the sampling distribution narrows as n grows, so
// every column must be non-increasing.
func TestCriticalValueTable_DTablesAreNonIncreasing(t *testing.T) {
	for _, id := range []TestID{KolmogorovSmirnov, Lilliefors, AbdiMolin} {
		d, err := Describe(id)
		require.NoError(t, err)
		sizes := d.Table.Sizes()
		for _, alpha := range d.SupportedAlphas {
			col, _ := d.Table.Column(alpha)
			for i := 1; i < len(col); i++ {
				assert.LessOrEqual(t, col[i], col[i-1],
					"%s alpha=%g: n=%d (%v) exceeds n=%d (%v)", id, alpha, sizes[i], col[i], sizes[i-1], col[i-1])
			}
		}
	}
}

// The fn(n) extension starts below the last published row for every alpha.
func TestCriticalValueTable_AbdiMolinExtensionContinuesDownward(t *testing.T) {
	d, err := Describe(AbdiMolin)
	require.NoError(t, err)
	for _, alpha := range d.SupportedAlphas {
		last, err := GetCriticalValue(AbdiMolin, 50, alpha)
		require.NoError(t, err)
		next, err := GetCriticalValue(AbdiMolin, 51, alpha)
		require.NoError(t, err)
		require.Equal(t, SourceExtrapolated, next.Source)
		assert.Less(t, next.Value, last.Value, "alpha=%g", alpha)
	}
}

// A² critical values grow towards their asymptotic points.
func TestCriticalValueTable_AndersonDarlingIsNonDecreasing(t *testing.T) {
	d, err := Describe(AndersonDarling)
	require.NoError(t, err)
	for _, alpha := range d.SupportedAlphas {
		col, _ := d.Table.Column(alpha)
		for i := 1; i < len(col); i++ {
			assert.GreaterOrEqual(t, col[i], col[i-1], "alpha=%g index=%d", alpha, i)
		}
	}
}

// Shapiro-Wilk W points rise with n once past the small-sample dip. The
// published alpha=0.99, n=30 point breaks the sequence; it is kept as is and
// only reported here.
func TestCriticalValueTable_ShapiroWilkIsNonDecreasing(t *testing.T) {
	d, err := Describe(ShapiroWilk)
	require.NoError(t, err)
	sizes := d.Table.Sizes()

	anomalies := 0
	for _, alpha := range d.SupportedAlphas {
		col, _ := d.Table.Column(alpha)
		for i := 1; i < len(col); i++ {
			if sizes[i-1] < 11 || col[i] >= col[i-1] {
				continue
			}
			// the row after the anomaly recovers from it
			if alpha == 0.99 && (sizes[i] == 30 || sizes[i-1] == 30) {
				anomalies++
				t.Logf("ALERT: shapiro-wilk alpha=0.99 n=%d reads %v after %v (published value kept)",
					sizes[i], col[i], col[i-1])
				continue
			}
			t.Errorf("shapiro-wilk alpha=%g: n=%d (%v) below n=%d (%v)", alpha, sizes[i], col[i], sizes[i-1], col[i-1])
		}
	}
	assert.Equal(t, 1, anomalies)

	cv, err := GetCriticalValue(ShapiroWilk, 30, 0.99)
	require.NoError(t, err)
	assert.Equal(t, 0.900, cv.Value)
}

// Smaller alpha means a stricter test: the critical value moves away from
// the "normal" side for every row.
func TestCriticalValueTable_AlphaOrdering(t *testing.T) {
	for _, d := range Descriptors() {
		sizes := d.Table.Sizes()
		for i, n := range sizes {
			prev := math.NaN()
			for _, alpha := range d.SupportedAlphas {
				col, _ := d.Table.Column(alpha)
				v := col[i]
				if !math.IsNaN(prev) {
					if d.Polarity == CriticalGEStatisticIsNormal {
						assert.LessOrEqual(t, v, prev, "%s n=%d alpha=%g", d.ID, n, alpha)
					} else if !(d.ID == ShapiroWilk && n == 30 && alpha == 0.99) {
						assert.GreaterOrEqual(t, v, prev, "%s n=%d alpha=%g", d.ID, n, alpha)
					}
				}
				prev = v
			}
		}
	}
}

func TestGap_Contains(t *testing.T) {
	closed := Gap{Low: 20, High: 25, HighInclusive: true, Anchor: 25}
	open := Gap{Low: 20, High: 25, HighInclusive: false, Anchor: 25}

	assert.False(t, closed.Contains(20))
	assert.True(t, closed.Contains(21))
	assert.True(t, closed.Contains(25))
	assert.False(t, closed.Contains(26))

	assert.False(t, open.Contains(20))
	assert.True(t, open.Contains(24))
	assert.False(t, open.Contains(25))

	assert.Equal(t, "(20, 25] -> 25", closed.String())
	assert.Equal(t, "(20, 25) -> 25", open.String())
}

func TestNewCriticalValueTable_RejectsMalformedData(t *testing.T) {
	assert.Panics(t, func() {
		newCriticalValueTable(KolmogorovSmirnov, []int{1, 2}, map[float64][]float64{0.05: {0.9}}, nil, Extrapolation{})
	})
	assert.Panics(t, func() {
		newCriticalValueTable(KolmogorovSmirnov, []int{2, 1}, map[float64][]float64{0.05: {0.9, 0.8}}, nil, Extrapolation{})
	})
	assert.Panics(t, func() {
		newCriticalValueTable(KolmogorovSmirnov, []int{1, 2}, map[float64][]float64{0.05: {0.9, 0.8}},
			[]Gap{{Low: 2, High: 5, Anchor: 5}}, Extrapolation{})
	})
}

func TestCriticalValueTable_AccessorsReturnCopies(t *testing.T) {
	d, err := Describe(KolmogorovSmirnov)
	require.NoError(t, err)

	sizes := d.Table.Sizes()
	sizes[0] = 999
	col, _ := d.Table.Column(0.05)
	col[0] = 999

	cv, err := GetCriticalValue(KolmogorovSmirnov, 1, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 0.975, cv.Value)
	assert.Equal(t, 1, d.Table.MinN())
	assert.Equal(t, 35, d.Table.MaxN())
}
