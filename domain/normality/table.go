package normality

import (
	"fmt"
	"math"
	"sort"
)

// LookupSource records how a critical value was obtained
type LookupSource int

const (
	SourceAbsent LookupSource = iota
	SourceExact
	SourceSnapped
	SourceExtrapolated
)

func (s LookupSource) String() string {
	switch s {
	case SourceExact:
		return "exact"
	case SourceSnapped:
		return "snapped"
	case SourceExtrapolated:
		return "extrapolated"
	default:
		return "absent"
	}
}

func (s LookupSource) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Gap is a range of untabulated sample sizes that snaps to a higher anchor
// row. Low is always exclusive; High is inclusive only when HighInclusive.
type Gap struct {
	Low           int
	High          int
	HighInclusive bool
	Anchor        int
}

// Contains reports whether n falls inside the gap.
func (g Gap) Contains(n int) bool {
	if n <= g.Low {
		return false
	}
	if g.HighInclusive {
		return n <= g.High
	}
	return n < g.High
}

func (g Gap) String() string {
	closing := ")"
	if g.HighInclusive {
		closing = "]"
	}
	return fmt.Sprintf("(%d, %d%s -> %d", g.Low, g.High, closing, g.Anchor)
}

// CriticalValue is the answer of a table lookup. Found is false when the
// table has no value for the requested alpha or sample size.
type CriticalValue struct {
	Test   TestID       `json:"test"`
	N      int          `json:"n"`
	Alpha  float64      `json:"alpha"`
	Value  float64      `json:"value"`
	Found  bool         `json:"found"`
	Source LookupSource `json:"source"`
	Anchor int          `json:"anchor,omitempty"` // row used for snapped lookups
}

// Ptr returns the value as an optional, nil when absent.
func (cv CriticalValue) Ptr() *float64 {
	if !cv.Found {
		return nil
	}
	v := cv.Value
	return &v
}

// CriticalValueTable maps (alpha, n) to a critical value for one test.
// It is built once from literal data and never mutated.
type CriticalValueTable struct {
	test          TestID
	sizes         []int
	columns       map[float64][]float64
	gaps          []Gap
	extrapolation Extrapolation
}

// newCriticalValueTable panics on malformed literal data; tables are package
// level values so any mistake surfaces at init.
func newCriticalValueTable(test TestID, sizes []int, columns map[float64][]float64, gaps []Gap, extrapolation Extrapolation) *CriticalValueTable {
	if !sort.IntsAreSorted(sizes) || len(sizes) == 0 {
		panic(fmt.Sprintf("normality: %s table sizes must be non-empty and ascending", test))
	}
	cols := make(map[float64][]float64, len(columns))
	for alpha, values := range columns {
		if len(values) != len(sizes) {
			panic(fmt.Sprintf("normality: %s column alpha=%g has %d values for %d sizes",
				test, alpha, len(values), len(sizes)))
		}
		cols[alpha] = append([]float64(nil), values...)
	}
	for _, g := range gaps {
		if idx := sort.SearchInts(sizes, g.Anchor); idx == len(sizes) || sizes[idx] != g.Anchor {
			panic(fmt.Sprintf("normality: %s gap %s anchors an untabulated row", test, g))
		}
	}
	return &CriticalValueTable{
		test:          test,
		sizes:         append([]int(nil), sizes...),
		columns:       cols,
		gaps:          append([]Gap(nil), gaps...),
		extrapolation: extrapolation,
	}
}

func (t *CriticalValueTable) Test() TestID { return t.test }

// MinN and MaxN bound the tabulated rows.
func (t *CriticalValueTable) MinN() int { return t.sizes[0] }
func (t *CriticalValueTable) MaxN() int { return t.sizes[len(t.sizes)-1] }

// Sizes returns a copy of the tabulated sample sizes (n_rep).
func (t *CriticalValueTable) Sizes() []int {
	return append([]int(nil), t.sizes...)
}

// Alphas returns the tabulated significance levels, ascending.
func (t *CriticalValueTable) Alphas() []float64 {
	out := make([]float64, 0, len(t.columns))
	for a := range t.columns {
		out = append(out, a)
	}
	sort.Float64s(out)
	return out
}

// Column returns a copy of the critical values for alpha, parallel to Sizes.
func (t *CriticalValueTable) Column(alpha float64) ([]float64, bool) {
	_, col, ok := t.column(alpha)
	if !ok {
		return nil, false
	}
	return append([]float64(nil), col...), true
}

func (t *CriticalValueTable) Gaps() []Gap {
	return append([]Gap(nil), t.gaps...)
}

func (t *CriticalValueTable) Extrapolation() Extrapolation {
	return t.extrapolation
}

// Lookup answers the critical value for (n, alpha). Bounds on n and the range
// check on alpha are the caller's job; an alpha without a column yields an
// absent value, not an error.
func (t *CriticalValueTable) Lookup(n int, alpha float64) (CriticalValue, error) {
	cv := CriticalValue{Test: t.test, N: n, Alpha: alpha}

	key, col, ok := t.column(alpha)
	if !ok {
		return cv, nil
	}
	cv.Alpha = key

	if v, ok := t.at(col, n); ok {
		cv.Value, cv.Found, cv.Source = v, true, SourceExact
		return cv, nil
	}

	for _, g := range t.gaps {
		if !g.Contains(n) {
			continue
		}
		if v, ok := t.at(col, g.Anchor); ok {
			cv.Value, cv.Found, cv.Source, cv.Anchor = v, true, SourceSnapped, g.Anchor
			return cv, nil
		}
	}

	if n > t.MaxN() {
		v, ok, err := t.extrapolation.Evaluate(n, key, col[len(col)-1])
		if err != nil {
			return cv, err
		}
		if ok {
			cv.Value, cv.Found, cv.Source = v, true, SourceExtrapolated
		}
	}
	return cv, nil
}

func (t *CriticalValueTable) column(alpha float64) (float64, []float64, bool) {
	if col, ok := t.columns[alpha]; ok {
		return alpha, col, true
	}
	for a, col := range t.columns {
		if math.Abs(a-alpha) <= alphaTolerance {
			return a, col, true
		}
	}
	return 0, nil, false
}

func (t *CriticalValueTable) at(col []float64, n int) (float64, bool) {
	idx := sort.SearchInts(t.sizes, n)
	if idx < len(t.sizes) && t.sizes[idx] == n {
		return col[idx], true
	}
	return 0, false
}
