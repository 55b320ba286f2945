package normality

import (
	"math"
)

// TestDescriptor is the static metadata of one normality test
type TestDescriptor struct {
	ID              TestID              `json:"id"`
	Name            string              `json:"name"`
	MinimumN        int                 `json:"minimum_n"`
	SupportedAlphas []float64           `json:"supported_alphas"`
	Polarity        Polarity            `json:"polarity"`
	Extrapolation   Extrapolation       `json:"-"`
	HasPValue       bool                `json:"has_p_value"` // StatisticAdapter can produce a p-value
	Table           *CriticalValueTable `json:"-"`
}

// Supports reports whether alpha has a tabulated column.
func (d TestDescriptor) Supports(alpha float64) bool {
	for _, a := range d.SupportedAlphas {
		if math.Abs(a-alpha) <= alphaTolerance {
			return true
		}
	}
	return false
}

func newDescriptor(id TestID, name string, minimumN int, polarity Polarity, hasPValue bool, table *CriticalValueTable) *TestDescriptor {
	return &TestDescriptor{
		ID:              id,
		Name:            name,
		MinimumN:        minimumN,
		SupportedAlphas: table.Alphas(),
		Polarity:        polarity,
		Extrapolation:   table.Extrapolation(),
		HasPValue:       hasPValue,
		Table:           table,
	}
}

// registryOrder fixes the listing order of Tests.
var registryOrder = []TestID{ShapiroWilk, KolmogorovSmirnov, Lilliefors, AndersonDarling, AbdiMolin}

var registry = map[TestID]*TestDescriptor{
	ShapiroWilk:       newDescriptor(ShapiroWilk, "Shapiro-Wilk", 3, CriticalLEStatisticIsNormal, true, shapiroWilkTable),
	KolmogorovSmirnov: newDescriptor(KolmogorovSmirnov, "Kolmogorov-Smirnov", 1, CriticalGEStatisticIsNormal, true, kolmogorovSmirnovTable),
	Lilliefors:        newDescriptor(Lilliefors, "Lilliefors", 4, CriticalGEStatisticIsNormal, true, lillieforsTable),
	AndersonDarling:   newDescriptor(AndersonDarling, "Anderson-Darling", 4, CriticalGEStatisticIsNormal, true, andersonDarlingTable),
	AbdiMolin:         newDescriptor(AbdiMolin, "Abdi-Molin", 4, CriticalGEStatisticIsNormal, false, abdiMolinTable),
}

// Describe returns the descriptor of a test. The returned value is a copy;
// the registry itself is never mutated.
func Describe(id TestID) (TestDescriptor, error) {
	d, ok := registry[id]
	if !ok {
		return TestDescriptor{}, NewUnknownTestError(string(id))
	}
	out := *d
	out.SupportedAlphas = append([]float64(nil), d.SupportedAlphas...)
	return out, nil
}

// Tests lists every registered test in a stable order.
func Tests() []TestID {
	return append([]TestID(nil), registryOrder...)
}

// Descriptors returns a copy of every descriptor, in Tests order.
func Descriptors() []TestDescriptor {
	out := make([]TestDescriptor, 0, len(registryOrder))
	for _, id := range registryOrder {
		d, _ := Describe(id)
		out = append(out, d)
	}
	return out
}

func sizeRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}
