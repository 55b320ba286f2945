package normality

import (
	"fmt"
	"strings"
)

// TestID identifies a normality test family
type TestID string

const (
	ShapiroWilk       TestID = "shapiro_wilk"
	KolmogorovSmirnov TestID = "kolmogorov_smirnov"
	Lilliefors        TestID = "lilliefors"
	AndersonDarling   TestID = "anderson_darling"
	AbdiMolin         TestID = "abdi_molin"
)

func (id TestID) String() string { return string(id) }

var testAliases = map[string]TestID{
	"shapiro_wilk":       ShapiroWilk,
	"shapiro-wilk":       ShapiroWilk,
	"shapirowilk":        ShapiroWilk,
	"sw":                 ShapiroWilk,
	"kolmogorov_smirnov": KolmogorovSmirnov,
	"kolmogorov-smirnov": KolmogorovSmirnov,
	"kolmogorovsmirnov":  KolmogorovSmirnov,
	"ks":                 KolmogorovSmirnov,
	"lilliefors":         Lilliefors,
	"li":                 Lilliefors,
	"anderson_darling":   AndersonDarling,
	"anderson-darling":   AndersonDarling,
	"andersondarling":    AndersonDarling,
	"ad":                 AndersonDarling,
	"abdi_molin":         AbdiMolin,
	"abdi-molin":         AbdiMolin,
	"abdimolin":          AbdiMolin,
	"am":                 AbdiMolin,
}

// ParseTestID resolves a canonical identifier or a common alias ("sw", "ks",
// "anderson-darling", ...) to a TestID.
func ParseTestID(s string) (TestID, error) {
	if id, ok := testAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return id, nil
	}
	return "", NewUnknownTestError(s)
}

// Polarity is the direction of the inequality that means "fails to reject
// normality" when a statistic is compared with its critical value.
type Polarity int

const (
	// CriticalGEStatisticIsNormal: Normal iff critical >= statistic.
	CriticalGEStatisticIsNormal Polarity = iota + 1
	// CriticalLEStatisticIsNormal: Normal iff critical <= statistic (Shapiro-Wilk).
	CriticalLEStatisticIsNormal
)

func (p Polarity) String() string {
	switch p {
	case CriticalGEStatisticIsNormal:
		return "CRITICAL_GE_STATISTIC_IS_NORMAL"
	case CriticalLEStatisticIsNormal:
		return "CRITICAL_LE_STATISTIC_IS_NORMAL"
	default:
		return "UNKNOWN_POLARITY"
	}
}

func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Polarity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "CRITICAL_GE_STATISTIC_IS_NORMAL":
		*p = CriticalGEStatisticIsNormal
	case "CRITICAL_LE_STATISTIC_IS_NORMAL":
		*p = CriticalLEStatisticIsNormal
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPolarity, string(b))
	}
	return nil
}

// IsNormal applies the polarity to a statistic/critical pair.
func (p Polarity) IsNormal(statistic, critical float64) bool {
	if p == CriticalLEStatisticIsNormal {
		return critical <= statistic
	}
	return critical >= statistic
}

// Mode selects what the statistic is judged by
type Mode int

const (
	ModeCritical Mode = iota + 1
	ModePValue
)

func (m Mode) String() string {
	switch m {
	case ModeCritical:
		return "critical"
	case ModePValue:
		return "p_value"
	default:
		return "unknown"
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m Mode) Valid() bool {
	return m == ModeCritical || m == ModePValue
}

// ParseMode accepts "critical" or "p_value" (also "p-value", "pvalue", "p").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical", "crit", "c":
		return ModeCritical, nil
	case "p_value", "p-value", "pvalue", "p":
		return ModePValue, nil
	}
	return 0, NewInvalidModeError(s)
}

// DetailLevel controls how much of the comparison a Conclusion carries
type DetailLevel int

const (
	DetailShort DetailLevel = iota + 1
	DetailFull
	DetailBinary
)

func (d DetailLevel) String() string {
	switch d {
	case DetailShort:
		return "short"
	case DetailFull:
		return "full"
	case DetailBinary:
		return "binary"
	default:
		return "unknown"
	}
}

func (d DetailLevel) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DetailLevel) UnmarshalText(b []byte) error {
	v, err := ParseDetailLevel(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d DetailLevel) Valid() bool {
	return d == DetailShort || d == DetailFull || d == DetailBinary
}

// ParseDetailLevel validates a detail token once, at the boundary.
func ParseDetailLevel(s string) (DetailLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return DetailShort, nil
	case "full":
		return DetailFull, nil
	case "binary":
		return DetailBinary, nil
	}
	return 0, NewInvalidDetailLevelError(s)
}

// ConclusionCode is the language-neutral outcome handed to presentation layers
type ConclusionCode string

const (
	CodeNormal    ConclusionCode = "NORMAL"
	CodeNotNormal ConclusionCode = "NOT_NORMAL"
)

// Relation is the observed side of a FULL conclusion relative to its reference.
type Relation string

const (
	RelationLessOrEqual    Relation = "<="
	RelationGreater        Relation = ">"
	RelationGreaterOrEqual Relation = ">="
	RelationLess           Relation = "<"
)
