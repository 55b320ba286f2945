package normality

import (
	"fmt"
	"math"
)

// DecisionInput is everything Decide needs; it performs no lookups.
type DecisionInput struct {
	Statistic float64
	Critical  *float64 // required in ModeCritical
	PValue    *float64 // required in ModePValue
	Alpha     float64
	Mode      Mode
	Polarity  Polarity
	Detail    DetailLevel
	Digits    int // rounding of the FULL comparison payload
}

// Comparison is the FULL-level justification: the observed quantity
// (statistic or p-value), its reference (critical value or alpha) and how
// the first relates to the second.
type Comparison struct {
	Observed  float64  `json:"observed"`
	Reference float64  `json:"reference"`
	Relation  Relation `json:"relation"`
}

// Conclusion is the language-neutral outcome of a decision.
//
// SHORT carries Normal, Code and ConfidenceLevel. FULL adds Comparison.
// BINARY collapses to Binary: 0 when normality is not rejected, 1 otherwise.
type Conclusion struct {
	Code            ConclusionCode `json:"code"`
	Normal          bool           `json:"normal"`
	Mode            Mode           `json:"mode"`
	Detail          DetailLevel    `json:"detail"`
	ConfidenceLevel float64        `json:"confidence_level,omitempty"`
	Comparison      *Comparison    `json:"comparison,omitempty"`
	Binary          *int           `json:"binary,omitempty"`
}

// Int returns the BINARY encoding of the outcome regardless of detail level.
func (c Conclusion) Int() int {
	if c.Normal {
		return 0
	}
	return 1
}

// Decide turns a (statistic, critical, p-value, alpha) tuple into a
// Conclusion. It is pure: identical inputs always give identical outputs.
func Decide(in DecisionInput) (Conclusion, error) {
	if !in.Detail.Valid() {
		return Conclusion{}, NewInvalidDetailLevelError(in.Detail.String())
	}

	var (
		normal bool
		cmp    Comparison
	)
	switch in.Mode {
	case ModeCritical:
		if in.Critical == nil {
			return Conclusion{}, NewMissingComparisonValueError(in.Mode, "critical value")
		}
		if in.Polarity != CriticalGEStatisticIsNormal && in.Polarity != CriticalLEStatisticIsNormal {
			return Conclusion{}, fmt.Errorf("%w: %d", ErrInvalidPolarity, int(in.Polarity))
		}
		normal = in.Polarity.IsNormal(in.Statistic, *in.Critical)
		cmp = Comparison{
			Observed:  in.Statistic,
			Reference: *in.Critical,
			Relation:  criticalRelation(in.Polarity, normal),
		}
	case ModePValue:
		if in.PValue == nil {
			return Conclusion{}, NewMissingComparisonValueError(in.Mode, "p-value")
		}
		normal = *in.PValue >= in.Alpha
		cmp = Comparison{
			Observed:  *in.PValue,
			Reference: in.Alpha,
			Relation:  RelationLess,
		}
		if normal {
			cmp.Relation = RelationGreaterOrEqual
		}
	default:
		return Conclusion{}, NewInvalidModeError(in.Mode.String())
	}

	c := Conclusion{
		Code:   CodeNotNormal,
		Normal: normal,
		Mode:   in.Mode,
		Detail: in.Detail,
	}
	if normal {
		c.Code = CodeNormal
	}

	switch in.Detail {
	case DetailShort:
		c.ConfidenceLevel = ConfidenceLevel(in.Alpha)
	case DetailFull:
		c.ConfidenceLevel = ConfidenceLevel(in.Alpha)
		cmp.Observed = roundTo(cmp.Observed, in.Digits)
		cmp.Reference = roundTo(cmp.Reference, in.Digits)
		c.Comparison = &cmp
	case DetailBinary:
		b := c.Int()
		c.Binary = &b
	}
	return c, nil
}

func criticalRelation(p Polarity, normal bool) Relation {
	switch {
	case p == CriticalLEStatisticIsNormal && normal:
		return RelationGreaterOrEqual
	case p == CriticalLEStatisticIsNormal:
		return RelationLess
	case normal:
		return RelationLessOrEqual
	default:
		return RelationGreater
	}
}

func roundTo(x float64, digits int) float64 {
	if digits < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	pow := math.Pow(10, float64(digits))
	return math.Round(x*pow) / pow
}
