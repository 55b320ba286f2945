package normality

import (
	"math"
)

// ValidateRange rejects any alpha outside the open interval (0, 1).
func ValidateRange(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0.0 || alpha >= 1.0 {
		return NewOutOfRangeError(alpha)
	}
	return nil
}

// ValidateSupported rejects an alpha that has no tabulated column for the
// test. Only critical-mode comparisons need it; p-value mode accepts any
// alpha that passes ValidateRange.
func ValidateSupported(alpha float64, d TestDescriptor) error {
	if !d.Supports(alpha) {
		return NewUnsupportedSignificanceLevelError(d.ID, alpha, d.SupportedAlphas)
	}
	return nil
}

// ValidateAlpha applies the checks a given comparison mode needs.
func ValidateAlpha(alpha float64, d TestDescriptor, mode Mode) error {
	if err := ValidateRange(alpha); err != nil {
		return err
	}
	if mode == ModeCritical {
		return ValidateSupported(alpha, d)
	}
	return nil
}

// ConfidenceLevel is 100*(1-alpha), the percentage quoted in conclusions.
func ConfidenceLevel(alpha float64) float64 {
	return roundTo(100*(1-alpha), 10)
}
