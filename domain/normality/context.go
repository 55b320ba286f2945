package normality

import (
	"fmt"
	"strings"
)

const (
	DefaultAlpha    = 0.05
	DefaultLanguage = "en"
	DefaultDigits   = 3
	MaxDigits       = 15
)

// TestContext carries the caller's settings explicitly into every stateless
// operation: significance level, output language and rounding precision.
type TestContext struct {
	Alpha    float64 `json:"alpha" yaml:"alpha"`
	Language string  `json:"language" yaml:"language"`
	Digits   int     `json:"digits" yaml:"digits"`
}

// DefaultTestContext returns alpha=0.05, English, three digits.
func DefaultTestContext() TestContext {
	return TestContext{
		Alpha:    DefaultAlpha,
		Language: DefaultLanguage,
		Digits:   DefaultDigits,
	}
}

// WithAlpha returns a copy of the context with a different alpha.
func (tc TestContext) WithAlpha(alpha float64) TestContext {
	tc.Alpha = alpha
	return tc
}

// Validate checks the alpha range and the digit precision. Membership of
// alpha in a test's supported set depends on the mode and is checked by Fit.
func (tc TestContext) Validate() error {
	if err := ValidateRange(tc.Alpha); err != nil {
		return err
	}
	if tc.Digits < 0 || tc.Digits > MaxDigits {
		return fmt.Errorf("%w: digits must be in [0, %d], got %d", ErrInvalidDigits, MaxDigits, tc.Digits)
	}
	return nil
}

// Lang returns the normalized language tag, falling back to DefaultLanguage.
func (tc TestContext) Lang() string {
	if l := strings.TrimSpace(tc.Language); l != "" {
		return l
	}
	return DefaultLanguage
}
