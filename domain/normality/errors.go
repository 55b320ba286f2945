package normality

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Domain errors - every failure of the critical-value lookup and decision
// engine wraps exactly one of these kinds.
var (
	// Input validation errors
	ErrSampleTooSmall               = errors.New("sample too small")
	ErrOutOfRange                   = errors.New("significance level out of range")
	ErrUnsupportedSignificanceLevel = errors.New("unsupported significance level")
	ErrInvalidDetailLevel           = errors.New("invalid detail level")
	ErrInvalidMode                  = errors.New("invalid comparison mode")
	ErrInvalidDigits                = errors.New("invalid digit precision")

	// Integration errors
	ErrMissingComparisonValue = errors.New("missing comparison value")
	ErrInvalidPolarity        = errors.New("invalid comparison polarity")
	ErrUnknownTest            = errors.New("unknown normality test")
)

// SampleTooSmallError reports a sample size below the minimum a test accepts.
type SampleTooSmallError struct {
	Test    TestID
	Minimum int
	Got     int
}

func (e *SampleTooSmallError) Error() string {
	return fmt.Sprintf("%s: %s requires at least %d observations, got %d",
		ErrSampleTooSmall, e.Test, e.Minimum, e.Got)
}

func (e *SampleTooSmallError) Unwrap() error {
	return ErrSampleTooSmall
}

// UnsupportedSignificanceLevelError carries the full set of tabulated alphas
// so callers can retry with a valid one.
type UnsupportedSignificanceLevelError struct {
	Test      TestID
	Alpha     float64
	Supported []float64
}

func (e *UnsupportedSignificanceLevelError) Error() string {
	levels := make([]string, len(e.Supported))
	for i, a := range e.Supported {
		levels[i] = strconv.FormatFloat(a, 'g', -1, 64)
	}
	return fmt.Sprintf("%s: %s has no critical values for alpha=%g (supported: %s)",
		ErrUnsupportedSignificanceLevel, e.Test, e.Alpha, strings.Join(levels, ", "))
}

func (e *UnsupportedSignificanceLevelError) Unwrap() error {
	return ErrUnsupportedSignificanceLevel
}

// Error constructors with context
func NewSampleTooSmallError(test TestID, minimum, got int) error {
	return &SampleTooSmallError{Test: test, Minimum: minimum, Got: got}
}

func NewUnsupportedSignificanceLevelError(test TestID, alpha float64, supported []float64) error {
	return &UnsupportedSignificanceLevelError{
		Test:      test,
		Alpha:     alpha,
		Supported: append([]float64(nil), supported...),
	}
}

func NewOutOfRangeError(alpha float64) error {
	return fmt.Errorf("%w: alpha must satisfy 0 < alpha < 1, got %g", ErrOutOfRange, alpha)
}

func NewMissingComparisonValueError(mode Mode, what string) error {
	return fmt.Errorf("%w: %s mode requires a %s", ErrMissingComparisonValue, mode, what)
}

func NewInvalidDetailLevelError(token string) error {
	return fmt.Errorf("%w: %q (expected short, full or binary)", ErrInvalidDetailLevel, token)
}

func NewInvalidModeError(token string) error {
	return fmt.Errorf("%w: %q (expected critical or p_value)", ErrInvalidMode, token)
}

func NewUnknownTestError(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTest, id)
}

// Error checking helpers

// IsValidationError reports whether err was caused by bad caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSampleTooSmall) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrUnsupportedSignificanceLevel) ||
		errors.Is(err, ErrInvalidDetailLevel) ||
		errors.Is(err, ErrInvalidMode) ||
		errors.Is(err, ErrInvalidDigits)
}

// IsIntegrationError reports whether err signals a caller/integration bug
// rather than bad data.
func IsIntegrationError(err error) bool {
	return errors.Is(err, ErrMissingComparisonValue) ||
		errors.Is(err, ErrInvalidPolarity)
}

func IsUnknownTestError(err error) bool {
	return errors.Is(err, ErrUnknownTest)
}
