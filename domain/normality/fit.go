package normality

// FitRequest is one hypothesis decision for an already computed statistic.
type FitRequest struct {
	Test      TestID
	N         int
	Statistic float64
	PValue    *float64
	Mode      Mode
	Detail    DetailLevel
}

// DecisionResult is the compared tuple plus its conclusion. A fresh value is
// produced on every Fit; it is never updated in place.
type DecisionResult struct {
	Test       TestID     `json:"test"`
	N          int        `json:"n"`
	Statistic  float64    `json:"statistic"`
	Critical   *float64   `json:"critical,omitempty"`
	PValue     *float64   `json:"p_value,omitempty"`
	Alpha      float64    `json:"alpha"`
	Conclusion Conclusion `json:"conclusion"`
}

// GetCriticalValue looks up the critical value of a test. An alpha in (0, 1)
// that the test has no table for yields Found=false, not an error.
func GetCriticalValue(id TestID, n int, alpha float64) (CriticalValue, error) {
	d, err := Describe(id)
	if err != nil {
		return CriticalValue{}, err
	}
	if err := ValidateRange(alpha); err != nil {
		return CriticalValue{}, err
	}
	if n < d.MinimumN {
		return CriticalValue{}, NewSampleTooSmallError(id, d.MinimumN, n)
	}
	return d.Table.Lookup(n, alpha)
}

// Fit validates the request against the test descriptor, resolves the
// comparison value the mode needs and decides.
func Fit(tc TestContext, req FitRequest) (DecisionResult, error) {
	d, err := Describe(req.Test)
	if err != nil {
		return DecisionResult{}, err
	}
	if err := tc.Validate(); err != nil {
		return DecisionResult{}, err
	}
	if !req.Mode.Valid() {
		return DecisionResult{}, NewInvalidModeError(req.Mode.String())
	}
	if !req.Detail.Valid() {
		return DecisionResult{}, NewInvalidDetailLevelError(req.Detail.String())
	}
	if req.N < d.MinimumN {
		return DecisionResult{}, NewSampleTooSmallError(d.ID, d.MinimumN, req.N)
	}
	if err := ValidateAlpha(tc.Alpha, d, req.Mode); err != nil {
		return DecisionResult{}, err
	}

	result := DecisionResult{
		Test:      d.ID,
		N:         req.N,
		Statistic: req.Statistic,
		Alpha:     tc.Alpha,
	}
	if req.Mode == ModeCritical {
		cv, err := d.Table.Lookup(req.N, tc.Alpha)
		if err != nil {
			return DecisionResult{}, err
		}
		result.Critical = cv.Ptr()
	} else if req.PValue != nil {
		p := *req.PValue
		result.PValue = &p
	}

	conclusion, err := Decide(DecisionInput{
		Statistic: result.Statistic,
		Critical:  result.Critical,
		PValue:    result.PValue,
		Alpha:     result.Alpha,
		Mode:      req.Mode,
		Polarity:  d.Polarity,
		Detail:    req.Detail,
		Digits:    tc.Digits,
	})
	if err != nil {
		return DecisionResult{}, err
	}
	result.Conclusion = conclusion
	return result, nil
}

// SampleStatistic is what a StatisticAdapter computes from raw observations.
// PValue is nil for tests without a p-value approximation (Abdi-Molin).
type SampleStatistic struct {
	Test   TestID   `json:"test"`
	N      int      `json:"n"`
	Value  float64  `json:"value"`
	PValue *float64 `json:"p_value,omitempty"`
}
