package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"normtest/domain/core"
	"normtest/domain/normality"
)

// DecisionPayload stores a full DecisionResult in a JSONB column
type DecisionPayload normality.DecisionResult

// Value implements driver.Valuer interface
func (p DecisionPayload) Value() (driver.Value, error) {
	return json.Marshal(normality.DecisionResult(p))
}

// Scan implements sql.Scanner interface
func (p *DecisionPayload) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	case nil:
		*p = DecisionPayload{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DecisionPayload", value)
	}

	var res normality.DecisionResult
	if err := json.Unmarshal(bytes, &res); err != nil {
		return err
	}
	*p = DecisionPayload(res)
	return nil
}

// ResultRecord is one persisted decision. The flat columns mirror the
// payload so the ledger can be queried without decoding JSON.
type ResultRecord struct {
	ID         core.ResultID    `json:"id" db:"id"`
	BatteryID  string           `json:"battery_id,omitempty" db:"battery_id"` // empty for single evaluations
	TestID     normality.TestID `json:"test_id" db:"test_id"`
	N          int              `json:"n" db:"n"`
	Statistic  float64          `json:"statistic" db:"statistic"`
	Critical   *float64         `json:"critical,omitempty" db:"critical"`
	PValue     *float64         `json:"p_value,omitempty" db:"p_value"`
	Alpha      float64          `json:"alpha" db:"alpha"`
	Mode       string           `json:"mode" db:"mode"`
	Detail     string           `json:"detail" db:"detail"`
	Code       string           `json:"conclusion_code" db:"conclusion_code"`
	Normal     bool             `json:"normal" db:"normal"`
	Language   string           `json:"language" db:"language"`
	Digits     int              `json:"digits" db:"digits"`
	SampleHash string           `json:"sample_hash,omitempty" db:"sample_hash"` // empty when only a statistic was supplied
	Summary    string           `json:"summary" db:"summary"`
	Decision   DecisionPayload  `json:"decision" db:"decision"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}

// NewResultRecord flattens a decision into a ledger row.
func NewResultRecord(id core.ResultID, res normality.DecisionResult, tc normality.TestContext, summary string, createdAt time.Time) *ResultRecord {
	return &ResultRecord{
		ID:        id,
		TestID:    res.Test,
		N:         res.N,
		Statistic: res.Statistic,
		Critical:  res.Critical,
		PValue:    res.PValue,
		Alpha:     res.Alpha,
		Mode:      res.Conclusion.Mode.String(),
		Detail:    res.Conclusion.Detail.String(),
		Code:      string(res.Conclusion.Code),
		Normal:    res.Conclusion.Normal,
		Language:  tc.Lang(),
		Digits:    tc.Digits,
		Summary:   summary,
		Decision:  DecisionPayload(res),
		CreatedAt: createdAt,
	}
}

// Result returns the stored decision.
func (r *ResultRecord) Result() normality.DecisionResult {
	return normality.DecisionResult(r.Decision)
}
