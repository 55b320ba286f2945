package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"time"

	"normtest/domain/core"
	"normtest/domain/normality"
	"normtest/internal"
	"normtest/internal/errors"
	"normtest/internal/profiling"
	"normtest/internal/report"
	"normtest/models"
	"normtest/ports"

	"golang.org/x/sync/errgroup"
)

// ServiceSettings bounds the service; zero fields take defaults
type ServiceSettings struct {
	Defaults      normality.TestContext
	Concurrency   int
	MaxSampleSize int
	Logger        *internal.Logger // nil uses the LOG_LEVEL default
}

// NormalityService orchestrates statistic computation, table lookup,
// decision and result persistence
type NormalityService struct {
	statistics ports.StatisticPort
	results    ports.ResultRepository
	renderer   *report.Renderer
	settings   ServiceSettings
	logger     *internal.Logger
	now        func() time.Time
}

// Evaluation is one decided and stored result
type Evaluation struct {
	ID         core.ResultID            `json:"id"`
	BatteryID  core.BatteryID           `json:"battery_id,omitempty"`
	Result     normality.DecisionResult `json:"result"`
	Summary    string                   `json:"summary"`
	SampleHash core.SampleHash          `json:"sample_hash,omitempty"`
	CreatedAt  core.Timestamp           `json:"created_at"`
}

// BatteryEntry is the outcome of one test in EvaluateAll. Exactly one of
// Evaluation and Skipped is set.
type BatteryEntry struct {
	Test       normality.TestID `json:"test"`
	Evaluation *Evaluation      `json:"evaluation,omitempty"`
	Skipped    string           `json:"skipped,omitempty"`
}

// BatteryReport collects every test run against one sample
type BatteryReport struct {
	ID         core.BatteryID        `json:"id"`
	N          int                   `json:"n"`
	SampleHash core.SampleHash       `json:"sample_hash"`
	Context    normality.TestContext `json:"context"`
	Profile    profiling.Profile     `json:"profile"`
	Entries    []BatteryEntry        `json:"entries"`
	CreatedAt  core.Timestamp        `json:"created_at"`
}

// Results returns the decided entries in registry order
func (b *BatteryReport) Results() []normality.DecisionResult {
	out := make([]normality.DecisionResult, 0, len(b.Entries))
	for _, e := range b.Entries {
		if e.Evaluation != nil {
			out = append(out, e.Evaluation.Result)
		}
	}
	return out
}

// NewNormalityService creates the service. results may be nil, in which
// case evaluations are returned but not stored.
func NewNormalityService(statistics ports.StatisticPort, results ports.ResultRepository, renderer *report.Renderer, settings ServiceSettings) *NormalityService {
	if settings.Defaults == (normality.TestContext{}) {
		settings.Defaults = normality.DefaultTestContext()
	}
	if settings.Concurrency < 1 {
		settings.Concurrency = len(normality.Tests())
	}
	if settings.MaxSampleSize < 1 {
		settings.MaxSampleSize = 100000
	}
	if settings.Logger == nil {
		settings.Logger = internal.DefaultLogger
	}
	return &NormalityService{
		statistics: statistics,
		results:    results,
		renderer:   renderer,
		settings:   settings,
		logger:     settings.Logger.WithComponent("NormalityService"),
		now:        time.Now,
	}
}

// Defaults returns the context used when a caller supplies none
func (s *NormalityService) Defaults() normality.TestContext {
	return s.settings.Defaults
}

// Renderer exposes the presentation layer used for summaries
func (s *NormalityService) Renderer() *report.Renderer {
	return s.renderer
}

// ListTests returns every registered test in stable order
func (s *NormalityService) ListTests() []normality.TestDescriptor {
	return normality.Descriptors()
}

// Describe resolves a test id or alias to its descriptor
func (s *NormalityService) Describe(test string) (normality.TestDescriptor, error) {
	id, err := normality.ParseTestID(test)
	if err != nil {
		return normality.TestDescriptor{}, classify(err)
	}
	d, err := normality.Describe(id)
	return d, classify(err)
}

// CriticalValue looks up the tabulated, snapped or extrapolated critical value
func (s *NormalityService) CriticalValue(test string, n int, alpha float64) (normality.CriticalValue, error) {
	id, err := normality.ParseTestID(test)
	if err != nil {
		return normality.CriticalValue{}, classify(err)
	}
	cv, err := normality.GetCriticalValue(id, n, alpha)
	return cv, classify(err)
}

// Fit decides on a statistic the caller already computed
func (s *NormalityService) Fit(ctx context.Context, tc normality.TestContext, req normality.FitRequest) (*Evaluation, error) {
	res, err := normality.Fit(tc, req)
	if err != nil {
		return nil, classify(err)
	}
	return s.record(ctx, tc, res, "", "")
}

// Evaluate computes the statistic of one test on a raw sample and decides
func (s *NormalityService) Evaluate(ctx context.Context, tc normality.TestContext, test normality.TestID, sample []float64, mode normality.Mode, detail normality.DetailLevel) (*Evaluation, error) {
	if err := s.checkSample(sample); err != nil {
		return nil, classify(err)
	}
	if err := tc.Validate(); err != nil {
		return nil, classify(err)
	}

	stat, err := s.statistics.Compute(ctx, test, sample, tc.Alpha)
	if err != nil {
		return nil, classify(err)
	}
	res, err := normality.Fit(tc, normality.FitRequest{
		Test:      test,
		N:         stat.N,
		Statistic: stat.Value,
		PValue:    stat.PValue,
		Mode:      mode,
		Detail:    detail,
	})
	if err != nil {
		return nil, classify(err)
	}
	return s.record(ctx, tc, res, "", core.ComputeSampleHash(sample))
}

// EvaluateAll runs every registered test on one sample concurrently. Each
// test uses critical mode when the alpha has a table and a value exists for
// n, otherwise p-value mode when the test has one; a test that can do
// neither is reported as skipped. Sample-level failures abort the battery.
func (s *NormalityService) EvaluateAll(ctx context.Context, tc normality.TestContext, sample []float64, detail normality.DetailLevel) (*BatteryReport, error) {
	if err := s.checkSample(sample); err != nil {
		return nil, classify(err)
	}
	if err := tc.Validate(); err != nil {
		return nil, classify(err)
	}
	if !detail.Valid() {
		return nil, classify(normality.NewInvalidDetailLevelError(detail.String()))
	}

	profile, err := profiling.NewAnalyzer().Analyze(sample)
	if err != nil {
		return nil, classify(err)
	}

	battery := &BatteryReport{
		ID:         core.NewBatteryID(),
		N:          len(sample),
		SampleHash: core.ComputeSampleHash(sample),
		Context:    tc,
		Profile:    profile,
		CreatedAt:  core.NewTimestamp(s.now()),
	}
	descriptors := normality.Descriptors()
	battery.Entries = make([]BatteryEntry, len(descriptors))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.Concurrency)
	for i, d := range descriptors {
		i, d := i, d
		g.Go(func() error {
			entry, err := s.runBatteryTest(gctx, tc, d, sample, detail, battery)
			if err != nil {
				return fmt.Errorf("%s: %w", d.ID, err)
			}
			battery.Entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("battery %s failed: %v", battery.ID, err)
		return nil, classify(err)
	}

	s.logger.Info("battery %s: %d tests on n=%d", battery.ID, len(battery.Results()), battery.N)
	return battery, nil
}

func (s *NormalityService) runBatteryTest(ctx context.Context, tc normality.TestContext, d normality.TestDescriptor, sample []float64, detail normality.DetailLevel, battery *BatteryReport) (BatteryEntry, error) {
	entry := BatteryEntry{Test: d.ID}
	if len(sample) < d.MinimumN {
		entry.Skipped = normality.NewSampleTooSmallError(d.ID, d.MinimumN, len(sample)).Error()
		return entry, nil
	}

	stat, err := s.statistics.Compute(ctx, d.ID, sample, tc.Alpha)
	switch {
	case err == nil:
	case stderrors.Is(err, core.ErrSampleTooLarge):
		entry.Skipped = err.Error()
		return entry, nil
	default:
		return entry, err
	}

	mode, reason, err := batteryMode(d, stat, tc.Alpha)
	if err != nil {
		return entry, err
	}
	if reason != "" {
		entry.Skipped = reason
		s.logger.Debug("%s skipped: %s", d.ID, reason)
		return entry, nil
	}

	res, err := normality.Fit(tc, normality.FitRequest{
		Test:      d.ID,
		N:         stat.N,
		Statistic: stat.Value,
		PValue:    stat.PValue,
		Mode:      mode,
		Detail:    detail,
	})
	if err != nil {
		return entry, err
	}
	ev, err := s.record(ctx, tc, res, battery.ID, battery.SampleHash)
	if err != nil {
		return entry, err
	}
	entry.Evaluation = ev
	return entry, nil
}

func batteryMode(d normality.TestDescriptor, stat normality.SampleStatistic, alpha float64) (normality.Mode, string, error) {
	if d.Supports(alpha) {
		cv, err := d.Table.Lookup(stat.N, alpha)
		if err != nil {
			return 0, "", err
		}
		if cv.Found {
			return normality.ModeCritical, "", nil
		}
	}
	if stat.PValue != nil {
		return normality.ModePValue, "", nil
	}
	return 0, fmt.Sprintf("no critical value for alpha=%g at n=%d and no p-value", alpha, stat.N), nil
}

// GetResult loads a stored evaluation
func (s *NormalityService) GetResult(ctx context.Context, id string) (*models.ResultRecord, error) {
	rid, err := core.ParseResultID(id)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err)
	}
	if s.results == nil {
		return nil, classify(core.NewNotFoundError("result", rid.String()))
	}
	rec, err := s.results.GetByID(ctx, rid)
	return rec, classify(err)
}

// RecentResults lists the newest stored evaluations
func (s *NormalityService) RecentResults(ctx context.Context, limit int) ([]*models.ResultRecord, error) {
	if s.results == nil {
		return nil, nil
	}
	recs, err := s.results.ListRecent(ctx, limit)
	return recs, classify(err)
}

// record renders the summary, assigns an identity and persists the result
func (s *NormalityService) record(ctx context.Context, tc normality.TestContext, res normality.DecisionResult, battery core.BatteryID, hash core.SampleHash) (*Evaluation, error) {
	summary, err := s.renderer.Text(res, tc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render %s result", res.Test)
	}

	ev := &Evaluation{
		ID:         core.NewResultID(),
		BatteryID:  battery,
		Result:     res,
		Summary:    summary,
		SampleHash: hash,
		CreatedAt:  core.NewTimestamp(s.now()),
	}

	if s.results != nil {
		rec := models.NewResultRecord(ev.ID, res, tc, summary, ev.CreatedAt.Time())
		rec.BatteryID = battery.String()
		rec.SampleHash = hash.String()
		if err := s.results.Save(ctx, rec); err != nil {
			return nil, errors.WithCode(errors.CodeDatabaseError, fmt.Errorf("failed to save result: %w", err))
		}
	}

	s.logger.Debug("%s n=%d statistic=%g -> %s", res.Test, res.N, res.Statistic, res.Conclusion.Code)
	return ev, nil
}

func (s *NormalityService) checkSample(sample []float64) error {
	if len(sample) == 0 {
		return core.ErrEmptySample
	}
	if len(sample) > s.settings.MaxSampleSize {
		return fmt.Errorf("%w: %d observations, limit %d", core.ErrSampleTooLarge, len(sample), s.settings.MaxSampleSize)
	}
	for i, v := range sample {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return core.NewNonFiniteError(i, v)
		}
	}
	return nil
}

// classify attaches an application error code to a domain error
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.GetCode(err) != "UNKNOWN":
		return err
	case normality.IsUnknownTestError(err), core.IsNotFoundError(err):
		return errors.WithCode(errors.CodeNotFound, err)
	case normality.IsValidationError(err), core.IsSampleError(err):
		return errors.WithCode(errors.CodeValidationError, err)
	case normality.IsIntegrationError(err):
		return errors.WithCode(errors.CodeMissingValue, err)
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.WithCode(errors.CodeCanceled, err)
	default:
		return errors.WithCode(errors.CodeInternalError, err)
	}
}
