package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"normtest/app"
	"normtest/domain/normality"
	"normtest/models"

	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan)
	dim    = color.New(color.Faint)
	red    = color.New(color.FgRed, color.Bold)
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow)
)

func verdictColor(normal bool) *color.Color {
	if normal {
		return green
	}
	return red
}

func printSuccess(w io.Writer, format string, args ...interface{}) {
	_, _ = green.Fprintf(w, format+"\n", args...)
}

func printCriticalValue(w io.Writer, cv normality.CriticalValue) {
	_, _ = cyan.Fprintf(w, "%s n=%d alpha=%g\n", cv.Test, cv.N, cv.Alpha)
	if !cv.Found {
		_, _ = yellow.Fprintln(w, "no critical value for this sample size and alpha")
		return
	}
	fmt.Fprintf(w, "critical value: %g", cv.Value)
	switch cv.Source {
	case normality.SourceSnapped:
		_, _ = dim.Fprintf(w, " (row n=%d)", cv.Anchor)
	case normality.SourceExtrapolated:
		_, _ = dim.Fprintf(w, " (extrapolated)")
	}
	fmt.Fprintln(w)
}

func printEvaluation(w io.Writer, ev *app.Evaluation, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ev)
	}

	res := ev.Result
	_, _ = verdictColor(res.Conclusion.Normal).Fprintln(w, ev.Summary)
	_, _ = dim.Fprintf(w, "statistic=%g", res.Statistic)
	if res.Critical != nil {
		_, _ = dim.Fprintf(w, " critical=%g", *res.Critical)
	}
	if res.PValue != nil {
		_, _ = dim.Fprintf(w, " p=%g", *res.PValue)
	}
	_, _ = dim.Fprintf(w, " alpha=%g id=%s\n", res.Alpha, ev.ID)
	return nil
}

func printBattery(w io.Writer, b *app.BatteryReport) {
	_, _ = cyan.Fprintf(w, "Battery %s (n=%d, alpha=%g)\n", b.ID, b.N, b.Context.Alpha)
	p := b.Profile
	_, _ = dim.Fprintf(w, "mean=%.4g sd=%.4g median=%.4g skew=%.3f kurt=%.3f outliers=%d\n",
		p.Mean, p.StdDev, p.Median, p.Skewness, p.Kurtosis, p.Outliers)
	_, _ = dim.Fprintln(w, strings.Repeat("-", 60))
	for _, e := range b.Entries {
		if e.Evaluation == nil {
			_, _ = yellow.Fprintf(w, "%-20s skipped: %s\n", e.Test, e.Skipped)
			continue
		}
		res := e.Evaluation.Result
		fmt.Fprintf(w, "%-20s %-9s ", e.Test, res.Conclusion.Mode)
		_, _ = verdictColor(res.Conclusion.Normal).Fprintln(w, e.Evaluation.Summary)
	}
}

func printRecords(w io.Writer, recs []*models.ResultRecord) {
	if len(recs) == 0 {
		_, _ = dim.Fprintln(w, "no stored results")
		return
	}
	for _, r := range recs {
		_, _ = dim.Fprintf(w, "%s  ", r.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "%-20s n=%-5d ", r.TestID, r.N)
		_, _ = verdictColor(r.Normal).Fprintln(w, r.Code)
	}
}

func batteryRecords(b *app.BatteryReport, tc normality.TestContext) []*models.ResultRecord {
	recs := make([]*models.ResultRecord, 0, len(b.Entries))
	for _, e := range b.Entries {
		if e.Evaluation == nil {
			continue
		}
		ev := e.Evaluation
		rec := models.NewResultRecord(ev.ID, ev.Result, tc, ev.Summary, ev.CreatedAt.Time())
		rec.BatteryID = b.ID.String()
		rec.SampleHash = b.SampleHash.String()
		recs = append(recs, rec)
	}
	return recs
}
