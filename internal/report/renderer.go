package report

import (
	"fmt"
	"strconv"
	"strings"

	"normtest/domain/normality"
	"normtest/internal/i18n"
	"normtest/ports"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Renderer turns language-neutral conclusions into localized text
type Renderer struct {
	messages ports.MessageResolver
}

// NewRenderer creates a renderer backed by a message resolver
func NewRenderer(messages ports.MessageResolver) *Renderer {
	return &Renderer{messages: messages}
}

// Text renders one result at the detail level its conclusion was built with.
// BINARY renders the bare digit.
func (r *Renderer) Text(res normality.DecisionResult, tc normality.TestContext) (string, error) {
	c := res.Conclusion
	if c.Detail == normality.DetailBinary {
		return strconv.Itoa(c.Int()), nil
	}

	lang := tc.Lang()
	name, err := r.messages.Resolve(i18n.TestNameID(string(res.Test)), lang)
	if err != nil {
		return "", err
	}

	id := i18n.MsgConclusionNormal
	if !c.Normal {
		id = i18n.MsgConclusionNotNormal
	}
	tmpl, err := r.messages.Resolve(id, lang)
	if err != nil {
		return "", err
	}
	text := i18n.Format(tmpl, map[string]string{
		"test":       name,
		"confidence": strconv.FormatFloat(c.ConfidenceLevel, 'f', -1, 64),
	})

	if c.Detail != normality.DetailFull || c.Comparison == nil {
		return text, nil
	}

	justification, err := r.justify(c, tc)
	if err != nil {
		return "", err
	}
	return text + " " + justification, nil
}

func (r *Renderer) justify(c normality.Conclusion, tc normality.TestContext) (string, error) {
	lang := tc.Lang()
	id := i18n.MsgJustifyCritical
	if c.Mode == normality.ModePValue {
		id = i18n.MsgJustifyPValue
	}
	tmpl, err := r.messages.Resolve(id, lang)
	if err != nil {
		return "", err
	}
	relation, err := r.messages.Resolve(i18n.RelationID(string(c.Comparison.Relation)), lang)
	if err != nil {
		return "", err
	}
	return i18n.Format(tmpl, map[string]string{
		"observed":  formatFloat(c.Comparison.Observed, tc.Digits),
		"reference": formatFloat(c.Comparison.Reference, tc.Digits),
		"relation":  relation,
	}), nil
}

// Markdown renders a results table with a heading.
func (r *Renderer) Markdown(results []normality.DecisionResult, tc normality.TestContext) (string, error) {
	lang := tc.Lang()
	label := func(id string) (string, error) { return r.messages.Resolve(id, lang) }

	title, err := label(i18n.MsgReportTitle)
	if err != nil {
		return "", err
	}
	na, err := label(i18n.MsgNotAvailable)
	if err != nil {
		return "", err
	}

	headerIDs := []string{
		i18n.MsgLabelTest, i18n.MsgLabelN, i18n.MsgLabelStatistic, i18n.MsgLabelCritical,
		i18n.MsgLabelPValue, i18n.MsgLabelAlpha, i18n.MsgLabelResult,
	}
	headers := make([]string, len(headerIDs))
	for i, id := range headerIDs {
		if headers[i], err = label(id); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "| %s |\n", strings.Join(headers, " | "))
	fmt.Fprintf(&b, "|%s\n", strings.Repeat("---|", len(headers)))

	for _, res := range results {
		name, err := label(i18n.TestNameID(string(res.Test)))
		if err != nil {
			return "", err
		}
		code, err := label("code." + string(res.Conclusion.Code))
		if err != nil {
			return "", err
		}
		row := []string{
			name,
			strconv.Itoa(res.N),
			formatFloat(res.Statistic, tc.Digits),
			formatOptional(res.Critical, tc.Digits, na),
			formatOptional(res.PValue, tc.Digits, na),
			strconv.FormatFloat(res.Alpha, 'g', -1, 64),
			code,
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(row, " | "))
	}
	return b.String(), nil
}

// HTML renders the Markdown table to an HTML fragment.
func (r *Renderer) HTML(results []normality.DecisionResult, tc normality.TestContext) ([]byte, error) {
	md, err := r.Markdown(results, tc)
	if err != nil {
		return nil, err
	}
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer), nil
}

func formatFloat(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

func formatOptional(v *float64, digits int, absent string) string {
	if v == nil {
		return absent
	}
	return formatFloat(*v, digits)
}
