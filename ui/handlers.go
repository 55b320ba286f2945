package ui

import (
	stderrors "errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"normtest/adapters/excel"
	"normtest/domain/normality"
	"normtest/internal/errors"
	"normtest/ui/middleware"

	"github.com/gin-gonic/gin"
)

// contextOverrides lets a request body adjust the query-derived TestContext
type contextOverrides struct {
	Alpha    *float64 `json:"alpha"`
	Language string   `json:"language"`
	Digits   *int     `json:"digits"`
}

func (o contextOverrides) apply(tc normality.TestContext) normality.TestContext {
	if o.Alpha != nil {
		tc.Alpha = *o.Alpha
	}
	if o.Language != "" {
		tc.Language = o.Language
	}
	if o.Digits != nil {
		tc.Digits = *o.Digits
	}
	return tc
}

type fitRequest struct {
	contextOverrides
	Test      string                `json:"test" binding:"required"`
	N         int                   `json:"n" binding:"required"`
	Statistic float64               `json:"statistic"`
	PValue    *float64              `json:"p_value"`
	Mode      normality.Mode        `json:"mode"`
	Detail    normality.DetailLevel `json:"detail"`
}

type evaluateRequest struct {
	contextOverrides
	Test   string                `json:"test" binding:"required"`
	Sample []float64             `json:"sample" binding:"required"`
	Mode   normality.Mode        `json:"mode"`
	Detail normality.DetailLevel `json:"detail"`
}

type evaluateAllRequest struct {
	contextOverrides
	Sample []float64             `json:"sample" binding:"required"`
	Detail normality.DetailLevel `json:"detail"`
}

// withDefaults fills an omitted mode with critical and an omitted detail
// level with short
func withDefaults(mode *normality.Mode, detail *normality.DetailLevel) {
	if mode != nil && *mode == 0 {
		*mode = normality.ModeCritical
	}
	if *detail == 0 {
		*detail = normality.DetailShort
	}
}

// tableSummary is the public shape of a CriticalValueTable
type tableSummary struct {
	MinN          int       `json:"min_n"`
	MaxN          int       `json:"max_n"`
	Gaps          []string  `json:"gaps,omitempty"`
	Extrapolation string    `json:"extrapolation"`
	Alphas        []float64 `json:"alphas"`
}

func summarizeTable(d normality.TestDescriptor) tableSummary {
	ts := tableSummary{
		MinN:          d.Table.MinN(),
		MaxN:          d.Table.MaxN(),
		Extrapolation: d.Extrapolation.Kind.String(),
		Alphas:        d.Table.Alphas(),
	}
	for _, g := range d.Table.Gaps() {
		ts.Gaps = append(ts.Gaps, g.String())
	}
	return ts
}

func (s *Server) handleListTests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tests": s.service.ListTests()})
}

func (s *Server) handleDescribeTest(c *gin.Context) {
	d, err := s.service.Describe(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"test": d, "table": summarizeTable(d)})
}

func (s *Server) handleCriticalValue(c *gin.Context) {
	n, err := strconv.Atoi(c.Query("n"))
	if err != nil {
		respondError(c, errors.InvalidInput("query parameter n must be an integer"))
		return
	}
	tc := middleware.GetTestContext(c)

	cv, err := s.service.CriticalValue(c.Param("id"), n, tc.Alpha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cv)
}

func (s *Server) handleTableExport(c *gin.Context) {
	d, err := s.service.Describe(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, d.ID))
	if err := excel.WriteTables(c.Writer, d.ID); err != nil {
		log.Printf("[TableExport] Failed to write %s: %v", d.ID, err)
		c.Status(http.StatusInternalServerError)
	}
}

func (s *Server) handleFit(c *gin.Context) {
	var req fitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.WithCode(errors.CodeInvalidInput, err))
		return
	}
	id, err := normality.ParseTestID(req.Test)
	if err != nil {
		respondError(c, errors.WithCode(errors.CodeNotFound, err))
		return
	}
	withDefaults(&req.Mode, &req.Detail)
	tc := req.apply(middleware.GetTestContext(c))

	ev, err := s.service.Fit(c.Request.Context(), tc, normality.FitRequest{
		Test:      id,
		N:         req.N,
		Statistic: req.Statistic,
		PValue:    req.PValue,
		Mode:      req.Mode,
		Detail:    req.Detail,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (s *Server) handleEvaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.WithCode(errors.CodeInvalidInput, err))
		return
	}
	id, err := normality.ParseTestID(req.Test)
	if err != nil {
		respondError(c, errors.WithCode(errors.CodeNotFound, err))
		return
	}
	withDefaults(&req.Mode, &req.Detail)
	tc := req.apply(middleware.GetTestContext(c))

	ev, err := s.service.Evaluate(c.Request.Context(), tc, id, req.Sample, req.Mode, req.Detail)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// handleEvaluateAll answers JSON by default; format=markdown or format=html
// return the rendered report instead
func (s *Server) handleEvaluateAll(c *gin.Context) {
	var req evaluateAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.WithCode(errors.CodeInvalidInput, err))
		return
	}
	withDefaults(nil, &req.Detail)
	tc := req.apply(middleware.GetTestContext(c))

	battery, err := s.service.EvaluateAll(c.Request.Context(), tc, req.Sample, req.Detail)
	if err != nil {
		respondError(c, err)
		return
	}

	switch c.Query("format") {
	case "markdown":
		md, err := s.service.Renderer().Markdown(battery.Results(), tc)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
	case "html":
		page, err := s.service.Renderer().HTML(battery.Results(), tc)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	default:
		c.JSON(http.StatusOK, battery)
	}
}

func (s *Server) handleGetResult(c *gin.Context) {
	rec, err := s.service.GetResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleRecentResults(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			respondError(c, errors.InvalidInput("limit must be a positive integer"))
			return
		}
		limit = v
	}
	recs, err := s.service.RecentResults(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": recs})
}

// respondError writes the error code and message; unsupported alphas also
// list the levels the test does support
func respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	body := gin.H{"error": err.Error(), "code": errors.GetCode(err)}

	var unsupported *normality.UnsupportedSignificanceLevelError
	if stderrors.As(err, &unsupported) {
		body["supported_alphas"] = unsupported.Supported
	}
	var small *normality.SampleTooSmallError
	if stderrors.As(err, &small) {
		body["minimum_n"] = small.Minimum
	}

	if status >= http.StatusInternalServerError {
		log.Printf("[API] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, body)
}
