package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"normtest/domain/normality"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(t *testing.T, target string, header map[string]string) (*httptest.ResponseRecorder, normality.TestContext) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got normality.TestContext
	r := gin.New()
	r.Use(TestContext(normality.DefaultTestContext()))
	r.GET("/", func(c *gin.Context) {
		got = GetTestContext(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, got
}

func TestTestContext_Defaults(t *testing.T) {
	w, tc := serve(t, "/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, normality.DefaultTestContext(), tc)
}

func TestTestContext_QueryOverrides(t *testing.T) {
	w, tc := serve(t, "/?alpha=0.01&digits=5&lang=pt-BR", map[string]string{"Accept-Language": "en-US"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0.01, tc.Alpha)
	assert.Equal(t, 5, tc.Digits)
	assert.Equal(t, "pt-BR", tc.Language)
}

func TestTestContext_AcceptLanguage(t *testing.T) {
	_, tc := serve(t, "/", map[string]string{"Accept-Language": "pt-BR;q=0.9, en;q=0.8"})
	assert.Equal(t, "pt-BR", tc.Language)
}

func TestTestContext_Malformed(t *testing.T) {
	w, _ := serve(t, "/?alpha=five", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = serve(t, "/?digits=2.5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
