package middleware

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"normtest/domain/normality"

	"github.com/gin-gonic/gin"
)

const testContextKey = "normtest.testContext"

// TestContext resolves the caller's alpha, language and digits from the
// query string (alpha, lang, digits) and Accept-Language, on top of the
// configured defaults. Malformed numbers abort with 400.
func TestContext(defaults normality.TestContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		tc := defaults

		if raw := c.Query("alpha"); raw != "" {
			alpha, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				log.Printf("[TestContext] Rejecting alpha %q: %v", raw, err)
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "alpha must be a number", "code": "INVALID_INPUT"})
				return
			}
			tc.Alpha = alpha
		}

		if raw := c.Query("digits"); raw != "" {
			digits, err := strconv.Atoi(raw)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "digits must be an integer", "code": "INVALID_INPUT"})
				return
			}
			tc.Digits = digits
		}

		if lang := c.Query("lang"); lang != "" {
			tc.Language = lang
		} else if header := c.GetHeader("Accept-Language"); header != "" {
			tc.Language = firstLanguage(header)
		}

		c.Set(testContextKey, tc)
		c.Next()
	}
}

// GetTestContext returns the context resolved by TestContext, or the
// package defaults when the middleware did not run
func GetTestContext(c *gin.Context) normality.TestContext {
	if v, ok := c.Get(testContextKey); ok {
		if tc, ok := v.(normality.TestContext); ok {
			return tc
		}
	}
	return normality.DefaultTestContext()
}

// firstLanguage picks the first tag of an Accept-Language header; the
// catalog does the actual matching.
func firstLanguage(header string) string {
	first := strings.SplitN(header, ",", 2)[0]
	return strings.TrimSpace(strings.SplitN(first, ";", 2)[0])
}
