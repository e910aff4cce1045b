package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS sets CORS headers and handles preflight requests. Allowed callers are
// given as origin prefixes, so "chrome-extension://" admits any extension and
// "http://localhost" admits any local port. A trailing "*" is tolerated.
func CORS(allowedPrefixes []string) gin.HandlerFunc {
	prefixes := make([]string, 0, len(allowedPrefixes))
	for _, p := range allowedPrefixes {
		trimmed := strings.TrimSuffix(strings.TrimSpace(p), "*")
		if trimmed != "" {
			prefixes = append(prefixes, trimmed)
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(origin, prefixes) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
			h.Set("Access-Control-Expose-Headers", "X-Request-Id")
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}

		c.Next()
	}
}

func originAllowed(origin string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(origin, p) {
			return true
		}
	}
	return false
}
