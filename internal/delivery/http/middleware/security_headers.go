package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds baseline security headers to all
// responses. For a JSON-only API these mostly harden error pages, but they
// cost nothing and keep scanners quiet.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Force HTTPS for this domain
		c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Never allow framing
		c.Header("X-Frame-Options", "DENY")

		// Only the origin crosses to other sites
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}
