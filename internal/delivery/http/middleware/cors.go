package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// corsAllowHeaders lists the headers the site's frontend sends alongside
// form submissions (Supabase-style platform headers plus content-type).
const corsAllowHeaders = "authorization, x-client-info, apikey, content-type"

// CORSMiddleware adds permissive CORS headers for cross-origin requests.
// The form endpoints are public and anonymous: any origin may submit, so
// the wildcard origin is intentional here, not an oversight.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")

		// Preflight probes end here: headers only, no body.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
