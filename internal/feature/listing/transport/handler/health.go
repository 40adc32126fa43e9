package handler

import "github.com/gin-gonic/gin"

// Root serves the banner on GET /.
func Root(c *gin.Context) {
	c.String(200, "AdHub Backend API is running")
}

// Health answers liveness probes on /healthz.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
