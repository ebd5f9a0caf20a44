package utils

import "github.com/gin-gonic/gin"

// ClientID identifies the anonymous customer session. The frontend
// generates one per browser and sends it on every request.
func ClientID(c *gin.Context) string {
	return c.GetHeader("X-Client-ID")
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
