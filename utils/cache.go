package utils

import "github.com/gin-gonic/gin"

// NoCacheMiddleware marks every response as non-cacheable. Feeds change on
// every post, so pages are always rendered fresh.
func NoCacheMiddleware(c *gin.Context) {
	c.Header("cache-control", "no-cache")
	c.Next()
}
