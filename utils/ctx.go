package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the id the auth middleware stored; it is always a
// uint straight from the token claims. Zero means unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
