package utils

import "github.com/gin-gonic/gin"

// The auth middlewares store "userId" and "role" on the request context.
// Depending on which middleware ran, the id arrives as a uint (parsed
// claims) or as a JSON number (jwt.MapClaims), so both are accepted here.

// CurrentUserID returns the authenticated user's id, or zero when the
// request carries no usable identity.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	switch id := v.(type) {
	case uint:
		return id
	case float64:
		return uint(id)
	case int:
		return uint(id)
	case int64:
		return uint(id)
	}
	return 0
}

// CurrentRole returns the authenticated user's role, empty when absent.
func CurrentRole(c *gin.Context) string {
	return c.GetString("role")
}
