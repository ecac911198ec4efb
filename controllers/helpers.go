package controllers

import "github.com/gin-gonic/gin"

// userIDFromCtx reads the patient id stored by the auth middleware.
func userIDFromCtx(c *gin.Context) (int, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
