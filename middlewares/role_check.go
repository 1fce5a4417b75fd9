package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-pos/models"
	"cafe-pos/utils"
)

// RequireAdmin allows only ADMIN users through. Run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}
		if role != models.RoleAdmin {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
