package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hostelhub/response"
	"hostelhub/services"
)

// AuthMiddleware xác thực token và (tùy chọn) kiểm tra role
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}

// CurrentUser lấy userID và role đã được AuthMiddleware lưu vào context
func CurrentUser(c *gin.Context) (uint, string) {
	userID, _ := c.Get("userID")
	userRole, _ := c.Get("userRole")

	id, _ := userID.(uint)
	role, _ := userRole.(string)
	return id, role
}
