package middleware

import (
	"net/http"
	"strings"

	"ShortVideo_UserService/internal/service"

	"github.com/gin-gonic/gin"
)

// 세션 검증 미들웨어
// userId 헤더와 Authorization Bearer 토큰을 받아 캐시에 저장된 세션 토큰과 비교
func AuthMiddleware(sessions service.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("userId")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "userId header required"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		cached, err := sessions.Get(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify session"})
			c.Abort()
			return
		}
		if cached == "" || cached != token {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
