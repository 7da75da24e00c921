package handler

import (
	"errors"
	"log"
	"net/http"

	"ShortVideo_UserService/internal/service"

	"github.com/gin-gonic/gin"
)

// GetUserInfo godoc
// @Summary      사용자 정보 조회
// @Description  userId로 사용자 프로필을 조회합니다. (세션 토큰 필요)
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        userId query string true "사용자 id"
// @Success      200 {object} models.UserView
// @Failure      400 {object} handler.ErrorResponse "사용자 없음"
// @Failure      401 {object} handler.ErrorResponse "인증 실패"
// @Router       /api/user [get]
func (h *AuthHandler) GetUserInfo(c *gin.Context) {
	userID := c.Query("userId")

	view, err := h.svc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
			return
		}
		log.Printf("[ERROR] GetUserInfo failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	c.JSON(http.StatusOK, view)
}
