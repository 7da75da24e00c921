/**
* Name: 			auth_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		회원가입, 로그인, 로그아웃
 */
package handler

import (
	"errors"
	"log"
	"net/http"

	"ShortVideo_UserService/internal/service"

	"github.com/gin-gonic/gin"
)

// /register, /login 요청 바디
type CredentialsRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"password123"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary      회원가입 (Register)
// @Description  새로운 사용자 계정을 생성하고 세션 토큰을 발급합니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.CredentialsRequest true "회원가입 요청 정보"
// @Success      200 {object} models.UserView
// @Failure      400 {object} handler.ErrorResponse "입력 누락 또는 중복 사용자명"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var credentials CredentialsRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	view, err := h.svc.Register(c.Request.Context(), credentials.Username, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "username/password required"})
		case errors.Is(err, service.ErrUsernameExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists"})
		default:
			log.Printf("[ERROR] Register failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  사용자명과 비밀번호로 로그인하고 새 세션 토큰을 발급받습니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.CredentialsRequest true "로그인 요청 정보"
// @Success      200 {object} models.UserView
// @Failure      400 {object} handler.ErrorResponse "입력 누락"
// @Failure      401 {object} handler.ErrorResponse "인증 실패 (자격 증명 오류)"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials CredentialsRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	view, err := h.svc.Login(c.Request.Context(), credentials.Username, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "username/password required"})
		case errors.Is(err, service.ErrInvalidCredentials):
			// 미존재/비밀번호 불일치를 구분하지 않음 (username 열거 방지)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found or credentials mismatch"})
		default:
			log.Printf("[ERROR] Login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// Logout godoc
// @Summary      로그아웃 (Logout)
// @Description  해당 사용자의 세션을 삭제합니다. 세션이 없어도 성공합니다.
// @Tags         User
// @Produce      json
// @Param        userId query string true "사용자 id"
// @Success      200
// @Failure      500 {object} handler.ErrorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.Query("userId")

	if err := h.svc.Logout(c.Request.Context(), userID); err != nil {
		log.Printf("[ERROR] Logout failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	c.Status(http.StatusOK)
}
