/**
* Name: 			auth_service.go
* Description: 		회원가입 / 로그인 / 로그아웃 유스케이스 오케스트레이션
* Workflow: 		입력 검증 -> 저장소 조회/기록 -> 세션 발급
 */
package service

import (
	"context"
	"errors"
	"strings"

	"ShortVideo_UserService/internal/auth"
	"ShortVideo_UserService/internal/models"

	"github.com/google/uuid"
)

var (
	// 필수 입력 누락 (username 또는 password 공백)
	ErrEmptyCredentials = errors.New("username/password required")
	// 이미 존재하는 username
	ErrUsernameExists = errors.New("username already exists")
	// 로그인 실패, 원인(미존재/비밀번호 불일치)은 의도적으로 구분하지 않음
	ErrInvalidCredentials = errors.New("user not found or credentials mismatch")
	// userId로 사용자를 찾지 못함
	ErrUserNotFound = errors.New("user not found")
)

// 사용자 저장소 계약 (sqlite 구현은 internal/storage)
type UserRepository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, user models.User) error
	FindByCredentials(ctx context.Context, username, passwordHash string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// 세션 캐시 계약 (redis 구현은 internal/session)
type SessionStore interface {
	Set(ctx context.Context, userID, token string) error
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
}

type AuthService struct {
	users    UserRepository
	sessions SessionStore
}

func NewAuthService(users UserRepository, sessions SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// 회원가입: username 중복 확인 후 사용자 생성, 세션 토큰 발급
// 검증/중복 단계에서 실패하면 어떤 쓰기도 일어나지 않음
func (s *AuthService) Register(ctx context.Context, username, password string) (models.UserView, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return models.UserView{}, ErrEmptyCredentials
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return models.UserView{}, err
	}
	if exists {
		return models.UserView{}, ErrUsernameExists
	}

	user := models.User{
		ID:               uuid.New().String(),
		Username:         username,
		Password:         auth.HashPassword(password),
		Nickname:         username,
		FansCount:        0,
		ReceiveLikeCount: 0,
		FollowCount:      0,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return models.UserView{}, err
	}

	return s.issueSession(ctx, user)
}

// 로그인: (username, 해시) 완전 일치 조회, 성공 시 새 토큰으로 세션 덮어쓰기
func (s *AuthService) Login(ctx context.Context, username, password string) (models.UserView, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return models.UserView{}, ErrEmptyCredentials
	}

	user, err := s.users.FindByCredentials(ctx, username, auth.HashPassword(password))
	if err != nil {
		return models.UserView{}, err
	}
	if user == nil {
		return models.UserView{}, ErrInvalidCredentials
	}

	return s.issueSession(ctx, *user)
}

// 로그아웃: 세션 삭제, 세션이 없어도 성공 (멱등)
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, userID)
}

// userId로 사용자 조회, 토큰 없는 뷰 반환
func (s *AuthService) GetUserInfo(ctx context.Context, userID string) (models.UserView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.UserView{}, err
	}
	if user == nil {
		return models.UserView{}, ErrUserNotFound
	}
	return models.NewUserView(*user, ""), nil
}

func (s *AuthService) issueSession(ctx context.Context, user models.User) (models.UserView, error) {
	token := auth.GenerateToken()
	if err := s.sessions.Set(ctx, user.ID, token); err != nil {
		return models.UserView{}, err
	}
	return models.NewUserView(user, token), nil
}
