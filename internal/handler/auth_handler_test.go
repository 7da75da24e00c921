package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ShortVideo_UserService/internal/middleware"
	"ShortVideo_UserService/internal/models"
	"ShortVideo_UserService/internal/service"

	"github.com/gin-gonic/gin"
)

// 테스트용 인메모리 사용자 저장소
type memUserRepo struct {
	byUsername map[string]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: make(map[string]models.User)}
}

func (m *memUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := m.byUsername[username]
	return ok, nil
}

func (m *memUserRepo) Insert(ctx context.Context, user models.User) error {
	m.byUsername[user.Username] = user
	return nil
}

func (m *memUserRepo) FindByCredentials(ctx context.Context, username, passwordHash string) (*models.User, error) {
	user, ok := m.byUsername[username]
	if !ok || user.Password != passwordHash {
		return nil, nil
	}
	return &user, nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range m.byUsername {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, nil
}

// 테스트용 인메모리 세션 스토어
type memSessionStore struct {
	entries map[string]string
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{entries: make(map[string]string)}
}

func (m *memSessionStore) Set(ctx context.Context, userID, token string) error {
	m.entries[userID] = token
	return nil
}

func (m *memSessionStore) Get(ctx context.Context, userID string) (string, error) {
	return m.entries[userID], nil
}

func (m *memSessionStore) Delete(ctx context.Context, userID string) error {
	delete(m.entries, userID)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *memSessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := newMemSessionStore()
	svc := service.NewAuthService(newMemUserRepo(), sessions)
	h := NewAuthHandler(svc)

	router := gin.New()
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	protected := router.Group("/api").Use(middleware.AuthMiddleware(sessions))
	{
		protected.GET("/user", h.GetUserInfo)
	}
	return router, sessions
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) models.UserView {
	t.Helper()
	var view models.UserView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return view
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response %q: %v", w.Body.String(), err)
	}
	return resp.Error
}

func TestRegisterLoginLogout_Scenario(t *testing.T) {
	router, sessions := newTestRouter(t)

	// 회원가입
	w := postJSON(router, "/register", `{"username":"alice","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	view := decodeView(t, w)
	if view.Username != "alice" || view.Nickname != "alice" {
		t.Errorf("expected username/nickname 'alice', got %q/%q", view.Username, view.Nickname)
	}
	if view.FansCount != 0 || view.ReceiveLikeCount != 0 || view.FollowCount != 0 {
		t.Error("counters should all be 0")
	}
	if view.Password != "" {
		t.Errorf("password should be blank in the response, got %q", view.Password)
	}
	if view.Token == "" {
		t.Fatal("expected a non-empty token")
	}
	if sessions.entries[view.ID] != view.Token {
		t.Error("session entry should map to the returned token")
	}

	// 잘못된 비밀번호로 로그인
	w = postJSON(router, "/login", `{"username":"alice","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("login with wrong password: expected 401, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "user not found or credentials mismatch" {
		t.Errorf("unexpected error message: %q", msg)
	}

	// 올바른 비밀번호로 로그인, 세션 덮어쓰기
	w = postJSON(router, "/login", `{"username":"alice","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	loginView := decodeView(t, w)
	if loginView.Token == "" || loginView.Token == view.Token {
		t.Error("login should issue a fresh token")
	}
	if sessions.entries[loginView.ID] != loginView.Token {
		t.Error("session should be overwritten with the new token")
	}

	// 로그아웃
	w = postJSON(router, "/logout?userId="+loginView.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}
	if _, ok := sessions.entries[loginView.ID]; ok {
		t.Error("session should be deleted after logout")
	}

	// 세션 없는 사용자의 로그아웃도 성공
	w = postJSON(router, "/logout?userId=no-such-user", "")
	if w.Code != http.StatusOK {
		t.Errorf("logout without session: expected 200, got %d", w.Code)
	}
}

func TestRegister_ValidationAndConflict(t *testing.T) {
	router, sessions := newTestRouter(t)

	for _, body := range []string{
		`{"username":"","password":"secret"}`,
		`{"username":"alice","password":""}`,
		`{"username":"  ","password":"secret"}`,
	} {
		w := postJSON(router, "/register", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("register %s: expected 400, got %d", body, w.Code)
		}
		if msg := decodeError(t, w); msg != "username/password required" {
			t.Errorf("unexpected error message: %q", msg)
		}
	}
	if len(sessions.entries) != 0 {
		t.Error("no session should be written for invalid input")
	}

	w := postJSON(router, "/register", `{"username":"alice","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("first register: expected 200, got %d", w.Code)
	}

	w = postJSON(router, "/register", `{"username":"alice","password":"another"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "username already exists" {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestLogin_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(router, "/login", `{"username":"","password":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if msg := decodeError(t, w); msg != "username/password required" {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestGetUserInfo_RequiresSession(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(router, "/register", `{"username":"alice","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", w.Code)
	}
	view := decodeView(t, w)

	// 토큰 없이 접근
	req := httptest.NewRequest(http.MethodGet, "/api/user?userId="+view.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without headers: expected 401, got %d", rec.Code)
	}

	// 잘못된 토큰
	req = httptest.NewRequest(http.MethodGet, "/api/user?userId="+view.ID, nil)
	req.Header.Set("userId", view.ID)
	req.Header.Set("Authorization", "Bearer WRONG-TOKEN")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong token: expected 401, got %d", rec.Code)
	}

	// 올바른 토큰
	req = httptest.NewRequest(http.MethodGet, "/api/user?userId="+view.ID, nil)
	req.Header.Set("userId", view.ID)
	req.Header.Set("Authorization", "Bearer "+view.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("with token: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	info := decodeView(t, rec)
	if info.Username != "alice" {
		t.Errorf("expected alice, got %q", info.Username)
	}
	if info.Password != "" || info.Token != "" {
		t.Error("user info should carry neither password nor token")
	}
}
