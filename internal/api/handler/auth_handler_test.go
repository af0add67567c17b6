package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/middleware"
	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/pkg/token"
)

var testCodec = token.New("test-secret", time.Hour)

type stubAuthService struct {
	loginToken string
	loginUser  *domain.User
	loginErr   error

	currentUser *domain.User
	currentErr  error

	registerUser *domain.User
	registerErr  error

	changeErr error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginToken, s.loginUser, s.loginErr
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerUser, s.registerErr
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.currentUser, s.currentErr
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	return s.changeErr
}

func (s *stubAuthService) EnsureAdmin(ctx context.Context, email, password, name string) error {
	return nil
}

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Email: "admin@example.com",
		Name:  "Admin",
		Role:  domain.RoleAdmin,
	}
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestLoginSetsCookieAndReturnsUser(t *testing.T) {
	svc := &stubAuthService{loginToken: "signed-token", loginUser: testUser()}
	h := NewAuthHandler(svc, testCodec, false)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}

	ck := findCookie(t, rec, middleware.CookieName)
	if ck == nil {
		t.Fatal("token cookie not set")
	}
	if ck.Value != "signed-token" {
		t.Errorf("cookie value = %q, want signed-token", ck.Value)
	}
	if !ck.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if ck.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie SameSite = %v, want Lax", ck.SameSite)
	}
	if ck.Path != "/" {
		t.Errorf("cookie path = %q, want /", ck.Path)
	}
	if want := int(testCodec.TTL().Seconds()); ck.MaxAge != want {
		t.Errorf("cookie max-age = %d, want %d", ck.MaxAge, want)
	}
	if ck.Secure {
		t.Error("cookie must not be Secure outside production")
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Token != "signed-token" {
		t.Errorf("token = %q, want signed-token", resp.Token)
	}
	if resp.User == nil || resp.User.Email != "admin@example.com" {
		t.Errorf("unexpected user payload: %+v", resp.User)
	}
}

func TestLoginSecureCookieInProduction(t *testing.T) {
	svc := &stubAuthService{loginToken: "signed-token", loginUser: testUser()}
	h := NewAuthHandler(svc, testCodec, true)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login error: %v", err)
	}
	ck := findCookie(t, rec, middleware.CookieName)
	if ck == nil || !ck.Secure {
		t.Error("cookie must be Secure in production")
	}
}

func TestLoginInvalidCredentialsNoCookie(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, testCodec, false)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`)
	err := h.Login(c)
	if err == nil {
		t.Fatal("expected error")
	}
	if ck := findCookie(t, rec, middleware.CookieName); ck != nil {
		t.Error("no cookie must be set on failed login")
	}
}

func TestLoginMissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, testCodec, false)

	c, _ := newTestContext(http.MethodPost, "/api/auth/login", `{"email":"admin@example.com"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", he.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, testCodec, false)

	c, rec := newTestContext(http.MethodPost, "/api/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout error: %v", err)
	}

	ck := findCookie(t, rec, middleware.CookieName)
	if ck == nil {
		t.Fatal("expiring cookie not set")
	}
	if ck.Value != "" || ck.MaxAge >= 0 {
		t.Errorf("cookie not cleared: value=%q max-age=%d", ck.Value, ck.MaxAge)
	}
}

func TestMeReturnsCurrentUser(t *testing.T) {
	raw, err := testCodec.Issue("user-1", "admin@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	svc := &stubAuthService{currentUser: testUser()}
	h := NewAuthHandler(svc, testCodec, false)

	c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.CookieName, Value: raw})
	if err := h.Me(c); err != nil {
		t.Fatalf("me error: %v", err)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.User == nil || resp.User.ID != "user-1" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestMeInvalidTokenClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, testCodec, false)

	c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "garbage"})
	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}

	ck := findCookie(t, rec, middleware.CookieName)
	if ck == nil || ck.MaxAge >= 0 {
		t.Error("stale cookie must be cleared")
	}
}

func TestMeDeletedUserClearsCookie(t *testing.T) {
	raw, err := testCodec.Issue("user-1", "admin@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	svc := &stubAuthService{currentErr: domain.ErrUserNotFound}
	h := NewAuthHandler(svc, testCodec, false)

	c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.CookieName, Value: raw})
	err = h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}

	ck := findCookie(t, rec, middleware.CookieName)
	if ck == nil || ck.MaxAge >= 0 {
		t.Error("cookie for a deleted account must be cleared")
	}
}

func TestMeAbsentTokenNoCookieWrite(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, testCodec, false)

	c, rec := newTestContext(http.MethodGet, "/api/auth/me", "")
	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if ck := findCookie(t, rec, middleware.CookieName); ck != nil {
		t.Error("no cookie must be written when none was presented")
	}
}

func TestRegisterReturnsCreatedUser(t *testing.T) {
	created := &domain.User{ID: "user-2", Email: "editor@example.com", Role: domain.RoleEditor}
	h := NewAuthHandler(&stubAuthService{registerUser: created}, testCodec, false)

	c, rec := newTestContext(http.MethodPost, "/api/auth/register",
		`{"email":"editor@example.com","password":"longenough","name":"Editor"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("code = %d, want 201", rec.Code)
	}
}

func TestRegisterDuplicateEmailPassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists}, testCodec, false)

	c, _ := newTestContext(http.MethodPost, "/api/auth/register",
		`{"email":"editor@example.com","password":"longenough"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestChangePasswordRequiresClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, testCodec, false)

	c, _ := newTestContext(http.MethodPost, "/api/auth/change-password",
		`{"current_password":"old","new_password":"newpassword"}`)
	err := h.ChangePassword(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestChangePasswordHappyPath(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, testCodec, false)

	c, rec := newTestContext(http.MethodPost, "/api/auth/change-password",
		`{"current_password":"old","new_password":"newpassword"}`)
	c.Set(middleware.ContextUserID, "user-1")
	c.Set(middleware.ContextRole, domain.RoleAdmin)
	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("change password error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("code = %d, want 200", rec.Code)
	}
}
