package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"exact match", "admin", []string{"admin"}, true},
		{"one of several", "editor", []string{"admin", "editor"}, true},
		{"not allowed", "editor", []string{"admin"}, false},
		{"empty role", "", []string{"admin"}, false},
		{"empty allowed list", "admin", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Authorize(tc.role, tc.allowed...); got != tc.want {
				t.Errorf("Authorize(%q, %v) = %v, want %v", tc.role, tc.allowed, got, tc.want)
			}
		})
	}
}

func TestRequireRoleAllows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextRole, "admin")

	err := RequireRole("admin")(okHandler)(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("code = %d, want 200", rec.Code)
	}
}

func TestRequireRoleDenies(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(ContextRole, "editor")

	err := RequireRole("admin")(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusForbidden {
		t.Errorf("code = %d, want 403", he.Code)
	}
}

func TestRequireRoleDeniesMissingRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := RequireRole("admin")(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusForbidden {
		t.Errorf("code = %d, want 403", he.Code)
	}
}
