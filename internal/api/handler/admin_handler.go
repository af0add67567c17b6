package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// AdminHandler serves the admin panel pages and the dashboard summary.
type AdminHandler struct {
	dashboard ports.DashboardService
}

func NewAdminHandler(dashboard ports.DashboardService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard}
}

// Dashboard returns the content counters shown on the admin landing page.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: stats})
}

// Panel answers any other authenticated admin navigation. The panel UI is a
// single-page frontend, so every path serves the same shell.
func (h *AdminHandler) Panel(c echo.Context) error {
	return c.HTML(http.StatusOK, panelHTML)
}

// LoginPage is the unguarded login entry point the gatekeeper redirects to.
// The actual UI is rendered by the frontend; this endpoint exists so the
// redirect target always answers 200.
func (h *AdminHandler) LoginPage(c echo.Context) error {
	return c.HTML(http.StatusOK, loginPageHTML)
}

const panelHTML = `<!DOCTYPE html>
<html>
<head><title>Admin</title></head>
<body>
<h1>Admin Panel</h1>
</body>
</html>
`

const loginPageHTML = `<!DOCTYPE html>
<html>
<head><title>Admin Login</title></head>
<body>
<h1>Admin Login</h1>
<p>Sign in via POST /api/auth/login.</p>
</body>
</html>
`
