package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/api/middleware"
	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/pkg/token"
)

// AuthHandler owns the login/logout/session endpoints and the credential
// cookie lifecycle.
type AuthHandler struct {
	service       ports.AuthService
	codec         *token.Codec
	secureCookies bool
}

func NewAuthHandler(service ports.AuthService, codec *token.Codec, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		service:       service,
		codec:         codec,
		secureCookies: secureCookies,
	}
}

// Login verifies credentials and, on success, sets the token cookie and
// returns the user together with the raw token for header-based clients.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	signed, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()

	c.SetCookie(h.sessionCookie(signed, int(h.codec.TTL().Seconds())))
	return c.JSON(http.StatusOK, loginResponse{Success: true, User: user, Token: signed})
}

// Logout clears the token cookie. The token itself stays valid until it
// expires; logout only removes the browser's copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Me resolves the credential itself rather than sitting behind the auth
// middleware, so it can clear a stale cookie when the token no longer
// verifies or the account behind it is gone.
func (h *AuthHandler) Me(c echo.Context) error {
	res := middleware.Resolve(c, h.codec)
	if res.State != middleware.Valid {
		h.expireCookieIfPresent(c)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	user, err := h.service.CurrentUser(c.Request().Context(), res.Claims.UserID())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.expireCookieIfPresent(c)
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}

// Register creates a new account. The route sits behind the auth middleware
// plus the admin role guard, so only admins reach this handler.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, userResponse{Success: true, User: user})
}

// ChangePassword swaps the caller's own password after verifying the
// current one.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// sessionCookie builds the credential cookie. A negative maxAge expires it.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expireCookieIfPresent(c echo.Context) {
	if _, err := c.Cookie(middleware.CookieName); err == nil {
		c.SetCookie(h.sessionCookie("", -1))
	}
}
