package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/pkg/token"
)

const (
	// CookieName is the credential cookie set by the login handler.
	CookieName = "token"
	// LoginPath is where the gatekeeper sends unauthenticated navigations.
	LoginPath = "/admin/login"

	// Context keys for the claims injected by Auth and Gatekeeper.
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// State classifies the outcome of credential extraction.
type State int

const (
	// Absent means no token was presented at all.
	Absent State = iota
	// Invalid means a token was presented but failed verification.
	Invalid
	// Valid means the token verified and Claims are populated.
	Valid
)

// Resolution is the single typed result of credential extraction, shared by
// the API auth middleware and the admin gatekeeper.
type Resolution struct {
	State  State
	Claims *token.Claims
}

// Resolve extracts a credential from the token cookie first, then from the
// Authorization bearer header, and verifies it with the codec.
func Resolve(c echo.Context, codec *token.Codec) Resolution {
	raw := ""
	if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
		raw = ck.Value
	}
	if raw == "" {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			raw = parts[1]
		}
	}
	if raw == "" {
		return Resolution{State: Absent}
	}

	claims, err := codec.Verify(raw)
	if err != nil {
		return Resolution{State: Invalid}
	}
	return Resolution{State: Valid, Claims: claims}
}

// Auth validates the credential on API routes and injects claims into the
// request context. Missing or invalid tokens end the request with 401.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := Resolve(c, codec)
			switch res.State {
			case Absent:
				metrics.GatekeeperDenialsTotal.WithLabelValues("absent").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			case Invalid:
				metrics.GatekeeperDenialsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			setClaims(c, res)
			return next(c)
		}
	}
}

// Gatekeeper guards admin-panel navigations. Unauthenticated requests are
// redirected to the login page with the original URL preserved in the
// callbackUrl query parameter. The login page itself is never guarded.
func Gatekeeper(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == LoginPath {
				return next(c)
			}

			res := Resolve(c, codec)
			if res.State != Valid {
				reason := "absent"
				if res.State == Invalid {
					reason = "invalid"
				}
				metrics.GatekeeperDenialsTotal.WithLabelValues(reason).Inc()
				return c.Redirect(http.StatusFound,
					LoginPath+"?callbackUrl="+url.QueryEscape(c.Request().URL.RequestURI()))
			}

			setClaims(c, res)
			return next(c)
		}
	}
}

func setClaims(c echo.Context, res Resolution) {
	c.Set(ContextUserID, res.Claims.UserID())
	c.Set(ContextEmail, res.Claims.Email)
	c.Set(ContextRole, res.Claims.Role)
}
