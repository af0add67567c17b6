package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/portfolio-api/internal/api/handler"
	"github.com/devfolio/portfolio-api/internal/api/middleware"
	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/pkg/token"
)

// RouterConfig carries everything NewRouter needs. Services are injected so
// tests can swap in stubs; the store clients are only used by the readiness
// probe and may be nil in tests.
type RouterConfig struct {
	Logger        zerolog.Logger
	Codec         *token.Codec
	SecureCookies bool
	ExposeErrors  bool

	Auth      ports.AuthService
	Posts     ports.PostService
	Comments  ports.CommentService
	Contact   ports.ContactService
	Profile   ports.ProfileService
	Dashboard ports.DashboardService

	Mongo *mongo.Client
	Redis *redis.Client

	// Registry isolates HTTP metrics per router instance. Nil means the
	// process-wide default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger, cfg.ExposeErrors)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if cfg.Registry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "portfolio",
			Registerer: cfg.Registry,
		}))
	} else {
		e.Use(echoprometheus.NewMiddleware("portfolio"))
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Auth, cfg.Codec, cfg.SecureCookies)
	postHandler := handler.NewPostHandler(cfg.Posts)
	commentHandler := handler.NewCommentHandler(cfg.Comments)
	contactHandler := handler.NewContactHandler(cfg.Contact)
	profileHandler := handler.NewProfileHandler(cfg.Profile)
	adminHandler := handler.NewAdminHandler(cfg.Dashboard)

	auth := middleware.Auth(cfg.Codec)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	contentRoles := middleware.RequireRole(domain.RoleAdmin, domain.RoleEditor)

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me)
	e.POST("/api/auth/register", authHandler.Register, auth, adminOnly)
	e.POST("/api/auth/change-password", authHandler.ChangePassword, auth)

	// --- Public content ---
	e.GET("/api/posts", postHandler.List)
	e.GET("/api/posts/:slug", postHandler.GetBySlug)
	e.GET("/api/posts/:slug/comments", commentHandler.ListForPost)
	e.POST("/api/posts/:slug/comments", commentHandler.Submit)
	e.GET("/api/projects", profileHandler.ListProjects)
	e.GET("/api/projects/:id", profileHandler.GetProject)
	e.GET("/api/skills", profileHandler.ListSkills)
	e.GET("/api/certificates", profileHandler.ListCertificates)
	e.GET("/api/resume", profileHandler.GetResume)
	e.POST("/api/contact", contactHandler.Submit)

	// --- Admin content management ---
	posts := e.Group("/api/admin/posts", auth, contentRoles)
	posts.GET("", postHandler.AdminList)
	posts.GET("/:slug", postHandler.AdminGetBySlug)
	posts.POST("", postHandler.Create)
	posts.PUT("/:id", postHandler.Update)
	posts.DELETE("/:id", postHandler.Delete)
	posts.PATCH("/:id/publish", postHandler.Publish)

	comments := e.Group("/api/admin/comments", auth, contentRoles)
	comments.GET("", commentHandler.AdminList)
	comments.PATCH("/:id/approve", commentHandler.Approve)
	comments.DELETE("/:id", commentHandler.Delete)

	projects := e.Group("/api/admin/projects", auth, contentRoles)
	projects.POST("", profileHandler.CreateProject)
	projects.PUT("/:id", profileHandler.UpdateProject)
	projects.DELETE("/:id", profileHandler.DeleteProject)

	skills := e.Group("/api/admin/skills", auth, contentRoles)
	skills.POST("", profileHandler.CreateSkill)
	skills.PUT("/:id", profileHandler.UpdateSkill)
	skills.DELETE("/:id", profileHandler.DeleteSkill)

	certificates := e.Group("/api/admin/certificates", auth, contentRoles)
	certificates.POST("", profileHandler.CreateCertificate)
	certificates.PUT("/:id", profileHandler.UpdateCertificate)
	certificates.DELETE("/:id", profileHandler.DeleteCertificate)

	resume := e.Group("/api/admin/resume", auth, contentRoles)
	resume.POST("", profileHandler.CreateResumeEntry)
	resume.PUT("/:id", profileHandler.UpdateResumeEntry)
	resume.DELETE("/:id", profileHandler.DeleteResumeEntry)

	inbox := e.Group("/api/admin/messages", auth, adminOnly)
	inbox.GET("", contactHandler.Inbox)
	inbox.PATCH("/:id/read", contactHandler.MarkRead)

	// --- Admin panel (browser navigations, gatekeeper-guarded) ---
	admin := e.Group("/admin", middleware.Gatekeeper(cfg.Codec))
	admin.GET("/login", adminHandler.LoginPage)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/*", adminHandler.Panel)

	// --- Observability ---
	if cfg.Registry != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: cfg.Registry,
		}))
	} else {
		e.GET("/metrics", echoprometheus.NewHandler())
	}
	if cfg.Mongo != nil && cfg.Redis != nil {
		healthHandler := handler.NewHealthHandler(cfg.Mongo, cfg.Redis)
		e.GET("/health", healthHandler.Liveness)
		e.GET("/health/ready", healthHandler.Readiness)
	}

	return e
}
