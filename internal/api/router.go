package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/48hauling/web-panel/internal/api/handler"
	"github.com/48hauling/web-panel/internal/api/middleware"
	"github.com/48hauling/web-panel/internal/audit"
	"github.com/48hauling/web-panel/internal/core/domain"
	"github.com/48hauling/web-panel/internal/devapi"
	"github.com/48hauling/web-panel/internal/poll"
	"github.com/48hauling/web-panel/internal/session"
	"github.com/48hauling/web-panel/internal/web"
)

// Dependencies carries everything the router wires into its handlers. The
// refreshers are optional; without them the live-GPS partials fetch upstream
// per request.
type Dependencies struct {
	API       *devapi.Client
	Sessions  *session.Store
	Audit     *audit.Recorder
	Redis     *redis.Client
	Limiter   handler.LoginLimiter
	Log       zerolog.Logger
	Devices   *poll.Refresher[[]domain.DeviceStatus]
	Locations *poll.Refresher[[]domain.LocationPoint]
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("webpanel"))
	e.Use(middleware.SessionGuard())

	// --- Operational endpoints (guard-exempt) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.API)
	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/healthz/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.StaticFS("/static", web.Static())

	base := handler.Base{
		API:      deps.API,
		Sessions: deps.Sessions,
		Audit:    deps.Audit,
		Log:      deps.Log,
	}

	// --- Auth ---
	authHandler := handler.NewAuthHandler(base, deps.Limiter)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Overview ---
	e.GET("/", handler.NewOverviewHandler(base).Overview)

	// --- Loads ---
	loads := handler.NewLoadsHandler(base)
	e.GET("/loads", loads.List)
	e.POST("/loads", loads.Create)
	e.POST("/loads/:id/status", loads.UpdateStatus)

	// --- Drivers ---
	drivers := handler.NewDriversHandler(base)
	e.GET("/drivers", drivers.List)
	e.POST("/drivers", drivers.Create)
	e.POST("/drivers/:id", drivers.Update)
	e.POST("/drivers/:id/delete", drivers.Delete)

	// --- Inspections ---
	dvir := handler.NewDvirHandler(base)
	e.GET("/dvir", dvir.List)
	e.GET("/dvir/:id", dvir.Detail)
	e.POST("/dvir/:id/review", dvir.Review)

	// --- Documents ---
	documents := handler.NewDocumentsHandler(base)
	e.GET("/documents", documents.List)
	e.POST("/documents", documents.Upload)
	e.POST("/documents/:id/delete", documents.Delete)

	// --- Messages ---
	messages := handler.NewMessagesHandler(base)
	e.GET("/messages", messages.List)
	e.GET("/messages/conversation/:userId", messages.Conversation)
	e.POST("/messages/conversation/:userId", messages.Send)
	e.POST("/messages/announcements", messages.CreateAnnouncement)
	e.POST("/messages/announcements/:id/delete", messages.DeleteAnnouncement)

	// --- Live GPS ---
	gps := handler.NewGpsHandler(base, deps.Devices, deps.Locations)
	e.GET("/gps", gps.Page)
	e.GET("/partials/devices", gps.DevicesPartial)
	e.GET("/partials/locations", gps.LocationsPartial)
	e.GET("/partials/locations/:driverId/history", gps.History)

	// --- Analytics ---
	e.GET("/analytics", handler.NewAnalyticsHandler(base).Page)

	// --- Audit trail ---
	auditHandler := handler.NewAuditHandler(base)
	e.GET("/audit", auditHandler.List)
	e.POST("/audit/cleanup", auditHandler.Cleanup)

	// --- Issues & error logs ---
	issues := handler.NewIssuesHandler(base)
	e.GET("/issues", issues.List)
	e.POST("/issues/:id", issues.Triage)
	e.POST("/issues/errors/:id/resolve", issues.ResolveError)

	// --- Settings ---
	settings := handler.NewSettingsHandler(base)
	e.GET("/settings", settings.Page)
	e.POST("/settings", settings.UpdateSetting)
	e.POST("/settings/:key/delete", settings.DeleteSetting)
	e.POST("/settings/preferences", settings.UpdatePreferences)

	// --- Database console (admin re-checked against the session record) ---
	database := handler.NewDatabaseHandler(base)
	db := e.Group("/database", middleware.RequireAdmin(deps.Sessions))
	db.GET("", database.Page)
	db.POST("/query", database.Query)

	// Convenience: /database/ and /database resolve the same.
	e.GET("/database/", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/database")
	})

	return e, nil
}
