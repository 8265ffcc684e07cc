package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/menuhub/menu-server/internal/api/apierr"
	"github.com/menuhub/menu-server/internal/api/handler"
	"github.com/menuhub/menu-server/internal/api/middleware"
	"github.com/menuhub/menu-server/internal/core/ports"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Auth        ports.AuthService
	Tokens      ports.TokenParser
	Admins      middleware.AdminFinder
	Owners      middleware.RestaurantFinder
	Restaurants ports.RestaurantService
	Categories  ports.CategoryService
	Menu        ports.MenuService
	Images      handler.ImageOpener
	// Health maps dependency names to readiness checks.
	Health map[string]handler.Pinger
	Log    zerolog.Logger
}

// Options tune the transport. Zero values are usable defaults.
type Options struct {
	Production   bool
	AllowOrigins []string
	LoginLimit   int
	LoginWindow  time.Duration
	// Registry receives the HTTP metrics and serves /metrics. Nil uses the
	// default registry, where the domain metrics live.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = apierr.NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(deps.Log))
	e.Use(middleware.SecureHeaders(opts.Production))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: allowOrigins(opts.AllowOrigins),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "menu",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/metrics", "/health", "/health/ready":
				return true
			}
			return false
		},
	}))

	authn := middleware.Authenticate(deps.Tokens)
	admin := middleware.RequireAdmin(deps.Admins)

	authHandler := handler.NewAuthHandler(deps.Auth)
	categoryHandler := handler.NewCategoryHandler(deps.Categories)
	restaurantHandler := handler.NewRestaurantHandler(deps.Restaurants)
	menuHandler := handler.NewMenuHandler(deps.Menu)
	imageHandler := handler.NewImageHandler(deps.Images)
	healthHandler := handler.NewHealthHandler(deps.Health)

	// --- Auth ---
	login := e.Group("/auth", middleware.LoginRateLimit(loginLimit(opts), loginWindow(opts)))
	login.POST("/admin/login", authHandler.AdminLogin)
	login.POST("/restaurant/login", authHandler.RestaurantLogin)
	e.GET("/session", authHandler.Session, authn)

	// --- Categories ---
	e.GET("/categories", categoryHandler.List)
	e.GET("/categories/:id", categoryHandler.Get)
	e.POST("/categories", categoryHandler.Create, authn)
	e.PUT("/categories/:id", categoryHandler.Update, authn, admin)
	e.DELETE("/categories/:id", categoryHandler.Delete, authn, admin)

	// --- Restaurants ---
	e.GET("/restaurants", restaurantHandler.List)
	e.POST("/restaurants", authHandler.Register)
	e.GET("/restaurants/:key", restaurantHandler.Get)
	e.GET("/restaurants/:username/categories", restaurantHandler.MenuCategories)
	e.PUT("/restaurants/status/:id", restaurantHandler.SetStatus, authn, admin)
	e.DELETE("/restaurants/:id", restaurantHandler.Delete, authn, admin)

	// --- Menu (owner only) ---
	e.POST("/restaurants/:username/menu", menuHandler.AddItem, authn, middleware.RequireOwner(deps.Owners, "username"))
	e.PUT("/restaurants/:id/menu/:itemId", menuHandler.UpdateItem, authn, middleware.RequireOwner(deps.Owners, "id"))
	e.DELETE("/restaurants/:id/menu/:itemId", menuHandler.RemoveItem, authn, middleware.RequireOwner(deps.Owners, "id"))

	e.GET("/images/:id", imageHandler.Get)

	// --- Probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

func allowOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func loginLimit(opts Options) int {
	if opts.LoginLimit <= 0 {
		return 10
	}
	return opts.LoginLimit
}

func loginWindow(opts Options) time.Duration {
	if opts.LoginWindow <= 0 {
		return time.Minute
	}
	return opts.LoginWindow
}
