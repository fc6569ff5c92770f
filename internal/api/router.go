package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/nextier/cms-api/docs"
	"github.com/nextier/cms-api/internal/api/handler"
	"github.com/nextier/cms-api/internal/core/ports"
	"github.com/nextier/cms-api/internal/core/service"
	"github.com/nextier/cms-api/internal/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	AppName string
	Store   ports.DocumentStore
	Logger  zerolog.Logger
	// Registry receives HTTP and content metrics and backs /metrics. A fresh
	// registry is created when nil.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if err := metrics.Register(reg); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "cms",
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(permissiveCORS())

	// --- Dependencies ---
	contentHandler := handler.NewContentHandler(service.NewContentService(d.Store, d.Logger))
	adminHandler := handler.NewAdminHandler(service.NewAdminService(d.Store, d.Logger))
	healthHandler := handler.NewHealthHandler(d.AppName, d.Store)

	// --- Identity and probes ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public content ---
	e.GET("/api/content/home", contentHandler.Home)
	e.GET("/api/content/services", contentHandler.Services)
	e.GET("/api/content/case-studies", contentHandler.CaseStudies)
	e.GET("/api/content/testimonials", contentHandler.Testimonials)
	e.GET("/api/settings/org", contentHandler.OrganizationProfile)
	e.POST("/api/contact", contentHandler.SubmitContact)

	// --- Admin (demo, unauthenticated) ---
	admin := e.Group("/api/admin")
	admin.POST("/login", adminHandler.Login)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.POST("/content/home", adminHandler.CreateHomepage)
	admin.POST("/content/service", adminHandler.CreateService)
	admin.POST("/content/case-study", adminHandler.CreateCaseStudy)
	admin.POST("/content/blog", adminHandler.CreateBlogPost)

	return e, nil
}

// permissiveCORS admits every origin, method and header, with credentials.
// The request Origin is echoed back since "*" is not valid alongside
// credentials. Leaving AllowHeaders empty reflects whatever the preflight
// asks for.
func permissiveCORS() echo.MiddlewareFunc {
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
		AllowCredentials:                         true,
		UnsafeWildcardOriginWithAllowCredentials: true,
	})
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
