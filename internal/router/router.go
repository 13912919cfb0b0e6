package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/loan-tracker/backend/api"
	"github.com/loan-tracker/backend/internal/config"
	"github.com/loan-tracker/backend/internal/controllers"
	"github.com/loan-tracker/backend/internal/controllers/healthz"
	"github.com/loan-tracker/backend/internal/controllers/root"
	versionController "github.com/loan-tracker/backend/internal/controllers/version"
	"github.com/loan-tracker/backend/internal/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with
// -ldflags "-X github.com/loan-tracker/backend/internal/router.version=<version>".
var version = "0.0.0"

// Config creates the router with all middlewares.
//
// The returned teardown function must be called when the router is not
// used anymore, it is safe to call when an error is returned.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	teardown := func() {}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	// Report validation errors with the names used in request bodies
	httputil.UseJSONFieldNames()

	// Amounts are JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.NoMethod(func(c *gin.Context) {
		httputil.NewError(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, teardown, err
	}
	r.Use(MetricsMiddleware())

	teardown = func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("Prometheus metrics could not be unregistered")
		}
	}

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "Loan Tracker"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for the loan tracker, keeping track of money and things lent to friends."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. behind a reverse proxy prefix.
func AttachRoutes(group *gin.RouterGroup, cfg config.Config) {
	root.RegisterRoutes(group.Group(""))
	versionController.RegisterRoutes(group.Group("/version"), version)
	healthz.RegisterRoutes(group.Group("/healthz"))

	// Prometheus metrics
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, c.Request.URL.Path+"/index.html")
	})
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	controllers.RegisterCategoryRoutes(group.Group("/categories"))
	controllers.RegisterStatusRoutes(group.Group("/statuses"))
	controllers.RegisterLoanRoutes(group.Group("/loans"))
}
