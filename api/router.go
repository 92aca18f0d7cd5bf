package api

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"github.com/caseshowcase/showcase-backend/api/middleware"
	"github.com/caseshowcase/showcase-backend/utils"
)

func corsOption(ctx context.Context, conf Configuration) cors.Config {
	logger := utils.LoggerFromContext(ctx)
	allowedOrigins := []string{}
	if conf.SiteUrl != "" {
		parsedUrl, err := url.Parse(conf.SiteUrl)
		switch {
		case err != nil:
			logger.Error("Failed to parse the site URL for CORS. Requests made from the browser from this url will be rejected.",
				"url", conf.SiteUrl)
		case !slices.Contains([]string{"http", "https"}, parsedUrl.Scheme):
			logger.Error("The site url does not contain a scheme (http or https), so it cannot be used for CORS.",
				"url", conf.SiteUrl)
		default:
			u := url.URL{
				Scheme: parsedUrl.Scheme,
				Host:   parsedUrl.Host,
			}
			allowedOrigins = append(allowedOrigins, u.String())
		}
	}

	if conf.Env == "development" {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:3000", "http://localhost:5000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodOptions, http.MethodHead, http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Content-Type", "baggage", "sentry-trace"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func secureOption(conf Configuration) secure.Config {
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      conf.Env == "development",
	}
	// TLS is terminated by the load balancer in front of the service
	if conf.SessionCookieSecure {
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	return secureConfig
}

func newEngine(conf Configuration) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	return r
}

// InitRouterMiddlewares builds the engine of the website.
func InitRouterMiddlewares(ctx context.Context, conf Configuration, sessions *SessionHandler) *gin.Engine {
	logger := utils.LoggerFromContext(ctx)

	r := newEngine(conf)
	r.Use(cors.New(corsOption(ctx, conf)))
	r.Use(secure.New(secureOption(conf)))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))
	r.Use(middleware.NewLogging(logger,
		middleware.WithIgnorePath([]string{"/liveness"}),
		middleware.WithRequestLoggingLevel(conf.RequestLoggingLevel),
	))
	r.Use(middleware.NewSessionLoader(sessions.manager))
	r.SetHTMLTemplate(loadTemplates())

	return r
}

// InitTriggerRouterMiddlewares builds the engine of the cleanup trigger receiver.
func InitTriggerRouterMiddlewares(ctx context.Context, conf Configuration) *gin.Engine {
	logger := utils.LoggerFromContext(ctx)

	r := newEngine(conf)
	r.Use(utils.StoreLoggerInContextMiddleware(logger))
	r.Use(middleware.NewLogging(logger,
		middleware.WithIgnorePath([]string{"/liveness", "/metrics"}),
		middleware.WithRequestLoggingLevel(conf.RequestLoggingLevel),
	))

	return r
}
