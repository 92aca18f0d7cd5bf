package api

import (
	"fmt"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/caseshowcase/showcase-backend/api/middleware"
	"github.com/caseshowcase/showcase-backend/usecases"
	"github.com/caseshowcase/showcase-backend/usecases/navigation"
)

const (
	maxSessionRequestSize = 16 * 1024
	// Firestore documents are limited to 1MiB, events carry at most two of them
	maxEventSize = 3 * 1024 * 1024
)

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases, sessions *SessionHandler) {
	r.GET("/liveness", handleLivenessProbe)

	r.POST("/session", limits.RequestSizeLimiter(maxSessionRequestSize), sessions.SignIn)
	r.POST("/logout", sessions.SignOut)

	pageMiddlewares := []gin.HandlerFunc{middleware.NewNavigationGuard(navigation.Routes)}
	if conf.DefaultTimeout > 0 {
		pageMiddlewares = append([]gin.HandlerFunc{middleware.NewTimeout(conf.DefaultTimeout)}, pageMiddlewares...)
	}
	pages := r.Group("/", pageMiddlewares...)
	for _, route := range navigation.Routes {
		pages.GET(route.Path, pageHandler(route, conf, uc))
	}

	admin := mustRoute(navigation.Routes, "Admin")
	r.POST("/admin/cases/:id/delete",
		middleware.RequireRoute(navigation.Routes, admin.Name),
		handleDeleteCase(uc, admin))

	r.NoRoute(handleNotFound)
}

func pageHandler(route navigation.Route, conf Configuration, uc usecases.Usecases) func(c *gin.Context) {
	switch route.Name {
	case "Cases":
		return handleListCases(uc, route)
	case "CaseDetail":
		return handleGetCase(uc, route)
	case "Admin":
		return handleAdmin(uc, route)
	default:
		return handleStaticPage(route, conf)
	}
}

func mustRoute(table navigation.Table, name string) navigation.Route {
	route, ok := table.ByName(name)
	if !ok {
		panic(fmt.Sprintf("route %s is not in the route table", name))
	}
	return route
}

func addTriggerRoutes(r *gin.Engine, cleaner caseImagesCleaner) {
	r.GET("/liveness", handleLivenessProbe)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/", limits.RequestSizeLimiter(maxEventSize), handleCaseDeletedEvent(cleaner))
}
