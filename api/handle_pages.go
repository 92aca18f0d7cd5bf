package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/usecases"
	"github.com/caseshowcase/showcase-backend/usecases/navigation"
)

func handleStaticPage(route navigation.Route, conf Configuration) func(c *gin.Context) {
	return func(c *gin.Context) {
		data := newPageData(c, route)
		data.Firebase = conf.FirebaseConfig
		renderPage(c, route, data)
	}
}

func handleListCases(uc usecases.Usecases, route navigation.Route) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewCaseUseCase()
		cases, err := usecase.ListCases(c.Request.Context())
		if presentPageError(c, err) {
			return
		}

		data := newPageData(c, route)
		data.Cases = cases
		renderPage(c, route, data)
	}
}

func handleGetCase(uc usecases.Usecases, route navigation.Route) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewCaseUseCase()
		showcase, err := usecase.GetCase(c.Request.Context(), c.Param("id"))
		if presentPageError(c, err) {
			return
		}

		data := newPageData(c, route)
		data.Title = showcase.Title
		data.Case = showcase
		renderPage(c, route, data)
	}
}

func handleAdmin(uc usecases.Usecases, route navigation.Route) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewCaseUseCase()
		cases, err := usecase.ListCases(c.Request.Context())
		if presentPageError(c, err) {
			return
		}

		data := newPageData(c, route)
		data.Cases = cases
		renderPage(c, route, data)
	}
}

func handleDeleteCase(uc usecases.Usecases, adminRoute navigation.Route) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewCaseUseCase()
		err := usecase.DeleteCase(c.Request.Context(), c.Param("id"))
		if presentPageError(c, err) {
			return
		}
		c.Redirect(http.StatusSeeOther, adminRoute.Path)
	}
}

func handleNotFound(c *gin.Context) {
	presentPageError(c, models.NotFoundError)
}
