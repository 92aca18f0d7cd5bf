package api

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/usecases/navigation"
	"github.com/caseshowcase/showcase-backend/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

const errorPage = "error.html"

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
}

func loadTemplates() *template.Template {
	return template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"),
	)
}

type pageData struct {
	Title       string
	Breadcrumbs []navigation.Route
	Session     models.Session
	Firebase    FirebaseConfig
	Cases       []models.Case
	Case        models.Case
	Status      int
}

func newPageData(c *gin.Context, route navigation.Route) pageData {
	return pageData{
		Title:       route.Breadcrumb,
		Breadcrumbs: navigation.Routes.Breadcrumbs(c.Request.URL.Path),
		Session:     utils.SessionFromContext(c.Request.Context()),
	}
}

func renderPage(c *gin.Context, route navigation.Route, data pageData) {
	c.HTML(http.StatusOK, route.Page, data)
}

func renderErrorPage(c *gin.Context, status int) {
	data := pageData{
		Title:   http.StatusText(status),
		Session: utils.SessionFromContext(c.Request.Context()),
		Status:  status,
	}
	c.HTML(status, errorPage, data)
}
