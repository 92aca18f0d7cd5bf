package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/caseshowcase/showcase-backend/api/middleware"
	"github.com/caseshowcase/showcase-backend/mocks"
	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/repositories"
	"github.com/caseshowcase/showcase-backend/usecases"
)

var testCases = []models.Case{
	{
		Id:        "kitchen",
		Title:     "Kitchen remodel",
		Summary:   "Open kitchen",
		Images:    []string{"https://firebasestorage.googleapis.com/v0/b/b/o/cases%2Fkitchen%2Fa.jpg?alt=media"},
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	},
	{Id: "loft", Title: "Loft", CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
}

type siteFixture struct {
	router   *gin.Engine
	cases    *mocks.CaseRepository
	sessions *mockSessionManager
}

func newSiteFixture() siteFixture {
	caseRepository := new(mocks.CaseRepository)
	manager := new(mockSessionManager)
	manager.On("SessionFromCookie", mock.Anything, "").Return(models.Session{})
	manager.On("SessionFromCookie", mock.Anything, "admin-cookie").
		Return(models.NewAuthenticatedSession("uid-1", "admin@example.com"))

	uc := usecases.NewUsecases(repositories.Repositories{CaseRepository: caseRepository})
	conf := Configuration{FirebaseConfig: FirebaseConfig{ProjectId: "showcase", ApiKey: "api-key"}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewSessionLoader(manager))
	router.SetHTMLTemplate(loadTemplates())
	addRoutes(router, conf, uc, NewSessionHandler(manager, false))

	return siteFixture{router: router, cases: caseRepository, sessions: manager}
}

func (f siteFixture) serve(method, path string, signedIn bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if signedIn {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "admin-cookie"})
	}
	r := httptest.NewRecorder()
	f.router.ServeHTTP(r, req)
	return r
}

func TestPages(t *testing.T) {
	t.Run("static page with breadcrumbs", func(t *testing.T) {
		f := newSiteFixture()
		r := f.serve(http.MethodGet, "/about", false)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.Contains(t, r.Body.String(), "關於我們")
		assert.Contains(t, r.Body.String(), `href="/login"`)
	})

	t.Run("login page carries the firebase web config", func(t *testing.T) {
		f := newSiteFixture()
		r := f.serve(http.MethodGet, "/login", false)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.Contains(t, r.Body.String(), `"api-key"`)
	})

	t.Run("cases list", func(t *testing.T) {
		f := newSiteFixture()
		f.cases.On("ListCases", mock.Anything).Return(testCases, nil)

		r := f.serve(http.MethodGet, "/cases", false)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.Contains(t, r.Body.String(), "Kitchen remodel")
		assert.Contains(t, r.Body.String(), `href="/cases/loft"`)
		f.cases.AssertExpectations(t)
	})

	t.Run("case detail", func(t *testing.T) {
		f := newSiteFixture()
		f.cases.On("GetCase", mock.Anything, "kitchen").Return(testCases[0], nil)

		r := f.serve(http.MethodGet, "/cases/kitchen", false)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.Contains(t, r.Body.String(), "Kitchen remodel")
		assert.Contains(t, r.Body.String(), "2024-05-01")
		assert.Contains(t, r.Body.String(), "案例詳情")
	})

	t.Run("unknown case", func(t *testing.T) {
		f := newSiteFixture()
		f.cases.On("GetCase", mock.Anything, "nope").
			Return(models.Case{}, errors.Wrap(models.NotFoundError, "case nope"))

		r := f.serve(http.MethodGet, "/cases/nope", false)

		assert.Equal(t, http.StatusNotFound, r.Code)
	})

	t.Run("repository failure renders the error page", func(t *testing.T) {
		f := newSiteFixture()
		f.cases.On("ListCases", mock.Anything).Return([]models.Case{}, assert.AnError)

		r := f.serve(http.MethodGet, "/cases", false)

		assert.Equal(t, http.StatusInternalServerError, r.Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		f := newSiteFixture()
		r := f.serve(http.MethodGet, "/nowhere", false)

		assert.Equal(t, http.StatusNotFound, r.Code)
		assert.Contains(t, r.Body.String(), "Not Found")
	})

	t.Run("admin without session", func(t *testing.T) {
		f := newSiteFixture()
		r := f.serve(http.MethodGet, "/admin", false)

		assert.Equal(t, http.StatusFound, r.Code)
		assert.Equal(t, "/login", r.Header().Get("Location"))
		f.cases.AssertNotCalled(t, "ListCases", mock.Anything)
	})

	t.Run("admin with session", func(t *testing.T) {
		f := newSiteFixture()
		f.cases.On("ListCases", mock.Anything).Return(testCases, nil)

		r := f.serve(http.MethodGet, "/admin", true)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.Contains(t, r.Body.String(), "admin@example.com")
		assert.Contains(t, r.Body.String(), `action="/admin/cases/kitchen/delete"`)
	})

	t.Run("delete case", func(t *testing.T) {
		f := newSiteFixture()
		f.cases.On("DeleteCase", mock.Anything, "kitchen").Return(nil)

		r := f.serve(http.MethodPost, "/admin/cases/kitchen/delete", true)

		assert.Equal(t, http.StatusSeeOther, r.Code)
		assert.Equal(t, "/admin", r.Header().Get("Location"))
		f.cases.AssertExpectations(t)
	})

	t.Run("delete case without session", func(t *testing.T) {
		f := newSiteFixture()
		r := f.serve(http.MethodPost, "/admin/cases/kitchen/delete", false)

		assert.Equal(t, http.StatusFound, r.Code)
		f.cases.AssertNotCalled(t, "DeleteCase", mock.Anything, mock.Anything)
	})

	t.Run("liveness", func(t *testing.T) {
		f := newSiteFixture()
		r := f.serve(http.MethodGet, "/liveness", false)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{"mood":"ok"}`, r.Body.String())
	})
}
