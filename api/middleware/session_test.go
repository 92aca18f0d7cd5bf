package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/utils"
)

type mockSessionLoader struct {
	mock.Mock
}

func (m *mockSessionLoader) SessionFromCookie(ctx context.Context, cookie string) models.Session {
	args := m.Called(ctx, cookie)
	return args.Get(0).(models.Session)
}

func TestSessionLoader(t *testing.T) {
	t.Run("session from cookie", func(t *testing.T) {
		session := models.NewAuthenticatedSession("uid-1", "admin@example.com")
		loader := new(mockSessionLoader)
		loader.On("SessionFromCookie", mock.Anything, "cookie-value").Return(session)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/test", NewSessionLoader(loader), func(c *gin.Context) {
			assert.Equal(t, session, utils.SessionFromContext(c.Request.Context()))
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-value"})
		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusOK, r.Code)
		loader.AssertExpectations(t)
	})

	t.Run("no cookie", func(t *testing.T) {
		loader := new(mockSessionLoader)
		loader.On("SessionFromCookie", mock.Anything, "").Return(models.Session{})

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/test", NewSessionLoader(loader), func(c *gin.Context) {
			assert.False(t, utils.SessionFromContext(c.Request.Context()).IsAuthenticated())
			c.Status(http.StatusOK)
		})

		r := httptest.NewRecorder()
		router.ServeHTTP(r, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, r.Code)
		loader.AssertExpectations(t)
	})
}
