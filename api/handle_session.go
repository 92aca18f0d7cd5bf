package api

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/caseshowcase/showcase-backend/api/middleware"
	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/utils"
)

type sessionManager interface {
	SignIn(ctx context.Context, idToken string) (string, error)
	SignOut(ctx context.Context, cookie string) error
	SessionFromCookie(ctx context.Context, cookie string) models.Session
	Lifetime() time.Duration
}

type SessionHandler struct {
	manager      sessionManager
	cookieSecure bool
}

func NewSessionHandler(manager sessionManager, cookieSecure bool) *SessionHandler {
	return &SessionHandler{
		manager:      manager,
		cookieSecure: cookieSecure,
	}
}

type signInInput struct {
	IdToken string `json:"id_token" binding:"required"`
}

// SignIn exchanges the Firebase ID token posted by the login page for a session cookie.
func (h *SessionHandler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	var input signInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
		return
	}

	cookie, err := h.manager.SignIn(ctx, input.IdToken)
	if presentError(c, err) {
		return
	}

	h.setSessionCookie(c, cookie, int(h.manager.Lifetime().Seconds()))
	c.Status(http.StatusNoContent)
}

// SignOut revokes the session and clears the cookie. The visitor is always signed out.
func (h *SessionHandler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	cookie, _ := c.Cookie(middleware.SessionCookieName)
	if err := h.manager.SignOut(ctx, cookie); err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "could not revoke session", "error", err.Error())
	}

	h.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *SessionHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
