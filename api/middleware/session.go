package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/utils"
)

const SessionCookieName = "__session"

type sessionLoader interface {
	SessionFromCookie(ctx context.Context, cookie string) models.Session
}

// NewSessionLoader stores the visitor session read from the session cookie in the request
// context. Visitors without a valid cookie get the anonymous session.
func NewSessionLoader(loader sessionLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			cookie = ""
		}

		session := loader.SessionFromCookie(ctx, cookie)
		ctx = utils.StoreSessionInContext(ctx, session)
		if session.IsAuthenticated() {
			logger := utils.LoggerFromContext(ctx).With(slog.String("uid", session.Uid))
			ctx = utils.StoreLoggerInContext(ctx, logger)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
