package utils

import (
	"context"

	"github.com/caseshowcase/showcase-backend/models"
)

// SessionFromContext returns the visitor session loaded by the session middleware, or the
// anonymous session.
func SessionFromContext(ctx context.Context) models.Session {
	session, _ := ctx.Value(ContextKeySession).(models.Session)
	return session
}

func StoreSessionInContext(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, ContextKeySession, session)
}
