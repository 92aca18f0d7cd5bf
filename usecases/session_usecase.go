package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/repositories"
	"github.com/caseshowcase/showcase-backend/utils"
)

// SessionManager owns the authentication state of the site: it creates session cookies
// on sign in, revokes them on sign out, and turns a cookie back into a session.
type SessionManager struct {
	repository repositories.SessionRepository
	lifetime   time.Duration
}

func NewSessionManager(repository repositories.SessionRepository, lifetime time.Duration) *SessionManager {
	return &SessionManager{
		repository: repository,
		lifetime:   lifetime,
	}
}

func (manager *SessionManager) Lifetime() time.Duration {
	return manager.lifetime
}

// SignIn exchanges a Firebase ID token for a session cookie.
func (manager *SessionManager) SignIn(ctx context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", errors.Wrap(models.BadParameterError, "missing id token")
	}
	return manager.repository.CreateSessionCookie(ctx, idToken, manager.lifetime)
}

// SignOut revokes the sessions of the cookie owner. An invalid cookie is already signed out.
func (manager *SessionManager) SignOut(ctx context.Context, cookie string) error {
	if cookie == "" {
		return nil
	}
	session, err := manager.repository.VerifySessionCookie(ctx, cookie)
	if err != nil {
		return nil
	}
	return manager.repository.RevokeSessions(ctx, session.Uid)
}

// SessionFromCookie returns the session of the cookie, or the anonymous session when the
// cookie is missing, expired or revoked.
func (manager *SessionManager) SessionFromCookie(ctx context.Context, cookie string) models.Session {
	if cookie == "" {
		return models.Session{}
	}
	session, err := manager.repository.VerifySessionCookie(ctx, cookie)
	if err != nil {
		utils.LoggerFromContext(ctx).DebugContext(ctx, "invalid session cookie", "error", err.Error())
		return models.Session{}
	}
	return session
}
