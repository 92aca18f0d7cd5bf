package repositories

import (
	"context"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/cockroachdb/errors"

	"github.com/caseshowcase/showcase-backend/models"
)

type firebaseAuthClient interface {
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
	VerifySessionCookieAndCheckRevoked(ctx context.Context, sessionCookie string) (*auth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

type SessionRepository interface {
	CreateSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
	VerifySessionCookie(ctx context.Context, cookie string) (models.Session, error)
	RevokeSessions(ctx context.Context, uid string) error
}

type FirebaseSessionRepository struct {
	client firebaseAuthClient
}

func NewFirebaseSessionRepository(client firebaseAuthClient) *FirebaseSessionRepository {
	return &FirebaseSessionRepository{client: client}
}

func (repo *FirebaseSessionRepository) CreateSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error) {
	cookie, err := repo.client.SessionCookie(ctx, idToken, expiresIn)
	if err != nil {
		return "", errors.Wrap(models.UnAuthorizedError, err.Error())
	}
	return cookie, nil
}

func (repo *FirebaseSessionRepository) VerifySessionCookie(ctx context.Context, cookie string) (models.Session, error) {
	token, err := repo.client.VerifySessionCookieAndCheckRevoked(ctx, cookie)
	if err != nil {
		return models.Session{}, errors.Wrap(models.UnAuthorizedError, err.Error())
	}

	email, _ := token.Claims["email"].(string)
	return models.NewAuthenticatedSession(token.UID, email), nil
}

func (repo *FirebaseSessionRepository) RevokeSessions(ctx context.Context, uid string) error {
	if err := repo.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrapf(err, "error revoking refresh tokens of %s", uid)
	}
	return nil
}
