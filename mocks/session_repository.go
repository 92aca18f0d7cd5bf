package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/caseshowcase/showcase-backend/models"
)

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) CreateSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, idToken, expiresIn)
	return args.String(0), args.Error(1)
}

func (m *SessionRepository) VerifySessionCookie(ctx context.Context, cookie string) (models.Session, error) {
	args := m.Called(ctx, cookie)
	return args.Get(0).(models.Session), args.Error(1)
}

func (m *SessionRepository) RevokeSessions(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}
