package repositories

import (
	"context"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caseshowcase/showcase-backend/models"
)

type mockAuthClient struct {
	mock.Mock
}

func (m *mockAuthClient) SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, idToken, expiresIn)
	return args.String(0), args.Error(1)
}

func (m *mockAuthClient) VerifySessionCookieAndCheckRevoked(ctx context.Context, sessionCookie string) (*auth.Token, error) {
	args := m.Called(ctx, sessionCookie)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Token), args.Error(1)
}

func (m *mockAuthClient) RevokeRefreshTokens(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func TestFirebaseSessionRepository_VerifySessionCookie(t *testing.T) {
	ctx := context.Background()

	t.Run("nominal", func(t *testing.T) {
		client := new(mockAuthClient)
		client.On("VerifySessionCookieAndCheckRevoked", ctx, "cookie").
			Return(&auth.Token{UID: "uid-1", Claims: map[string]any{"email": "admin@example.com"}}, nil)

		session, err := NewFirebaseSessionRepository(client).VerifySessionCookie(ctx, "cookie")
		require.NoError(t, err)
		assert.Equal(t, models.NewAuthenticatedSession("uid-1", "admin@example.com"), session)
		assert.True(t, session.IsAuthenticated())
	})

	t.Run("revoked cookie", func(t *testing.T) {
		client := new(mockAuthClient)
		client.On("VerifySessionCookieAndCheckRevoked", ctx, "cookie").Return(nil, assert.AnError)

		session, err := NewFirebaseSessionRepository(client).VerifySessionCookie(ctx, "cookie")
		assert.ErrorIs(t, err, models.UnAuthorizedError)
		assert.False(t, session.IsAuthenticated())
	})
}

func TestFirebaseSessionRepository_CreateSessionCookie(t *testing.T) {
	ctx := context.Background()
	client := new(mockAuthClient)
	client.On("SessionCookie", ctx, "good", time.Hour).Return("cookie", nil)
	client.On("SessionCookie", ctx, "bad", time.Hour).Return("", assert.AnError)

	repo := NewFirebaseSessionRepository(client)

	cookie, err := repo.CreateSessionCookie(ctx, "good", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "cookie", cookie)

	_, err = repo.CreateSessionCookie(ctx, "bad", time.Hour)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}
