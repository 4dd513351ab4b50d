package impl

import (
	"context"
	"testing"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	mockRepo "dashboard/internal/mocks/repository"
	mockSvc "dashboard/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSignInService(t *testing.T) (
	*signInService,
	*mockRepo.MockAuthRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
	*mockSvc.MockSessionProvider,
) {
	authRepo := mockRepo.NewMockAuthRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	sessions := mockSvc.NewMockSessionProvider(t)

	srv := NewSignInService(discardLogger(), authRepo, hasher, tokens, sessions).(*signInService)

	return srv, authRepo, hasher, tokens, sessions
}

func TestSignInService_SignInWithPassword_Success(t *testing.T) {
	srv, authRepo, hasher, tokens, sessions := createTestSignInService(t)
	ctx := context.Background()
	auth := &entity.Authentication{ID: uuid.New(), UserID: "u1", Email: "mei@example.com", PasswordHash: "hash"}
	session := &entity.Session{Identity: entity.Identity{ID: "u1", Email: "mei@example.com"}, AccessToken: "signed"}

	authRepo.EXPECT().FindByEmail(ctx, "mei@example.com").Return(auth, nil).Once()
	hasher.EXPECT().Compare("hash", "secret-pass").Return(nil).Once()
	tokens.EXPECT().GenerateAccessToken("u1", "mei@example.com").Return("signed", nil).Once()
	sessions.EXPECT().SignIn(ctx, "signed").Return(session, nil).Once()

	got, err := srv.SignInWithPassword(ctx, "  Mei@Example.com ", "secret-pass")

	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSignInService_SignInWithPassword_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		srv, authRepo, _, _, _ := createTestSignInService(t)
		ctx := context.Background()

		authRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrAuthNotFound).Once()

		_, err := srv.SignInWithPassword(ctx, "nobody@example.com", "x")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, authRepo, hasher, _, _ := createTestSignInService(t)
		ctx := context.Background()

		authRepo.EXPECT().FindByEmail(ctx, "mei@example.com").
			Return(&entity.Authentication{UserID: "u1", Email: "mei@example.com", PasswordHash: "hash"}, nil).Once()
		hasher.EXPECT().Compare("hash", "wrong").Return(service.ErrPasswordMismatch).Once()

		_, err := srv.SignInWithPassword(ctx, "mei@example.com", "wrong")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestSignInService_SignInWithPassword_StoreError(t *testing.T) {
	srv, authRepo, _, _, _ := createTestSignInService(t)
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	authRepo.EXPECT().FindByEmail(ctx, "mei@example.com").Return(nil, storeErr).Once()

	_, err := srv.SignInWithPassword(ctx, "mei@example.com", "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSignInService_SignInWithToken(t *testing.T) {
	srv, _, _, _, sessions := createTestSignInService(t)
	ctx := context.Background()
	session := &entity.Session{Identity: entity.Identity{ID: "u9"}}

	sessions.EXPECT().SignIn(ctx, "platform-token").Return(session, nil).Once()

	got, err := srv.SignInWithToken(ctx, "Bearer platform-token")

	require.NoError(t, err)
	assert.Equal(t, "u9", got.Identity.ID)
}

func TestSignInService_SignInWithToken_Empty(t *testing.T) {
	srv, _, _, _, _ := createTestSignInService(t)

	_, err := srv.SignInWithToken(context.Background(), "   ")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestSignInService_SignInWithToken_Rejected(t *testing.T) {
	srv, _, _, _, sessions := createTestSignInService(t)
	ctx := context.Background()

	sessions.EXPECT().SignIn(ctx, "forged").Return(nil, errors.Wrap(domainerrors.ErrInvalidToken, "signature")).Once()

	_, err := srv.SignInWithToken(ctx, "forged")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
