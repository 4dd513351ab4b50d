package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"
)

type signInService struct {
	logger   *slog.Logger
	authRepo repository.AuthRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	sessions service.SessionProvider
}

// NewSignInService creates the credential sign-in use case. The persisted session
// it stores fires SIGNED_IN, which the session resolver picks up.
func NewSignInService(
	logger *slog.Logger,
	authRepo repository.AuthRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	sessions service.SessionProvider,
) usecase.SignInUsecase {
	return &signInService{
		logger:   logger,
		authRepo: authRepo,
		hasher:   hasher,
		tokens:   tokens,
		sessions: sessions,
	}
}

func (srv *signInService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignInWithPassword verifies the password credential and persists a freshly issued token.
func (srv *signInService) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	auth, err := srv.authRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if err := srv.hasher.Compare(auth.PasswordHash, password); err != nil {
		if errors.Is(err, service.ErrPasswordMismatch) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to compare password")
	}

	token, err := srv.tokens.GenerateAccessToken(auth.UserID, auth.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	session, err := srv.sessions.SignIn(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("identity_id", session.Identity.ID))

	return session, nil
}

// SignInWithToken persists a token issued by the hosted auth platform.
func (srv *signInService) SignInWithToken(ctx context.Context, accessToken string) (*entity.Session, error) {
	accessToken = strings.TrimSpace(strings.TrimPrefix(accessToken, "Bearer "))
	if accessToken == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "empty access token")
	}

	session, err := srv.sessions.SignIn(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	return session, nil
}
