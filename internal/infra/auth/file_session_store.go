package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
)

const sessionFileMode = 0o600

// persistedSession is the on-disk form of a session.
type persistedSession struct {
	AccessToken string    `json:"access_token"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
	SavedAt     time.Time `json:"saved_at"`
}

// FileSessionStore persists the client's session token in a private JSON file and
// reports changes to registered callbacks. Callbacks run synchronously on the
// goroutine that caused the change, after the file has been written.
type FileSessionStore struct {
	logger   *slog.Logger
	path     string
	verifier service.TokenVerifier
	now      func() time.Time

	mu sync.Mutex

	cbMu      sync.Mutex
	callbacks map[uint64]service.AuthStateChangeFunc
	nextCB    uint64
}

// NewFileSessionStore creates a store backed by the file at path.
func NewFileSessionStore(logger *slog.Logger, path string, verifier service.TokenVerifier) *FileSessionStore {
	return &FileSessionStore{
		logger:    logger.With(slog.String("component", "session_store")),
		path:      path,
		verifier:  verifier,
		now:       time.Now,
		callbacks: make(map[uint64]service.AuthStateChangeFunc),
	}
}

var _ service.SessionProvider = (*FileSessionStore)(nil)

// GetSession returns the stored session if its token still verifies.
// A missing file, an expired token or a token that no longer verifies reads as no session.
func (s *FileSessionStore) GetSession(ctx context.Context) (*entity.Session, error) {
	s.mu.Lock()
	stored, err := s.read()
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}

	session, err := s.verify(ctx, stored.AccessToken)
	if err != nil {
		s.logger.InfoContext(ctx, "stored session is no longer valid", slog.Any("error", err))

		return nil, nil
	}

	return session, nil
}

// SignIn verifies the token, persists it and fires SIGNED_IN.
func (s *FileSessionStore) SignIn(ctx context.Context, accessToken string) (*entity.Session, error) {
	session, err := s.verify(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrInvalidToken, "sign in: %v", err)
	}

	s.mu.Lock()
	err = s.write(session)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.fire(entity.AuthEventSignedIn, session)

	return session, nil
}

// Refresh replaces the stored token. It fires TOKEN_REFRESHED when the identity
// is unchanged and SIGNED_IN otherwise.
func (s *FileSessionStore) Refresh(ctx context.Context, accessToken string) (*entity.Session, error) {
	session, err := s.verify(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrInvalidToken, "refresh: %v", err)
	}

	s.mu.Lock()
	previous, readErr := s.read()
	err = s.write(session)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if readErr != nil {
		s.logger.WarnContext(ctx, "previous session unreadable during refresh", slog.Any("error", readErr))
	}

	event := entity.AuthEventSignedIn
	if previous != nil && previous.UserID == session.Identity.ID {
		event = entity.AuthEventTokenRefreshed
	}
	s.fire(event, session)

	return session, nil
}

// SignOut removes the stored session and fires SIGNED_OUT if one existed.
func (s *FileSessionStore) SignOut(ctx context.Context) error {
	s.mu.Lock()
	err := os.Remove(s.path)
	s.mu.Unlock()

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "remove session file")
	}

	s.logger.DebugContext(ctx, "session file removed")
	s.fire(entity.AuthEventSignedOut, nil)

	return nil
}

// OnAuthStateChange registers fn and returns its unregister function.
func (s *FileSessionStore) OnAuthStateChange(fn service.AuthStateChangeFunc) func() {
	s.cbMu.Lock()
	defer s.cbMu.Unlock()

	s.nextCB++
	id := s.nextCB
	s.callbacks[id] = fn

	return func() {
		s.cbMu.Lock()
		defer s.cbMu.Unlock()

		delete(s.callbacks, id)
	}
}

func (s *FileSessionStore) fire(event entity.AuthEvent, session *entity.Session) {
	s.cbMu.Lock()
	ids := make([]uint64, 0, len(s.callbacks))
	for id := range s.callbacks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	callbacks := make([]service.AuthStateChangeFunc, 0, len(ids))
	for _, id := range ids {
		callbacks = append(callbacks, s.callbacks[id])
	}
	s.cbMu.Unlock()

	for _, fn := range callbacks {
		fn(event, session)
	}
}

func (s *FileSessionStore) verify(ctx context.Context, accessToken string) (*entity.Session, error) {
	claims, err := s.verifier.Verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		Identity:    entity.Identity{ID: claims.Subject, Email: claims.Email},
		AccessToken: accessToken,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	if session.Expired(s.now()) {
		return nil, errors.New("token expired")
	}

	return session, nil
}

func (s *FileSessionStore) read() (*persistedSession, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session file")
	}

	var stored persistedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "decode session file")
	}
	if stored.AccessToken == "" {
		return nil, nil
	}

	return &stored, nil
}

// write replaces the session file atomically.
func (s *FileSessionStore) write(session *entity.Session) error {
	data, err := json.Marshal(persistedSession{
		AccessToken: session.AccessToken,
		UserID:      session.Identity.ID,
		Email:       session.Identity.Email,
		ExpiresAt:   session.ExpiresAt,
		SavedAt:     s.now(),
	})
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "create session directory")
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp session file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return errors.Wrap(err, "write temp session file")
	}
	if err := tmp.Chmod(sessionFileMode); err != nil {
		tmp.Close()

		return errors.Wrap(err, "chmod temp session file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp session file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "replace session file")
	}

	return nil
}
