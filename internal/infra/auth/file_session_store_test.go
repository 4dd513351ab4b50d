package auth

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authEventRecord struct {
	event   entity.AuthEvent
	session *entity.Session
}

func newTestSessionStore(t *testing.T) (*FileSessionStore, *jwtService, *[]authEventRecord) {
	t.Helper()

	tokens := newTestJWTService(t, time.Hour)
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileSessionStore(slog.New(slog.NewTextHandler(io.Discard, nil)), path, tokens)

	events := &[]authEventRecord{}
	store.OnAuthStateChange(func(event entity.AuthEvent, session *entity.Session) {
		*events = append(*events, authEventRecord{event: event, session: session})
	})

	return store, tokens, events
}

func TestFileSessionStore_NoSession(t *testing.T) {
	store, _, events := newTestSessionStore(t)

	session, err := store.GetSession(context.Background())

	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Empty(t, *events)
}

func TestFileSessionStore_SignInPersistsSession(t *testing.T) {
	store, tokens, events := newTestSessionStore(t)
	ctx := context.Background()

	token, err := tokens.GenerateAccessToken("u1", "mei@example.com")
	require.NoError(t, err)

	session, err := store.SignIn(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.Identity.ID)
	assert.Equal(t, "mei@example.com", session.Identity.Email)

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(sessionFileMode), info.Mode().Perm())

	restored, err := store.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "u1", restored.Identity.ID)
	assert.Equal(t, token, restored.AccessToken)

	require.Len(t, *events, 1)
	assert.Equal(t, entity.AuthEventSignedIn, (*events)[0].event)
}

func TestFileSessionStore_SignInRejectsInvalidToken(t *testing.T) {
	store, _, events := newTestSessionStore(t)

	_, err := store.SignIn(context.Background(), "forged")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.NoFileExists(t, store.path)
	assert.Empty(t, *events)
}

func TestFileSessionStore_ExpiredTokenReadsAsNoSession(t *testing.T) {
	store, tokens, _ := newTestSessionStore(t)
	ctx := context.Background()

	token, err := tokens.GenerateAccessToken("u1", "")
	require.NoError(t, err)
	_, err = store.SignIn(ctx, token)
	require.NoError(t, err)

	later := time.Now().Add(2 * time.Hour)
	tokens.now = func() time.Time { return later }
	store.now = func() time.Time { return later }

	session, err := store.GetSession(ctx)

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestFileSessionStore_CorruptFileIsAnError(t *testing.T) {
	store, _, _ := newTestSessionStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o600))

	_, err := store.GetSession(context.Background())

	assert.Error(t, err)
}

func TestFileSessionStore_Refresh(t *testing.T) {
	store, tokens, events := newTestSessionStore(t)
	ctx := context.Background()

	first, err := tokens.GenerateAccessToken("u1", "")
	require.NoError(t, err)
	_, err = store.SignIn(ctx, first)
	require.NoError(t, err)

	same, err := tokens.GenerateAccessToken("u1", "")
	require.NoError(t, err)
	_, err = store.Refresh(ctx, same)
	require.NoError(t, err)

	other, err := tokens.GenerateAccessToken("u2", "")
	require.NoError(t, err)
	_, err = store.Refresh(ctx, other)
	require.NoError(t, err)

	require.Len(t, *events, 3)
	assert.Equal(t, entity.AuthEventSignedIn, (*events)[0].event)
	assert.Equal(t, entity.AuthEventTokenRefreshed, (*events)[1].event)
	assert.Equal(t, entity.AuthEventSignedIn, (*events)[2].event)
	assert.Equal(t, "u2", (*events)[2].session.Identity.ID)
}

func TestFileSessionStore_SignOutIsIdempotent(t *testing.T) {
	store, tokens, events := newTestSessionStore(t)
	ctx := context.Background()

	token, err := tokens.GenerateAccessToken("u1", "")
	require.NoError(t, err)
	_, err = store.SignIn(ctx, token)
	require.NoError(t, err)

	require.NoError(t, store.SignOut(ctx))
	require.NoError(t, store.SignOut(ctx))

	assert.NoFileExists(t, store.path)
	require.Len(t, *events, 2)
	assert.Equal(t, entity.AuthEventSignedOut, (*events)[1].event)
	assert.Nil(t, (*events)[1].session)
}

func TestFileSessionStore_Unsubscribe(t *testing.T) {
	store, tokens, events := newTestSessionStore(t)
	ctx := context.Background()
	calls := 0
	unsubscribe := store.OnAuthStateChange(func(entity.AuthEvent, *entity.Session) { calls++ })

	unsubscribe()
	token, err := tokens.GenerateAccessToken("u1", "")
	require.NoError(t, err)
	_, err = store.SignIn(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, 0, calls)
	assert.Len(t, *events, 1)
}
