package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"
)

// SessionResolverConfig tunes the session resolver.
type SessionResolverConfig struct {
	// SessionCheckTimeout bounds the startup session lookup.
	SessionCheckTimeout time.Duration
}

var errChannelOpenSuperseded = errors.New("notification channel open superseded")

type sessionResolver struct {
	logger   *slog.Logger
	provider service.SessionProvider
	profiles usecase.ProfileUsecase
	channel  usecase.NotificationUsecase
	cfg      SessionResolverConfig
	now      func() time.Time

	// opMu orders commits against sign-out so a cleared state is never revived.
	// It is never held across the notification channel open.
	opMu       sync.Mutex
	openCancel context.CancelCauseFunc

	mu          sync.Mutex
	state       entity.AuthState
	generation  uint64
	watchers    map[uint64]chan entity.AuthState
	nextWatcher uint64
	unsubscribe func()
	closed      bool
}

// NewSessionResolver creates a resolver in the initial loading state.
func NewSessionResolver(
	logger *slog.Logger,
	provider service.SessionProvider,
	profiles usecase.ProfileUsecase,
	channel usecase.NotificationUsecase,
	cfg SessionResolverConfig,
) usecase.SessionUsecase {
	return &sessionResolver{
		logger:   logger.With(slog.String("component", "session_resolver")),
		provider: provider,
		profiles: profiles,
		channel:  channel,
		cfg:      cfg,
		now:      time.Now,
		state:    entity.AuthState{Loading: true},
		watchers: make(map[uint64]chan entity.AuthState),
	}
}

// Initialize checks the persisted session once and subscribes to later changes.
// Errors and timeouts during the check resolve to signed out.
func (r *sessionResolver) Initialize(ctx context.Context) entity.AuthState {
	r.mu.Lock()
	if r.unsubscribe == nil && !r.closed {
		r.unsubscribe = r.provider.OnAuthStateChange(r.handleAuthEvent)
	}
	r.mu.Unlock()

	generation := r.nextGeneration()

	checkCtx := ctx
	if r.cfg.SessionCheckTimeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, r.cfg.SessionCheckTimeout)
		defer cancel()
	}

	session, err := r.provider.GetSession(checkCtx)
	if err != nil {
		r.logger.WarnContext(ctx, "session check failed, treating as signed out", slog.Any("error", err))
		session = nil
	}
	if session != nil && session.Expired(r.now()) {
		r.logger.InfoContext(ctx, "persisted session expired")
		session = nil
	}

	if session == nil {
		r.commitSignedOut(generation)

		return r.Current()
	}

	r.resolveAndCommit(ctx, generation, session.Identity)

	return r.Current()
}

func (r *sessionResolver) nextGeneration() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation++

	return r.generation
}

func (r *sessionResolver) isCurrent(generation uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.generation == generation
}

func (r *sessionResolver) commitSignedOut(generation uint64) {
	r.opMu.Lock()
	defer r.opMu.Unlock()

	if !r.isCurrent(generation) {
		return
	}
	r.publish(entity.AuthState{})
}

// resolveAndCommit attaches a profile to identity and publishes both at once,
// then opens the notification channel for that identity. A result whose
// generation was superseded is discarded.
func (r *sessionResolver) resolveAndCommit(ctx context.Context, generation uint64, identity entity.Identity) bool {
	profile := r.profiles.Resolve(ctx, identity.ID)
	if profile == nil || profile.ID != identity.ID {
		profile = entity.DefaultProfile(identity.ID)
	}

	r.opMu.Lock()
	if !r.isCurrent(generation) {
		r.opMu.Unlock()
		r.logger.DebugContext(ctx, "discarding superseded profile resolution", slog.String("identity_id", identity.ID))

		return false
	}

	r.publish(entity.AuthState{Identity: &identity, Profile: profile})
	openCtx, cancel := r.beginOpen(ctx)
	r.opMu.Unlock()

	r.logger.InfoContext(ctx, "session resolved",
		slog.String("identity_id", identity.ID),
		slog.String("role", profile.Role.String()),
		slog.String("account_type", profile.AccountType.String()),
	)

	if err := r.openChannel(openCtx, cancel, identity.ID); err != nil {
		r.logger.WarnContext(ctx, "failed to open notification channel",
			slog.String("identity_id", identity.ID),
			slog.Any("error", err),
		)
	}

	return true
}

// Reconnect reopens the notification channel for the signed-in identity. A
// sign-in or sign-out that happens meanwhile abandons the reopen.
func (r *sessionResolver) Reconnect(ctx context.Context) error {
	r.opMu.Lock()
	state := r.Current()
	if !state.SignedIn() {
		r.opMu.Unlock()

		return errors.Wrap(domainerrors.ErrNotSignedIn, "reconnect notification channel")
	}
	openCtx, cancel := r.beginOpen(ctx)
	r.opMu.Unlock()

	return r.openChannel(openCtx, cancel, state.Identity.ID)
}

// beginOpen supersedes any channel open in flight. Callers hold opMu.
func (r *sessionResolver) beginOpen(ctx context.Context) (context.Context, context.CancelCauseFunc) {
	r.cancelOpen()

	openCtx, cancel := context.WithCancelCause(ctx)
	r.openCancel = cancel

	return openCtx, cancel
}

// cancelOpen aborts the channel open in flight, if any. Callers hold opMu.
func (r *sessionResolver) cancelOpen() {
	if r.openCancel != nil {
		r.openCancel(errChannelOpenSuperseded)
		r.openCancel = nil
	}
}

// openChannel runs outside opMu so a sign-out never waits on the transport.
// An open that was superseded is not an error.
func (r *sessionResolver) openChannel(openCtx context.Context, cancel context.CancelCauseFunc, identityID string) error {
	defer cancel(nil)

	err := r.channel.Initialize(openCtx, identityID)
	if err == nil {
		return nil
	}
	if errors.Is(context.Cause(openCtx), errChannelOpenSuperseded) {
		r.logger.DebugContext(openCtx, "notification channel open superseded", slog.String("identity_id", identityID))

		return nil
	}

	return errors.Wrapf(err, "open notification channel for %s", identityID)
}

// handleAuthEvent reacts to session provider events.
func (r *sessionResolver) handleAuthEvent(event entity.AuthEvent, session *entity.Session) {
	ctx := context.Background()

	switch event {
	case entity.AuthEventSignedIn:
		if session != nil {
			r.signIn(ctx, session.Identity)
		}
	case entity.AuthEventTokenRefreshed:
		if session == nil {
			return
		}
		if current := r.Current(); current.Identity != nil && current.Identity.ID == session.Identity.ID {
			r.logger.DebugContext(ctx, "token refreshed for current identity", slog.String("identity_id", session.Identity.ID))

			return
		}
		r.signIn(ctx, session.Identity)
	case entity.AuthEventSignedOut:
		r.clearLocal(ctx)
	default:
		r.logger.WarnContext(ctx, "ignoring unknown auth event", slog.String("event", string(event)))
	}
}

func (r *sessionResolver) signIn(ctx context.Context, identity entity.Identity) {
	generation := r.beginSignIn(identity)
	r.resolveAndCommit(ctx, generation, identity)
}

// beginSignIn supersedes any in-flight resolution. Switching away from another
// identity drops that identity's channel and cached profiles first.
func (r *sessionResolver) beginSignIn(identity entity.Identity) uint64 {
	r.opMu.Lock()
	defer r.opMu.Unlock()

	generation := r.nextGeneration()
	r.cancelOpen()
	current := r.Current()

	if current.Identity != nil && current.Identity.ID != identity.ID {
		r.channel.Cleanup()
		r.profiles.Clear()
	}
	if current.Identity == nil || current.Identity.ID != identity.ID {
		r.publish(entity.AuthState{Loading: true})
	}

	return generation
}

// SignOut clears local state, then invalidates the persisted session.
func (r *sessionResolver) SignOut(ctx context.Context) error {
	r.clearLocal(ctx)

	if err := r.provider.SignOut(ctx); err != nil {
		return errors.Wrapf(domainerrors.ErrSignOutFailed, "invalidate persisted session: %v", err)
	}

	return nil
}

// clearLocal tears the notification channel down before identity is cleared.
// It is a no-op apart from the teardown calls when already signed out.
func (r *sessionResolver) clearLocal(ctx context.Context) {
	r.opMu.Lock()
	defer r.opMu.Unlock()

	r.nextGeneration()
	r.cancelOpen()
	r.channel.Cleanup()
	r.profiles.Clear()

	if r.Current().SignedOut() {
		return
	}

	r.publish(entity.AuthState{})
	r.logger.InfoContext(ctx, "signed out")
}

func (r *sessionResolver) Current() entity.AuthState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Watch returns a conflating stream that starts with the current state.
func (r *sessionResolver) Watch(ctx context.Context) <-chan entity.AuthState {
	ch := make(chan entity.AuthState, 1)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		close(ch)

		return ch
	}
	r.nextWatcher++
	id := r.nextWatcher
	r.watchers[id] = ch
	ch <- r.state
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.removeWatcher(id)
	}()

	return ch
}

func (r *sessionResolver) removeWatcher(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ch, ok := r.watchers[id]; ok {
		delete(r.watchers, id)
		close(ch)
	}
}

// publish stores state and hands it to every watcher, replacing any value the
// watcher has not consumed yet.
func (r *sessionResolver) publish(state entity.AuthState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = state
	for _, ch := range r.watchers {
		select {
		case ch <- state:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

func (r *sessionResolver) Close() {
	r.mu.Lock()
	unsubscribe := r.unsubscribe
	r.unsubscribe = nil
	r.closed = true
	for id, ch := range r.watchers {
		delete(r.watchers, id)
		close(ch)
	}
	r.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
