package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type fakeSubscription struct {
	id      string
	filter  service.PushFilter
	deliver func(service.PushEvent)
	done    chan struct{}
	once    sync.Once
	owner   *fakePushChannel

	mu  sync.Mutex
	err error
}

func (s *fakeSubscription) ID() string            { return s.id }
func (s *fakeSubscription) Done() <-chan struct{} { return s.done }

func (s *fakeSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *fakeSubscription) Close() error {
	s.once.Do(func() {
		s.owner.mu.Lock()
		s.owner.closes++
		s.owner.mu.Unlock()
		close(s.done)
	})

	return nil
}

func (s *fakeSubscription) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// fakePushChannel records subscriptions and lets tests push events into them.
// A non-nil gate holds Subscribe until it is closed; entered is signalled on
// every gated call. ignoreCtx makes a gated Subscribe outlive its context the
// way a slow transport call would.
type fakePushChannel struct {
	mu           sync.Mutex
	subs         []*fakeSubscription
	closes       int
	subscribeErr error
	gate         chan struct{}
	entered      chan struct{}
	ignoreCtx    bool
}

func (p *fakePushChannel) hold() (gate, entered chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gate = make(chan struct{})
	p.entered = make(chan struct{}, 1)

	return p.gate, p.entered
}

func (p *fakePushChannel) Subscribe(ctx context.Context, filter service.PushFilter, deliver func(service.PushEvent)) (service.Subscription, error) {
	p.mu.Lock()
	gate, entered, ignoreCtx := p.gate, p.entered, p.ignoreCtx
	p.mu.Unlock()

	if gate != nil {
		select {
		case entered <- struct{}{}:
		default:
		}

		if ignoreCtx {
			<-gate
		} else {
			select {
			case <-gate:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.subscribeErr != nil {
		return nil, p.subscribeErr
	}

	sub := &fakeSubscription{
		id:      "sub-" + strconv.Itoa(len(p.subs)+1),
		filter:  filter,
		deliver: deliver,
		done:    make(chan struct{}),
		owner:   p,
	}
	p.subs = append(p.subs, sub)

	return sub, nil
}

func (p *fakePushChannel) subscriptions() []*fakeSubscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*fakeSubscription(nil), p.subs...)
}

func (p *fakePushChannel) live() int {
	count := 0
	for _, sub := range p.subscriptions() {
		if !sub.closed() {
			count++
		}
	}

	return count
}

func (p *fakePushChannel) teardowns() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closes
}

// push delivers to the subscription at index i, even if it was closed, the way
// a late transport callback would.
func (p *fakePushChannel) pushTo(i int, event service.PushEvent) {
	p.subscriptions()[i].deliver(event)
}

// push delivers to the newest subscription.
func (p *fakePushChannel) push(event service.PushEvent) {
	subs := p.subscriptions()
	subs[len(subs)-1].deliver(event)
}

// drop ends the newest subscription with a transport error.
func (p *fakePushChannel) drop(err error) {
	subs := p.subscriptions()
	sub := subs[len(subs)-1]
	sub.mu.Lock()
	sub.err = err
	sub.mu.Unlock()
	sub.once.Do(func() { close(sub.done) })
}

// fakeSessionProvider is an in-memory persisted session that fires callbacks synchronously.
type fakeSessionProvider struct {
	mu        sync.Mutex
	session   *entity.Session
	getErr    error
	getGate   chan struct{}
	callbacks map[int]service.AuthStateChangeFunc
	nextID    int
	signOuts  int
}

func newFakeSessionProvider(session *entity.Session) *fakeSessionProvider {
	return &fakeSessionProvider{session: session, callbacks: make(map[int]service.AuthStateChangeFunc)}
}

func (p *fakeSessionProvider) GetSession(ctx context.Context) (*entity.Session, error) {
	p.mu.Lock()
	gate := p.getGate
	p.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.session, p.getErr
}

func (p *fakeSessionProvider) SignIn(_ context.Context, accessToken string) (*entity.Session, error) {
	session := &entity.Session{Identity: entity.Identity{ID: accessToken}, AccessToken: accessToken}

	p.mu.Lock()
	p.session = session
	p.mu.Unlock()

	p.fire(entity.AuthEventSignedIn, session)

	return session, nil
}

func (p *fakeSessionProvider) Refresh(_ context.Context, accessToken string) (*entity.Session, error) {
	session := &entity.Session{Identity: entity.Identity{ID: accessToken}, AccessToken: accessToken}

	p.mu.Lock()
	p.session = session
	p.mu.Unlock()

	p.fire(entity.AuthEventTokenRefreshed, session)

	return session, nil
}

func (p *fakeSessionProvider) SignOut(context.Context) error {
	p.mu.Lock()
	had := p.session != nil
	p.session = nil
	p.signOuts++
	p.mu.Unlock()

	if had {
		p.fire(entity.AuthEventSignedOut, nil)
	}

	return nil
}

func (p *fakeSessionProvider) OnAuthStateChange(fn service.AuthStateChangeFunc) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	id := p.nextID
	p.callbacks[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.callbacks, id)
	}
}

func (p *fakeSessionProvider) fire(event entity.AuthEvent, session *entity.Session) {
	p.mu.Lock()
	callbacks := make([]service.AuthStateChangeFunc, 0, len(p.callbacks))
	for _, fn := range p.callbacks {
		callbacks = append(callbacks, fn)
	}
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn(event, session)
	}
}

func (p *fakeSessionProvider) signOutCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.signOuts
}

func notification(id, recipientID string, read bool) *entity.Notification {
	return &entity.Notification{
		ID:          id,
		RecipientID: recipientID,
		Title:       "title " + id,
		Message:     "message " + id,
		Category:    entity.NotificationCategorySystem,
		Priority:    entity.NotificationPriorityNormal,
		IsRead:      read,
		CreatedAt:   time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func insertEvent(n *entity.Notification) service.PushEvent {
	return service.PushEvent{Kind: service.PushEventInsert, Notification: n}
}
