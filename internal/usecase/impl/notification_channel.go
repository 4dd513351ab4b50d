package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"
)

// NotificationChannelConfig tunes the notification channel.
type NotificationChannelConfig struct {
	// InitialLoadLimit is how many recent notifications Initialize loads; 0 disables the load.
	InitialLoadLimit int
}

// ErrSubscriptionSuperseded ends an Initialize whose open lost to a Cleanup, a
// newer Initialize or its own context.
var ErrSubscriptionSuperseded = errors.New("notification subscription superseded")

type notificationChannel struct {
	logger    *slog.Logger
	push      service.PushChannel
	repo      repository.NotificationRepository
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	cfg       NotificationChannelConfig
	now       func() time.Time

	mu           sync.Mutex
	recipientID  string
	sub          service.Subscription
	generation   uint64
	events       *eventSet
	lastActivity time.Time
	dropped      bool

	listeners *listenerRegistry
}

// NewNotificationChannel creates a closed notification channel. publisher may be nil,
// in which case read mutations are not fanned out to other clients.
func NewNotificationChannel(
	logger *slog.Logger,
	push service.PushChannel,
	repo repository.NotificationRepository,
	publisher service.EventPublisher,
	metrics service.MetricsRecorder,
	cfg NotificationChannelConfig,
) usecase.NotificationUsecase {
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &notificationChannel{
		logger:    logger.With(slog.String("component", "notification_channel")),
		push:      push,
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
		cfg:       cfg,
		now:       time.Now,
		events:    newEventSet(),
		listeners: newListenerRegistry(),
	}
}

func (c *notificationChannel) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// Initialize replaces any open subscription with exactly one for recipientID.
// Listeners survive re-initialization; known events survive only for the same recipient.
// No lock is held while the transport subscribes: a Cleanup or a newer Initialize
// supersedes the open, and its subscription is closed when it arrives.
func (c *notificationChannel) Initialize(ctx context.Context, recipientID string) error {
	if recipientID == "" {
		return errors.Wrap(domainerrors.ErrNotSignedIn, "initialize notification channel")
	}

	c.mu.Lock()
	previous := c.sub
	c.sub = nil
	c.generation++
	generation := c.generation
	if c.recipientID != recipientID {
		c.events = newEventSet()
	}
	c.recipientID = recipientID
	c.dropped = false
	c.mu.Unlock()

	if previous != nil {
		c.closeSubscription(ctx, previous)
	}

	filter := service.PushFilter{Table: service.NotificationsTable, RecipientID: recipientID}
	sub, err := c.push.Subscribe(ctx, filter, func(event service.PushEvent) {
		c.deliver(generation, event)
	})
	if err != nil {
		c.mu.Lock()
		if c.generation == generation {
			c.dropped = true
		}
		c.mu.Unlock()

		return errors.Wrapf(err, "subscribe notifications for %s", recipientID)
	}

	c.mu.Lock()
	superseded := c.generation != generation
	if !superseded && ctx.Err() != nil {
		superseded = true
		c.dropped = true
	}
	if !superseded {
		c.sub = sub
		c.lastActivity = c.now()
	}
	c.mu.Unlock()

	if superseded {
		c.closeSubscription(ctx, sub)

		return errors.Wrapf(ErrSubscriptionSuperseded, "subscribe notifications for %s", recipientID)
	}

	c.metrics.RecordSubscriptionOpened()
	c.log(ctx).InfoContext(ctx, "notification subscription opened",
		slog.String("recipient_id", recipientID),
		slog.String("subscription_id", sub.ID()),
	)

	go c.watch(generation, sub)

	c.loadRecent(ctx, generation, recipientID)

	return nil
}

// loadRecent seeds the event set from the store. Failures leave the set as it is.
func (c *notificationChannel) loadRecent(ctx context.Context, generation uint64, recipientID string) {
	if c.cfg.InitialLoadLimit <= 0 || c.repo == nil {
		return
	}

	rows, err := c.repo.ListByRecipient(ctx, recipientID, c.cfg.InitialLoadLimit)
	if err != nil {
		c.log(ctx).WarnContext(ctx, "failed to load recent notifications",
			slog.String("recipient_id", recipientID),
			slog.Any("error", err),
		)

		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation {
		return
	}
	for _, row := range rows {
		if row == nil || row.RecipientID != recipientID {
			continue
		}
		c.events.merge(pushUpdate(row))
	}
}

// watch marks the channel dropped when the transport ends a live subscription.
func (c *notificationChannel) watch(generation uint64, sub service.Subscription) {
	<-sub.Done()

	c.mu.Lock()
	current := c.generation == generation
	if current {
		c.dropped = true
	}
	recipientID := c.recipientID
	c.mu.Unlock()

	if !current {
		return
	}

	c.metrics.RecordSubscriptionDropped()
	c.logger.Warn("notification subscription dropped",
		slog.String("recipient_id", recipientID),
		slog.String("subscription_id", sub.ID()),
		slog.Any("error", sub.Err()),
	)
}

// deliver applies one push event. Events from a superseded subscription, or for
// another recipient, are dropped.
func (c *notificationChannel) deliver(generation uint64, event service.PushEvent) {
	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()

		return
	}
	c.lastActivity = c.now()

	if event.Kind == service.PushEventHeartbeat {
		c.mu.Unlock()

		return
	}

	n := event.Notification
	if n == nil || n.ID == "" || n.RecipientID != c.recipientID {
		c.mu.Unlock()
		c.logger.Debug("dropping notification for another recipient", slog.String("kind", string(event.Kind)))

		return
	}

	merged, _ := c.events.merge(pushUpdate(n))
	listeners := c.listeners.snapshot()
	c.mu.Unlock()

	c.metrics.RecordNotificationDelivered(string(event.Kind))
	c.notify(listeners, event.Kind, merged)
}

func (c *notificationChannel) notify(listeners []keyedListener, kind service.PushEventKind, n *entity.Notification) {
	for _, l := range listeners {
		c.invoke(l, kind, n.Clone())
	}
}

func (c *notificationChannel) invoke(l keyedListener, kind service.PushEventKind, n *entity.Notification) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("notification listener panicked",
				slog.String("listener", l.key),
				slog.Any("panic", r),
			)
		}
	}()

	l.listener(kind, n)
}

// Cleanup closes the subscription and discards listeners and known events.
func (c *notificationChannel) Cleanup() {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.generation++
	c.recipientID = ""
	c.events = newEventSet()
	c.dropped = false
	c.lastActivity = time.Time{}
	c.listeners.clear()
	c.mu.Unlock()

	if sub != nil {
		c.closeSubscription(context.Background(), sub)
	}
}

func (c *notificationChannel) closeSubscription(ctx context.Context, sub service.Subscription) {
	if err := sub.Close(); err != nil {
		c.log(ctx).WarnContext(ctx, "failed to close notification subscription",
			slog.String("subscription_id", sub.ID()),
			slog.Any("error", err),
		)

		return
	}

	c.log(ctx).DebugContext(ctx, "notification subscription closed", slog.String("subscription_id", sub.ID()))
}

func (c *notificationChannel) OnEvent(key string, listener usecase.NotificationListener) usecase.ListenerHandle {
	return c.listeners.register(key, listener)
}

func (c *notificationChannel) RemoveListener(key string) {
	c.listeners.remove(key)
}

// MarkAsRead flips exactly one notification through the store, then merges the
// acknowledgement into the event set.
func (c *notificationChannel) MarkAsRead(ctx context.Context, notificationID string) error {
	c.mu.Lock()
	recipientID := c.recipientID
	generation := c.generation
	c.mu.Unlock()

	if recipientID == "" {
		return errors.Wrap(domainerrors.ErrNotificationChannelClosed, "mark notification read")
	}

	readAt := c.now()
	if err := c.repo.MarkRead(ctx, recipientID, notificationID, readAt); err != nil {
		c.metrics.RecordMarkReadFailure()
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrapf(domainerrors.ErrNotificationNotFound, "notification %s", notificationID)
		}

		return errors.Wrapf(domainerrors.ErrMarkReadFailed, "notification %s: %v", notificationID, err)
	}

	updated := c.applyReadAcks(generation, []string{notificationID}, readAt)
	c.publishUpdates(ctx, updated)

	return nil
}

// MarkAllAsRead flips every locally known unread notification of the recipient.
func (c *notificationChannel) MarkAllAsRead(ctx context.Context) error {
	c.mu.Lock()
	recipientID := c.recipientID
	generation := c.generation
	ids := c.events.unreadIDs()
	c.mu.Unlock()

	if recipientID == "" {
		return errors.Wrap(domainerrors.ErrNotificationChannelClosed, "mark all notifications read")
	}
	if len(ids) == 0 {
		return nil
	}

	readAt := c.now()
	if err := c.repo.MarkManyRead(ctx, recipientID, ids, readAt); err != nil {
		c.metrics.RecordMarkReadFailure()

		return errors.Wrapf(domainerrors.ErrMarkReadFailed, "%d notifications: %v", len(ids), err)
	}

	updated := c.applyReadAcks(generation, ids, readAt)
	c.publishUpdates(ctx, updated)

	return nil
}

// applyReadAcks merges acknowledgements and returns the rows whose state changed.
func (c *notificationChannel) applyReadAcks(generation uint64, ids []string, readAt time.Time) []*entity.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation {
		return nil
	}

	updated := make([]*entity.Notification, 0, len(ids))
	for _, id := range ids {
		if row, changed := c.events.merge(readAck(id, readAt)); changed {
			updated = append(updated, row.Clone())
		}
	}

	return updated
}

func (c *notificationChannel) publishUpdates(ctx context.Context, rows []*entity.Notification) {
	if c.publisher == nil {
		return
	}

	for _, row := range rows {
		event := &service.PushEvent{Kind: service.PushEventUpdate, Notification: row}
		if err := c.publisher.PublishNotificationEvent(ctx, event); err != nil {
			c.log(ctx).WarnContext(ctx, "failed to publish read update",
				slog.String("notification_id", row.ID),
				slog.Any("error", err),
			)
		}
	}
}

func (c *notificationChannel) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.events.unreadCount()
}

func (c *notificationChannel) Notifications() []*entity.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.events.list()
}

func (c *notificationChannel) Health() usecase.ChannelHealth {
	c.mu.Lock()
	defer c.mu.Unlock()

	return usecase.ChannelHealth{
		Open:         c.sub != nil && !c.dropped,
		RecipientID:  c.recipientID,
		LastActivity: c.lastActivity,
		Dropped:      c.dropped,
	}
}

// Stale reports whether a channel that should be live is not: it is initialized
// for a recipient but has no subscription, the subscription dropped, or nothing
// arrived for longer than maxSilence. A cleaned-up channel is never stale.
func (c *notificationChannel) Stale(maxSilence time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.recipientID == "" {
		return false
	}
	if c.sub == nil || c.dropped {
		return true
	}

	return maxSilence > 0 && c.now().Sub(c.lastActivity) > maxSilence
}
