package realtime

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []service.PushEvent
}

func (r *recorder) deliver(event service.PushEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
}

func (r *recorder) snapshot() []service.PushEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]service.PushEvent(nil), r.events...)
}

func (r *recorder) rows() []service.PushEvent {
	var out []service.PushEvent
	for _, e := range r.snapshot() {
		if e.Kind != service.PushEventHeartbeat {
			out = append(out, e)
		}
	}

	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func insertFor(recipientID, id string) *service.PushEvent {
	return &service.PushEvent{
		Kind: service.PushEventInsert,
		Notification: &entity.Notification{
			ID:          id,
			RecipientID: recipientID,
			Title:       "Leave approved",
			Category:    entity.NotificationCategoryLeave,
			Priority:    entity.NotificationPriorityNormal,
		},
	}
}

func notificationsFilter(recipientID string) service.PushFilter {
	return service.PushFilter{Table: service.NotificationsTable, RecipientID: recipientID}
}

func TestMemoryBroker_DeliversOnlyMatchingRecipient(t *testing.T) {
	broker := NewMemoryBroker(testLogger(), 0)
	t.Cleanup(func() { _ = broker.Close() })

	alice := &recorder{}
	bob := &recorder{}
	ctx := context.Background()

	subA, err := broker.Subscribe(ctx, notificationsFilter("alice"), alice.deliver)
	require.NoError(t, err)
	subB, err := broker.Subscribe(ctx, notificationsFilter("bob"), bob.deliver)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = subA.Close()
		_ = subB.Close()
	})

	require.NoError(t, broker.PublishNotificationEvent(ctx, insertFor("alice", "n1")))
	require.NoError(t, broker.PublishNotificationEvent(ctx, insertFor("bob", "n2")))
	require.NoError(t, broker.PublishNotificationEvent(ctx, insertFor("alice", "n3")))

	require.Eventually(t, func() bool { return len(alice.rows()) == 2 }, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return len(bob.rows()) == 1 }, 2*time.Second, 10*time.Millisecond)

	ids := []string{alice.rows()[0].Notification.ID, alice.rows()[1].Notification.ID}
	assert.ElementsMatch(t, []string{"n1", "n3"}, ids)
	assert.Equal(t, "n2", bob.rows()[0].Notification.ID)
}

func TestMemoryBroker_CloseEndsSubscriptionCleanly(t *testing.T) {
	broker := NewMemoryBroker(testLogger(), 0)
	t.Cleanup(func() { _ = broker.Close() })

	rec := &recorder{}
	sub, err := broker.Subscribe(context.Background(), notificationsFilter("alice"), rec.deliver)
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not finish after Close")
	}
	assert.NoError(t, sub.Err())
}

func TestMemoryBroker_SubscriptionOutlivesCallerContext(t *testing.T) {
	broker := NewMemoryBroker(testLogger(), 0)
	t.Cleanup(func() { _ = broker.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	sub, err := broker.Subscribe(ctx, notificationsFilter("alice"), rec.deliver)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Close() })
	cancel()

	require.NoError(t, broker.PublishNotificationEvent(context.Background(), insertFor("alice", "n1")))

	require.Eventually(t, func() bool { return len(rec.rows()) == 1 }, 2*time.Second, 10*time.Millisecond)
	select {
	case <-sub.Done():
		t.Fatal("subscription ended with the caller context")
	default:
	}
}

func TestMemoryBroker_BrokerCloseDropsSubscriptions(t *testing.T) {
	broker := NewMemoryBroker(testLogger(), 0)

	sub, err := broker.Subscribe(context.Background(), notificationsFilter("alice"), (&recorder{}).deliver)
	require.NoError(t, err)

	require.NoError(t, broker.Close())

	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not finish after broker close")
	}
	assert.ErrorIs(t, sub.Err(), ErrBrokerClosed)

	_, err = broker.Subscribe(context.Background(), notificationsFilter("alice"), (&recorder{}).deliver)
	assert.ErrorIs(t, err, ErrBrokerClosed)
	assert.ErrorIs(t, broker.PublishNotificationEvent(context.Background(), insertFor("alice", "n1")), ErrBrokerClosed)
}

func TestMemoryBroker_Heartbeats(t *testing.T) {
	broker := NewMemoryBroker(testLogger(), 20*time.Millisecond)
	t.Cleanup(func() { _ = broker.Close() })

	rec := &recorder{}
	sub, err := broker.Subscribe(context.Background(), notificationsFilter("alice"), rec.deliver)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Close() })

	require.Eventually(t, func() bool {
		for _, e := range rec.snapshot() {
			if e.Kind == service.PushEventHeartbeat {
				return true
			}
		}

		return false
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, rec.rows())
}

func TestMemoryBroker_RejectsHeartbeatPublish(t *testing.T) {
	broker := NewMemoryBroker(testLogger(), 0)
	t.Cleanup(func() { _ = broker.Close() })

	err := broker.PublishNotificationEvent(context.Background(), &service.PushEvent{Kind: service.PushEventHeartbeat})
	assert.Error(t, err)
}
