package realtime

import (
	"context"
	"testing"
	"time"

	"dashboard/internal/domain/service"

	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testProjectID      = "dashboard-test"
	testTopicID        = "notifications"
	testSubscriptionID = "agent-1"
)

func newTestGoogleBroker(t *testing.T, heartbeat time.Duration) *GoogleBroker {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })
	t.Setenv("PUBSUB_EMULATOR_HOST", srv.Addr)

	ctx := context.Background()
	topic := "projects/" + testProjectID + "/topics/" + testTopicID
	_, err := srv.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: topic})
	require.NoError(t, err)
	_, err = srv.GServer.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:               "projects/" + testProjectID + "/subscriptions/" + testSubscriptionID,
		Topic:              topic,
		AckDeadlineSeconds: 10,
	})
	require.NoError(t, err)

	broker, err := NewGoogleBroker(ctx, testLogger(), testProjectID, testTopicID, testSubscriptionID, heartbeat)
	require.NoError(t, err)
	t.Cleanup(func() { _ = broker.Close() })

	return broker
}

func heartbeats(r *recorder) int {
	count := 0
	for _, e := range r.snapshot() {
		if e.Kind == service.PushEventHeartbeat {
			count++
		}
	}

	return count
}

func TestGoogleBroker_EmitsHeartbeatsWhileIdle(t *testing.T) {
	broker := newTestGoogleBroker(t, 20*time.Millisecond)

	rec := &recorder{}
	sub, err := broker.Subscribe(context.Background(), notificationsFilter("alice"), rec.deliver)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return heartbeats(rec) >= 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, rec.rows())

	require.NoError(t, sub.Close())
	select {
	case <-sub.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("subscription did not finish after Close")
	}

	stopped := heartbeats(rec)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, stopped, heartbeats(rec), "no heartbeats after Close")
}

func TestGoogleBroker_DeliversOnlyMatchingRecipient(t *testing.T) {
	broker := newTestGoogleBroker(t, 0)
	ctx := context.Background()

	rec := &recorder{}
	sub, err := broker.Subscribe(ctx, notificationsFilter("alice"), rec.deliver)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Close() })

	require.NoError(t, broker.PublishNotificationEvent(ctx, insertFor("bob", "n1")))
	require.NoError(t, broker.PublishNotificationEvent(ctx, insertFor("alice", "n2")))

	require.Eventually(t, func() bool { return len(rec.rows()) == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "n2", rec.rows()[0].Notification.ID)
	assert.Zero(t, heartbeats(rec))
}

func TestGoogleBroker_SubscribeRequiresSubscription(t *testing.T) {
	broker := newTestGoogleBroker(t, 0)
	broker.subscriptionID = ""

	_, err := broker.Subscribe(context.Background(), notificationsFilter("alice"), func(service.PushEvent) {})

	require.Error(t, err)
}
