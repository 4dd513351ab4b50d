package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"google.golang.org/api/option"
)

// GoogleBroker publishes to a Pub/Sub topic and receives from a subscription
// on it. The subscription is expected to be per-agent so every event fans out;
// recipient filtering happens locally on the recipient_id attribute.
type GoogleBroker struct {
	logger            *slog.Logger
	client            *pubsub.Client
	projectID         string
	publisher         *pubsub.Publisher
	subscriptionID    string
	heartbeatInterval time.Duration
}

// NewGoogleBroker creates the Pub/Sub client and checks that the topic exists.
// A non-positive heartbeat interval disables heartbeats.
func NewGoogleBroker(
	ctx context.Context,
	logger *slog.Logger,
	projectID, topicID, subscriptionID string,
	heartbeatInterval time.Duration,
	opts ...option.ClientOption,
) (*GoogleBroker, error) {
	if projectID == "" {
		return nil, errors.New("project ID is required for google realtime provider")
	}
	if topicID == "" {
		return nil, errors.New("topic ID is required for google realtime provider")
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub realtime broker initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
		slog.String("subscription_id", subscriptionID),
	)

	return &GoogleBroker{
		logger:            logger,
		client:            client,
		projectID:         projectID,
		publisher:         client.Publisher(topicID),
		subscriptionID:    subscriptionID,
		heartbeatInterval: heartbeatInterval,
	}, nil
}

// Subscribe verifies the subscription exists, then starts receiving in the background.
func (b *GoogleBroker) Subscribe(ctx context.Context, filter service.PushFilter, deliver func(service.PushEvent)) (service.Subscription, error) {
	if b.subscriptionID == "" {
		return nil, errors.New("subscription ID is required to receive from google realtime provider")
	}

	subPath := fmt.Sprintf("projects/%s/subscriptions/%s", b.projectID, b.subscriptionID)
	if _, err := b.client.SubscriptionAdminClient.GetSubscription(ctx, &pubsubpb.GetSubscriptionRequest{Subscription: subPath}); err != nil {
		return nil, errors.Wrapf(err, "failed to get subscription %s", b.subscriptionID)
	}

	receiveCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := newSubscription(cancel)
	subscriber := b.client.Subscriber(b.subscriptionID)

	go func() {
		err := subscriber.Receive(receiveCtx, func(_ context.Context, msg *pubsub.Message) {
			// A closed subscription leaves the message for the next subscriber.
			if receiveCtx.Err() != nil {
				msg.Nack()

				return
			}
			defer msg.Ack()

			if msg.Attributes[attrRecipientID] != "" && msg.Attributes[attrRecipientID] != filter.RecipientID {
				return
			}

			event, err := decodeEvent(msg.Data)
			if err != nil {
				b.logger.Warn("dropping undecodable pubsub message",
					slog.String("message_id", msg.ID),
					slog.Any("error", err),
				)

				return
			}

			deliverIfMatch(filter, event, deliver)
		})

		switch {
		case receiveCtx.Err() != nil:
			sub.finish(nil)
		case err != nil:
			sub.finish(errors.Wrap(err, "pubsub receive failed"))
		default:
			sub.finish(errors.New("pubsub receive ended unexpectedly"))
		}
	}()
	if b.heartbeatInterval > 0 {
		go pulse(receiveCtx, b.heartbeatInterval, deliver)
	}

	return sub, nil
}

// PublishNotificationEvent publishes an event and waits for the server ack.
func (b *GoogleBroker) PublishNotificationEvent(ctx context.Context, event *service.PushEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	result := b.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	b.logger.Debug("[GooglePubSub] Event published",
		slog.String("notification_id", event.Notification.ID),
		slog.String("kind", string(event.Kind)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending publishes and releases the client.
func (b *GoogleBroker) Close() error {
	if b.publisher != nil {
		b.publisher.Stop()
	}
	if b.client != nil {
		return errors.WithStack(b.client.Close())
	}

	return nil
}
