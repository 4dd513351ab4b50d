package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

const memoryAckDeadline = time.Minute

// ErrBrokerClosed ends every live subscription when the broker shuts down.
var ErrBrokerClosed = errors.New("realtime broker closed")

// MemoryBroker is an in-process fan-out broker built on gocloud's mempubsub.
// Each Subscribe gets its own subscription on the shared topic, so every
// subscriber sees every event published after it subscribed.
type MemoryBroker struct {
	logger            *slog.Logger
	heartbeatInterval time.Duration
	topic             *pubsub.Topic

	mu     sync.Mutex
	subs   map[string]*subscription
	closed bool
}

// NewMemoryBroker creates an in-process broker. A non-positive heartbeat interval disables heartbeats.
func NewMemoryBroker(logger *slog.Logger, heartbeatInterval time.Duration) *MemoryBroker {
	return &MemoryBroker{
		logger:            logger,
		heartbeatInterval: heartbeatInterval,
		topic:             mempubsub.NewTopic(),
		subs:              make(map[string]*subscription),
	}
}

// Subscribe registers a receiver on the topic. The subscription outlives ctx; only Close ends it.
func (b *MemoryBroker) Subscribe(ctx context.Context, filter service.PushFilter, deliver func(service.PushEvent)) (service.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, errors.WithStack(ErrBrokerClosed)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	receiveCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := newSubscription(cancel)
	topicSub := mempubsub.NewSubscription(b.topic, memoryAckDeadline)
	b.subs[sub.id] = sub

	go b.receive(receiveCtx, sub, topicSub, filter, deliver)
	if b.heartbeatInterval > 0 {
		go pulse(receiveCtx, b.heartbeatInterval, deliver)
	}

	return sub, nil
}

func (b *MemoryBroker) receive(ctx context.Context, sub *subscription, topicSub *pubsub.Subscription, filter service.PushFilter, deliver func(service.PushEvent)) {
	var exitErr error
	defer func() {
		if err := topicSub.Shutdown(context.Background()); err != nil {
			b.logger.Debug("memory subscription shutdown failed", slog.Any("error", err))
		}

		b.mu.Lock()
		delete(b.subs, sub.id)
		b.mu.Unlock()

		sub.finish(exitErr)
	}()

	for {
		msg, err := topicSub.Receive(ctx)
		if err != nil {
			if ctx.Err() == nil {
				exitErr = errors.Wrap(err, "memory subscription receive failed")
			}

			return
		}
		msg.Ack()

		event, err := decodeEvent(msg.Body)
		if err != nil {
			b.logger.Warn("dropping undecodable memory event", slog.Any("error", err))

			continue
		}

		deliverIfMatch(filter, event, deliver)
	}
}

// PublishNotificationEvent sends an insert or update event to every live subscriber.
func (b *MemoryBroker) PublishNotificationEvent(ctx context.Context, event *service.PushEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return errors.WithStack(ErrBrokerClosed)
	}

	if err := b.topic.Send(ctx, &pubsub.Message{Body: data, Metadata: eventAttributes(event)}); err != nil {
		return errors.Wrap(err, "failed to send memory event")
	}

	return nil
}

// Close ends every live subscription with ErrBrokerClosed and shuts the topic down.
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return nil
	}
	b.closed = true
	subs := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		sub.finish(ErrBrokerClosed)
	}

	return errors.WithStack(b.topic.Shutdown(context.Background()))
}

// pulse delivers heartbeats until ctx ends.
func pulse(ctx context.Context, interval time.Duration, deliver func(service.PushEvent)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deliver(heartbeat())
		}
	}
}
