package realtime

import (
	"context"
	"log/slog"
	"time"

	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxNotifyPayload is PostgreSQL's NOTIFY payload limit (8000 bytes minus slack).
const maxNotifyPayload = 7900

// PostgresBroker delivers notification events over LISTEN/NOTIFY. Each
// subscription holds a dedicated connection; publishing goes through a pool.
type PostgresBroker struct {
	logger            *slog.Logger
	dsn               string
	channel           string
	heartbeatInterval time.Duration
	pool              *pgxpool.Pool
}

// NewPostgresBroker connects the publishing pool and verifies the server is reachable.
func NewPostgresBroker(ctx context.Context, logger *slog.Logger, dsn, channel string, heartbeatInterval time.Duration) (*PostgresBroker, error) {
	if dsn == "" {
		return nil, errors.New("postgres DSN is required for postgres realtime provider")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create realtime connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, errors.Wrap(err, "failed to ping realtime database")
	}

	return &PostgresBroker{
		logger:            logger,
		dsn:               dsn,
		channel:           channel,
		heartbeatInterval: heartbeatInterval,
		pool:              pool,
	}, nil
}

// Subscribe returns after LISTEN has been acknowledged by the server.
func (b *PostgresBroker) Subscribe(ctx context.Context, filter service.PushFilter, deliver func(service.PushEvent)) (service.Subscription, error) {
	conn, err := pgx.Connect(ctx, b.dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open listen connection")
	}

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{b.channel}.Sanitize()); err != nil {
		_ = conn.Close(context.Background())

		return nil, errors.Wrapf(err, "failed to listen on %s", b.channel)
	}

	receiveCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := newSubscription(cancel)

	go b.listen(receiveCtx, sub, conn, filter, deliver)

	return sub, nil
}

func (b *PostgresBroker) listen(ctx context.Context, sub *subscription, conn *pgx.Conn, filter service.PushFilter, deliver func(service.PushEvent)) {
	var exitErr error
	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			b.logger.Debug("listen connection close failed", slog.Any("error", err))
		}
		sub.finish(exitErr)
	}()

	for {
		waitCtx, cancelWait := b.waitContext(ctx)
		notification, err := conn.WaitForNotification(waitCtx)
		cancelWait()

		if ctx.Err() != nil {
			return
		}

		if err != nil {
			if !errors.Is(err, context.DeadlineExceeded) {
				exitErr = errors.Wrap(err, "wait for notification failed")

				return
			}

			// Idle interval elapsed: prove the connection is still alive.
			if err := conn.Ping(ctx); err != nil {
				if ctx.Err() == nil {
					exitErr = errors.Wrap(err, "listen connection ping failed")
				}

				return
			}
			deliver(heartbeat())

			continue
		}

		event, err := decodeEvent([]byte(notification.Payload))
		if err != nil {
			b.logger.Warn("dropping undecodable notify payload",
				slog.String("channel", notification.Channel),
				slog.Any("error", err),
			)

			continue
		}

		deliverIfMatch(filter, event, deliver)
	}
}

func (b *PostgresBroker) waitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.heartbeatInterval <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, b.heartbeatInterval)
}

// PublishNotificationEvent sends the event through pg_notify.
func (b *PostgresBroker) PublishNotificationEvent(ctx context.Context, event *service.PushEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}
	if len(data) > maxNotifyPayload {
		return errors.Errorf("notify payload of %d bytes exceeds limit", len(data))
	}

	if _, err := b.pool.Exec(ctx, "SELECT pg_notify($1, $2)", b.channel, string(data)); err != nil {
		return errors.Wrap(err, "failed to publish notify event")
	}

	return nil
}

// Close releases the publishing pool. Live subscriptions keep their own connections until closed.
func (b *PostgresBroker) Close() error {
	b.pool.Close()

	return nil
}
