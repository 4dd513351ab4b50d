package service

import (
	"context"

	"dashboard/internal/domain/entity"
)

// NotificationsTable is the only table the push channel delivers rows for.
const NotificationsTable = "notifications"

// PushEventKind distinguishes row changes from keep-alive signals.
type PushEventKind string

const (
	// PushEventInsert carries a newly created notification.
	PushEventInsert PushEventKind = "insert"
	// PushEventUpdate carries a changed notification (for example a read flip).
	PushEventUpdate PushEventKind = "update"
	// PushEventHeartbeat carries no notification; it proves the transport is alive.
	PushEventHeartbeat PushEventKind = "heartbeat"
)

// PushEvent is one delivery from the push channel.
type PushEvent struct {
	Kind         PushEventKind        `json:"kind"`
	Notification *entity.Notification `json:"notification,omitempty"`
}

// PushFilter selects which rows a subscription receives.
type PushFilter struct {
	Table       string
	RecipientID string
}

// Matches reports whether a notification passes the filter.
func (f PushFilter) Matches(n *entity.Notification) bool {
	return n != nil && f.Table == NotificationsTable && n.RecipientID == f.RecipientID
}

// Subscription is the live handle of one push-channel listener.
type Subscription interface {
	// ID identifies the handle in logs.
	ID() string

	// Done is closed when the subscription stops, either by Close or by a transport failure.
	Done() <-chan struct{}

	// Err returns the transport error that ended the subscription, nil after a clean Close.
	Err() error

	// Close stops delivery. It is safe to call more than once.
	Close() error
}

// PushChannel is the server-push provider.
type PushChannel interface {
	// Subscribe opens a subscription and returns once the provider acknowledged it.
	// deliver is called from the provider's goroutine for every matching event.
	Subscribe(ctx context.Context, filter PushFilter, deliver func(PushEvent)) (Subscription, error)
}
