// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationCategory classifies what produced a notification.
type NotificationCategory string

const (
	NotificationCategoryMemo       NotificationCategory = "memo"
	NotificationCategorySystem     NotificationCategory = "system"
	NotificationCategoryAIAnalysis NotificationCategory = "ai_analysis"
	NotificationCategoryPayment    NotificationCategory = "payment"
	NotificationCategoryLeave      NotificationCategory = "leave"
	NotificationCategoryInvoice    NotificationCategory = "invoice"
	NotificationCategoryExpense    NotificationCategory = "expense"
	NotificationCategoryProject    NotificationCategory = "project"
)

// IsValid checks if the category is a known value.
func (c NotificationCategory) IsValid() bool {
	switch c {
	case NotificationCategoryMemo, NotificationCategorySystem, NotificationCategoryAIAnalysis,
		NotificationCategoryPayment, NotificationCategoryLeave, NotificationCategoryInvoice,
		NotificationCategoryExpense, NotificationCategoryProject:
		return true
	default:
		return false
	}
}

// NotificationPriority is the urgency of a notification.
type NotificationPriority string

const (
	NotificationPriorityUrgent NotificationPriority = "urgent"
	NotificationPriorityHigh   NotificationPriority = "high"
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityLow    NotificationPriority = "low"
)

// IsValid checks if the priority is a known value.
func (p NotificationPriority) IsValid() bool {
	switch p {
	case NotificationPriorityUrgent, NotificationPriorityHigh, NotificationPriorityNormal, NotificationPriorityLow:
		return true
	default:
		return false
	}
}

// Notification is a server-originated message targeted at exactly one recipient.
// IsRead only ever moves from false to true.
type Notification struct {
	ID          string               `json:"id"`                   // Unique notification ID.
	RecipientID string               `json:"recipient_id"`         // Identity ID of the only recipient.
	Title       string               `json:"title"`                // Short headline.
	Message     string               `json:"message"`              // Body text.
	Category    NotificationCategory `json:"category"`             // What produced the notification.
	Priority    NotificationPriority `json:"priority"`             // Urgency.
	IsRead      bool                 `json:"is_read"`              // Read flag, monotonic.
	ActionURL   string               `json:"action_url,omitempty"` // Optional deep link.
	Metadata    map[string]any       `json:"metadata,omitempty"`   // Open-ended key/value data.
	CreatedAt   time.Time            `json:"created_at"`           // Creation timestamp.
	ReadAt      *time.Time           `json:"read_at,omitempty"`    // When the recipient marked it read.
}

// Clone returns a deep-enough copy for handing to listeners.
func (n *Notification) Clone() *Notification {
	if n == nil {
		return nil
	}

	cloned := *n
	if n.Metadata != nil {
		cloned.Metadata = make(map[string]any, len(n.Metadata))
		for k, v := range n.Metadata {
			cloned.Metadata[k] = v
		}
	}
	if n.ReadAt != nil {
		readAt := *n.ReadAt
		cloned.ReadAt = &readAt
	}

	return &cloned
}
