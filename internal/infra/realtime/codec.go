package realtime

import (
	"encoding/json"

	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
)

// Message attribute keys used by transports that support server-side filtering.
const (
	attrRecipientID = "recipient_id"
	attrKind        = "kind"
	attrTable       = "table"
)

func encodeEvent(event *service.PushEvent) ([]byte, error) {
	if event == nil || event.Notification == nil {
		return nil, errors.New("push event without notification")
	}
	if event.Kind != service.PushEventInsert && event.Kind != service.PushEventUpdate {
		return nil, errors.Errorf("unsupported push event kind %q", event.Kind)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode push event")
	}

	return data, nil
}

func decodeEvent(data []byte) (service.PushEvent, error) {
	var event service.PushEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return service.PushEvent{}, errors.Wrap(err, "failed to decode push event")
	}
	if event.Notification == nil {
		return service.PushEvent{}, errors.New("push event without notification")
	}

	return event, nil
}

func eventAttributes(event *service.PushEvent) map[string]string {
	return map[string]string{
		attrTable:       service.NotificationsTable,
		attrKind:        string(event.Kind),
		attrRecipientID: event.Notification.RecipientID,
	}
}

// deliverIfMatch forwards a decoded row event when it passes the filter.
func deliverIfMatch(filter service.PushFilter, event service.PushEvent, deliver func(service.PushEvent)) bool {
	if !filter.Matches(event.Notification) {
		return false
	}

	deliver(event)

	return true
}

func heartbeat() service.PushEvent {
	return service.PushEvent{Kind: service.PushEventHeartbeat}
}
