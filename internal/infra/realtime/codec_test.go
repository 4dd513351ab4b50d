package realtime

import (
	"testing"

	"dashboard/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEvent(t *testing.T) {
	event := insertFor("alice", "n1")
	event.Notification.Metadata = map[string]any{"leave_id": "L-7"}

	data, err := encodeEvent(event)
	require.NoError(t, err)

	decoded, err := decodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, service.PushEventInsert, decoded.Kind)
	assert.Equal(t, "n1", decoded.Notification.ID)
	assert.Equal(t, "alice", decoded.Notification.RecipientID)
	assert.Equal(t, "L-7", decoded.Notification.Metadata["leave_id"])
}

func TestDecodeEvent_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{"},
		{name: "missing notification", data: `{"kind":"insert"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeEvent([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestEventAttributes(t *testing.T) {
	attrs := eventAttributes(insertFor("alice", "n1"))

	assert.Equal(t, map[string]string{
		"table":        "notifications",
		"kind":         "insert",
		"recipient_id": "alice",
	}, attrs)
}

func TestSubscription_ErrOnlyWhenNotClosed(t *testing.T) {
	dropped := newSubscription(func() {})
	dropped.finish(ErrBrokerClosed)
	<-dropped.Done()
	assert.ErrorIs(t, dropped.Err(), ErrBrokerClosed)

	closed := newSubscription(func() {})
	require.NoError(t, closed.Close())
	closed.finish(ErrBrokerClosed)
	<-closed.Done()
	assert.NoError(t, closed.Err())
}
