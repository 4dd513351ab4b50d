package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dashboard/config"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
	mockSvc "dashboard/internal/mocks/service"
	mockUC "dashboard/internal/mocks/usecase"
	"dashboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func signedInAs(id string) entity.AuthState {
	return entity.AuthState{
		Identity: &entity.Identity{ID: id},
		Profile:  entity.DefaultProfile(id),
	}
}

func newWatchdog(t *testing.T) (*Watchdog, *mockUC.MockSessionUsecase, *mockUC.MockNotificationUsecase) {
	sessions := mockUC.NewMockSessionUsecase(t)
	channel := mockUC.NewMockNotificationUsecase(t)
	cfg := &config.Config{Realtime: &config.RealtimeConfig{MaxSilence: time.Minute}}

	return NewWatchdog(discardLogger, sessions, channel, cfg), sessions, channel
}

func TestWatchdog_Check(t *testing.T) {
	t.Run("signed out skips the channel", func(t *testing.T) {
		w, sessions, _ := newWatchdog(t)
		sessions.EXPECT().Current().Return(entity.AuthState{})

		reconnected, err := w.Check(context.Background())
		require.NoError(t, err)
		assert.False(t, reconnected)
	})

	t.Run("loading skips the channel", func(t *testing.T) {
		w, sessions, _ := newWatchdog(t)
		sessions.EXPECT().Current().Return(entity.AuthState{Loading: true})

		reconnected, err := w.Check(context.Background())
		require.NoError(t, err)
		assert.False(t, reconnected)
	})

	t.Run("healthy channel is left alone", func(t *testing.T) {
		w, sessions, channel := newWatchdog(t)
		sessions.EXPECT().Current().Return(signedInAs("u1"))
		channel.EXPECT().Stale(time.Minute).Return(false)

		reconnected, err := w.Check(context.Background())
		require.NoError(t, err)
		assert.False(t, reconnected)
	})

	t.Run("stale channel is reopened through the session resolver", func(t *testing.T) {
		w, sessions, channel := newWatchdog(t)
		sessions.EXPECT().Current().Return(signedInAs("u1"))
		channel.EXPECT().Stale(time.Minute).Return(true)
		channel.EXPECT().Health().Return(usecase.ChannelHealth{RecipientID: "u1", Dropped: true})
		sessions.EXPECT().Reconnect(mock.Anything).Return(nil).Once()

		reconnected, err := w.Check(context.Background())
		require.NoError(t, err)
		assert.True(t, reconnected)
	})

	t.Run("reconnect failure is returned", func(t *testing.T) {
		w, sessions, channel := newWatchdog(t)
		sessions.EXPECT().Current().Return(signedInAs("u1"))
		channel.EXPECT().Stale(time.Minute).Return(true)
		channel.EXPECT().Health().Return(usecase.ChannelHealth{RecipientID: "u1", Dropped: true})
		sessions.EXPECT().Reconnect(mock.Anything).Return(errors.New("dial failed"))

		reconnected, err := w.Check(context.Background())
		require.Error(t, err)
		assert.True(t, reconnected)
	})

	t.Run("sign-out before the reconnect is reported by the resolver", func(t *testing.T) {
		w, sessions, channel := newWatchdog(t)
		sessions.EXPECT().Current().Return(signedInAs("u1"))
		channel.EXPECT().Stale(time.Minute).Return(true)
		channel.EXPECT().Health().Return(usecase.ChannelHealth{RecipientID: "u1"})
		sessions.EXPECT().Reconnect(mock.Anything).Return(domainerrors.ErrNotSignedIn)

		_, err := w.Check(context.Background())
		require.ErrorIs(t, err, domainerrors.ErrNotSignedIn)
	})
}

func TestAlertForwarder_RegistersOnEverySignIn(t *testing.T) {
	sessions := mockUC.NewMockSessionUsecase(t)
	channel := mockUC.NewMockNotificationUsecase(t)
	alerts := mockSvc.NewMockAlertService(t)

	states := make(chan entity.AuthState)
	sessions.EXPECT().Watch(mock.Anything).Return((<-chan entity.AuthState)(states))

	listeners := make(chan usecase.NotificationListener, 2)
	channel.EXPECT().OnEvent(AlertListenerKey, mock.Anything).
		Run(func(key string, listener usecase.NotificationListener) {
			listeners <- listener
		}).
		Return(nil).Times(2)

	alerted := make(chan *entity.Notification, 1)
	alerts.EXPECT().Alert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, n *entity.Notification) {
			alerted <- n
		}).
		Return(nil).Once()

	f := NewAlertForwarder(discardLogger, sessions, channel, alerts)
	finished := make(chan struct{})
	go func() {
		f.Run(context.Background())
		close(finished)
	}()

	states <- entity.AuthState{Loading: true}
	states <- signedInAs("u1")
	states <- entity.AuthState{}
	states <- signedInAs("u1")
	close(states)
	<-finished

	require.Len(t, listeners, 2)
	listener := <-listeners

	listener(service.PushEventHeartbeat, nil)
	listener(service.PushEventUpdate, &entity.Notification{ID: "n0"})
	listener(service.PushEventInsert, &entity.Notification{ID: "n1"})

	select {
	case n := <-alerted:
		assert.Equal(t, "n1", n.ID)
	case <-time.After(time.Second):
		t.Fatal("alert was not forwarded")
	}
}
