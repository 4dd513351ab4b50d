package impl

import (
	"context"
	"testing"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	mockRepo "dashboard/internal/mocks/repository"
	mockSvc "dashboard/internal/mocks/service"
	"dashboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatcher(t *testing.T) (
	usecase.NotificationDispatcher,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockEventPublisher,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return NewNotificationDispatcher(discardLogger(), txManager, publisher), txManager, notificationRepo, publisher
}

// expectTransaction runs the transactional callback against a factory that hands out repo.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, repo repository.NotificationRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NotificationRepo().Return(repo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Once()
}

func TestNotificationDispatcher_Dispatch(t *testing.T) {
	dispatcher, txManager, repo, publisher := createTestDispatcher(t)
	ctx := context.Background()
	expectTransaction(t, txManager, repo)

	repo.EXPECT().CreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(_ context.Context, notifications []*entity.Notification) {
			for i, n := range notifications {
				n.ID = []string{"n1", "n2"}[i]
			}
		}).Return(nil).Once()

	var published []*service.PushEvent
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.PushEvent) {
			published = append(published, event)
		}).Return(nil).Twice()

	created, err := dispatcher.Dispatch(ctx, &usecase.DispatchInput{
		RecipientIDs: []string{"u1", "u2", "u1", " "},
		Title:        "Leave approved",
		Message:      "Your leave request for Friday was approved.",
		Category:     entity.NotificationCategoryLeave,
	})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "u1", created[0].RecipientID)
	assert.Equal(t, "u2", created[1].RecipientID)
	assert.Equal(t, entity.NotificationPriorityNormal, created[0].Priority)

	require.Len(t, published, 2)
	for _, event := range published {
		assert.Equal(t, service.PushEventInsert, event.Kind)
	}
	assert.Equal(t, "n2", published[1].Notification.ID)
}

func TestNotificationDispatcher_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.DispatchInput
	}{
		{name: "nil input"},
		{name: "no recipients", input: &usecase.DispatchInput{Title: "t", Category: entity.NotificationCategoryMemo}},
		{name: "blank title", input: &usecase.DispatchInput{RecipientIDs: []string{"u1"}, Title: " ", Category: entity.NotificationCategoryMemo}},
		{name: "unknown category", input: &usecase.DispatchInput{RecipientIDs: []string{"u1"}, Title: "t", Category: "gossip"}},
		{name: "unknown priority", input: &usecase.DispatchInput{RecipientIDs: []string{"u1"}, Title: "t", Category: entity.NotificationCategoryMemo, Priority: "meh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher, _, _, _ := createTestDispatcher(t)

			_, err := dispatcher.Dispatch(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestNotificationDispatcher_TransactionFailurePublishesNothing(t *testing.T) {
	dispatcher, txManager, repo, _ := createTestDispatcher(t)
	ctx := context.Background()
	expectTransaction(t, txManager, repo)

	repo.EXPECT().CreateNotifications(ctx, mock.Anything).Return(errors.New("unique violation")).Once()

	_, err := dispatcher.Dispatch(ctx, &usecase.DispatchInput{
		RecipientIDs: []string{"u1"},
		Title:        "Invoice overdue",
		Message:      "INV-1042 is overdue.",
		Category:     entity.NotificationCategoryInvoice,
		Priority:     entity.NotificationPriorityHigh,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotificationDispatchFailed)
}

func TestNotificationDispatcher_PublishFailureStillReturnsRows(t *testing.T) {
	dispatcher, txManager, repo, publisher := createTestDispatcher(t)
	ctx := context.Background()
	expectTransaction(t, txManager, repo)

	repo.EXPECT().CreateNotifications(ctx, mock.Anything).Return(nil).Once()
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("broker offline")).Once()

	created, err := dispatcher.Dispatch(ctx, &usecase.DispatchInput{
		RecipientIDs: []string{"u1"},
		Title:        "Memo",
		Message:      "All hands at 3pm.",
		Category:     entity.NotificationCategoryMemo,
	})

	require.NoError(t, err)
	assert.Len(t, created, 1)
}
