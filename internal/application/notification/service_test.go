package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/family-safety-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) Get(ctx context.Context, notificationID string) (*domain.GuardianNotification, error) {
	args := m.Called(ctx, notificationID)
	if n, _ := args.Get(0).(*domain.GuardianNotification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) ListUnread(ctx context.Context, familyID, role string) ([]domain.GuardianNotification, error) {
	args := m.Called(ctx, familyID, role)
	return args.Get(0).([]domain.GuardianNotification), args.Error(1)
}
func (m *mockStore) MarkRead(ctx context.Context, notificationID, role string) error {
	return m.Called(ctx, notificationID, role).Error(0)
}

func stored() *domain.GuardianNotification {
	return &domain.GuardianNotification{
		NotificationID: "notif-1",
		IncidentID:     "inc-1",
		FamilyID:       "fam-1",
		Type:           domain.NotificationTypeSafetyAlert,
		Severity:       domain.SeverityHigh,
	}
}

func TestMarkRead_PrimaryOnly(t *testing.T) {
	ms := &mockStore{}
	ms.On("Get", mock.Anything, "notif-1").Return(stored(), nil)
	ms.On("MarkRead", mock.Anything, "notif-1", domain.GuardianPrimary).Return(nil)

	svc := NewService(ms)
	n, err := svc.MarkRead(context.Background(), "notif-1", "fam-1", domain.GuardianPrimary)

	require.NoError(t, err)
	assert.True(t, n.ReadByPrimary)
	assert.False(t, n.ReadBySecondary)
	ms.AssertExpectations(t)
}

func TestMarkRead_SecondaryOnly(t *testing.T) {
	ms := &mockStore{}
	ms.On("Get", mock.Anything, "notif-1").Return(stored(), nil)
	ms.On("MarkRead", mock.Anything, "notif-1", domain.GuardianSecondary).Return(nil)

	svc := NewService(ms)
	n, err := svc.MarkRead(context.Background(), "notif-1", "fam-1", domain.GuardianSecondary)

	require.NoError(t, err)
	assert.False(t, n.ReadByPrimary)
	assert.True(t, n.ReadBySecondary)
}

func TestMarkRead_OtherFamily_Forbidden(t *testing.T) {
	ms := &mockStore{}
	ms.On("Get", mock.Anything, "notif-1").Return(stored(), nil)

	svc := NewService(ms)
	_, err := svc.MarkRead(context.Background(), "notif-1", "fam-2", domain.GuardianPrimary)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	ms.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkRead_NotFound(t *testing.T) {
	ms := &mockStore{}
	ms.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := NewService(ms)
	_, err := svc.MarkRead(context.Background(), "missing", "fam-1", domain.GuardianPrimary)

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListUnread_DelegatesPerRole(t *testing.T) {
	ms := &mockStore{}
	ms.On("ListUnread", mock.Anything, "fam-1", domain.GuardianSecondary).
		Return([]domain.GuardianNotification{*stored()}, nil)

	svc := NewService(ms)
	list, err := svc.ListUnread(context.Background(), "fam-1", domain.GuardianSecondary)

	require.NoError(t, err)
	assert.Len(t, list, 1)
	ms.AssertExpectations(t)
}
