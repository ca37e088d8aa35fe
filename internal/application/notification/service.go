package notification

import (
	"context"
	"fmt"

	"github.com/family-safety-api/internal/domain"
)

// Store is the minimal interface this service requires from the notification
// store.
type Store interface {
	Get(ctx context.Context, notificationID string) (*domain.GuardianNotification, error)
	ListUnread(ctx context.Context, familyID, role string) ([]domain.GuardianNotification, error)
	MarkRead(ctx context.Context, notificationID, role string) error
}

// Service exposes the guardian notification surface. Read state is tracked
// per guardian role: marking a notification read for one role never changes
// the other's unread view.
type Service interface {
	ListUnread(ctx context.Context, familyID, role string) ([]domain.GuardianNotification, error)
	MarkRead(ctx context.Context, notificationID, familyID, role string) (*domain.GuardianNotification, error)
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) ListUnread(ctx context.Context, familyID, role string) ([]domain.GuardianNotification, error) {
	return s.repo.ListUnread(ctx, familyID, role)
}

func (s *service) MarkRead(ctx context.Context, notificationID, familyID, role string) (*domain.GuardianNotification, error) {
	n, err := s.repo.Get(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.FamilyID != familyID {
		return nil, fmt.Errorf("notification belongs to another family: %w", domain.ErrForbidden)
	}
	if err := s.repo.MarkRead(ctx, notificationID, role); err != nil {
		return nil, err
	}
	switch role {
	case domain.GuardianPrimary:
		n.ReadByPrimary = true
	case domain.GuardianSecondary:
		n.ReadBySecondary = true
	}
	return n, nil
}
