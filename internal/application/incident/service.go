package incident

import (
	"context"
	"fmt"

	"github.com/family-safety-api/internal/domain"
)

// Store is the minimal interface the review surface requires from the
// incident store.
type Store interface {
	Get(ctx context.Context, incidentID string) (*domain.SafetyIncident, error)
	ListByFamily(ctx context.Context, familyID string) ([]domain.SafetyIncident, error)
	MarkReviewed(ctx context.Context, incidentID string) error
}

// Service backs the guardian review surface. Read-only except for the
// review flag, which is the single external mutation the incident record
// allows after creation.
type Service interface {
	ListByFamily(ctx context.Context, familyID string) ([]domain.SafetyIncident, error)
	MarkReviewed(ctx context.Context, incidentID, familyID string) (*domain.SafetyIncident, error)
}

type service struct {
	repo Store
}

func NewService(repo Store) Service {
	return &service{repo: repo}
}

func (s *service) ListByFamily(ctx context.Context, familyID string) ([]domain.SafetyIncident, error) {
	return s.repo.ListByFamily(ctx, familyID)
}

func (s *service) MarkReviewed(ctx context.Context, incidentID, familyID string) (*domain.SafetyIncident, error) {
	inc, err := s.repo.Get(ctx, incidentID)
	if err != nil {
		return nil, err
	}
	if inc.FamilyID != familyID {
		return nil, fmt.Errorf("incident belongs to another family: %w", domain.ErrForbidden)
	}
	if err := s.repo.MarkReviewed(ctx, incidentID); err != nil {
		return nil, err
	}
	inc.ParentReviewed = true
	return inc, nil
}
