package family

import (
	"context"
	"time"

	"github.com/family-safety-api/internal/domain"
	"github.com/family-safety-api/internal/pkg/id"
	"github.com/family-safety-api/internal/pkg/validate"
)

// FamilyStore is the minimal interface this service requires from the family
// store.
type FamilyStore interface {
	Put(ctx context.Context, f *domain.Family) error
	Get(ctx context.Context, familyID string) (*domain.Family, error)
}

// ChildStore is the minimal interface this service requires from the child
// profile store.
type ChildStore interface {
	Put(ctx context.Context, c *domain.ChildProfile) error
	ListByFamily(ctx context.Context, familyID string) ([]domain.ChildProfile, error)
}

// Service manages family and child profile registration — the data the
// safety pipeline's resolver reads. Account identity stays with the external
// auth service; only membership and guardian contact info live here.
type Service interface {
	Create(ctx context.Context, req domain.CreateFamilyRequest) (*domain.Family, error)
	Get(ctx context.Context, familyID string) (*domain.Family, error)
	AddChild(ctx context.Context, familyID string, req domain.AddChildRequest) (*domain.ChildProfile, error)
	ListChildren(ctx context.Context, familyID string) ([]domain.ChildProfile, error)
}

type service struct {
	families FamilyStore
	children ChildStore
}

func NewService(families FamilyStore, children ChildStore) Service {
	return &service{families: families, children: children}
}

func (s *service) Create(ctx context.Context, req domain.CreateFamilyRequest) (*domain.Family, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	f := &domain.Family{
		FamilyID:               id.New(),
		Name:                   req.Name,
		GuardianPrimaryEmail:   req.GuardianPrimaryEmail,
		GuardianPrimaryPhone:   req.GuardianPrimaryPhone,
		GuardianSecondaryEmail: req.GuardianSecondaryEmail,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := s.families.Put(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Get(ctx context.Context, familyID string) (*domain.Family, error) {
	return s.families.Get(ctx, familyID)
}

func (s *service) AddChild(ctx context.Context, familyID string, req domain.AddChildRequest) (*domain.ChildProfile, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	// The family must exist before a child can be attached to it.
	if _, err := s.families.Get(ctx, familyID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &domain.ChildProfile{
		ChildID:     id.New(),
		FamilyID:    familyID,
		DisplayName: req.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.children.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListChildren(ctx context.Context, familyID string) ([]domain.ChildProfile, error) {
	return s.children.ListByFamily(ctx, familyID)
}
