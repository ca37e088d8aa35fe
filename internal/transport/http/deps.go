package http

import (
	"context"

	"github.com/family-safety-api/internal/domain"
)

// FamilyResolver is the membership lookup the safety pipeline depends on.
type FamilyResolver interface {
	Resolve(ctx context.Context, childID string) (*domain.FamilyMembership, error)
}

// IncidentRepository is the minimal interface the router requires from the
// incident store. Put serves the pipeline's recorder; the rest serve the
// guardian review surface.
type IncidentRepository interface {
	Put(ctx context.Context, inc *domain.SafetyIncident) error
	Get(ctx context.Context, incidentID string) (*domain.SafetyIncident, error)
	ListByFamily(ctx context.Context, familyID string) ([]domain.SafetyIncident, error)
	MarkReviewed(ctx context.Context, incidentID string) error
}

// NotificationRepository is the minimal interface the router requires from
// the notification store. Put and GetByIncident serve the pipeline's
// dispatcher; the rest serve the guardian notification surface.
type NotificationRepository interface {
	Put(ctx context.Context, n *domain.GuardianNotification) error
	Get(ctx context.Context, notificationID string) (*domain.GuardianNotification, error)
	GetByIncident(ctx context.Context, incidentID string) (*domain.GuardianNotification, error)
	ListUnread(ctx context.Context, familyID, role string) ([]domain.GuardianNotification, error)
	MarkRead(ctx context.Context, notificationID, role string) error
}

// FamilyRepository is the minimal interface the router requires from the
// family store.
type FamilyRepository interface {
	Put(ctx context.Context, f *domain.Family) error
	Get(ctx context.Context, familyID string) (*domain.Family, error)
}

// ChildRepository is the minimal interface the router requires from the
// child profile store.
type ChildRepository interface {
	Put(ctx context.Context, c *domain.ChildProfile) error
	ListByFamily(ctx context.Context, familyID string) ([]domain.ChildProfile, error)
}
