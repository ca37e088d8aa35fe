package safety

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/family-safety-api/internal/domain"
	"github.com/family-safety-api/internal/pkg/id"
	"github.com/family-safety-api/internal/pkg/scoring"
)

// excerptMaxLen bounds what is persisted of a flagged message. A privacy
// limit, independent of the scorer's own length heuristic: scoring always
// sees the full text, storage never does.
const excerptMaxLen = 500

const fallbackFlagReason = "inappropriate content detected"

// FamilyResolver resolves a child to its family membership. Owned by the
// surrounding application; a miss is fail-open for the escalation chain.
type FamilyResolver interface {
	Resolve(ctx context.Context, childID string) (*domain.FamilyMembership, error)
}

// IncidentStore is the minimal durable-store surface the recorder needs.
type IncidentStore interface {
	Put(ctx context.Context, inc *domain.SafetyIncident) error
}

// NotificationStore is the minimal durable-store surface the dispatcher needs.
type NotificationStore interface {
	GetByIncident(ctx context.Context, incidentID string) (*domain.GuardianNotification, error)
	Put(ctx context.Context, n *domain.GuardianNotification) error
}

// SMSSender delivers out-of-band guardian alerts. Optional.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// Mailer delivers out-of-band guardian alerts. Optional.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// Service is the safety pipeline entry point consumed by the chat handler.
type Service interface {
	// EvaluateAndRecord scores one message and returns the verdict
	// synchronously. When the message is flagged, incident recording and
	// guardian notification run detached and best-effort: their failures
	// are logged, never returned, and never delay the chat response.
	EvaluateAndRecord(ctx context.Context, childID, text string) domain.SafetyVerdict
}

// ServiceDeps holds the pipeline's injected collaborators. SMSSender and
// Mailer may be nil; the pipeline then skips out-of-band alerts.
type ServiceDeps struct {
	Resolver      FamilyResolver
	Incidents     IncidentStore
	Notifications NotificationStore
	SMSSender     SMSSender
	Mailer        Mailer
}

type service struct {
	resolver      FamilyResolver
	incidents     IncidentStore
	notifications NotificationStore
	smsSender     SMSSender
	mailer        Mailer
}

func NewService(deps ServiceDeps) Service {
	return &service{
		resolver:      deps.Resolver,
		incidents:     deps.Incidents,
		notifications: deps.Notifications,
		smsSender:     deps.SMSSender,
		mailer:        deps.Mailer,
	}
}

func (s *service) EvaluateAndRecord(ctx context.Context, childID, text string) domain.SafetyVerdict {
	verdict := scoring.Evaluate(text)
	if !verdict.IsAppropriate {
		// Detached: the chain outlives the request, so it carries its own
		// context rather than the caller's.
		go func() {
			if err := s.escalate(context.Background(), childID, text, verdict); err != nil {
				slog.Warn("safety escalation failed",
					"child_id", childID,
					"score", verdict.Score,
					"severity", verdict.Severity,
					"err", err)
			}
		}()
	}
	return verdict
}

// escalate runs the full side-effect chain for one flagged message:
// resolve, then record, then dispatch. Strictly sequential, stops at the
// first failure, leaves no notification without an incident.
func (s *service) escalate(ctx context.Context, childID, text string, verdict domain.SafetyVerdict) error {
	m, err := s.resolver.Resolve(ctx, childID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("resolve child %s: %w", childID, domain.ErrFamilyNotFound)
		}
		return fmt.Errorf("resolve child %s: %w", childID, err)
	}

	inc, err := s.record(ctx, m, childID, text, verdict)
	if err != nil {
		return err
	}

	return s.dispatch(ctx, inc, m)
}

// record persists exactly one incident for the flagged message, with the
// message content truncated to the privacy bound.
func (s *service) record(ctx context.Context, m *domain.FamilyMembership, childID, text string, verdict domain.SafetyVerdict) (*domain.SafetyIncident, error) {
	inc := &domain.SafetyIncident{
		IncidentID:     id.New(),
		FamilyID:       m.FamilyID,
		ChildID:        childID,
		MessageExcerpt: truncate(text, excerptMaxLen),
		Score:          verdict.Score,
		Severity:       verdict.Severity,
		Flagged:        true,
		FlagReason:     flagReason(verdict.Reasons),
		ParentReviewed: false,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.incidents.Put(ctx, inc); err != nil {
		return nil, fmt.Errorf("record incident for child %s: %v: %w", childID, err, domain.ErrStoreFailure)
	}
	return inc, nil
}

// dispatch creates the guardian notification for a qualifying incident.
// Low severity is skipped. An existing notification for the incident means a
// retry already dispatched; nothing is inserted twice.
func (s *service) dispatch(ctx context.Context, inc *domain.SafetyIncident, m *domain.FamilyMembership) error {
	if inc.Severity == domain.SeverityLow {
		return nil
	}

	if existing, err := s.notifications.GetByIncident(ctx, inc.IncidentID); err == nil {
		slog.Info("notification already exists for incident",
			"incident_id", inc.IncidentID, "notification_id", existing.NotificationID)
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check notification for incident %s: %v: %w", inc.IncidentID, err, domain.ErrStoreFailure)
	}

	title, message := scoring.GuardianAlert(inc.Severity, m.DisplayName)
	n := &domain.GuardianNotification{
		NotificationID:  id.New(),
		IncidentID:      inc.IncidentID,
		FamilyID:        inc.FamilyID,
		ChildID:         inc.ChildID,
		Type:            domain.NotificationTypeSafetyAlert,
		Title:           title,
		Message:         message,
		Severity:        inc.Severity,
		ReadByPrimary:   false,
		ReadBySecondary: false,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.notifications.Put(ctx, n); err != nil {
		return fmt.Errorf("dispatch notification for incident %s: %v: %w", inc.IncidentID, err, domain.ErrStoreFailure)
	}

	if inc.Severity == domain.SeverityHigh || inc.Severity == domain.SeverityCritical {
		s.alertGuardians(ctx, m, title, message)
	}
	return nil
}

// alertGuardians sends the out-of-band SMS/email copies of a high-severity
// alert. Best-effort: the durable notification already exists, so failures
// here are only logged.
func (s *service) alertGuardians(ctx context.Context, m *domain.FamilyMembership, title, message string) {
	if s.smsSender != nil && m.GuardianPrimaryPhone != nil {
		if err := s.smsSender.SendSMS(ctx, *m.GuardianPrimaryPhone, message); err != nil {
			slog.Warn("guardian SMS alert failed", "family_id", m.FamilyID, "err", err)
		}
	}
	if s.mailer != nil && m.GuardianPrimaryEmail != "" {
		if err := s.mailer.SendEmail(m.GuardianPrimaryEmail, title, message); err != nil {
			slog.Warn("guardian email alert failed", "family_id", m.FamilyID, "err", err)
		}
	}
}

func flagReason(reasons []string) string {
	if len(reasons) == 0 {
		return fallbackFlagReason
	}
	return reasons[0]
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
