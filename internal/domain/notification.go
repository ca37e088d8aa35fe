package domain

import "time"

// NotificationTypeSafetyAlert is the only notification type this service emits.
const NotificationTypeSafetyAlert = "safety_alert"

// Guardian roles with independent read state on a notification.
const (
	GuardianPrimary   = "guardian_primary"
	GuardianSecondary = "guardian_secondary"
)

// RoleService identifies the in-process or trusted chat-handler caller of the
// evaluate endpoint.
const RoleService = "service"

// GuardianNotification is the durable guardian-facing alert created from a
// qualifying incident. IncidentID links back to the source incident and is the
// idempotency key: at most one notification ever exists per incident.
type GuardianNotification struct {
	NotificationID  string    `json:"id" dynamodbav:"notification_id"`
	IncidentID      string    `json:"incident_id" dynamodbav:"incident_id"`
	FamilyID        string    `json:"family_id" dynamodbav:"family_id"`
	ChildID         string    `json:"child_id" dynamodbav:"child_id"`
	Type            string    `json:"notification_type" dynamodbav:"notification_type"`
	Title           string    `json:"title" dynamodbav:"title"`
	Message         string    `json:"message" dynamodbav:"message"`
	Severity        Severity  `json:"severity" dynamodbav:"severity"`
	ReadByPrimary   bool      `json:"read_by_primary" dynamodbav:"read_by_primary"`
	ReadBySecondary bool      `json:"read_by_secondary" dynamodbav:"read_by_secondary"`
	CreatedAt       time.Time `json:"created" dynamodbav:"created_at"`
}
