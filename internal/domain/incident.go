package domain

import "time"

// SafetyIncident is the durable record of a flagged (non-appropriate) message.
// Created once by the pipeline; only ParentReviewed is ever mutated afterwards,
// and only by a guardian review action.
type SafetyIncident struct {
	IncidentID     string    `json:"id" dynamodbav:"incident_id"`
	FamilyID       string    `json:"family_id" dynamodbav:"family_id"`
	ChildID        string    `json:"child_id" dynamodbav:"child_id"`
	MessageExcerpt string    `json:"message_excerpt" dynamodbav:"message_excerpt"` // truncated, never the full message
	Score          int       `json:"score" dynamodbav:"score"`
	Severity       Severity  `json:"severity" dynamodbav:"severity"`
	Flagged        bool      `json:"flagged" dynamodbav:"flagged"`
	FlagReason     string    `json:"flag_reason" dynamodbav:"flag_reason"`
	ParentReviewed bool      `json:"parent_reviewed" dynamodbav:"parent_reviewed"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}

// EvaluateMessageRequest is the payload of the evaluate endpoint. Message has
// no required tag: scoring is total and an empty message still gets a verdict.
type EvaluateMessageRequest struct {
	ChildID string `json:"child_id" validate:"required"`
	Message string `json:"message"`
}
