package domain

// Severity tiers a message score maps into, from least to most concerning.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SafetyVerdict is the ephemeral result of evaluating one message.
// It is returned synchronously to the chat handler; only incidents and
// notifications derived from it are durable.
type SafetyVerdict struct {
	Score         int      `json:"score"`
	IsAppropriate bool     `json:"is_appropriate"`
	Severity      Severity `json:"severity"`
	// Reasons lists every trigger in detection order. Duplicates allowed.
	Reasons []string `json:"reasons"`
}
