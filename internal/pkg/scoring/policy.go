package scoring

import (
	"fmt"

	"github.com/family-safety-api/internal/domain"
)

// Severity thresholds. This is the only place they exist — every other
// component derives severity and appropriateness through Classify.
const (
	appropriateMin = 70
	mediumMin      = 50
	highMin        = 30
)

// Classify maps a score to its severity tier and appropriateness. Total over
// all integers: unclamped negative scores fall into critical.
func Classify(score int) (domain.Severity, bool) {
	appropriate := score >= appropriateMin
	switch {
	case score < highMin:
		return domain.SeverityCritical, appropriate
	case score < mediumMin:
		return domain.SeverityHigh, appropriate
	case score < appropriateMin:
		return domain.SeverityMedium, appropriate
	default:
		return domain.SeverityLow, appropriate
	}
}

// GuardianAlert builds the guardian-facing title and message for a severity
// tier, parameterized only by the child's display name. Critical shares high's
// wording; the stored severity still distinguishes the two tiers.
func GuardianAlert(severity domain.Severity, displayName string) (title, message string) {
	switch severity {
	case domain.SeverityHigh, domain.SeverityCritical:
		return "Safety Alert",
			fmt.Sprintf("%s sent a message that needs your immediate attention. Please review it together.", displayName)
	case domain.SeverityMedium:
		return "Safety Notice",
			fmt.Sprintf("%s sent a message that may need your attention when you have a moment.", displayName)
	default:
		return "Safety Update",
			fmt.Sprintf("%s sent a message that was gently redirected. No action is needed.", displayName)
	}
}
