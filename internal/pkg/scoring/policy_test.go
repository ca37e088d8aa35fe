package scoring

import (
	"testing"

	"github.com/family-safety-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Buckets(t *testing.T) {
	cases := []struct {
		score    int
		severity domain.Severity
	}{
		{-50, domain.SeverityCritical},
		{0, domain.SeverityCritical},
		{29, domain.SeverityCritical},
		{30, domain.SeverityHigh},
		{49, domain.SeverityHigh},
		{50, domain.SeverityMedium},
		{69, domain.SeverityMedium},
		{70, domain.SeverityLow},
		{100, domain.SeverityLow},
		{175, domain.SeverityLow},
	}
	for _, c := range cases {
		sev, _ := Classify(c.score)
		assert.Equal(t, c.severity, sev, "score %d", c.score)
	}
}

func TestClassify_AppropriateThreshold(t *testing.T) {
	for score := -150; score <= 250; score++ {
		_, appropriate := Classify(score)
		assert.Equal(t, score >= 70, appropriate, "score %d", score)
	}
}

func TestGuardianAlert_CriticalSharesHighWording(t *testing.T) {
	hTitle, hMsg := GuardianAlert(domain.SeverityHigh, "Maya")
	cTitle, cMsg := GuardianAlert(domain.SeverityCritical, "Maya")

	assert.Equal(t, hTitle, cTitle)
	assert.Equal(t, hMsg, cMsg)
}

func TestGuardianAlert_SubstitutesDisplayName(t *testing.T) {
	for _, sev := range []domain.Severity{
		domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh, domain.SeverityCritical,
	} {
		_, msg := GuardianAlert(sev, "Maya")
		assert.Contains(t, msg, "Maya", "severity %s", sev)
	}
}

func TestGuardianAlert_TiersHaveDistinctUrgency(t *testing.T) {
	_, low := GuardianAlert(domain.SeverityLow, "Maya")
	_, med := GuardianAlert(domain.SeverityMedium, "Maya")
	_, high := GuardianAlert(domain.SeverityHigh, "Maya")

	assert.NotEqual(t, low, med)
	assert.NotEqual(t, med, high)
	assert.NotEqual(t, low, high)
}
