package scoring

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/family-safety-api/internal/domain"
)

// Penalty weights for the individual checks. Every check runs unconditionally;
// the score is not clamped, so heavily flagged text can go negative.
const (
	categoryPenalty = 25
	lengthPenalty   = 10
	capsPenalty     = 15

	longMessageLen = 500 // runes
	capsMinLen     = 10  // caps check only applies above this length
	capsMaxRatio   = 0.5
)

// category pairs a compiled pattern with the reason reported on a match.
// Patterns are compiled once at package load time; order here is detection
// order, which fixes the order of verdict reasons.
type category struct {
	pattern *regexp.Regexp
	reason  string
}

var categories = []category{
	{regexp.MustCompile(`(?i)\b(kill(ing)?|murder|stab|shoot(ing)?|gun|knife|blood|gore|hurt (you|him|her|them))\b`), "references to violence"},
	{regexp.MustCompile(`(?i)\b(sex|sexy|naked|nude|porn|explicit)\b`), "adult content"},
	{regexp.MustCompile(`(?i)\b(drugs?|weed|vap(e|ing)|alcohol|beer|vodka|drunk|cigarettes?|smoking)\b`), "references to substances"},
	{regexp.MustCompile(`(?i)(\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b|\bmy (home )?address\b|\bwhere i live\b|\bmy school is\b)`), "personal information shared"},
	{regexp.MustCompile(`(?i)\b(password|passcode|pin (code|number)|login code)\b`), "password or credential shared"},
}

// Evaluate scores a single message. Pure and total: any input, including the
// empty string, yields a verdict rather than an error. Each trigger subtracts
// its penalty independently with no short-circuiting, and reasons are appended
// in category-then-length-then-caps order.
func Evaluate(text string) domain.SafetyVerdict {
	score := 100
	var reasons []string

	for _, c := range categories {
		if c.pattern.MatchString(text) {
			score -= categoryPenalty
			reasons = append(reasons, c.reason)
		}
	}

	length := utf8.RuneCountInString(text)
	if length > longMessageLen {
		score -= lengthPenalty
		reasons = append(reasons, "message too long")
	}

	if length > capsMinLen {
		upper := 0
		for _, r := range text {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		if float64(upper)/float64(length) > capsMaxRatio {
			score -= capsPenalty
			reasons = append(reasons, "excessive capitalization")
		}
	}

	severity, appropriate := Classify(score)
	return domain.SafetyVerdict{
		Score:         score,
		IsAppropriate: appropriate,
		Severity:      severity,
		Reasons:       reasons,
	}
}
