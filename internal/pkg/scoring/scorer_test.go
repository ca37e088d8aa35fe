package scoring

import (
	"strings"
	"testing"

	"github.com/family-safety-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_CleanMessage(t *testing.T) {
	v := Evaluate("can we play minecraft after school today")

	assert.Equal(t, 100, v.Score)
	assert.True(t, v.IsAppropriate)
	assert.Equal(t, domain.SeverityLow, v.Severity)
	assert.Empty(t, v.Reasons)
}

func TestEvaluate_EmptyMessage(t *testing.T) {
	v := Evaluate("")

	assert.Equal(t, 100, v.Score)
	assert.True(t, v.IsAppropriate)
	assert.Empty(t, v.Reasons)
}

func TestEvaluate_Deterministic(t *testing.T) {
	text := "someone brought a KNIFE to school and my password is hunter2"
	first := Evaluate(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Evaluate(text))
	}
}

func TestEvaluate_SingleCategory(t *testing.T) {
	v := Evaluate("he said he has a knife")

	assert.Equal(t, 75, v.Score)
	assert.True(t, v.IsAppropriate)
	assert.Equal(t, domain.SeverityLow, v.Severity)
	require.Len(t, v.Reasons, 1)
	assert.Equal(t, "references to violence", v.Reasons[0])
}

func TestEvaluate_TwoCategoriesAndTooLong(t *testing.T) {
	// >500 runes, lowercase, matching violence and substances only.
	text := strings.Repeat("we talked about stuff ", 25) + "he had beer and a gun"
	require.Greater(t, len([]rune(text)), 500)

	v := Evaluate(text)

	assert.Equal(t, 40, v.Score)
	assert.False(t, v.IsAppropriate)
	assert.Equal(t, domain.SeverityHigh, v.Severity)
	assert.Equal(t, []string{
		"references to violence",
		"references to substances",
		"message too long",
	}, v.Reasons)
}

func TestEvaluate_ExcessiveCaps(t *testing.T) {
	v := Evaluate(strings.Repeat("A", 20))

	assert.Equal(t, 85, v.Score)
	assert.True(t, v.IsAppropriate)
	assert.Equal(t, domain.SeverityLow, v.Severity)
	assert.Equal(t, []string{"excessive capitalization"}, v.Reasons)
}

func TestEvaluate_CapsCheckSkippedForShortMessages(t *testing.T) {
	// 10 runes of uppercase: at the boundary, the caps check must not apply.
	v := Evaluate(strings.Repeat("A", 10))

	assert.Equal(t, 100, v.Score)
	assert.Empty(t, v.Reasons)
}

func TestEvaluate_AllCategories_NegativeScore(t *testing.T) {
	v := Evaluate("kill sex weed password 555-123-4567")

	assert.Equal(t, -25, v.Score)
	assert.False(t, v.IsAppropriate)
	assert.Equal(t, domain.SeverityCritical, v.Severity)
	assert.Equal(t, []string{
		"references to violence",
		"adult content",
		"references to substances",
		"personal information shared",
		"password or credential shared",
	}, v.Reasons)
}

func TestEvaluate_CaseInsensitivePatterns(t *testing.T) {
	lower := Evaluate("he has a gun")
	upper := Evaluate("he has a GUN")

	assert.Equal(t, lower.Score, upper.Score)
	assert.Equal(t, lower.Reasons, upper.Reasons)
}

func TestEvaluate_MultibyteRunesCountedOnce(t *testing.T) {
	// 500 runes but well over 500 bytes: the length penalty must not fire.
	v := Evaluate(strings.Repeat("ñ", 500))

	assert.Equal(t, 100, v.Score)
	assert.Empty(t, v.Reasons)
}
