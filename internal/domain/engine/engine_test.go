package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkshield/phishguard/internal/domain"
)

// testArtifact is a small but fully consistent model: positive coefficients on
// phishing wording, negative on benign wording.
func testArtifact() *domain.ModelArtifact {
	return &domain.ModelArtifact{
		Version:      "test",
		Vocabulary:   []string{"account", "meeting", "thanks", "urgent", "verify"},
		IDF:          []float64{2.1, 3.3, 3.0, 3.2, 2.9},
		Coefficients: []float64{1.9, -1.2, -1.0, 2.2, 2.3},
		Intercept:    -1.3,
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New(testArtifact(), nil)
	require.NoError(t, err)
	return eng
}

func findingByID(t *testing.T, findings []domain.Finding, id string) domain.Finding {
	t.Helper()
	for _, f := range findings {
		if f.RuleID == id {
			return f
		}
	}
	t.Fatalf("finding %s not present", id)
	return domain.Finding{}
}

func TestEngine_New_RejectsInconsistentArtifact(t *testing.T) {
	artifact := testArtifact()
	artifact.Coefficients = artifact.Coefficients[:3]

	_, err := New(artifact, nil)
	var shapeErr *domain.ModelShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestEngine_Analyze_EmptyInput(t *testing.T) {
	eng := newTestEngine(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := eng.Analyze(text)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input: %q", text)
	}
}

func TestEngine_Analyze_Deterministic(t *testing.T) {
	eng := newTestEngine(t)

	first, err := eng.Analyze("http://paypa1.com/verify?account=1")
	require.NoError(t, err)
	second, err := eng.Analyze("http://paypa1.com/verify?account=1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Analyze_ProtocolFinding(t *testing.T) {
	eng := newTestEngine(t)

	insecure, err := eng.Analyze("http://example.com/welcome")
	require.NoError(t, err)
	assert.True(t, findingByID(t, insecure.Findings, "NO_HTTPS").Triggered)

	secure, err := eng.Analyze("https://example.com/welcome")
	require.NoError(t, err)
	assert.False(t, findingByID(t, secure.Findings, "NO_HTTPS").Triggered)
}

func TestEngine_Analyze_SafeBaseline(t *testing.T) {
	eng := newTestEngine(t)

	report, err := eng.Analyze("Looking forward to the quarterly planning meeting next week, thanks")
	require.NoError(t, err)

	assert.Equal(t, domain.LabelSafe, report.Verdict.Label)
	assert.Less(t, report.Verdict.Confidence, phishingThreshold)
	assert.Empty(t, report.Verdict.Reasons)
	for _, f := range report.Findings {
		assert.False(t, f.Triggered, "rule %s should not trigger", f.RuleID)
	}
}

func TestEngine_Analyze_CombinedEscalation(t *testing.T) {
	eng := newTestEngine(t)

	// Plain HTTP, denylisted keywords, IP-literal host: the battery alone must
	// push this over the threshold whatever the classifier says.
	report, err := eng.Analyze("http://203.0.113.7/login?message=urgent")
	require.NoError(t, err)

	triggered := 0
	for _, f := range report.Findings {
		if f.Triggered {
			triggered++
		}
	}

	assert.GreaterOrEqual(t, triggered, 3)
	assert.Equal(t, domain.LabelPhishing, report.Verdict.Label)
	assert.GreaterOrEqual(t, report.Verdict.Confidence, phishingThreshold)
	assert.NotEmpty(t, report.Verdict.Reasons)
}

func TestEngine_Analyze_BatteryOrderStable(t *testing.T) {
	eng := newTestEngine(t)

	report, err := eng.Analyze("https://example.com/welcome")
	require.NoError(t, err)

	ids := make([]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		ids = append(ids, f.RuleID)
	}
	assert.Equal(t, []string{
		"NO_HTTPS",
		"SUSPICIOUS_KEYWORDS",
		"DOMAIN_PATTERN",
		"URL_STRUCTURE",
		"BRAND_LOOKALIKE",
	}, ids)
}

func TestEngine_Analyze_ReasonsFollowBatteryOrder(t *testing.T) {
	eng := newTestEngine(t)

	report, err := eng.Analyze("http://203.0.113.7/login?message=urgent")
	require.NoError(t, err)

	// Triggered reasons appear in battery order; the classifier reason, when
	// present, comes first.
	var expected []string
	if report.ClassifierScore >= classifierReasonMin {
		expected = append(expected, classifierReason)
	}
	for _, f := range report.Findings {
		if f.Triggered {
			expected = append(expected, f.Reason)
		}
	}
	assert.Equal(t, expected, report.Verdict.Reasons)
}
