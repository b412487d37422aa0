package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clearcheck/qualgate/services/validator/models"
)

func TestCompositeScore(t *testing.T) {
	policy := models.DefaultPolicy()

	tests := []struct {
		name      string
		breakdown models.ScoreBreakdown
		want      int
	}{
		{
			"weighted sum with inverted spam",
			models.ScoreBreakdown{Relevance: 80, Completeness: 70, Clarity: 60, Spam: 10},
			74, // 24 + 21 + 15 + 13.5 rounded
		},
		{
			"all zero with clean spam",
			models.ScoreBreakdown{},
			15, // only the inverted spam term contributes
		},
		{
			"perfect",
			models.ScoreBreakdown{Relevance: 100, Completeness: 100, Clarity: 100, Spam: 0},
			100,
		},
		{
			"out of range components are clamped first",
			models.ScoreBreakdown{Relevance: 150, Completeness: -10, Clarity: 50, Spam: 120},
			43, // clamps to {100, 0, 50, 100} -> 30 + 0 + 12.5 + 0
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompositeScore(tt.breakdown, policy))
		})
	}
}

func TestResolveVerdict(t *testing.T) {
	policy := models.DefaultPolicy()
	rejectGate := models.GateFailure{Gate: models.GateSpamCeiling, Forced: models.VerdictReject}
	reviewGate := models.GateFailure{Gate: models.GateSpamWarning, Forced: models.VerdictReview}

	tests := []struct {
		name     string
		score    int
		failures []models.GateFailure
		want     models.Verdict
	}{
		{"forced reject overrides a high score", 90, []models.GateFailure{rejectGate}, models.VerdictReject},
		{"forced reject wins over review gates", 90, []models.GateFailure{reviewGate, rejectGate}, models.VerdictReject},
		{"low score rejects", 49, nil, models.VerdictReject},
		{"mid score reviews", 50, nil, models.VerdictReview},
		{"just below accept reviews", 74, nil, models.VerdictReview},
		{"review gate blocks accept", 90, []models.GateFailure{reviewGate}, models.VerdictReview},
		{"accept at threshold", 75, nil, models.VerdictAccept},
		{"clean high score accepts", 90, []models.GateFailure{}, models.VerdictAccept},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVerdict(tt.score, tt.failures, policy))
		})
	}
}

func TestClampBreakdown(t *testing.T) {
	clamped := ClampBreakdown(models.ScoreBreakdown{Relevance: 240, Completeness: -5, Clarity: 100, Spam: 101})
	assert.Equal(t, models.ScoreBreakdown{Relevance: 100, Completeness: 0, Clarity: 100, Spam: 100}, clamped)
}
