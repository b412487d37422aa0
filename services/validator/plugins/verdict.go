package plugins

import (
	"math"

	"github.com/clearcheck/qualgate/services/validator/models"
)

// ClampBreakdown bounds every sub-score to [0,100] before aggregation.
func ClampBreakdown(b models.ScoreBreakdown) models.ScoreBreakdown {
	return models.ScoreBreakdown{
		Relevance:    clampScore(b.Relevance),
		Completeness: clampScore(b.Completeness),
		Clarity:      clampScore(b.Clarity),
		Spam:         clampScore(b.Spam),
	}
}

// CompositeScore aggregates a clamped breakdown into the weighted quality
// score. Spam is inverted so that a clean submission contributes its full
// weight.
func CompositeScore(b models.ScoreBreakdown, policy models.ScoringPolicy) int {
	b = ClampBreakdown(b)
	weighted := policy.WeightRelevance*float64(b.Relevance) +
		policy.WeightCompleteness*float64(b.Completeness) +
		policy.WeightClarity*float64(b.Clarity) +
		policy.WeightSpam*float64(100-b.Spam)
	return clampScore(int(math.Round(weighted)))
}

// ResolveVerdict combines the composite score with gate outcomes. Any
// forced REJECT is an absolute override regardless of score; ACCEPT
// requires both a score at or above the review threshold and zero gate
// failures of any kind.
func ResolveVerdict(qualityScore int, failures []models.GateFailure, policy models.ScoringPolicy) models.Verdict {
	for _, failure := range failures {
		if failure.Forced == models.VerdictReject {
			return models.VerdictReject
		}
	}

	if qualityScore < policy.RejectBelow {
		return models.VerdictReject
	}

	if qualityScore < policy.ReviewBelow || len(failures) > 0 {
		return models.VerdictReview
	}

	return models.VerdictAccept
}
