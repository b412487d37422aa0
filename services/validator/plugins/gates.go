package plugins

import (
	"fmt"

	"github.com/clearcheck/qualgate/pkg/lexicon"
	"github.com/clearcheck/qualgate/pkg/textnorm"
	"github.com/clearcheck/qualgate/services/validator/models"
)

// GateEvaluator runs the hard rule checks that can force REVIEW or REJECT
// independent of the composite score. REJECT-tier gates run unconditionally
// and independently; REVIEW-tier gates are suppressed once any REJECT has
// been recorded (redundant signaling, not a correctness requirement).
type GateEvaluator struct {
	lex    *lexicon.Matcher
	policy models.ScoringPolicy
}

// NewGateEvaluator creates a gate evaluator.
func NewGateEvaluator(lex *lexicon.Matcher, policy models.ScoringPolicy) *GateEvaluator {
	return &GateEvaluator{lex: lex, policy: policy}
}

// Evaluate returns the ordered list of gate failures for the breakdown and
// normalized submission text. An empty list means no gate triggered.
func (g *GateEvaluator) Evaluate(breakdown models.ScoreBreakdown, submissionText string) []models.GateFailure {
	failures := []models.GateFailure{}

	if breakdown.Relevance < g.policy.RelevanceFloor {
		failures = append(failures, models.GateFailure{
			Gate:   models.GateRelevanceFloor,
			Reason: fmt.Sprintf("relevance score %d is below floor %d", breakdown.Relevance, g.policy.RelevanceFloor),
			Forced: models.VerdictReject,
		})
	}

	if breakdown.Clarity < g.policy.ClarityFloor {
		failures = append(failures, models.GateFailure{
			Gate:   models.GateClarityFloor,
			Reason: fmt.Sprintf("clarity score %d is below floor %d", breakdown.Clarity, g.policy.ClarityFloor),
			Forced: models.VerdictReject,
		})
	}

	if breakdown.Spam > g.policy.SpamCeiling {
		failures = append(failures, models.GateFailure{
			Gate:   models.GateSpamCeiling,
			Reason: fmt.Sprintf("spam score %d exceeds ceiling %d", breakdown.Spam, g.policy.SpamCeiling),
			Forced: models.VerdictReject,
		})
	}

	wordCount := textnorm.WordCount(submissionText)
	if wordCount < g.policy.MinWordCount {
		failures = append(failures, models.GateFailure{
			Gate:   models.GateMinLength,
			Reason: fmt.Sprintf("submission has %d words, minimum is %d", wordCount, g.policy.MinWordCount),
			Forced: models.VerdictReject,
		})
	}

	if len(failures) > 0 {
		return failures
	}

	if breakdown.Spam > g.policy.SpamWarning {
		failures = append(failures, models.GateFailure{
			Gate:   models.GateSpamWarning,
			Reason: fmt.Sprintf("spam score %d exceeds warning level %d", breakdown.Spam, g.policy.SpamWarning),
			Forced: models.VerdictReview,
		})
	}

	if breakdown.Completeness < g.policy.CompletenessFloor {
		failures = append(failures, models.GateFailure{
			Gate:   models.GateCompletenessFloor,
			Reason: fmt.Sprintf("completeness score %d is below floor %d", breakdown.Completeness, g.policy.CompletenessFloor),
			Forced: models.VerdictReview,
		})
	}

	if vagueHits := g.lex.Count(lexicon.Vague, submissionText); vagueHits >= g.policy.VagueThreshold {
		failures = append(failures, models.GateFailure{
			Gate:   models.GateVagueLanguage,
			Reason: fmt.Sprintf("%d distinct vague-language patterns matched, threshold is %d", vagueHits, g.policy.VagueThreshold),
			Forced: models.VerdictReview,
		})
	}

	return failures
}
