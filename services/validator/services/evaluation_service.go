package services

import (
	"strconv"
	"time"

	"github.com/clearcheck/qualgate/pkg/fingerprint"
	"github.com/clearcheck/qualgate/pkg/lexicon"
	"github.com/clearcheck/qualgate/pkg/textnorm"
	"github.com/clearcheck/qualgate/services/validator/models"
	"github.com/clearcheck/qualgate/services/validator/plugins"
)

// AttestationVersion tags every attestation record this evaluator emits.
const AttestationVersion = "qualgate/1"

// EvaluationService runs the full evaluation pipeline: normalize the
// submission, run the four scorers, aggregate the composite score, apply
// the gates, resolve the verdict, and build the signed attestation.
//
// The pipeline is deterministic and allocates only local data per call, so
// a single service is safe for concurrent use without locking. The only
// per-call variation is the attestation timestamp.
type EvaluationService struct {
	validatorID  string
	policy       models.ScoringPolicy
	relevance    plugins.Scorer
	completeness plugins.Scorer
	clarity      plugins.Scorer
	spam         plugins.Scorer
	gates        *plugins.GateEvaluator
	now          func() time.Time
}

// NewEvaluationService creates an evaluation service with the given
// validator identity, scoring policy, and lexicon.
func NewEvaluationService(validatorID string, policy models.ScoringPolicy, lex *lexicon.Matcher) *EvaluationService {
	return &EvaluationService{
		validatorID:  validatorID,
		policy:       policy,
		relevance:    plugins.NewRelevanceScorer(),
		completeness: plugins.NewCompletenessScorer(),
		clarity:      plugins.NewClarityScorer(lex),
		spam:         plugins.NewSpamScorer(lex),
		gates:        plugins.NewGateEvaluator(lex, policy),
		now:          time.Now,
	}
}

// Evaluate scores a submission against a task. It never fails: malformed
// submission JSON is rejected by the calling layer before this point, and
// every numeric operation inside the pipeline is total. Degenerate inputs
// (empty task, empty submission, non-string task) yield degenerate but
// well-defined scores.
func (es *EvaluationService) Evaluate(task, submission interface{}) *models.ValidationResult {
	taskText := textnorm.TaskText(task)
	submissionText := textnorm.Flatten(submission)
	serialized := textnorm.Serialize(submission)

	breakdown := plugins.ClampBreakdown(models.ScoreBreakdown{
		Relevance:    es.relevance.Score(taskText, submissionText),
		Completeness: es.completeness.Score(taskText, submissionText),
		Clarity:      es.clarity.Score(taskText, submissionText),
		Spam:         es.spam.Score(taskText, submissionText),
	})

	qualityScore := plugins.CompositeScore(breakdown, es.policy)
	gateFailures := es.gates.Evaluate(breakdown, submissionText)
	verdict := plugins.ResolveVerdict(qualityScore, gateFailures, es.policy)

	return &models.ValidationResult{
		QualityScore: qualityScore,
		Breakdown:    breakdown,
		Verdict:      verdict,
		GateFailures: gateFailures,
		Attestation:  es.buildAttestation(taskText, serialized, qualityScore, breakdown, verdict, gateFailures),
	}
}

// EvaluateBatch scores several submissions against one task, returning one
// result per submission in input order.
func (es *EvaluationService) EvaluateBatch(task interface{}, submissions []interface{}) []*models.ValidationResult {
	results := make([]*models.ValidationResult, 0, len(submissions))
	for _, submission := range submissions {
		results = append(results, es.Evaluate(task, submission))
	}
	return results
}

// buildAttestation packages the evaluation outcome with content
// fingerprints and the signature checksum.
func (es *EvaluationService) buildAttestation(
	taskText, serializedSubmission string,
	qualityScore int,
	breakdown models.ScoreBreakdown,
	verdict models.Verdict,
	gateFailures []models.GateFailure,
) *models.Attestation {
	duplicated := make([]models.GateFailure, len(gateFailures))
	copy(duplicated, gateFailures)

	return &models.Attestation{
		Version:               AttestationVersion,
		GeneratedAt:           es.now().UTC(),
		TaskFingerprint:       fingerprint.Fingerprint(taskText),
		SubmissionFingerprint: fingerprint.Fingerprint(serializedSubmission),
		QualityScore:          qualityScore,
		Breakdown:             breakdown,
		Verdict:               verdict,
		GateFailures:          duplicated,
		ValidatorID:           es.validatorID,
		Signature:             fingerprint.Fingerprint(taskText + serializedSubmission + strconv.Itoa(qualityScore)),
	}
}

// Policy returns the scoring policy in effect.
func (es *EvaluationService) Policy() models.ScoringPolicy {
	return es.policy
}

// ValidatorID returns the identity recorded in attestations.
func (es *EvaluationService) ValidatorID() string {
	return es.validatorID
}
