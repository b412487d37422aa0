package models

import (
	"encoding/json"
	"time"
)

// Verdict is the final categorical outcome of an evaluation.
type Verdict string

const (
	VerdictAccept Verdict = "ACCEPT"
	VerdictReview Verdict = "REVIEW"
	VerdictReject Verdict = "REJECT"
)

// Gate identifiers, in the order the gate evaluator runs them.
const (
	GateRelevanceFloor    = "RELEVANCE_FLOOR"
	GateClarityFloor      = "CLARITY_FLOOR"
	GateSpamCeiling       = "SPAM_CEILING"
	GateMinLength         = "MIN_LENGTH"
	GateSpamWarning       = "SPAM_WARNING"
	GateCompletenessFloor = "COMPLETENESS_FLOOR"
	GateVagueLanguage     = "VAGUE_LANGUAGE"
)

// ScoreBreakdown holds the four sub-scores, each in [0,100]. Spam is
// inverted semantically: higher means worse, the other three higher means
// better.
type ScoreBreakdown struct {
	Relevance    int `json:"relevance"`
	Completeness int `json:"completeness"`
	Clarity      int `json:"clarity"`
	Spam         int `json:"spam"`
}

// GateFailure records one hard rule that fired during gate evaluation.
type GateFailure struct {
	Gate   string  `json:"gate"`
	Reason string  `json:"reason"`
	Forced Verdict `json:"forced"` // REVIEW or REJECT
}

// Attestation is the immutable signed snapshot of one evaluation, intended
// for export and audit. Its signature is a fast non-cryptographic
// fingerprint over (task text + serialized submission + quality score).
// It provides tamper-evidence for the payload, not real integrity.
type Attestation struct {
	Version               string         `json:"version"`
	GeneratedAt           time.Time      `json:"generated_at"`
	TaskFingerprint       string         `json:"task_fingerprint"`
	SubmissionFingerprint string         `json:"submission_fingerprint"`
	QualityScore          int            `json:"quality_score"`
	Breakdown             ScoreBreakdown `json:"breakdown"`
	Verdict               Verdict        `json:"verdict"`
	GateFailures          []GateFailure  `json:"gate_failures"`
	ValidatorID           string         `json:"validator_id"`
	Signature             string         `json:"signature"`
}

// ValidationResult is the full output of one evaluation.
type ValidationResult struct {
	QualityScore int            `json:"quality_score"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	Verdict      Verdict        `json:"verdict"`
	GateFailures []GateFailure  `json:"gate_failures"`
	Attestation  *Attestation   `json:"attestation"`
}

// EvaluationRequest is the HTTP envelope for a single evaluation. Task may
// be a plain string or any JSON structure; submission is any JSON value.
// Malformed submission JSON never reaches the evaluator; it is rejected
// here at the shell.
type EvaluationRequest struct {
	Task       interface{}     `json:"task"`
	Submission json.RawMessage `json:"submission"`
}

// EvaluationResponse wraps a single evaluation result.
type EvaluationResponse struct {
	Success      bool              `json:"success"`
	EvaluationID string            `json:"evaluation_id,omitempty"`
	Result       *ValidationResult `json:"result,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// BatchEvaluationRequest evaluates several submissions against one task.
type BatchEvaluationRequest struct {
	Task        interface{}       `json:"task"`
	Submissions []json.RawMessage `json:"submissions"`
}

// BatchEvaluationResponse carries one result per submission, in order.
type BatchEvaluationResponse struct {
	Success      bool                `json:"success"`
	EvaluationID string              `json:"evaluation_id,omitempty"`
	Results      []*ValidationResult `json:"results,omitempty"`
	Error        string              `json:"error,omitempty"`
}
