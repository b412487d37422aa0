package models

// ScoringPolicy collects the weighting constants and thresholds that govern
// aggregation, gating, and verdict resolution. Extracted as named values so
// the scoring policy stays auditable and testable in isolation from the
// scorers themselves.
type ScoringPolicy struct {
	// Composite score weights. Spam is inverted before weighting.
	WeightRelevance    float64 `json:"weight_relevance"`
	WeightCompleteness float64 `json:"weight_completeness"`
	WeightClarity      float64 `json:"weight_clarity"`
	WeightSpam         float64 `json:"weight_spam"`

	// Verdict thresholds on the composite score.
	RejectBelow int `json:"reject_below"`
	ReviewBelow int `json:"review_below"`

	// Gate floors and ceilings.
	RelevanceFloor    int `json:"relevance_floor"`
	ClarityFloor      int `json:"clarity_floor"`
	SpamCeiling       int `json:"spam_ceiling"`
	MinWordCount      int `json:"min_word_count"`
	SpamWarning       int `json:"spam_warning"`
	CompletenessFloor int `json:"completeness_floor"`
	VagueThreshold    int `json:"vague_threshold"`
}

// DefaultPolicy returns the standard scoring policy.
func DefaultPolicy() ScoringPolicy {
	return ScoringPolicy{
		WeightRelevance:    0.30,
		WeightCompleteness: 0.30,
		WeightClarity:      0.25,
		WeightSpam:         0.15,

		RejectBelow: 50,
		ReviewBelow: 75,

		RelevanceFloor:    15,
		ClarityFloor:      10,
		SpamCeiling:       60,
		MinWordCount:      8,
		SpamWarning:       30,
		CompletenessFloor: 40,
		VagueThreshold:    3,
	}
}
