package plugins

import (
	"math"

	"github.com/clearcheck/qualgate/pkg/textnorm"
)

// Keywords shorter than this many runes carry no topical signal and are
// ignored by the relevance scorer.
const relevanceMinWordLen = 3

// Below this overlap the scorer drops into a steep penalty zone so that
// near-zero relevance submissions land near zero.
const relevancePenaltyThreshold = 0.05

// Coverage multiplier above the penalty zone. Deliberately over 100% so
// partial keyword coverage is rewarded; the result is capped at 100.
const relevanceBoostFactor = 120.0

// RelevanceScorer measures keyword overlap between the task description and
// the submission.
type RelevanceScorer struct{}

// NewRelevanceScorer creates a relevance scorer.
func NewRelevanceScorer() *RelevanceScorer {
	return &RelevanceScorer{}
}

// Name returns the scorer name.
func (s *RelevanceScorer) Name() string {
	return "relevance"
}

// Score computes the share of qualifying submission words found in the task
// keyword set. Submission words are not deduplicated, so repeating a task
// keyword counts each time.
func (s *RelevanceScorer) Score(taskText, submissionText string) int {
	taskWords := textnorm.KeywordSet(taskText, relevanceMinWordLen)
	submissionWords := textnorm.Keywords(submissionText, relevanceMinWordLen)

	if len(taskWords) == 0 || len(submissionWords) == 0 {
		return 0
	}

	hits := 0
	for _, word := range submissionWords {
		if _, ok := taskWords[word]; ok {
			hits++
		}
	}

	overlap := float64(hits) / float64(len(taskWords))
	if overlap < relevancePenaltyThreshold {
		return clampScore(int(math.Round(overlap * 100)))
	}
	return clampScore(int(math.Round(overlap * relevanceBoostFactor)))
}
