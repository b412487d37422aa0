package plugins

import (
	"github.com/clearcheck/qualgate/pkg/lexicon"
	"github.com/clearcheck/qualgate/pkg/textnorm"
)

const (
	clarityBase            = 70
	clarityMinWords        = 5
	clarityVaguePenalty    = 12
	clarityFillerPenalty   = 8
	clarityRichBonus       = 15
	clarityRichThreshold   = 0.7
	clarityRepetitivePen   = 20
	clarityRepetitiveRatio = 0.4
	clarityShortPenalty    = 25
	clarityShortWordCount  = 15
)

// ClarityScorer penalizes hedging language and filler phrases and rewards
// varied vocabulary. Pattern matching counts distinct matching patterns,
// not occurrences.
type ClarityScorer struct {
	lex *lexicon.Matcher
}

// NewClarityScorer creates a clarity scorer backed by the given lexicon.
func NewClarityScorer(lex *lexicon.Matcher) *ClarityScorer {
	return &ClarityScorer{lex: lex}
}

// Name returns the scorer name.
func (s *ClarityScorer) Name() string {
	return "clarity"
}

// Score starts from a base of 70 and adjusts for vague language, filler
// phrases, vocabulary ratio, and very short submissions.
func (s *ClarityScorer) Score(_, submissionText string) int {
	wordCount := textnorm.WordCount(submissionText)
	if wordCount < clarityMinWords {
		return 0
	}

	score := clarityBase
	score -= clarityVaguePenalty * s.lex.Count(lexicon.Vague, submissionText)
	score -= clarityFillerPenalty * s.lex.Count(lexicon.Filler, submissionText)

	ratio := textnorm.UniqueWordRatio(submissionText)
	if ratio > clarityRichThreshold {
		score += clarityRichBonus
	} else if ratio < clarityRepetitiveRatio {
		score -= clarityRepetitivePen
	}

	if wordCount < clarityShortWordCount {
		score -= clarityShortPenalty
	}

	return clampScore(score)
}
