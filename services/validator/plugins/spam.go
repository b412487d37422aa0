package plugins

import (
	"github.com/clearcheck/qualgate/pkg/lexicon"
	"github.com/clearcheck/qualgate/pkg/textnorm"
)

const (
	spamTemplateWeight    = 20
	spamHeavyRepetition   = 40
	spamHeavyRatio        = 0.3
	spamMildRepetition    = 20
	spamMildRatio         = 0.5
	spamShortCannedBonus  = 25
	spamShortWordCount    = 10
	spamRatioMinWords     = 5
	spamShoutingWeight    = 15
	spamShoutingFraction  = 0.5
	spamShoutingMinLength = 20
)

// SpamScorer accumulates spam signal: template boilerplate, heavy
// repetition, short canned answers, and shouting. Zero means clean; the
// score is capped at 100 and never goes below zero since every signal is
// additive.
type SpamScorer struct {
	lex *lexicon.Matcher
}

// NewSpamScorer creates a spam scorer backed by the given lexicon.
func NewSpamScorer(lex *lexicon.Matcher) *SpamScorer {
	return &SpamScorer{lex: lex}
}

// Name returns the scorer name.
func (s *SpamScorer) Name() string {
	return "spam"
}

// Score sums the spam signals for the submission text.
func (s *SpamScorer) Score(_, submissionText string) int {
	score := 0

	templateHits := s.lex.Count(lexicon.Template, submissionText)
	score += spamTemplateWeight * templateHits

	wordCount := textnorm.WordCount(submissionText)
	if wordCount > spamRatioMinWords {
		ratio := textnorm.UniqueWordRatio(submissionText)
		if ratio < spamHeavyRatio {
			score += spamHeavyRepetition
		} else if ratio < spamMildRatio {
			score += spamMildRepetition
		}
	}

	// Short canned answers are highly suspect.
	if wordCount < spamShortWordCount && templateHits > 0 {
		score += spamShortCannedBonus
	}

	if len([]rune(submissionText)) > spamShoutingMinLength &&
		textnorm.UppercaseFraction(submissionText) > spamShoutingFraction {
		score += spamShoutingWeight
	}

	return clampScore(score)
}
