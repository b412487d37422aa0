package plugins

import (
	"math"
	"strings"

	"github.com/clearcheck/qualgate/pkg/textnorm"
)

// Task sentence fragments at or under this trimmed length are noise, not
// aspects.
const aspectMinSentenceLen = 10

// CompletenessScorer estimates how thoroughly a submission covers the task.
// Short submissions get a tiered floor; longer ones earn a coverage bonus
// scaled by the number of task aspects (approximated by sentence count)
// plus a vocabulary-richness bonus.
type CompletenessScorer struct{}

// NewCompletenessScorer creates a completeness scorer.
func NewCompletenessScorer() *CompletenessScorer {
	return &CompletenessScorer{}
}

// Name returns the scorer name.
func (s *CompletenessScorer) Name() string {
	return "completeness"
}

// Score applies the tiered formula. The tier boundaries produce a
// discontinuous curve at word count 50; that shape is the documented
// contract, not an accident to smooth over.
func (s *CompletenessScorer) Score(taskText, submissionText string) int {
	n := textnorm.WordCount(submissionText)

	switch {
	case n < 10:
		return clampScore(minInt(15, n*2))
	case n < 25:
		return clampScore(minInt(35, 15+n))
	case n < 50:
		return clampScore(int(math.Round(math.Min(55, 30+float64(n)/2))))
	}

	aspects := countAspects(taskText)
	coverageBonus := math.Min(30, float64(n)/float64(aspects*20)*30)
	richness := textnorm.UniqueWordRatio(submissionText) * 30
	return clampScore(int(math.Round(math.Min(100, 40+coverageBonus+richness))))
}

// countAspects approximates the number of distinct task aspects by
// splitting the task into sentences and keeping substantive ones.
func countAspects(taskText string) int {
	segments := strings.FieldsFunc(taskText, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	aspects := 0
	for _, segment := range segments {
		if len(strings.TrimSpace(segment)) > aspectMinSentenceLen {
			aspects++
		}
	}
	if aspects == 0 {
		return 1
	}
	return aspects
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
