package plugins

// Scorer is the interface every sub-score detector implements. Scorers are
// pure functions of normalized text and always return an integer in
// [0,100]; a scorer may exceed the range internally but must clamp before
// returning.
type Scorer interface {
	Name() string
	Score(taskText, submissionText string) int
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
