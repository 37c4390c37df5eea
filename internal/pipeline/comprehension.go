package pipeline

import "math"

// Scorer rates how well the user comprehends a term they have started but
// not finished learning, in [0,1]. Swappable so a scheduler-aware model can
// replace the interval heuristic later.
type Scorer func(intervalDays float64, hasInterval bool) float64

// LogRatioScorer scales the review interval logarithmically against the
// interval considered fully known. A term never reviewed scores 0; a term
// at or past the known interval scores 1.
func LogRatioScorer(knownIntervalDays float64) Scorer {
	return func(intervalDays float64, hasInterval bool) float64 {
		if !hasInterval {
			return 0
		}
		if (intervalDays+1)/(knownIntervalDays+1) >= 1 {
			return 1
		}
		return math.Log(intervalDays+1) / math.Log(knownIntervalDays+1)
	}
}
