package mastery

// EmaAlpha is the smoothing factor for both activity rollup averages.
const EmaAlpha = 0.2

// Rollup holds the two moving averages tracked per category.
type Rollup struct {
	EmaActivity float64 // recency/frequency of engagement, in [0,1]
	EmaPerf     float64 // recent correctness rate, in [0,1]
}

// NextRollup advances the rollup for one answer event. Every answer counts
// as one unit of activity, so ema_activity trends toward 1 under sustained
// use. Both values stay in [0,1] by construction.
func NextRollup(r Rollup, correct bool) Rollup {
	outcome := 0.0
	if correct {
		outcome = 1.0
	}
	return Rollup{
		EmaActivity: (1-EmaAlpha)*r.EmaActivity + EmaAlpha*1.0,
		EmaPerf:     (1-EmaAlpha)*r.EmaPerf + EmaAlpha*outcome,
	}
}
