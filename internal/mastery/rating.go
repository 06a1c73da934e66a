package mastery

import (
	"math"
	"time"
)

const (
	// SigmoidSlope is the steepness of the expected-success logistic curve.
	SigmoidSlope = 4.0

	// BaseLearnRate is the base step size of a rating update.
	BaseLearnRate = 6.0

	// VarDecay shrinks rating_var on every update, modeling growing
	// confidence over repeated exposure.
	VarDecay = 0.97

	// VarFloor is the minimum rating_var; updates never fully freeze.
	VarFloor = 5.0

	// FastAnswerSecs and SlowAnswerSecs bound the latency adjustment:
	// answers at or under the fast bound earn +SpeedAdjust on the
	// learning rate, answers at or over the slow bound earn -SpeedAdjust.
	FastAnswerSecs = 15
	SlowAnswerSecs = 60
	SpeedAdjust    = 0.5
)

// Update is the result of evaluating one answer against a category's
// mastery state. Delta has already been applied to NewRating.
type Update struct {
	P            float64 // expected success probability before the answer
	Delta        float64 // signed rating change
	NewRating    float64 // clamped to [0,100]
	NewRatingVar float64 // decayed, floored at VarFloor
	ReviewedAt   time.Time
}

// ExpectedP returns the probability that a learner at the given rating
// answers a question of the given difficulty correctly. Difficulty 0.5 is
// neutral; the mapping d = 2*difficulty-1 centers it against rating/100.
// The result is strictly inside (0,1).
func ExpectedP(rating, difficulty float64) float64 {
	d := 2*difficulty - 1
	return sigmoid(SigmoidSlope * (rating/100 - d))
}

// Evaluate computes the rating update for one answer. It is pure: callers
// persist the returned values (together with the activity rollup and the
// answer audit row) in a single transaction.
func Evaluate(rating, ratingVar, difficulty float64, correct bool, timeSec int, now time.Time) Update {
	p := ExpectedP(rating, difficulty)

	k := BaseLearnRate*(1+ratingVar/100) + speedAdjustment(timeSec)

	outcome := 0.0
	if correct {
		outcome = 1.0
	}
	delta := k * (outcome - p)

	return Update{
		P:            p,
		Delta:        delta,
		NewRating:    clamp(rating+delta, 0, 100),
		NewRatingVar: math.Max(VarFloor, ratingVar*VarDecay),
		ReviewedAt:   now,
	}
}

// speedAdjustment rewards fast, confident answers and penalizes slow ones.
func speedAdjustment(timeSec int) float64 {
	switch {
	case timeSec <= FastAnswerSecs:
		return SpeedAdjust
	case timeSec >= SlowAnswerSecs:
		return -SpeedAdjust
	default:
		return 0
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
