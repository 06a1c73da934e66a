package mastery

import (
	"math"
	"testing"
	"time"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestExpectedP_NeutralMatchup(t *testing.T) {
	// rating 50 vs difficulty 0.5: rating/100 = 0.5, d = 0 -> sigmoid(2.0).
	// rating 50 vs difficulty 0.75: d = 0.5, sigmoid(0) = 0.5 exactly.
	p := ExpectedP(50, 0.75)
	if !almostEqual(p, 0.5) {
		t.Errorf("ExpectedP(50, 0.75) = %f, want 0.5", p)
	}
}

func TestExpectedP_StrictlyInsideUnitInterval(t *testing.T) {
	for _, rating := range []float64{0, 25, 50, 75, 100} {
		for _, diff := range []float64{0, 0.25, 0.5, 0.75, 1} {
			p := ExpectedP(rating, diff)
			if p <= 0 || p >= 1 {
				t.Errorf("ExpectedP(%v, %v) = %f, want strictly in (0,1)", rating, diff, p)
			}
		}
	}
}

func TestExpectedP_MonotonicInRating(t *testing.T) {
	prev := ExpectedP(0, 0.5)
	for rating := 5.0; rating <= 100; rating += 5 {
		p := ExpectedP(rating, 0.5)
		if p <= prev {
			t.Errorf("ExpectedP not increasing at rating %v: %f <= %f", rating, p, prev)
		}
		prev = p
	}
}

func TestEvaluate_FastCorrectAnswerScenario(t *testing.T) {
	// rating 50, difficulty 0.5 -> d = 0, p = sigmoid(4*0.5) = sigmoid(2).
	// With difficulty 0.75 instead, p = sigmoid(0) = 0.5 exactly; fast
	// answer (10s): K = 6*(1+50/100) + 0.5 = 9.5, delta = 9.5*0.5 = 4.75.
	now := time.Now()
	u := Evaluate(50, 50, 0.75, true, 10, now)

	if !almostEqual(u.P, 0.5) {
		t.Errorf("P = %f, want 0.5", u.P)
	}
	if !almostEqual(u.Delta, 4.75) {
		t.Errorf("Delta = %f, want 4.75", u.Delta)
	}
	if !almostEqual(u.NewRating, 54.75) {
		t.Errorf("NewRating = %f, want 54.75", u.NewRating)
	}
	if !almostEqual(u.NewRatingVar, 48.5) {
		t.Errorf("NewRatingVar = %f, want 48.5", u.NewRatingVar)
	}
	if !u.ReviewedAt.Equal(now) {
		t.Errorf("ReviewedAt = %v, want %v", u.ReviewedAt, now)
	}
}

func TestEvaluate_DeltaSign(t *testing.T) {
	for _, rating := range []float64{0, 30, 50, 80, 100} {
		for _, diff := range []float64{0, 0.5, 1} {
			correct := Evaluate(rating, 50, diff, true, 30, time.Now())
			if correct.Delta < 0 {
				t.Errorf("correct answer at rating %v diff %v: delta %f < 0", rating, diff, correct.Delta)
			}
			wrong := Evaluate(rating, 50, diff, false, 30, time.Now())
			if wrong.Delta > 0 {
				t.Errorf("wrong answer at rating %v diff %v: delta %f > 0", rating, diff, wrong.Delta)
			}
		}
	}
}

func TestEvaluate_RatingClamped(t *testing.T) {
	rating, ratingVar := 99.0, 50.0
	for i := 0; i < 50; i++ {
		u := Evaluate(rating, ratingVar, 0.0, true, 10, time.Now())
		if u.NewRating < 0 || u.NewRating > 100 {
			t.Fatalf("rating out of range after update %d: %f", i, u.NewRating)
		}
		rating, ratingVar = u.NewRating, u.NewRatingVar
	}

	rating = 1.0
	for i := 0; i < 50; i++ {
		u := Evaluate(rating, ratingVar, 1.0, false, 90, time.Now())
		if u.NewRating < 0 || u.NewRating > 100 {
			t.Fatalf("rating out of range after update %d: %f", i, u.NewRating)
		}
		rating, ratingVar = u.NewRating, u.NewRatingVar
	}
}

func TestEvaluate_RatingVarDecaysToFloor(t *testing.T) {
	ratingVar := 50.0
	for i := 0; i < 200; i++ {
		u := Evaluate(50, ratingVar, 0.5, i%2 == 0, 30, time.Now())
		if u.NewRatingVar > ratingVar {
			t.Fatalf("rating_var increased at update %d: %f > %f", i, u.NewRatingVar, ratingVar)
		}
		if u.NewRatingVar < VarFloor {
			t.Fatalf("rating_var below floor at update %d: %f", i, u.NewRatingVar)
		}
		ratingVar = u.NewRatingVar
	}
	if !almostEqual(ratingVar, VarFloor) {
		t.Errorf("rating_var after 200 updates = %f, want floor %v", ratingVar, VarFloor)
	}
}

func TestSpeedAdjustment_Boundaries(t *testing.T) {
	tests := []struct {
		timeSec int
		want    float64
	}{
		{1, 0.5},
		{15, 0.5},
		{16, 0},
		{30, 0},
		{59, 0},
		{60, -0.5},
		{300, -0.5},
	}
	for _, tt := range tests {
		if got := speedAdjustment(tt.timeSec); !almostEqual(got, tt.want) {
			t.Errorf("speedAdjustment(%d) = %f, want %f", tt.timeSec, got, tt.want)
		}
	}
}
