package mastery

import "testing"

func TestNextRollup_InitialCorrectAnswer(t *testing.T) {
	r := NextRollup(Rollup{EmaActivity: 0.0, EmaPerf: 0.5}, true)
	if !almostEqual(r.EmaActivity, 0.2) {
		t.Errorf("EmaActivity = %f, want 0.2", r.EmaActivity)
	}
	// 0.8*0.5 + 0.2*1 = 0.6
	if !almostEqual(r.EmaPerf, 0.6) {
		t.Errorf("EmaPerf = %f, want 0.6", r.EmaPerf)
	}
}

func TestNextRollup_WrongAnswerDragsPerfDown(t *testing.T) {
	r := NextRollup(Rollup{EmaActivity: 0.5, EmaPerf: 0.5}, false)
	if !almostEqual(r.EmaPerf, 0.4) {
		t.Errorf("EmaPerf = %f, want 0.4", r.EmaPerf)
	}
	if !almostEqual(r.EmaActivity, 0.6) {
		t.Errorf("EmaActivity = %f, want 0.6", r.EmaActivity)
	}
}

func TestNextRollup_ActivityTrendsTowardOne(t *testing.T) {
	r := Rollup{}
	for i := 0; i < 100; i++ {
		r = NextRollup(r, i%3 == 0)
		if r.EmaActivity < 0 || r.EmaActivity > 1 {
			t.Fatalf("EmaActivity out of range at step %d: %f", i, r.EmaActivity)
		}
		if r.EmaPerf < 0 || r.EmaPerf > 1 {
			t.Fatalf("EmaPerf out of range at step %d: %f", i, r.EmaPerf)
		}
	}
	if r.EmaActivity < 0.99 {
		t.Errorf("EmaActivity after sustained use = %f, want near 1", r.EmaActivity)
	}
}
