package qbank

import (
	"reflect"
	"testing"
)

func TestParse_ValidBank(t *testing.T) {
	raw := []byte(`[
		{"category": "Rates/Curves", "type": "MCQ", "prompt": "Pick one", "choices": ["a", "b"], "answer": 1, "difficulty": 0.7},
		{"category": "FX", "type": "short", "prompt": "Define carry", "answer": "rate differential"}
	]`)
	items, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("parsed %d items, want 2", len(items))
	}
	if items[0].Category != "Rates/Curves" {
		t.Errorf("category = %q", items[0].Category)
	}
	if string(items[0].Answer) != "1" {
		t.Errorf("answer = %q, want raw JSON 1", items[0].Answer)
	}
	if items[1].Difficulty != nil {
		t.Errorf("difficulty = %v, want nil for omitted field", items[1].Difficulty)
	}
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParse_RejectsNonArray(t *testing.T) {
	if _, err := Parse([]byte(`{"category": "x"}`)); err == nil {
		t.Fatal("expected error for non-array payload")
	}
}

func TestParse_RejectsUnknownType(t *testing.T) {
	raw := []byte(`[{"category": "FX", "type": "essay", "prompt": "p", "answer": "a"}]`)
	if _, err := Parse(raw); err == nil {
		t.Fatal("expected error for unknown question type")
	}
}

func TestParse_RejectsMissingAnswer(t *testing.T) {
	raw := []byte(`[{"category": "FX", "type": "short", "prompt": "p"}]`)
	if _, err := Parse(raw); err == nil {
		t.Fatal("expected error for missing answer")
	}
}

func TestSplitCategoryPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Rates/Curves/Bootstrapping", []string{"Rates", "Curves", "Bootstrapping"}},
		{" Rates / Curves ", []string{"Rates", "Curves"}},
		{"FX", []string{"FX"}},
		{"//", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := SplitCategoryPath(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitCategoryPath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampDifficulty(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	tests := []struct {
		in   *float64
		want float64
	}{
		{nil, 0.5},
		{f(0.3), 0.3},
		{f(-1), 0},
		{f(2), 1},
	}
	for _, tt := range tests {
		if got := clampDifficulty(tt.in); got != tt.want {
			t.Errorf("clampDifficulty(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
