package econ

import "testing"

func TestWeightPenalty_Ideal(t *testing.T) {
	cases := []float64{105, 110, 115}
	for _, w := range cases {
		if got := WeightPenalty(w); got != 0.00 {
			t.Errorf("WeightPenalty(%v) = %v, want 0.00", w, got)
		}
	}
}

func TestWeightPenalty_ModerateShoulders(t *testing.T) {
	cases := []float64{100, 102, 104.9, 115.1, 118, 120}
	for _, w := range cases {
		if got := WeightPenalty(w); got != 0.15 {
			t.Errorf("WeightPenalty(%v) = %v, want 0.15", w, got)
		}
	}
}

func TestWeightPenalty_Extreme(t *testing.T) {
	cases := []float64{99.9, 50, 120.1, 200}
	for _, w := range cases {
		if got := WeightPenalty(w); got != 0.20 {
			t.Errorf("WeightPenalty(%v) = %v, want 0.20", w, got)
		}
	}
}

func TestWeightPenalty_Degenerate(t *testing.T) {
	cases := []float64{0, -5}
	for _, w := range cases {
		if got := WeightPenalty(w); got != 0.00 {
			t.Errorf("WeightPenalty(%v) = %v, want 0.00", w, got)
		}
	}
}
