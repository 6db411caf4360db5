// Package econ implements the economic evaluator: the weight-penalty
// curve (C4) and the per-day profit/loss accounting (C5) of spec.md §4.4-4.5.
package econ

// WeightPenalty maps a delivered mean weight (kg) to the unitless
// revenue-reduction factor of spec.md §4.4. Region boundaries:
//
//	ideal     [105,115]        -> 0.00
//	moderate  [100,105) (115,120] -> 0.15
//	extreme   <100 or >120     -> 0.20
//	degenerate <=0             -> 0.00
func WeightPenalty(meanWeightKg float64) float64 {
	switch {
	case meanWeightKg <= 0:
		return 0.00
	case meanWeightKg >= 105 && meanWeightKg <= 115:
		return 0.00
	case meanWeightKg < 100 || meanWeightKg > 120:
		return 0.20
	default:
		return 0.15
	}
}
