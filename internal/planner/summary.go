package planner

import (
	"math"

	"drove-planner/internal/domain"
)

// Summarise rolls up a horizon's emitted days into the Summary block
// (spec.md §4.7, C7). It is idempotent: applying it again to the same
// days reproduces the same Summary (spec.md §8 property 9).
func Summarise(days []domain.DayRecord) domain.Summary {
	var s domain.Summary
	s.TotalDays = len(days)

	maxTrucks := 0
	totalTrucks := 0
	for _, d := range days {
		s.TotalRevenueEur += d.RevenueEur
		s.TotalTripCostEur += d.TripCostEur
		s.TotalTruckCostEur += d.TruckCostEur
		s.TotalNetProfitEur += d.NetProfitEur
		s.TotalDistanceKm += d.TotalDistanceKm

		used := 0
		for _, truck := range d.Trucks {
			s.TotalHeadCollected += truck.TotalHead()
			if truck.TotalHead() > 0 {
				used++
			}
		}
		totalTrucks += used
		if used > maxTrucks {
			maxTrucks = used
		}
	}
	s.MaxTrucksPerDay = maxTrucks
	if len(days) > 0 {
		s.AvgTrucksPerDay = round2(float64(totalTrucks) / float64(len(days)))
	}

	if s.TotalRevenueEur != 0 {
		s.ProfitMarginPercent = round2(s.TotalNetProfitEur / s.TotalRevenueEur * 100)
	}
	if s.TotalHeadCollected > 0 {
		s.CostPerHeadEur = round2((s.TotalTripCostEur + s.TotalTruckCostEur) / float64(s.TotalHeadCollected))
		s.RevenuePerHeadEur = round2(s.TotalRevenueEur / float64(s.TotalHeadCollected))
	}

	s.TotalRevenueEur = round2(s.TotalRevenueEur)
	s.TotalTripCostEur = round2(s.TotalTripCostEur)
	s.TotalTruckCostEur = round2(s.TotalTruckCostEur)
	s.TotalNetProfitEur = round2(s.TotalNetProfitEur)
	s.TotalDistanceKm = round2(s.TotalDistanceKm)

	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
