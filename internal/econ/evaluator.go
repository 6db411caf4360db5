package econ

import (
	"math"

	"drove-planner/internal/domain"
)

// Params are the economic knobs that apply to a single day's evaluation
// (spec.md §3 PlanRequest, §4.5).
type Params struct {
	TruckCapacity    int     // Q
	PricePerKg       float64 // p
	TripCostPerKm    float64 // Ct
	TruckCostPerWeek float64 // Cw
	DefaultMeanWeight float64 // w0, used when totalHead == 0
}

// DayEconomics holds the computed fields of a DayRecord (spec.md §4.5),
// already rounded to 2 decimals for emission.
type DayEconomics struct {
	TotalKg         float64
	RevenueEur      float64
	TotalDistanceKm float64
	TripCostEur     float64
	TruckCostEur    float64
	NetProfitEur    float64
}

// EvaluateDay applies the capacity/stop-cap-respecting routes produced by
// the routing layer against the start-of-day weight snapshot, and
// accounts revenue, trip cost, truck cost and net profit (spec.md §4.5).
// weightAt returns the start-of-day mean weight for a site id.
func EvaluateDay(trucks []domain.TruckRoute, weightAt func(siteID string) float64, p Params) DayEconomics {
	var totalHead int
	var totalKg float64
	for _, truck := range trucks {
		for _, stop := range truck.Stops {
			w := weightAt(stop.SiteID)
			totalKg += float64(stop.Head) * w
			totalHead += stop.Head
		}
	}

	meanWeight := p.DefaultMeanWeight
	if totalHead > 0 {
		meanWeight = totalKg / float64(totalHead)
	}

	penalty := WeightPenalty(meanWeight)
	revenue := totalKg * p.PricePerKg * (1 - penalty)

	var totalDistanceKm float64
	var tripCost float64
	vehiclesUsed := 0
	for _, truck := range trucks {
		head := truck.TotalHead()
		totalDistanceKm += truck.DistanceKm
		if head > 0 {
			vehiclesUsed++
		}
		if head > 0 && truck.DistanceKm > 0 && p.TruckCapacity > 0 {
			loadRatio := float64(head) / float64(p.TruckCapacity)
			tripCost += truck.DistanceKm * p.TripCostPerKm * loadRatio
		}
	}

	truckCost := float64(vehiclesUsed) * (p.TruckCostPerWeek / 7)
	netProfit := revenue - tripCost - truckCost

	return DayEconomics{
		TotalKg:         round2(totalKg),
		RevenueEur:      round2(revenue),
		TotalDistanceKm: round2(totalDistanceKm),
		TripCostEur:     round2(tripCost),
		TruckCostEur:    round2(truckCost),
		NetProfitEur:    round2(netProfit),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
