package econ

import (
	"testing"

	"drove-planner/internal/domain"
)

func TestEvaluateDay_EmptyTrucks(t *testing.T) {
	p := Params{TruckCapacity: 181, PricePerKg: 1.56, TripCostPerKm: 0.35, TruckCostPerWeek: 2000, DefaultMeanWeight: 110}
	got := EvaluateDay(nil, func(string) float64 { return 110 }, p)
	if got.TotalKg != 0 || got.RevenueEur != 0 || got.TripCostEur != 0 || got.TruckCostEur != 0 || got.NetProfitEur != 0 {
		t.Errorf("empty day should be all-zero, got %+v", got)
	}
}

func TestEvaluateDay_SingleTruckIdealWeight(t *testing.T) {
	trucks := []domain.TruckRoute{
		{TruckID: 1, Stops: []domain.RouteStop{{SiteID: "s1", Head: 100}}, DistanceKm: 50},
	}
	p := Params{TruckCapacity: 181, PricePerKg: 2.0, TripCostPerKm: 1.0, TruckCostPerWeek: 700, DefaultMeanWeight: 110}
	got := EvaluateDay(trucks, func(string) float64 { return 110 }, p)

	wantKg := 100 * 110.0
	if got.TotalKg != wantKg {
		t.Errorf("TotalKg = %v, want %v", got.TotalKg, wantKg)
	}
	// ideal weight -> zero penalty
	wantRevenue := round2(wantKg * 2.0)
	if got.RevenueEur != wantRevenue {
		t.Errorf("RevenueEur = %v, want %v", got.RevenueEur, wantRevenue)
	}
	wantTrip := round2(50 * 1.0 * (100.0 / 181.0))
	if got.TripCostEur != wantTrip {
		t.Errorf("TripCostEur = %v, want %v", got.TripCostEur, wantTrip)
	}
	wantTruckCost := round2(700.0 / 7)
	if got.TruckCostEur != wantTruckCost {
		t.Errorf("TruckCostEur = %v, want %v", got.TruckCostEur, wantTruckCost)
	}
	wantNet := round2(wantRevenue - wantTrip - wantTruckCost)
	if got.NetProfitEur != wantNet {
		t.Errorf("NetProfitEur = %v, want %v", got.NetProfitEur, wantNet)
	}
}

func TestEvaluateDay_ZeroHeadTruckNotCounted(t *testing.T) {
	trucks := []domain.TruckRoute{
		{TruckID: 1, Stops: nil, DistanceKm: 0},
	}
	p := Params{TruckCapacity: 181, PricePerKg: 2.0, TripCostPerKm: 1.0, TruckCostPerWeek: 700, DefaultMeanWeight: 110}
	got := EvaluateDay(trucks, func(string) float64 { return 110 }, p)
	if got.TruckCostEur != 0 {
		t.Errorf("TruckCostEur = %v, want 0 for a truck with no head", got.TruckCostEur)
	}
}

func TestEvaluateDay_ExtremeWeightPenaltyReducesRevenue(t *testing.T) {
	trucks := []domain.TruckRoute{
		{TruckID: 1, Stops: []domain.RouteStop{{SiteID: "s1", Head: 100}}, DistanceKm: 10},
	}
	p := Params{TruckCapacity: 181, PricePerKg: 2.0, TripCostPerKm: 1.0, TruckCostPerWeek: 700, DefaultMeanWeight: 110}
	got := EvaluateDay(trucks, func(string) float64 { return 60 }, p) // extreme underweight

	wantKg := 100 * 60.0
	wantRevenue := round2(wantKg * 2.0 * (1 - 0.20))
	if got.RevenueEur != wantRevenue {
		t.Errorf("RevenueEur = %v, want %v (extreme penalty applied)", got.RevenueEur, wantRevenue)
	}
}

func TestEvaluateDay_UsesDefaultMeanWeightWhenNoHead(t *testing.T) {
	p := Params{TruckCapacity: 181, PricePerKg: 2.0, TripCostPerKm: 1.0, TruckCostPerWeek: 700, DefaultMeanWeight: 110}
	got := EvaluateDay(nil, func(string) float64 { return 0 }, p)
	if got.RevenueEur != 0 {
		t.Errorf("RevenueEur = %v, want 0 with no head collected", got.RevenueEur)
	}
}
