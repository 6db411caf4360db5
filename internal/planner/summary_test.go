package planner

import (
	"testing"

	"drove-planner/internal/domain"
)

func TestSummarise_Empty(t *testing.T) {
	s := Summarise(nil)
	if s.TotalDays != 0 || s.TotalRevenueEur != 0 || s.ProfitMarginPercent != 0 {
		t.Errorf("empty summary should be all-zero, got %+v", s)
	}
}

func TestSummarise_Aggregates(t *testing.T) {
	days := []domain.DayRecord{
		{
			RevenueEur: 1000, TripCostEur: 100, TruckCostEur: 50, NetProfitEur: 850, TotalDistanceKm: 40,
			Trucks: []domain.TruckRoute{{TruckID: 1, Stops: []domain.RouteStop{{SiteID: "s1", Head: 100}}}},
		},
		{
			RevenueEur: 2000, TripCostEur: 200, TruckCostEur: 100, NetProfitEur: 1700, TotalDistanceKm: 60,
			Trucks: []domain.TruckRoute{
				{TruckID: 1, Stops: []domain.RouteStop{{SiteID: "s2", Head: 150}}},
				{TruckID: 2, Stops: []domain.RouteStop{{SiteID: "s3", Head: 50}}},
			},
		},
	}
	s := Summarise(days)

	if s.TotalDays != 2 {
		t.Errorf("TotalDays = %v, want 2", s.TotalDays)
	}
	if s.TotalRevenueEur != 3000 {
		t.Errorf("TotalRevenueEur = %v, want 3000", s.TotalRevenueEur)
	}
	if s.TotalHeadCollected != 300 {
		t.Errorf("TotalHeadCollected = %v, want 300", s.TotalHeadCollected)
	}
	if s.MaxTrucksPerDay != 2 {
		t.Errorf("MaxTrucksPerDay = %v, want 2", s.MaxTrucksPerDay)
	}
	if s.AvgTrucksPerDay != 1.5 {
		t.Errorf("AvgTrucksPerDay = %v, want 1.5", s.AvgTrucksPerDay)
	}
	wantMargin := round2((850.0 + 1700.0) / 3000.0 * 100)
	if s.ProfitMarginPercent != wantMargin {
		t.Errorf("ProfitMarginPercent = %v, want %v", s.ProfitMarginPercent, wantMargin)
	}
	if s.TotalDistanceKm != 100 {
		t.Errorf("TotalDistanceKm = %v, want 100", s.TotalDistanceKm)
	}
}

func TestSummarise_ZeroRevenueMarginIsZero(t *testing.T) {
	days := []domain.DayRecord{{RevenueEur: 0, NetProfitEur: 0}}
	s := Summarise(days)
	if s.ProfitMarginPercent != 0 {
		t.Errorf("ProfitMarginPercent = %v, want 0 when revenue is zero", s.ProfitMarginPercent)
	}
}

func TestSummarise_ZeroHeadCostPerHeadIsZero(t *testing.T) {
	days := []domain.DayRecord{{RevenueEur: 0}}
	s := Summarise(days)
	if s.CostPerHeadEur != 0 || s.RevenuePerHeadEur != 0 {
		t.Errorf("per-head figures should be zero with no head collected, got cost=%v revenue=%v", s.CostPerHeadEur, s.RevenuePerHeadEur)
	}
}

func TestSummarise_Idempotent(t *testing.T) {
	days := []domain.DayRecord{
		{RevenueEur: 500, TripCostEur: 50, TruckCostEur: 30, NetProfitEur: 420, TotalDistanceKm: 20,
			Trucks: []domain.TruckRoute{{TruckID: 1, Stops: []domain.RouteStop{{SiteID: "s1", Head: 80}}}}},
	}
	s1 := Summarise(days)
	s2 := Summarise(days)
	if s1 != s2 {
		t.Errorf("Summarise should be idempotent: %+v != %+v", s1, s2)
	}
}
