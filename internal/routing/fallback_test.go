package routing

import (
	"testing"

	"drove-planner/internal/geo"
)

func TestFallback_SingleSiteUnderCapacity(t *testing.T) {
	depot := geo.Point{Lat: 0, Lng: 0}
	candidates := []Candidate{
		{SiteID: "s1", Point: geo.Point{Lat: 0.1, Lng: 0.1}, Demand: 50},
	}
	routes := Fallback{}.Solve(depot, candidates, 181, 1000, 3)
	if len(routes) != 1 {
		t.Fatalf("routes = %d, want 1", len(routes))
	}
	if routes[0].TruckID != 1 {
		t.Errorf("TruckID = %v, want 1", routes[0].TruckID)
	}
	if got := routes[0].TotalHead(); got != 50 {
		t.Errorf("TotalHead = %v, want 50", got)
	}
}

func TestFallback_ClosesOnVehicleCapacity(t *testing.T) {
	depot := geo.Point{Lat: 0, Lng: 0}
	candidates := []Candidate{
		{SiteID: "s1", Point: geo.Point{Lat: 0.1, Lng: 0}, Demand: 100},
		{SiteID: "s2", Point: geo.Point{Lat: 0.2, Lng: 0}, Demand: 100},
	}
	routes := Fallback{}.Solve(depot, candidates, 150, 1000, 3)
	if len(routes) != 2 {
		t.Fatalf("routes = %d, want 2 (150-capacity truck can't hold 200 head)", len(routes))
	}
	if routes[0].TotalHead() != 150 {
		t.Errorf("first truck head = %v, want 150", routes[0].TotalHead())
	}
	if routes[1].TotalHead() != 50 {
		t.Errorf("second truck head = %v, want 50 (remainder)", routes[1].TotalHead())
	}
}

func TestFallback_RespectsDailyCap(t *testing.T) {
	depot := geo.Point{Lat: 0, Lng: 0}
	candidates := []Candidate{
		{SiteID: "s1", Point: geo.Point{Lat: 0.1, Lng: 0}, Demand: 500},
	}
	routes := Fallback{}.Solve(depot, candidates, 181, 120, 3)
	total := 0
	for _, r := range routes {
		total += r.TotalHead()
	}
	if total != 120 {
		t.Errorf("total head collected = %v, want 120 (daily cap)", total)
	}
}

func TestFallback_RespectsMaxStopsPerRoute(t *testing.T) {
	depot := geo.Point{Lat: 0, Lng: 0}
	candidates := []Candidate{
		{SiteID: "s1", Point: geo.Point{Lat: 0.1, Lng: 0}, Demand: 10},
		{SiteID: "s2", Point: geo.Point{Lat: 0.2, Lng: 0}, Demand: 10},
		{SiteID: "s3", Point: geo.Point{Lat: 0.3, Lng: 0}, Demand: 10},
		{SiteID: "s4", Point: geo.Point{Lat: 0.4, Lng: 0}, Demand: 10},
	}
	routes := Fallback{}.Solve(depot, candidates, 181, 1000, 3)
	if len(routes) != 2 {
		t.Fatalf("routes = %d, want 2 (4 sites, max 3 stops/route)", len(routes))
	}
	if len(routes[0].Stops) != 3 {
		t.Errorf("first route stops = %d, want 3", len(routes[0].Stops))
	}
	if len(routes[1].Stops) != 1 {
		t.Errorf("second route stops = %d, want 1", len(routes[1].Stops))
	}
}

func TestFallback_OrdersByDistanceAscending(t *testing.T) {
	depot := geo.Point{Lat: 0, Lng: 0}
	candidates := []Candidate{
		{SiteID: "far", Point: geo.Point{Lat: 5, Lng: 0}, Demand: 10},
		{SiteID: "near", Point: geo.Point{Lat: 1, Lng: 0}, Demand: 10},
	}
	routes := Fallback{}.Solve(depot, candidates, 181, 1000, 3)
	if len(routes) != 1 || len(routes[0].Stops) != 2 {
		t.Fatalf("expected single route with 2 stops")
	}
	if routes[0].Stops[0].SiteID != "near" {
		t.Errorf("first stop = %v, want 'near' (closer to depot)", routes[0].Stops[0].SiteID)
	}
}

func TestFallback_Deterministic(t *testing.T) {
	depot := geo.Point{Lat: 0, Lng: 0}
	candidates := []Candidate{
		{SiteID: "a", Point: geo.Point{Lat: 1, Lng: 0}, Demand: 30},
		{SiteID: "b", Point: geo.Point{Lat: 1, Lng: 0}, Demand: 40}, // tie distance with a
	}
	r1 := Fallback{}.Solve(depot, candidates, 181, 1000, 3)
	r2 := Fallback{}.Solve(depot, candidates, 181, 1000, 3)
	if len(r1) != len(r2) || r1[0].Stops[0].SiteID != r2[0].Stops[0].SiteID {
		t.Error("Fallback.Solve should be deterministic for identical input")
	}
	// tie-break is by SiteID ascending
	if r1[0].Stops[0].SiteID != "a" {
		t.Errorf("tie-break order = %v, want 'a' first (lexicographic)", r1[0].Stops[0].SiteID)
	}
}

func TestFallback_EmptyCandidates(t *testing.T) {
	depot := geo.Point{Lat: 0, Lng: 0}
	routes := Fallback{}.Solve(depot, nil, 181, 1000, 3)
	if len(routes) != 0 {
		t.Errorf("routes = %d, want 0 for empty candidate set", len(routes))
	}
}
