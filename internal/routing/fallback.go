package routing

import (
	"sort"

	"drove-planner/internal/domain"
	"drove-planner/internal/geo"
)

// Fallback is the deterministic greedy assignment used when Solver
// yields no feasible solution (spec.md §4.3, C3). It guarantees
// progress but not optimality, and preserves per-truck capacity, the
// daily facility cap and the S_max stop cap. A site appears at most
// once per truck, but a site whose head exceeds the current truck's
// remaining load is split across consecutive trucks of the same day.
type Fallback struct{}

// Solve sorts candidates by distance from the depot (ascending, ties
// broken by SiteID) and packs them into routes of at most maxStops
// stops, each capped at vehicleCapacity head and bounded in aggregate
// by dailyCap. Truck ids
// are 1-based and monotonically increasing in issuance order, giving
// byte-identical output for identical input (spec.md §8 property 8).
func (Fallback) Solve(depot geo.Point, candidates []Candidate, vehicleCapacity, dailyCap, maxStops int) []domain.TruckRoute {
	points := make([]geo.Point, 0, len(candidates)+1)
	points = append(points, depot)
	for _, c := range candidates {
		points = append(points, c.Point)
	}
	fromDepotM := geo.MatrixMeters(points)[0]

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	distIdx := make(map[string]int64, len(candidates))
	for i, c := range candidates {
		distIdx[c.SiteID] = fromDepotM[i+1]
	}
	sort.Slice(sorted, func(i, j int) bool {
		di := distIdx[sorted[i].SiteID]
		dj := distIdx[sorted[j].SiteID]
		if di == dj {
			return sorted[i].SiteID < sorted[j].SiteID
		}
		return di < dj
	})

	var routes []domain.TruckRoute
	nextTruckID := 1
	dayCumulative := 0

	var curStops []RouteStop
	var curPoints []geo.Point
	currentLoad := 0

	closeRoute := func() {
		if len(curStops) == 0 {
			return
		}
		stops := make([]domain.RouteStop, len(curStops))
		for i, s := range curStops {
			stops[i] = domain.RouteStop{SiteID: s.SiteID, Head: s.Head}
		}
		routes = append(routes, domain.TruckRoute{
			TruckID:    nextTruckID,
			Stops:      stops,
			DistanceKm: round2(geo.RouteDistanceKm(depot, curPoints)),
			FromSolver: false,
		})
		nextTruckID++
		curStops = nil
		curPoints = nil
		currentLoad = 0
	}

	for _, c := range sorted {
		remaining := c.Demand
		for remaining > 0 && dayCumulative < dailyCap {
			head := remaining
			if v := vehicleCapacity - currentLoad; v < head {
				head = v
			}
			if v := dailyCap - dayCumulative; v < head {
				head = v
			}
			if head <= 0 {
				break
			}
			curStops = append(curStops, RouteStop{SiteID: c.SiteID, Head: head})
			curPoints = append(curPoints, c.Point)
			currentLoad += head
			dayCumulative += head
			remaining -= head

			if currentLoad >= vehicleCapacity || dayCumulative >= dailyCap || len(curStops) >= maxStops {
				closeRoute()
			}
		}
		if dayCumulative >= dailyCap {
			break
		}
	}
	closeRoute()

	return routes
}

// RouteStop is the fallback's working representation of a pickup
// before it is converted into domain.RouteStop.
type RouteStop struct {
	SiteID string
	Head   int
}
