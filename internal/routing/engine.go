package routing

import (
	"context"
	"math"
	"time"

	"drove-planner/internal/domain"
	"drove-planner/internal/geo"
)

// Engine orchestrates C2 (Solve) with its C3 (Fallback) recovery path,
// per spec.md §4.2/§4.3/§4.6 step 5.
type Engine struct {
	Solver   Solver
	Fallback Fallback
}

// NewEngine wires a concrete Solver collaborator (e.g. NextmvSolver) to
// the always-available greedy fallback.
func NewEngine(solver Solver) Engine {
	return Engine{Solver: solver, Fallback: Fallback{}}
}

// PlanDay solves one day's capacitated VRP instance and returns the
// extracted truck routes. An empty candidate set returns (nil, nil) —
// the caller (planner) emits a zero-activity day. A context cancellation
// (spec.md §5) propagates as an error; solver infeasibility/timeout
// never does — it recovers locally via Fallback (spec.md §7).
//
// budget is this day's share of solver wall-clock time. The caller
// (planner) distributes any global request deadline pro-rata across
// the days remaining in the horizon (spec.md §5); budget is capped at
// SolverTimeBudget regardless, since that is the per-day ceiling even
// when no global deadline applies. A zero or negative budget falls
// back to SolverTimeBudget.
func (e Engine) PlanDay(ctx context.Context, depot geo.Point, candidates []Candidate, vehicleCapacity, dailyCap int, budget time.Duration) ([]domain.TruckRoute, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	if budget <= 0 || budget > SolverTimeBudget {
		budget = SolverTimeBudget
	}

	vMin := minVehicles(candidates, vehicleCapacity, dailyCap)
	problem := Problem{
		Depot:           depot,
		Candidates:      candidates,
		VehicleCapacity: vehicleCapacity,
		NumVehicles:     vMin,
	}

	dayCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	sol, err := e.Solver.Solve(dayCtx, problem)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		sol = nil // SolverInfeasible/SolverTimeout recover locally (spec.md §7)
	}

	if sol == nil {
		return e.Fallback.Solve(depot, candidates, vehicleCapacity, dailyCap, domain.MaxStopsPerRoute), nil
	}
	return extractRoutes(depot, candidates, sol, vehicleCapacity, dailyCap, domain.MaxStopsPerRoute), nil
}

// minVehicles computes V_min = max(1, ceil(min(sum(d_i), D) / Q))
// (spec.md §4.2 "Fleet sizing").
func minVehicles(candidates []Candidate, vehicleCapacity, dailyCap int) int {
	total := 0
	for _, c := range candidates {
		total += c.Demand
	}
	if dailyCap < total {
		total = dailyCap
	}
	if vehicleCapacity <= 0 {
		return 1
	}
	v := int(math.Ceil(float64(total) / float64(vehicleCapacity)))
	if v < 1 {
		v = 1
	}
	return v
}

// extractRoutes walks each vehicle's solved node sequence and assigns
// heads under the running capacity/day-cap/stop-cap constraints
// (spec.md §4.2 "Result extraction"). Nodes beyond S_max stops are
// skipped as pickups but still contribute to distance accounting.
func extractRoutes(depot geo.Point, candidates []Candidate, sol *Solution, vehicleCapacity, dailyCap, maxStops int) []domain.TruckRoute {
	dayCumulative := 0
	var routes []domain.TruckRoute
	truckID := 0

	for _, nodeIdxs := range sol.Routes {
		truckID++
		if len(nodeIdxs) == 0 {
			continue
		}

		currentLoad := 0
		emitted := 0
		var stops []domain.RouteStop
		points := make([]geo.Point, 0, len(nodeIdxs))

		for _, ni := range nodeIdxs {
			c := candidates[ni]
			points = append(points, c.Point)

			if emitted >= maxStops {
				continue // pass-through: counted for distance, not for pickup
			}
			head := c.Demand
			if v := vehicleCapacity - currentLoad; v < head {
				head = v
			}
			if v := dailyCap - dayCumulative; v < head {
				head = v
			}
			if head <= 0 {
				continue
			}
			stops = append(stops, domain.RouteStop{SiteID: c.SiteID, Head: head})
			currentLoad += head
			dayCumulative += head
			emitted++
		}

		if len(stops) == 0 {
			continue
		}
		routes = append(routes, domain.TruckRoute{
			TruckID:    truckID,
			Stops:      stops,
			DistanceKm: round2(geo.RouteDistanceKm(depot, points)),
			FromSolver: true,
		})
	}

	return routes
}

// round2 rounds a distance to 2 decimals at the point each TruckRoute
// is emitted (spec.md §4.5: "Distance is rounded to 2 decimals per
// truck and per day").
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
