// Package routing implements the per-day capacitated vehicle routing
// solve (C2, spec.md §4.2) and its deterministic greedy fallback
// (C3, spec.md §4.3). The routing solver itself is an external
// collaborator (spec.md §1, §6) — this package depends only on the
// narrow Solver interface below, with one concrete adapter backed by
// github.com/nextmv-io/sdk/route.
package routing

import (
	"context"
	"time"

	"drove-planner/internal/geo"
)

// FixedVehicleCostMeters is alpha in J = alpha*vehiclesUsed + totalTravelMetres
// (spec.md §4.2): the per-vehicle fixed cost, expressed in the same
// units as the transit callback (metres) so it dominates any plausible
// route-length delta. ~500km per saved vehicle, per spec.md §9's
// call to parameterise this "expected maximum travel per saved vehicle".
const FixedVehicleCostMeters = 5e5

// SolverTimeBudget is the per-day wall-clock budget of spec.md §4.2/§5.
const SolverTimeBudget = 15 * time.Second

// Candidate is one site eligible for today's routing (spec.md §4.6
// admissible set), reduced to what the solver needs.
type Candidate struct {
	SiteID string
	Point  geo.Point
	Demand int // available_head, floored to an integer (spec.md §4.6)
}

// Problem is the one-day capacitated VRP instance handed to the solver
// (spec.md §4.2): a fixed depot, integer demands, per-vehicle capacity,
// and a vehicle count fixed at V_min (no iterative growth, per spec.md
// §4.2 "Fleet sizing").
type Problem struct {
	Depot           geo.Point
	Candidates      []Candidate
	VehicleCapacity int
	NumVehicles     int
}

// Solution is the solver's routing answer: for each vehicle, the
// ordered indices into Problem.Candidates it visits (depot implied at
// both ends). An empty/nil slice for a vehicle means it is unused.
type Solution struct {
	Routes [][]int
}

// Solver is Collaborator A of spec.md §6, narrowed to a single
// Go-idiomatic call: build the model, run first-solution + guided
// local search within the given deadline, and return a solution (or
// nil to signal SolverInfeasible/SolverTimeout — spec.md §7 — which the
// caller recovers from locally via the greedy fallback, never as an
// error surfaced to callers).
type Solver interface {
	Solve(ctx context.Context, p Problem) (*Solution, error)
}
