package routing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nextmv-io/sdk/route"
	"github.com/nextmv-io/sdk/store"

	"drove-planner/internal/geo"
)

// NextmvSolver backs Collaborator A (spec.md §6) with the capacitated
// VRP router from github.com/nextmv-io/sdk/route: path-cheapest-arc
// construction followed by the SDK's guided-local-search-style diagram
// expansion, with a per-vehicle fixed cost that dominates the distance
// term so the search is biased toward fewer trucks first (spec.md §4.2).
type NextmvSolver struct{}

// vehicleData and fleetData implement route.VehicleUpdater and
// route.PlanUpdater the same way the pack's bakery-delivery-router
// example tracks a custom fleet objective: fleetValue here is exactly
// J = FixedVehicleCostMeters*vehiclesUsed + totalTravelMetres, the
// objective spec.md §4.2 asks the collaborator to minimise.
type vehicleData struct{}

func (d vehicleData) Update(s route.PartialVehicle) (route.VehicleUpdater, int, bool) {
	return d, 0, false
}

type fleetData struct {
	usedVehicles map[string]bool
	fleetValue   int
}

func (f fleetData) Update(p route.PartialPlan, vehicles []route.PartialVehicle) (route.PlanUpdater, int, bool) {
	used := make(map[string]bool, len(f.usedVehicles))
	for k, v := range f.usedVehicles {
		used[k] = v
	}
	value := 0
	for _, v := range vehicles {
		r := v.Route()
		if len(r) > 2 { // more than just start/end means the vehicle is in use
			used[v.ID()] = true
		}
		value += v.Value()
	}
	vehicleCount := 0
	for _, inUse := range used {
		if inUse {
			vehicleCount++
		}
	}
	f.usedVehicles = used
	f.fleetValue = value + vehicleCount*int(FixedVehicleCostMeters)
	return f, f.fleetValue, true
}

// Solve implements Solver.
func (NextmvSolver) Solve(ctx context.Context, p Problem) (*Solution, error) {
	if len(p.Candidates) == 0 || p.NumVehicles <= 0 {
		return nil, nil
	}

	points := make([]geo.Point, 0, len(p.Candidates)+1)
	points = append(points, p.Depot)
	stops := make([]route.Stop, 0, len(p.Candidates))
	demand := make([]int, 0, len(p.Candidates))
	for _, c := range p.Candidates {
		points = append(points, c.Point)
		stops = append(stops, route.Stop{
			ID:       c.SiteID,
			Position: route.Position{Lon: c.Point.Lng, Lat: c.Point.Lat},
		})
		demand = append(demand, c.Demand)
	}

	vehicles := make([]string, p.NumVehicles)
	starts := make([]route.Position, p.NumVehicles)
	ends := make([]route.Position, p.NumVehicles)
	capacities := make([]int, p.NumVehicles)
	depotPos := route.Position{Lon: p.Depot.Lng, Lat: p.Depot.Lat}
	for i := range vehicles {
		vehicles[i] = "truck-" + strconv.Itoa(i)
		starts[i] = depotPos
		ends[i] = depotPos
		capacities[i] = p.VehicleCapacity
	}

	v := vehicleData{}
	f := fleetData{usedVehicles: make(map[string]bool, p.NumVehicles)}

	router, err := route.NewRouter(
		stops,
		vehicles,
		route.Starts(starts),
		route.Ends(ends),
		route.Capacity(demand, capacities),
		route.Update(v, f),
	)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	opt := store.DefaultOptions()
	opt.Duration = SolverTimeBudget
	if deadline, ok := ctx.Deadline(); ok {
		opt.Duration = minDuration(opt.Duration, timeUntil(deadline))
	}

	solver, err := router.Solver(opt)
	if err != nil {
		return nil, fmt.Errorf("build solver: %w", err)
	}

	last := solver.Last(ctx)
	if last == nil {
		return nil, nil
	}

	output := router.Format(opt, "solution", last)
	if len(output.Vehicles) == 0 {
		return nil, nil
	}

	idx := make(map[string]int, len(p.Candidates))
	for i, c := range p.Candidates {
		idx[c.SiteID] = i
	}

	sol := &Solution{Routes: make([][]int, len(output.Vehicles))}
	for vi, veh := range output.Vehicles {
		var indices []int
		for _, st := range veh.Route {
			if i, ok := idx[st.ID]; ok {
				indices = append(indices, i)
			}
		}
		sol.Routes[vi] = indices
	}
	return sol, nil
}
