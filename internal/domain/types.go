// Package domain holds the value types shared by the planning core:
// sites, the facility, requests, and the day-by-day plan they produce.
// Nothing here owns behavior beyond simple derivations — the state
// machine lives in internal/planner, routing in internal/routing,
// economics in internal/econ.
package domain

// Location is a lat/lng pair in decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Site is a producer location: immutable identity plus its starting
// inventory. MaxCapacity is informational (pen/yard capacity); the
// planner only tracks AvailableHead as the depleting quantity.
type Site struct {
	ID                 string
	Name                string
	Location            Location
	MaxCapacity         int
	AvailableHead       int
	InitialMeanWeightKg float64 // 0 means "use request default w0"
}

// Facility is the single depot: origin and terminus of every route.
type Facility struct {
	ID                  string
	Name                string
	Location            Location
	DailyThroughputHead int
	MaxCapacity         int
}

// PlanRequest is the fleet-agnostic input to a planning run. Field
// names mirror spec.md §3/§6; defaults and validation live in
// internal/config.
type PlanRequest struct {
	Sites             []Site
	Facility          Facility
	Horizon           int     // H, days
	DaysPerWeek       int     // W
	TruckCapacity     int     // Q, head
	DefaultMeanWeight float64 // w0, kg
	PricePerKg        float64 // p
	TruckCostPerWeek  float64 // Cw
	FuelCostPerKm     float64 // Cf
	TripCostPerKm     float64 // Ct, 0 means "use FuelCostPerKm"
	WeeklyWeightGain  float64 // delta-w, kg/head/week
	WeeklyDeclineRate float64 // d, advisory per §9, applied per SPEC_FULL open-question resolution
	StartDate         string  // ISO date, "2006-01-02"; empty means today
}

// MaxStopsPerRoute is S_max from spec.md §3 invariant 5.
const MaxStopsPerRoute = 3

// RouteStop is a single pickup within a TruckRoute.
type RouteStop struct {
	SiteID string
	Head   int
}

// TruckRoute is one vehicle's day: an ordered list of stops (depot
// implied at both ends) and the resulting travel distance.
type TruckRoute struct {
	TruckID     int
	Stops       []RouteStop
	DistanceKm  float64
	FromSolver  bool // true when C2 produced this route, false when C3 (greedy) did
}

// TotalHead sums the head picked up across all stops on the route.
func (t TruckRoute) TotalHead() int {
	total := 0
	for _, s := range t.Stops {
		total += s.Head
	}
	return total
}

// DayRecord is the emitted result for a single planning day.
type DayRecord struct {
	ISODate        string
	TotalKg        float64
	RevenueEur     float64
	Trucks         []TruckRoute
	TotalDistanceKm float64
	TripCostEur    float64
	TruckCostEur   float64
	NetProfitEur   float64
}

// Summary is the horizon-level rollup produced by the Summariser (C7).
type Summary struct {
	TotalRevenueEur      float64
	TotalTripCostEur     float64
	TotalTruckCostEur    float64
	TotalNetProfitEur    float64
	ProfitMarginPercent  float64
	TotalHeadCollected   int
	TotalDistanceKm      float64
	MaxTrucksPerDay      int
	AvgTrucksPerDay      float64
	CostPerHeadEur       float64
	RevenuePerHeadEur    float64
	TotalDays            int
}

// PlanResult is the top-level output of a planning run.
type PlanResult struct {
	PlanID  string
	Days    []DayRecord
	Summary Summary
}
