// Package config holds the request-default table of spec.md §6 and
// the validation pass that turns a raw request into domain-ready
// values (or an InvalidInput error) before any planning object exists.
package config

import (
	"fmt"

	"drove-planner/internal/domain"
)

// Defaults mirrors the request schema defaults of spec.md §6. 181 head
// at ~110kg approximates a 20-tonne truck, per the original system's
// docstring (SPEC_FULL.md §4).
var Defaults = domain.PlanRequest{
	TruckCapacity:     181,
	Horizon:           10,
	DaysPerWeek:       5,
	DefaultMeanWeight: 110.0,
	PricePerKg:        1.56,
	TruckCostPerWeek:  2000.0,
	FuelCostPerKm:     0.35,
	TripCostPerKm:     0,
	WeeklyWeightGain:  0.0,
	WeeklyDeclineRate: 0.15,
}

// WithDefaults fills zero-valued fields of req with Defaults, the same
// way the request DTO applies schema defaults before validation.
func WithDefaults(req domain.PlanRequest) domain.PlanRequest {
	if req.TruckCapacity == 0 {
		req.TruckCapacity = Defaults.TruckCapacity
	}
	if req.Horizon == 0 {
		req.Horizon = Defaults.Horizon
	}
	if req.DaysPerWeek == 0 {
		req.DaysPerWeek = Defaults.DaysPerWeek
	}
	if req.DefaultMeanWeight == 0 {
		req.DefaultMeanWeight = Defaults.DefaultMeanWeight
	}
	if req.PricePerKg == 0 {
		req.PricePerKg = Defaults.PricePerKg
	}
	if req.TruckCostPerWeek == 0 {
		req.TruckCostPerWeek = Defaults.TruckCostPerWeek
	}
	if req.FuelCostPerKm == 0 {
		req.FuelCostPerKm = Defaults.FuelCostPerKm
	}
	if req.TripCostPerKm <= 0 {
		req.TripCostPerKm = req.FuelCostPerKm
	}
	if req.WeeklyDeclineRate == 0 {
		req.WeeklyDeclineRate = Defaults.WeeklyDeclineRate
	}
	return req
}

// Validate enforces the constraint column of spec.md §6's request
// table. A non-nil error is InvalidInput-class and must never reach
// the planner (spec.md §7).
func Validate(req domain.PlanRequest) error {
	if len(req.Sites) == 0 {
		return fmt.Errorf("farms: at least one site is required")
	}
	if req.Facility.ID == "" {
		return fmt.Errorf("slaughterhouse: required")
	}
	if req.TruckCapacity < 1 {
		return fmt.Errorf("truck_capacity: must be >= 1")
	}
	if req.Horizon < 1 || req.Horizon > 30 {
		return fmt.Errorf("num_days: must be between 1 and 30")
	}
	if req.DaysPerWeek < 1 || req.DaysPerWeek > 7 {
		return fmt.Errorf("planning_days_per_week: must be between 1 and 7")
	}
	if req.DefaultMeanWeight < 0 {
		return fmt.Errorf("avg_pig_weight_kg: must be >= 0")
	}
	if req.PricePerKg < 0 {
		return fmt.Errorf("price_per_kg: must be >= 0")
	}
	if req.TruckCostPerWeek < 0 {
		return fmt.Errorf("truck_cost_per_week: must be >= 0")
	}
	if req.FuelCostPerKm < 0 {
		return fmt.Errorf("fuel_cost_per_km: must be >= 0")
	}
	if req.TripCostPerKm < 0 {
		return fmt.Errorf("cost_per_km: must be >= 0")
	}
	if req.WeeklyWeightGain < 0 {
		return fmt.Errorf("weekly_weight_gain_kg: must be >= 0")
	}
	if req.WeeklyDeclineRate < 0 || req.WeeklyDeclineRate > 1 {
		return fmt.Errorf("weekly_decline_rate: must be between 0 and 1")
	}
	for _, s := range req.Sites {
		if s.AvailableHead < 0 {
			return fmt.Errorf("farm %s: available head must be >= 0", s.ID)
		}
	}
	if req.Facility.DailyThroughputHead < 1 {
		return fmt.Errorf("slaughterhouse.daily_capacity: must be >= 1")
	}
	return nil
}
