package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"drove-planner/internal/domain"
	"drove-planner/internal/econ"
	"drove-planner/internal/geo"
	"drove-planner/internal/logger"
	"drove-planner/internal/routing"
)

// Planner drives the horizon, calling into the routing Engine (which
// calls C2 and falls back to C3), handing results to C5, and mutating
// state at day boundaries (spec.md §4.6).
type Planner struct {
	Engine routing.Engine
}

// New wires a Planner to a concrete routing Engine.
func New(engine routing.Engine) Planner {
	return Planner{Engine: engine}
}

// Plan runs the full horizon for req and returns the PlanResult. On
// context cancellation mid-day, it returns the days completed so far
// together with the error — never a partial day (spec.md §5).
func (p Planner) Plan(ctx context.Context, req domain.PlanRequest) (*domain.PlanResult, error) {
	states := make(map[string]*siteState, len(req.Sites))
	for _, s := range req.Sites {
		w := s.InitialMeanWeightKg
		if w <= 0 {
			w = req.DefaultMeanWeight
		}
		states[s.ID] = &siteState{remainingHead: float64(s.AvailableHead), meanWeightKg: w}
	}

	dailyWeightGain := 0.0
	if req.DaysPerWeek > 0 {
		dailyWeightGain = req.WeeklyWeightGain / float64(req.DaysPerWeek)
	}

	tripCostPerKm := req.TripCostPerKm
	if tripCostPerKm <= 0 {
		tripCostPerKm = req.FuelCostPerKm
	}

	depot := geo.Point{Lat: req.Facility.Location.Lat, Lng: req.Facility.Location.Lng}
	startDate := parseStartDate(req.StartDate)

	visits := newLedger()
	days := make([]domain.DayRecord, 0, req.Horizon)
	prevWeek := 0

	for t := 0; t < req.Horizon; t++ {
		week := t / req.DaysPerWeek

		if t > 0 && week != prevWeek && req.WeeklyDeclineRate > 0 {
			applyWeeklyDecline(states, req.WeeklyDeclineRate)
		}
		prevWeek = week

		snapshot := make(map[string]float64, len(states))
		for id, st := range states {
			snapshot[id] = st.meanWeightKg
		}

		var candidates []routing.Candidate
		for _, site := range req.Sites {
			st := states[site.ID]
			if st.remainingHead <= 0 || visits.visited(site.ID, week) {
				continue
			}
			candidates = append(candidates, routing.Candidate{
				SiteID: site.ID,
				Point:  geo.Point{Lat: site.Location.Lat, Lng: site.Location.Lng},
				Demand: int(st.remainingHead),
			})
		}

		var trucks []domain.TruckRoute
		if len(candidates) > 0 {
			budget := perDaySolverBudget(ctx, req.Horizon-t)
			var err error
			trucks, err = p.Engine.PlanDay(ctx, depot, candidates, req.TruckCapacity, req.Facility.DailyThroughputHead, budget)
			if err != nil {
				return &domain.PlanResult{Days: days}, fmt.Errorf("plan day %d: %w", t, err)
			}
		}

		econParams := econ.Params{
			TruckCapacity:     req.TruckCapacity,
			PricePerKg:        req.PricePerKg,
			TripCostPerKm:     tripCostPerKm,
			TruckCostPerWeek:  req.TruckCostPerWeek,
			DefaultMeanWeight: req.DefaultMeanWeight,
		}
		eco := econ.EvaluateDay(trucks, func(siteID string) float64 { return snapshot[siteID] }, econParams)

		for _, truck := range trucks {
			for _, stop := range truck.Stops {
				st := states[stop.SiteID]
				st.remainingHead -= float64(stop.Head)
				if st.remainingHead < 0 {
					st.remainingHead = 0
				}
				visits.markVisited(stop.SiteID, week)
			}
		}

		for _, st := range states {
			if st.remainingHead > 0 {
				st.meanWeightKg += dailyWeightGain
			}
		}

		days = append(days, domain.DayRecord{
			ISODate:         startDate.AddDate(0, 0, t).Format("2006-01-02"),
			TotalKg:         eco.TotalKg,
			RevenueEur:      eco.RevenueEur,
			Trucks:          trucks,
			TotalDistanceKm: eco.TotalDistanceKm,
			TripCostEur:     eco.TripCostEur,
			TruckCostEur:    eco.TruckCostEur,
			NetProfitEur:    eco.NetProfitEur,
		})

		if len(trucks) == 0 {
			logger.Info("Planner", fmt.Sprintf("day %s: no admissible sites, zero activity", days[len(days)-1].ISODate))
		} else {
			logger.Info("Planner", fmt.Sprintf("day %s: %d trucks, %.0f head, net %.2f EUR",
				days[len(days)-1].ISODate, len(trucks), float64(sumHead(trucks)), eco.NetProfitEur))
		}
	}

	planID := uuid.NewString()
	summary := Summarise(days)
	return &domain.PlanResult{PlanID: planID, Days: days, Summary: summary}, nil
}

func sumHead(trucks []domain.TruckRoute) int {
	total := 0
	for _, t := range trucks {
		total += t.TotalHead()
	}
	return total
}

// applyWeeklyDecline resolves spec.md §9's open question on
// weekly_decline_rate: at each week boundary, every site still holding
// inventory decays once, remainingHead *= (1 - d). See SPEC_FULL.md §4.
func applyWeeklyDecline(states map[string]*siteState, d float64) {
	for _, st := range states {
		if st.remainingHead > 0 {
			st.remainingHead *= 1 - d
		}
	}
}

func parseStartDate(iso string) time.Time {
	if iso == "" {
		return time.Now().UTC().Truncate(24 * time.Hour)
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return time.Now().UTC().Truncate(24 * time.Hour)
	}
	return t
}

// perDaySolverBudget distributes any global request deadline pro-rata
// across the days remaining in the horizon (spec.md §5: "A global
// request deadline ... is distributed pro-rata across remaining
// days"), capped at routing.SolverTimeBudget. With no deadline on ctx,
// each day gets the full per-day ceiling.
func perDaySolverBudget(ctx context.Context, daysRemaining int) time.Duration {
	budget := routing.SolverTimeBudget
	deadline, ok := ctx.Deadline()
	if !ok || daysRemaining <= 0 {
		return budget
	}
	share := time.Until(deadline) / time.Duration(daysRemaining)
	if share < budget {
		budget = share
	}
	return budget
}
