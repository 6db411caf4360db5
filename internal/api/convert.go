package api

import (
	"drove-planner/internal/domain"
)

func toPlanRequest(req optimizeRequest) domain.PlanRequest {
	sites := make([]domain.Site, len(req.Farms))
	for i, f := range req.Farms {
		sites[i] = domain.Site{
			ID:                  f.ID,
			Name:                f.Name,
			Location:            domain.Location{Lat: f.Lat, Lng: f.Lng},
			MaxCapacity:         f.MaxCapacity,
			AvailableHead:       f.AvailablePigs,
			InitialMeanWeightKg: f.AvgPigWeightKg,
		}
	}

	return domain.PlanRequest{
		Sites: sites,
		Facility: domain.Facility{
			ID:                  req.Slaughterhouse.ID,
			Name:                req.Slaughterhouse.Name,
			Location:            domain.Location{Lat: req.Slaughterhouse.Lat, Lng: req.Slaughterhouse.Lng},
			DailyThroughputHead: req.Slaughterhouse.DailyCapacity,
			MaxCapacity:         req.Slaughterhouse.MaxCapacity,
		},
		Horizon:           req.NumDays,
		DaysPerWeek:       req.PlanningDaysPerWeek,
		TruckCapacity:     req.TruckCapacity,
		DefaultMeanWeight: req.AvgPigWeightKg,
		PricePerKg:        req.PricePerKg,
		TruckCostPerWeek:  req.TruckCostPerWeek,
		FuelCostPerKm:     req.FuelCostPerKm,
		TripCostPerKm:     req.CostPerKm,
		WeeklyWeightGain:  req.WeeklyWeightGainKg,
		WeeklyDeclineRate: req.WeeklyDeclineRate,
		StartDate:         req.StartDate,
	}
}

func fromPlanResult(result domain.PlanResult) optimizeResponse {
	days := make([]dayDTO, len(result.Days))
	for i, d := range result.Days {
		trucks := make([]truckDTO, len(d.Trucks))
		for j, t := range d.Trucks {
			route := make([]routeDTO, len(t.Stops))
			for k, s := range t.Stops {
				route[k] = routeDTO{ID: s.SiteID, Pigs: s.Head}
			}
			trucks[j] = truckDTO{ID: t.TruckID, Route: route}
		}
		days[i] = dayDTO{
			Timedatestamp:   d.ISODate,
			Trucks:          trucks,
			TotalDistanceKm: d.TotalDistanceKm,
			TotalEuros:      d.RevenueEur,
			FuelCostEuros:   d.TripCostEur,
			TruckCostEuros:  d.TruckCostEur,
			NetProfitEuros:  d.NetProfitEur,
		}
	}

	s := result.Summary
	return optimizeResponse{
		ID:   result.PlanID,
		Days: days,
		Summary: summaryDTO{
			TotalRevenueEur:     s.TotalRevenueEur,
			TotalTripCostEur:    s.TotalTripCostEur,
			TotalTruckCostEur:   s.TotalTruckCostEur,
			TotalNetProfitEur:   s.TotalNetProfitEur,
			ProfitMarginPercent: s.ProfitMarginPercent,
			TotalHeadCollected:  s.TotalHeadCollected,
			TotalDistanceKm:     s.TotalDistanceKm,
			MaxTrucksPerDay:     s.MaxTrucksPerDay,
			AvgTrucksPerDay:     s.AvgTrucksPerDay,
			CostPerHeadEur:      s.CostPerHeadEur,
			RevenuePerHeadEur:   s.RevenuePerHeadEur,
			TotalDays:           s.TotalDays,
		},
	}
}
