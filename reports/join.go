// Package reports rebuilds, in application code, the relational view the
// backing store cannot: the service/vehicle/provider join, warranty math and
// the per-vehicle spend summary.
package reports

import (
	"sort"
	"time"

	"github.com/motorlog/motorlog-api/models"
)

// DateRange is an inclusive service-date filter
type DateRange struct {
	Start models.Date
	End   models.Date
}

// Contains reports whether d falls within the range, bounds included
func (r DateRange) Contains(d models.Date) bool {
	return !d.Before(r.Start.Time) && !d.After(r.End.Time)
}

// BuildHistory left-joins every service to its vehicle and provider, keeping
// each service row exactly once. A service whose foreign keys match no row
// still appears, with blank display fields. Days remaining is computed per
// row against the injected today. Rows come back newest service date first,
// ties keeping their sheet order.
//
// Mirrors the original reporting behavior: if any of the three collections
// is empty there is nothing meaningful to join and the result is empty.
func BuildHistory(services []models.Service, vehicles []models.Vehicle, providers []models.Provider, dateRange *DateRange, today time.Time) []models.ServiceView {
	views := []models.ServiceView{}
	if len(services) == 0 || len(vehicles) == 0 || len(providers) == 0 {
		return views
	}

	vehicleByID := make(map[int]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehicleByID[v.ID] = v
	}
	providerByID := make(map[int]models.Provider, len(providers))
	for _, p := range providers {
		providerByID[p.ID] = p
	}

	for _, s := range services {
		if dateRange != nil && !dateRange.Contains(s.ServiceDate) {
			continue
		}
		view := models.ServiceView{
			Service:       s,
			DaysRemaining: DaysRemaining(s.DueDate, today),
		}
		if v, ok := vehicleByID[s.VehicleID]; ok {
			view.VehicleName = v.Name
			view.VehiclePlate = v.Plate
		}
		if p, ok := providerByID[s.ProviderID]; ok {
			view.ProviderName = p.Company
			view.ProviderCity = p.City
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Service.ServiceDate.After(views[j].Service.ServiceDate.Time)
	})
	return views
}
