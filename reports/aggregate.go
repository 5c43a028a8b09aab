package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/motorlog/motorlog-api/models"
)

// SummarizeSpend groups the joined view by vehicle display name and sums the
// monetary value per group, largest spender first. Rows whose vehicle never
// resolved carry a blank name and are left out of the grouping. It does no
// date filtering of its own; callers wanting a window pre-filter the view.
func SummarizeSpend(views []models.ServiceView) []models.VehicleSpend {
	totals := map[string]decimal.Decimal{}
	order := []string{}
	for _, v := range views {
		if v.VehicleName == "" {
			continue
		}
		if _, ok := totals[v.VehicleName]; !ok {
			order = append(order, v.VehicleName)
		}
		totals[v.VehicleName] = totals[v.VehicleName].Add(v.Service.Value)
	}

	out := make([]models.VehicleSpend, 0, len(order))
	for _, name := range order {
		out = append(out, models.VehicleSpend{VehicleName: name, Total: totals[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}
