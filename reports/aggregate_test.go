package reports_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/motorlog/motorlog-api/models"
	"github.com/motorlog/motorlog-api/reports"
)

func view(vehicle string, value string) models.ServiceView {
	return models.ServiceView{
		VehicleName: vehicle,
		Service:     models.Service{Value: decimal.RequireFromString(value)},
	}
}

func TestSummarizeSpend_GroupsByVehicleName(t *testing.T) {
	spend := reports.SummarizeSpend([]models.ServiceView{
		view("Golf", "100.00"),
		view("Golf", "250.00"),
	})

	assert.Len(t, spend, 1)
	assert.Equal(t, "Golf", spend[0].VehicleName)
	assert.True(t, spend[0].Total.Equal(decimal.RequireFromString("350.00")))
}

func TestSummarizeSpend_LargestSpenderFirst(t *testing.T) {
	spend := reports.SummarizeSpend([]models.ServiceView{
		view("Golf", "100.00"),
		view("Civic", "999.99"),
		view("Golf", "50.00"),
	})

	assert.Len(t, spend, 2)
	assert.Equal(t, "Civic", spend[0].VehicleName)
	assert.Equal(t, "Golf", spend[1].VehicleName)
	assert.True(t, spend[1].Total.Equal(decimal.RequireFromString("150.00")))
}

func TestSummarizeSpend_EmptyViewMeansNoGroups(t *testing.T) {
	assert.Empty(t, reports.SummarizeSpend(nil))
}

func TestSummarizeSpend_UnresolvedVehiclesExcluded(t *testing.T) {
	spend := reports.SummarizeSpend([]models.ServiceView{
		view("Golf", "100.00"),
		// a service whose vehicle FK matched no row joins with a blank name
		view("", "999.99"),
	})

	assert.Len(t, spend, 1)
	assert.Equal(t, "Golf", spend[0].VehicleName)
	assert.True(t, spend[0].Total.Equal(decimal.RequireFromString("100.00")))
}
