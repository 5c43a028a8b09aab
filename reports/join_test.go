package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/motorlog/motorlog-api/models"
	"github.com/motorlog/motorlog-api/reports"
)

var joinToday = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func fixtureVehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: 5, Name: "Golf", Plate: "ABC123"},
		{ID: 6, Name: "Civic", Plate: "XYZ789"},
	}
}

func fixtureProviders() []models.Provider {
	return []models.Provider{
		{ID: 2, Company: "Oficina Central", City: "Lisboa"},
	}
}

func service(id, vehicleID, providerID int, date models.Date, value int64) models.Service {
	return models.Service{
		ID:          id,
		VehicleID:   vehicleID,
		ProviderID:  providerID,
		ServiceName: "oil change",
		ServiceDate: date,
		DueDate:     date.AddDays(90),
		Value:       decimal.NewFromInt(value),
	}
}

func TestBuildHistory_EveryServiceAppearsOnce(t *testing.T) {
	services := []models.Service{
		service(1, 5, 2, models.NewDate(2024, time.January, 10), 250),
		service(2, 5, 2, models.NewDate(2024, time.February, 5), 100),
	}

	views := reports.BuildHistory(services, fixtureVehicles(), fixtureProviders(), nil, joinToday)

	assert.Len(t, views, 2)
	assert.Equal(t, "Golf", views[0].VehicleName)
	assert.Equal(t, "Oficina Central", views[0].ProviderName)
	assert.Equal(t, "Lisboa", views[0].ProviderCity)
}

func TestBuildHistory_UnmatchedForeignKeysLeaveBlanks(t *testing.T) {
	services := []models.Service{
		service(1, 99, 88, models.NewDate(2024, time.January, 10), 250),
	}

	views := reports.BuildHistory(services, fixtureVehicles(), fixtureProviders(), nil, joinToday)

	assert.Len(t, views, 1)
	assert.Empty(t, views[0].VehicleName)
	assert.Empty(t, views[0].VehiclePlate)
	assert.Empty(t, views[0].ProviderName)
	assert.Equal(t, 1, views[0].Service.ID)
}

func TestBuildHistory_DateRangeBoundsAreInclusive(t *testing.T) {
	services := []models.Service{
		service(1, 5, 2, models.NewDate(2024, time.January, 1), 10),
		service(2, 5, 2, models.NewDate(2024, time.January, 15), 20),
		service(3, 5, 2, models.NewDate(2024, time.January, 31), 30),
		service(4, 5, 2, models.NewDate(2024, time.February, 1), 40),
	}
	window := &reports.DateRange{
		Start: models.NewDate(2024, time.January, 1),
		End:   models.NewDate(2024, time.January, 31),
	}

	views := reports.BuildHistory(services, fixtureVehicles(), fixtureProviders(), window, joinToday)

	assert.Len(t, views, 3)
	for _, v := range views {
		assert.NotEqual(t, 4, v.Service.ID)
	}
}

func TestBuildHistory_SortedNewestFirst(t *testing.T) {
	services := []models.Service{
		service(1, 5, 2, models.NewDate(2024, time.January, 10), 10),
		service(2, 5, 2, models.NewDate(2024, time.February, 5), 20),
		service(3, 6, 2, models.NewDate(2024, time.February, 5), 30),
	}

	views := reports.BuildHistory(services, fixtureVehicles(), fixtureProviders(), nil, joinToday)

	assert.Equal(t, []int{2, 3, 1}, []int{views[0].Service.ID, views[1].Service.ID, views[2].Service.ID})
}

func TestBuildHistory_ComputesDaysRemainingPerRow(t *testing.T) {
	services := []models.Service{
		service(1, 5, 2, models.NewDate(2024, time.January, 10), 10),
	}

	views := reports.BuildHistory(services, fixtureVehicles(), fixtureProviders(), nil, joinToday)

	// due 2024-04-09, today 2024-03-01
	assert.Equal(t, 39, views[0].DaysRemaining)
}

func TestBuildHistory_BlankDueDateRowKeptWithZeroDaysRemaining(t *testing.T) {
	damaged := service(1, 5, 2, models.NewDate(2024, time.January, 10), 250)
	// a hand-edited due_date cell that failed to parse reads as the zero Date
	damaged.DueDate = models.Date{}

	views := reports.BuildHistory([]models.Service{damaged}, fixtureVehicles(), fixtureProviders(), nil, joinToday)

	assert.Len(t, views, 1)
	assert.Equal(t, 0, views[0].DaysRemaining)
}

func TestBuildHistory_AnyEmptyCollectionMeansEmptyHistory(t *testing.T) {
	services := []models.Service{
		service(1, 5, 2, models.NewDate(2024, time.January, 10), 10),
	}

	assert.Empty(t, reports.BuildHistory(nil, fixtureVehicles(), fixtureProviders(), nil, joinToday))
	assert.Empty(t, reports.BuildHistory(services, nil, fixtureProviders(), nil, joinToday))
	assert.Empty(t, reports.BuildHistory(services, fixtureVehicles(), nil, nil, joinToday))
}
