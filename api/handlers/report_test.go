package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/motorlog/motorlog-api/api/handlers"
	"github.com/motorlog/motorlog-api/databases/mocks"
	"github.com/motorlog/motorlog-api/models"
	"github.com/motorlog/motorlog-api/sheets"
)

func reportHandler(services []models.Service) handlers.Report {
	sdb := &mocks.ServiceDatabase{}
	sdb.On("List", mock.Anything).Return(services, nil)
	vdb := &mocks.VehicleDatabase{}
	vdb.On("List", mock.Anything).Return([]models.Vehicle{
		{ID: 5, Name: "Golf", Plate: "ABC123"},
	}, nil)
	pdb := &mocks.ProviderDatabase{}
	pdb.On("List", mock.Anything).Return([]models.Provider{
		{ID: 2, Company: "Oficina Central", City: "Lisboa"},
	}, nil)
	return handlers.Report{
		SDB: sdb,
		VDB: vdb,
		PDB: pdb,
		Now: func() time.Time { return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func reportServices() []models.Service {
	return []models.Service{
		{
			ID: 1, VehicleID: 5, ProviderID: 2,
			ServiceName: "oil change",
			ServiceDate: models.NewDate(2024, time.January, 10),
			DueDate:     models.NewDate(2024, time.April, 9),
			Value:       decimal.RequireFromString("250.00"),
		},
		{
			ID: 2, VehicleID: 5, ProviderID: 2,
			ServiceName: "brake pads",
			ServiceDate: models.NewDate(2024, time.February, 5),
			DueDate:     models.NewDate(2024, time.August, 3),
			Value:       decimal.RequireFromString("100.00"),
		},
	}
}

func TestServiceHistoryHandler_JoinedNewestFirst(t *testing.T) {
	rep := reportHandler(reportServices())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/history", nil)
	rr := httptest.NewRecorder()
	rep.ServiceHistoryHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `"vehicleName":"Golf"`)
	assert.Contains(t, body, `"providerName":"Oficina Central"`)
	// brake pads (Feb 5) sorts before oil change (Jan 10)
	assert.Less(t, strings.Index(body, "brake pads"), strings.Index(body, "oil change"))
	// due 2024-04-09 against the pinned 2024-03-01 clock
	assert.Contains(t, body, `"daysRemaining":39`)
}

func TestServiceHistoryHandler_RangeFiltersInclusively(t *testing.T) {
	rep := reportHandler(reportServices())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/history?start=2024-01-01&end=2024-01-31", nil)
	rr := httptest.NewRecorder()
	rep.ServiceHistoryHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "oil change")
	assert.NotContains(t, rr.Body.String(), "brake pads")
}

func TestServiceHistoryHandler_InvalidRangeRejected(t *testing.T) {
	rep := reportHandler(reportServices())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/history?start=10/01/2024&end=2024-01-31", nil)
	rr := httptest.NewRecorder()
	rep.ServiceHistoryHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServiceHistoryHandler_HalfOpenRangeRejected(t *testing.T) {
	rep := reportHandler(reportServices())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/history?start=2024-01-01", nil)
	rr := httptest.NewRecorder()
	rep.ServiceHistoryHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServiceHistoryHandler_StoreUnavailable(t *testing.T) {
	sdb := &mocks.ServiceDatabase{}
	sdb.On("List", mock.Anything).Return(nil, sheets.ErrStoreUnavailable)
	rep := handlers.Report{SDB: sdb, VDB: &mocks.VehicleDatabase{}, PDB: &mocks.ProviderDatabase{}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/history", nil)
	rr := httptest.NewRecorder()
	rep.ServiceHistoryHandler(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestSpendSummaryHandler_SumsPerVehicle(t *testing.T) {
	rep := reportHandler(reportServices())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/spend", nil)
	rr := httptest.NewRecorder()
	rep.SpendSummaryHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"vehicleName":"Golf"`)
	assert.Contains(t, rr.Body.String(), `"total":"350"`)
}
