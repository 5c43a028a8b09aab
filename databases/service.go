package databases

import (
	"context"
	"strconv"

	"github.com/motorlog/motorlog-api/models"
	"github.com/motorlog/motorlog-api/reports"
	"github.com/motorlog/motorlog-api/sheets"
)

const (
	serviceTable         = "services"
	colServiceVehicleID  = "vehicle_id"
	colServiceProviderID = "provider_id"
)

var serviceColumns = []string{"id", "vehicle_id", "provider_id", "service_name", "service_date", "warranty_days", "value", "odometer", "odometer_next_due", "notes", "due_date"}

// ServiceDatabase contains the methods to use with the services worksheet
type ServiceDatabase interface {
	List(ctx context.Context) ([]models.Service, error)
	Find(ctx context.Context, column, value string) ([]models.Service, error)
	Insert(ctx context.Context, service models.Service) (int, error)
	Update(ctx context.Context, id int, service models.Service) error
	Delete(ctx context.Context, id int) error
}

// NewServiceDatabase initializes a new instance of the service database over
// the provided store. The due date is rederived from the service date and
// warranty length on every insert and update, never taken from the caller.
func NewServiceDatabase(store sheets.TabularStore) ServiceDatabase {
	return NewRepository(store, Schema[models.Service]{
		Table:   serviceTable,
		Columns: serviceColumns,
		FromRow: serviceFromRow,
		ToRow:   serviceToRow,
		ID:      func(s models.Service) int { return s.ID },
		WithID:  func(s models.Service, id int) models.Service { s.ID = id; return s },
		Normalize: func(s models.Service) models.Service {
			s.DueDate = reports.DueDate(s.ServiceDate, s.WarrantyDays)
			return s
		},
	}, serviceGuard(store))
}

func serviceFromRow(row sheets.Row) models.Service {
	return models.Service{
		ID:           row.Int("id"),
		VehicleID:    row.Int("vehicle_id"),
		ProviderID:   row.Int("provider_id"),
		ServiceName:  row.String("service_name"),
		ServiceDate:  row.Date("service_date"),
		WarrantyDays: row.Int("warranty_days"),
		Value:        row.Decimal("value"),
		Odometer:     row.Int("odometer"),
		OdometerNext: row.Int("odometer_next_due"),
		Notes:        row.String("notes"),
		DueDate:      row.Date("due_date"),
	}
}

func serviceToRow(s models.Service) []string {
	return []string{
		strconv.Itoa(s.ID),
		strconv.Itoa(s.VehicleID),
		strconv.Itoa(s.ProviderID),
		s.ServiceName,
		s.ServiceDate.String(),
		strconv.Itoa(s.WarrantyDays),
		s.Value.String(),
		strconv.Itoa(s.Odometer),
		strconv.Itoa(s.OdometerNext),
		s.Notes,
		s.DueDate.String(),
	}
}
