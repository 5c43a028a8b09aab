package databases

import (
	"context"
	"strconv"

	"github.com/motorlog/motorlog-api/models"
	"github.com/motorlog/motorlog-api/sheets"
)

const (
	vehicleTable = "vehicles"
	colID        = "id"
)

var vehicleColumns = []string{"id", "name", "plate", "registration_number", "year", "purchase_price", "purchase_date"}

// VehicleDatabase contains the methods to use with the vehicles worksheet
type VehicleDatabase interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	Find(ctx context.Context, column, value string) ([]models.Vehicle, error)
	Insert(ctx context.Context, vehicle models.Vehicle) (int, error)
	Update(ctx context.Context, id int, vehicle models.Vehicle) error
	Delete(ctx context.Context, id int) error
}

// NewVehicleDatabase initializes a new instance of the vehicle database over
// the provided store
func NewVehicleDatabase(store sheets.TabularStore) VehicleDatabase {
	return NewRepository(store, Schema[models.Vehicle]{
		Table:   vehicleTable,
		Columns: vehicleColumns,
		FromRow: vehicleFromRow,
		ToRow:   vehicleToRow,
		ID:      func(v models.Vehicle) int { return v.ID },
		WithID:  func(v models.Vehicle, id int) models.Vehicle { v.ID = id; return v },
	}, vehicleGuard(store))
}

func vehicleFromRow(row sheets.Row) models.Vehicle {
	return models.Vehicle{
		ID:            row.Int("id"),
		Name:          row.String("name"),
		Plate:         row.String("plate"),
		Registration:  row.String("registration_number"),
		Year:          row.Int("year"),
		PurchasePrice: row.Decimal("purchase_price"),
		PurchaseDate:  row.Date("purchase_date"),
	}
}

func vehicleToRow(v models.Vehicle) []string {
	return []string{
		strconv.Itoa(v.ID),
		v.Name,
		v.Plate,
		v.Registration,
		strconv.Itoa(v.Year),
		v.PurchasePrice.String(),
		v.PurchaseDate.String(),
	}
}
