package databases

import (
	"context"
	"fmt"

	"github.com/motorlog/motorlog-api/models"
	"github.com/motorlog/motorlog-api/sheets"
)

// The guards below reimplement, in application code, the constraints a
// relational store would enforce natively: unique columns and
// reference-in-use delete protection. Rejections happen before any write,
// leaving the sheets byte-for-byte unchanged.

// rowExists matches ids in canonical integer form, so "07" and "7" in
// hand-edited cells compare equal
func rowExists(ctx context.Context, store sheets.TabularStore, table string, id int) (bool, error) {
	rows, err := store.Read(ctx, table)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.Int(colID) == id {
			return true, nil
		}
	}
	return false, nil
}

// referencedBy reports whether any services row points at the given id
// through the given foreign-key column
func referencedBy(ctx context.Context, store sheets.TabularStore, column string, id int) (bool, error) {
	rows, err := store.Read(ctx, serviceTable)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.Int(column) == id {
			return true, nil
		}
	}
	return false, nil
}

// vehicleGuard rejects duplicate non-empty plates and deletes of vehicles
// that still have services on record
func vehicleGuard(store sheets.TabularStore) Guard[models.Vehicle] {
	return Guard[models.Vehicle]{
		CheckWrite: func(ctx context.Context, candidate models.Vehicle, existing []models.Vehicle) error {
			if candidate.Name == "" {
				return &ValidationError{Reason: "vehicle name is required"}
			}
			if candidate.PurchasePrice.IsNegative() {
				return &ValidationError{Reason: "purchase price cannot be negative"}
			}
			if candidate.Plate == "" {
				// vehicles without plates never conflict with each other
				return nil
			}
			for _, v := range existing {
				if v.Plate == candidate.Plate && v.ID != candidate.ID {
					return &ValidationError{Reason: fmt.Sprintf("plate %q is already registered to vehicle %d", candidate.Plate, v.ID)}
				}
			}
			return nil
		},
		CheckDelete: func(ctx context.Context, id int) error {
			inUse, err := referencedBy(ctx, store, colServiceVehicleID, id)
			if err != nil {
				return err
			}
			if inUse {
				return &ValidationError{Reason: "vehicle has services on record and cannot be deleted"}
			}
			return nil
		},
	}
}

// providerGuard rejects duplicate company names and deletes of providers
// that still have services on record
func providerGuard(store sheets.TabularStore) Guard[models.Provider] {
	return Guard[models.Provider]{
		CheckWrite: func(ctx context.Context, candidate models.Provider, existing []models.Provider) error {
			if candidate.Company == "" {
				return &ValidationError{Reason: "provider company name is required"}
			}
			for _, p := range existing {
				if p.Company == candidate.Company && p.ID != candidate.ID {
					return &ValidationError{Reason: fmt.Sprintf("company %q is already registered as provider %d", candidate.Company, p.ID)}
				}
			}
			return nil
		},
		CheckDelete: func(ctx context.Context, id int) error {
			inUse, err := referencedBy(ctx, store, colServiceProviderID, id)
			if err != nil {
				return err
			}
			if inUse {
				return &ValidationError{Reason: "provider has services on record and cannot be deleted"}
			}
			return nil
		},
	}
}

// serviceGuard enforces referential integrity at write time: both foreign
// keys must identify an existing row
func serviceGuard(store sheets.TabularStore) Guard[models.Service] {
	return Guard[models.Service]{
		CheckWrite: func(ctx context.Context, candidate models.Service, existing []models.Service) error {
			if candidate.ServiceName == "" {
				return &ValidationError{Reason: "service name is required"}
			}
			if candidate.WarrantyDays < 0 {
				return &ValidationError{Reason: "warranty days cannot be negative"}
			}
			if candidate.Value.IsNegative() {
				return &ValidationError{Reason: "service value cannot be negative"}
			}
			ok, err := rowExists(ctx, store, vehicleTable, candidate.VehicleID)
			if err != nil {
				return err
			}
			if !ok {
				return &ValidationError{Reason: fmt.Sprintf("vehicle %d does not exist", candidate.VehicleID)}
			}
			ok, err = rowExists(ctx, store, providerTable, candidate.ProviderID)
			if err != nil {
				return err
			}
			if !ok {
				return &ValidationError{Reason: fmt.Sprintf("provider %d does not exist", candidate.ProviderID)}
			}
			return nil
		},
	}
}
