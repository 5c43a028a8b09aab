package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/motorlog/motorlog-api/databases"
	"github.com/motorlog/motorlog-api/models"
	"github.com/motorlog/motorlog-api/sheets"
)

func TestVehicleInsert_DuplicatePlateRejectedAndSheetUntouched(t *testing.T) {
	store := newMemStore()
	store.seed("vehicles", sheets.Row{"id": "1", "name": "Golf", "plate": "ABC123"})
	db := databases.NewVehicleDatabase(store)

	_, err := db.Insert(context.Background(), models.Vehicle{Name: "Civic", Plate: "ABC123"})

	assert.True(t, databases.IsValidation(err))
	assert.Zero(t, store.replaces["vehicles"])
	assert.Len(t, store.tables["vehicles"], 1)
}

func TestVehicleInsert_EmptyPlatesNeverConflict(t *testing.T) {
	store := newMemStore()
	store.seed("vehicles", sheets.Row{"id": "1", "name": "Golf", "plate": ""})
	db := databases.NewVehicleDatabase(store)

	id, err := db.Insert(context.Background(), models.Vehicle{Name: "Civic"})

	assert.NoError(t, err)
	assert.Equal(t, 2, id)
}

func TestVehicleUpdate_KeepingOwnPlateIsNotADuplicate(t *testing.T) {
	store := newMemStore()
	store.seed("vehicles",
		sheets.Row{"id": "1", "name": "Golf", "plate": "ABC123"},
		sheets.Row{"id": "2", "name": "Civic", "plate": "XYZ789"},
	)
	db := databases.NewVehicleDatabase(store)

	err := db.Update(context.Background(), 1, models.Vehicle{Name: "Golf", Plate: "ABC123"})
	assert.NoError(t, err)

	err = db.Update(context.Background(), 1, models.Vehicle{Name: "Golf", Plate: "XYZ789"})
	assert.True(t, databases.IsValidation(err))
}

func TestVehicleInsert_NameIsRequired(t *testing.T) {
	store := newMemStore()
	db := databases.NewVehicleDatabase(store)

	_, err := db.Insert(context.Background(), models.Vehicle{Plate: "ABC123"})

	assert.True(t, databases.IsValidation(err))
}

func TestProviderInsert_DuplicateCompanyRejected(t *testing.T) {
	store := newMemStore()
	store.seed("providers", sheets.Row{"id": "1", "company": "Oficina Central"})
	db := databases.NewProviderDatabase(store)

	_, err := db.Insert(context.Background(), models.Provider{Company: "Oficina Central"})

	assert.True(t, databases.IsValidation(err))
	assert.Zero(t, store.replaces["providers"])
}

func TestVehicleDelete_RejectedWhileServicesReferenceIt(t *testing.T) {
	store := newMemStore()
	store.seed("vehicles", sheets.Row{"id": "5", "name": "Golf"})
	store.seed("services", sheets.Row{"id": "1", "vehicle_id": "5", "provider_id": "2"})
	db := databases.NewVehicleDatabase(store)

	err := db.Delete(context.Background(), 5)

	assert.True(t, databases.IsValidation(err))
	assert.Len(t, store.tables["vehicles"], 1)
	assert.Len(t, store.tables["services"], 1)
	assert.Zero(t, store.replaces["vehicles"])
	assert.Zero(t, store.replaces["services"])
}

func TestProviderDelete_RejectedWhileServicesReferenceIt(t *testing.T) {
	store := newMemStore()
	store.seed("providers", sheets.Row{"id": "2", "company": "Oficina Central"})
	store.seed("services", sheets.Row{"id": "1", "vehicle_id": "5", "provider_id": "2"})
	db := databases.NewProviderDatabase(store)

	err := db.Delete(context.Background(), 2)

	assert.True(t, databases.IsValidation(err))
	assert.Zero(t, store.replaces["providers"])
}

func TestVehicleDelete_ForeignKeyMatchIsCanonical(t *testing.T) {
	store := newMemStore()
	store.seed("vehicles", sheets.Row{"id": "5", "name": "Golf"})
	// hand-edited cell with a leading zero still counts as a reference
	store.seed("services", sheets.Row{"id": "1", "vehicle_id": "05", "provider_id": "2"})
	db := databases.NewVehicleDatabase(store)

	err := db.Delete(context.Background(), 5)

	assert.True(t, databases.IsValidation(err))
}
