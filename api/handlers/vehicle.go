package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/motorlog/motorlog-api/config"
	"github.com/motorlog/motorlog-api/databases"
	"github.com/motorlog/motorlog-api/models"
)

// Vehicle exported for testing purposes
type Vehicle struct {
	DB databases.VehicleDatabase
}

// VehicleHandler returns all vehicles
func (v Vehicle) VehicleHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := v.DB.List(r.Context())
	if err != nil {
		writeError(w, "failed to get vehicles", err)
		return
	}
	// the frontend requires the data element to exist, so an empty
	// collection serializes as [] and never null
	if len(dbResp) == 0 {
		dbResp = []models.Vehicle{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// VehicleSearchHandler returns vehicles matching an exact cell value, used by
// the UI for live duplicate checks while a form is open
func (v Vehicle) VehicleSearchHandler(w http.ResponseWriter, r *http.Request) {
	column := r.URL.Query().Get("column")
	value := r.URL.Query().Get("value")
	zap.S().Debugf("vehicle search column: %q value: %q", column, value)

	dbResp, err := v.DB.Find(r.Context(), column, value)
	if err != nil {
		writeError(w, "failed to search vehicles", err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Vehicle{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateVehicleHandler inserts a new vehicle and returns its assigned id
func (v Vehicle) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	id, err := v.DB.Insert(r.Context(), vehicle)
	if err != nil {
		writeError(w, "failed to create vehicle", err)
		return
	}

	b, err := json.Marshal(models.CreatedResponse{ID: id})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UpdateVehicleHandler replaces the fields of an existing vehicle
func (v Vehicle) UpdateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "vehicle_id")
	if err != nil {
		config.ErrorStatus("failed to parse vehicle id", http.StatusBadRequest, w, err)
		return
	}

	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := v.DB.Update(r.Context(), id, vehicle); err != nil {
		writeError(w, "failed to update vehicle", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"response": "vehicle %d updated"}`, id)))
}

// DeleteVehicleHandler removes a vehicle unless services still reference it
func (v Vehicle) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "vehicle_id")
	if err != nil {
		config.ErrorStatus("failed to parse vehicle id", http.StatusBadRequest, w, err)
		return
	}

	if err := v.DB.Delete(r.Context(), id); err != nil {
		writeError(w, "failed to delete vehicle", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"response": "vehicle %d deleted"}`, id)))
}
