package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/motorlog/motorlog-api/config"
	"github.com/motorlog/motorlog-api/databases"
	"github.com/motorlog/motorlog-api/models"
)

// Service exported for testing purposes
type Service struct {
	DB databases.ServiceDatabase
}

// ServiceHandler returns all maintenance services
func (s Service) ServiceHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := s.DB.List(r.Context())
	if err != nil {
		writeError(w, "failed to get services", err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Service{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ServiceSearchHandler returns services matching an exact cell value
func (s Service) ServiceSearchHandler(w http.ResponseWriter, r *http.Request) {
	column := r.URL.Query().Get("column")
	value := r.URL.Query().Get("value")

	dbResp, err := s.DB.Find(r.Context(), column, value)
	if err != nil {
		writeError(w, "failed to search services", err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Service{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateServiceHandler inserts a new service and returns its assigned id.
// The due date in the request body, if any, is ignored and rederived.
func (s Service) CreateServiceHandler(w http.ResponseWriter, r *http.Request) {
	var service models.Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	id, err := s.DB.Insert(r.Context(), service)
	if err != nil {
		writeError(w, "failed to create service", err)
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

// UpdateServiceHandler replaces the fields of an existing service
func (s Service) UpdateServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "service_id")
	if err != nil {
		config.ErrorStatus("failed to parse service id", http.StatusBadRequest, w, err)
		return
	}

	var service models.Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := s.DB.Update(r.Context(), id, service); err != nil {
		writeError(w, "failed to update service", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"response": "service %d updated"}`, id)))
}

// DeleteServiceHandler removes a service. Nothing references services, so
// deletes always pass the guard.
func (s Service) DeleteServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "service_id")
	if err != nil {
		config.ErrorStatus("failed to parse service id", http.StatusBadRequest, w, err)
		return
	}

	if err := s.DB.Delete(r.Context(), id); err != nil {
		writeError(w, "failed to delete service", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"response": "service %d deleted"}`, id)))
}
