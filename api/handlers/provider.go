package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/motorlog/motorlog-api/config"
	"github.com/motorlog/motorlog-api/databases"
	"github.com/motorlog/motorlog-api/models"
)

// Provider exported for testing purposes
type Provider struct {
	DB databases.ProviderDatabase
}

// ProviderHandler returns all service providers
func (p Provider) ProviderHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := p.DB.List(r.Context())
	if err != nil {
		writeError(w, "failed to get providers", err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Provider{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ProviderSearchHandler returns providers matching an exact cell value
func (p Provider) ProviderSearchHandler(w http.ResponseWriter, r *http.Request) {
	column := r.URL.Query().Get("column")
	value := r.URL.Query().Get("value")

	dbResp, err := p.DB.Find(r.Context(), column, value)
	if err != nil {
		writeError(w, "failed to search providers", err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Provider{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateProviderHandler inserts a new provider and returns its assigned id
func (p Provider) CreateProviderHandler(w http.ResponseWriter, r *http.Request) {
	var provider models.Provider
	if err := json.NewDecoder(r.Body).Decode(&provider); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	id, err := p.DB.Insert(r.Context(), provider)
	if err != nil {
		writeError(w, "failed to create provider", err)
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

// UpdateProviderHandler replaces the fields of an existing provider
func (p Provider) UpdateProviderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "provider_id")
	if err != nil {
		config.ErrorStatus("failed to parse provider id", http.StatusBadRequest, w, err)
		return
	}

	var provider models.Provider
	if err := json.NewDecoder(r.Body).Decode(&provider); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if err := p.DB.Update(r.Context(), id, provider); err != nil {
		writeError(w, "failed to update provider", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"response": "provider %d updated"}`, id)))
}

// DeleteProviderHandler removes a provider unless services still reference it
func (p Provider) DeleteProviderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "provider_id")
	if err != nil {
		config.ErrorStatus("failed to parse provider id", http.StatusBadRequest, w, err)
		return
	}

	if err := p.DB.Delete(r.Context(), id); err != nil {
		writeError(w, "failed to delete provider", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"response": "provider %d deleted"}`, id)))
}
