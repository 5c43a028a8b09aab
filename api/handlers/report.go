package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/motorlog/motorlog-api/config"
	"github.com/motorlog/motorlog-api/databases"
	"github.com/motorlog/motorlog-api/models"
	"github.com/motorlog/motorlog-api/reports"
)

// Report exported for testing purposes. Now is injectable so tests can pin
// the clock the days-remaining column is computed against.
type Report struct {
	SDB databases.ServiceDatabase
	VDB databases.VehicleDatabase
	PDB databases.ProviderDatabase
	Now func() time.Time
}

func (rep Report) now() time.Time {
	if rep.Now != nil {
		return rep.Now()
	}
	return time.Now()
}

// ServiceHistoryHandler returns the joined service history, newest first,
// optionally filtered to an inclusive service-date range
func (rep Report) ServiceHistoryHandler(w http.ResponseWriter, r *http.Request) {
	var dateRange *reports.DateRange
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start != "" || end != "" {
		s := models.ParseDate(start)
		e := models.ParseDate(end)
		if s.IsZero() || e.IsZero() {
			config.ErrorStatus("invalid date range, expected start and end as YYYY-MM-DD",
				http.StatusBadRequest, w, fmt.Errorf("start=%q end=%q", start, end))
			return
		}
		dateRange = &reports.DateRange{Start: s, End: e}
	}

	views, err := rep.loadHistory(r.Context(), dateRange)
	if err != nil {
		writeError(w, "failed to build service history", err)
		return
	}

	b, err := json.Marshal(views)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SpendSummaryHandler returns the total service spend per vehicle over the
// full history, largest spender first
func (rep Report) SpendSummaryHandler(w http.ResponseWriter, r *http.Request) {
	views, err := rep.loadHistory(r.Context(), nil)
	if err != nil {
		writeError(w, "failed to build spend summary", err)
		return
	}

	summary := reports.SummarizeSpend(views)
	b, err := json.Marshal(summary)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (rep Report) loadHistory(ctx context.Context, dateRange *reports.DateRange) ([]models.ServiceView, error) {
	services, err := rep.SDB.List(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := rep.VDB.List(ctx)
	if err != nil {
		return nil, err
	}
	providers, err := rep.PDB.List(ctx)
	if err != nil {
		return nil, err
	}
	return reports.BuildHistory(services, vehicles, providers, dateRange, rep.now()), nil
}
