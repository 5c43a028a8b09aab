package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/motorlog/motorlog-api/config"
	"github.com/motorlog/motorlog-api/databases"
	"github.com/motorlog/motorlog-api/sheets"
)

// writeError maps database and store failures onto status codes: guard
// rejections are conflicts, missing ids are not found, an unreachable store
// is unavailable
func writeError(w http.ResponseWriter, message string, err error) {
	switch {
	case databases.IsValidation(err):
		config.ErrorStatus(message, http.StatusConflict, w, err)
	case errors.Is(err, databases.ErrNotFound):
		config.ErrorStatus(message, http.StatusNotFound, w, err)
	case errors.Is(err, sheets.ErrStoreUnavailable), errors.Is(err, sheets.ErrWorksheetNotFound):
		config.ErrorStatus(message, http.StatusServiceUnavailable, w, err)
	default:
		config.ErrorStatus(message, http.StatusInternalServerError, w, err)
	}
}

// pathID pulls an integer id out of the route variables
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}
