package sheets

import "errors"

// ErrStoreUnavailable means the spreadsheet could not be reached or the
// credentials were rejected. Fatal for the current operation.
var ErrStoreUnavailable = errors.New("sheet store unavailable")

// ErrWorksheetNotFound means the named worksheet does not exist in the
// spreadsheet. Reads treat it as an empty dataset, writes fail outright.
var ErrWorksheetNotFound = errors.New("worksheet not found")
