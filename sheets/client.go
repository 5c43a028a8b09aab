package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/motorlog/motorlog-api/config"
)

// ClientHelper opens the backing spreadsheet
type ClientHelper interface {
	Spreadsheet() SpreadsheetHelper
}

// SpreadsheetHelper hands out worksheets by name
type SpreadsheetHelper interface {
	Worksheet(name string) WorksheetHelper
}

// WorksheetHelper contains the raw cell operations for one worksheet
type WorksheetHelper interface {
	ReadAll(ctx context.Context) ([][]string, error)
	Clear(ctx context.Context) error
	WriteFrom(ctx context.Context, origin string, values [][]string) error
}

type googleClient struct {
	svc           *sheetsv4.Service
	spreadsheetID string
}

type googleSpreadsheet struct {
	svc           *sheetsv4.Service
	spreadsheetID string
}

type googleWorksheet struct {
	svc           *sheetsv4.Service
	spreadsheetID string
	name          string
}

// NewClient authenticates against the Sheets API using the values from the config
func NewClient(ctx context.Context, conf *config.Config) (ClientHelper, error) {
	var opts []option.ClientOption
	if conf.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.CredentialsFile))
	}
	svc, err := sheetsv4.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &googleClient{svc: svc, spreadsheetID: conf.SpreadsheetID}, nil
}

func (c *googleClient) Spreadsheet() SpreadsheetHelper {
	return &googleSpreadsheet{svc: c.svc, spreadsheetID: c.spreadsheetID}
}

func (s *googleSpreadsheet) Worksheet(name string) WorksheetHelper {
	return &googleWorksheet{svc: s.svc, spreadsheetID: s.spreadsheetID, name: name}
}

func (w *googleWorksheet) ReadAll(ctx context.Context) ([][]string, error) {
	resp, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, w.name).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}
	out := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		out = append(out, cells)
	}
	return out, nil
}

func (w *googleWorksheet) Clear(ctx context.Context) error {
	_, err := w.svc.Spreadsheets.Values.
		Clear(w.spreadsheetID, w.name, &sheetsv4.ClearValuesRequest{}).
		Context(ctx).Do()
	return classify(err)
}

func (w *googleWorksheet) WriteFrom(ctx context.Context, origin string, values [][]string) error {
	vr := &sheetsv4.ValueRange{Values: make([][]interface{}, len(values))}
	for i, row := range values {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		vr.Values[i] = cells
	}
	_, err := w.svc.Spreadsheets.Values.
		Update(w.spreadsheetID, fmt.Sprintf("%s!%s", w.name, origin), vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	return classify(err)
}

// classify folds API errors into the two outcomes callers act on. The Values
// API reports an unknown worksheet as an unparseable range (400), everything
// else means the store itself is unreachable or not permitted.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusBadRequest || gerr.Code == http.StatusNotFound {
			return fmt.Errorf("%w: %v", ErrWorksheetNotFound, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
