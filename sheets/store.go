package sheets

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// readTTL bounds how long a worksheet read may be served from cache. Any
// successful replace invalidates the affected table immediately, so the
// staleness window only covers out-of-band edits and other writers.
const readTTL = 5 * time.Second

// TabularStore is the read/replace contract the repositories run against.
// Replace overwrites the whole table from the caller's perspective; it is
// not atomic with respect to other concurrent callers.
type TabularStore interface {
	Read(ctx context.Context, table string) ([]Row, error)
	Replace(ctx context.Context, table string, header []string, rows [][]string) error
}

// Store serves worksheet reads through a short-lived cache to bound round
// trips against the Sheets API
type Store struct {
	client ClientHelper
	cache  *gocache.Cache
}

// NewStore wraps a client with the read cache
func NewStore(client ClientHelper) *Store {
	return &Store{
		client: client,
		cache:  gocache.New(readTTL, time.Minute),
	}
}

// Read returns every data row of the named worksheet, column names taken
// from the header row. A missing worksheet reads as an empty dataset.
func (s *Store) Read(ctx context.Context, table string) ([]Row, error) {
	if v, ok := s.cache.Get(table); ok {
		return v.([]Row), nil
	}
	values, err := s.client.Spreadsheet().Worksheet(table).ReadAll(ctx)
	if errors.Is(err, ErrWorksheetNotFound) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, err
	}
	rows := rowsFromValues(values)
	s.cache.SetDefault(table, rows)
	return rows, nil
}

// Replace overwrites the named worksheet with a header row plus the given
// data rows. The cache entry is dropped up front so no read can observe
// pre-write state once the overwrite begins.
func (s *Store) Replace(ctx context.Context, table string, header []string, rows [][]string) error {
	s.cache.Delete(table)
	ws := s.client.Spreadsheet().Worksheet(table)
	if err := ws.Clear(ctx); err != nil {
		return err
	}
	values := make([][]string, 0, len(rows)+1)
	values = append(values, header)
	values = append(values, rows...)
	return ws.WriteFrom(ctx, "A1", values)
}

func rowsFromValues(values [][]string) []Row {
	rows := []Row{}
	if len(values) == 0 {
		return rows
	}
	header := values[0]
	for _, cells := range values[1:] {
		row := Row{}
		for i, column := range header {
			if i < len(cells) {
				row[column] = cells[i]
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
