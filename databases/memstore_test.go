package databases_test

import (
	"context"

	"github.com/motorlog/motorlog-api/sheets"
)

// memStore is an in-memory TabularStore that counts replaces, so tests can
// assert a rejected write left the sheet byte-for-byte unchanged
type memStore struct {
	tables   map[string][]sheets.Row
	replaces map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		tables:   map[string][]sheets.Row{},
		replaces: map[string]int{},
	}
}

func (m *memStore) seed(table string, rows ...sheets.Row) {
	m.tables[table] = rows
}

func (m *memStore) Read(ctx context.Context, table string) ([]sheets.Row, error) {
	rows, ok := m.tables[table]
	if !ok {
		return []sheets.Row{}, nil
	}
	return rows, nil
}

func (m *memStore) Replace(ctx context.Context, table string, header []string, rows [][]string) error {
	out := []sheets.Row{}
	for _, cells := range rows {
		row := sheets.Row{}
		for i, column := range header {
			if i < len(cells) {
				row[column] = cells[i]
			} else {
				row[column] = ""
			}
		}
		out = append(out, row)
	}
	m.tables[table] = out
	m.replaces[table]++
	return nil
}
