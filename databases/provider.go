package databases

import (
	"context"
	"strconv"

	"github.com/motorlog/motorlog-api/models"
	"github.com/motorlog/motorlog-api/sheets"
)

const providerTable = "providers"

var providerColumns = []string{"id", "company", "phone", "contact_name", "tax_id", "email", "street", "number", "city", "district", "postal_code"}

// ProviderDatabase contains the methods to use with the providers worksheet
type ProviderDatabase interface {
	List(ctx context.Context) ([]models.Provider, error)
	Find(ctx context.Context, column, value string) ([]models.Provider, error)
	Insert(ctx context.Context, provider models.Provider) (int, error)
	Update(ctx context.Context, id int, provider models.Provider) error
	Delete(ctx context.Context, id int) error
}

// NewProviderDatabase initializes a new instance of the provider database
// over the provided store
func NewProviderDatabase(store sheets.TabularStore) ProviderDatabase {
	return NewRepository(store, Schema[models.Provider]{
		Table:   providerTable,
		Columns: providerColumns,
		FromRow: providerFromRow,
		ToRow:   providerToRow,
		ID:      func(p models.Provider) int { return p.ID },
		WithID:  func(p models.Provider, id int) models.Provider { p.ID = id; return p },
	}, providerGuard(store))
}

func providerFromRow(row sheets.Row) models.Provider {
	return models.Provider{
		ID:          row.Int("id"),
		Company:     row.String("company"),
		Phone:       row.String("phone"),
		ContactName: row.String("contact_name"),
		TaxID:       row.String("tax_id"),
		Email:       row.String("email"),
		Street:      row.String("street"),
		Number:      row.String("number"),
		City:        row.String("city"),
		District:    row.String("district"),
		PostalCode:  row.String("postal_code"),
	}
}

func providerToRow(p models.Provider) []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Company,
		p.Phone,
		p.ContactName,
		p.TaxID,
		p.Email,
		p.Street,
		p.Number,
		p.City,
		p.District,
		p.PostalCode,
	}
}
