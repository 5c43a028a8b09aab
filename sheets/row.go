package sheets

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/motorlog/motorlog-api/models"
)

// Row is one worksheet data row keyed by header column name. Accessors
// coerce cell text best-effort: a malformed cell yields the type's safe
// default instead of failing the read.
type Row map[string]string

// String returns the raw cell text
func (r Row) String(column string) string {
	return r[column]
}

// Int coerces a cell to an integer, 0 on failure
func (r Row) Int(column string) int {
	s := strings.TrimSpace(r[column])
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// sheets hand-edited in place sometimes hold "90.0" style numbers
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// Decimal coerces a cell to a decimal, zero on failure
func (r Row) Decimal(column string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(r[column]))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Date coerces a cell to a calendar day, the zero Date on failure
func (r Row) Date(column string) models.Date {
	return models.ParseDate(r[column])
}
