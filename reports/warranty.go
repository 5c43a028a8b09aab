package reports

import (
	"time"

	"github.com/motorlog/motorlog-api/models"
)

// DueDate is the warranty expiration of a service: the service date plus the
// warranty length in calendar days
func DueDate(serviceDate models.Date, warrantyDays int) models.Date {
	return serviceDate.AddDays(warrantyDays)
}

// DaysRemaining is the signed whole-day count from today until the due date.
// Negative means the warranty has lapsed. Always computed fresh against the
// caller's clock, never persisted. A blank or unparseable due date (the zero
// Date) reports 0 rather than the count from year 1.
func DaysRemaining(due models.Date, today time.Time) int {
	if due.IsZero() {
		return 0
	}
	return int(due.Sub(models.DateOf(today).Time).Hours() / 24)
}
