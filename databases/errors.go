package databases

import "errors"

// ErrNotFound reports an id that matched no row. Distinct from a guard
// rejection: a missing row is a data integrity problem, not a business rule.
var ErrNotFound = errors.New("entity not found")

// ValidationError carries the human-readable reason a mutating write was
// rejected before touching the sheet
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a guard rejection
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
