package models

import "github.com/shopspring/decimal"

// Service holds the structure for one row of the services worksheet.
// DueDate is derived (service date plus warranty days) and persisted
// redundantly; it is rewritten on every insert and update.
type Service struct {
	ID           int             `json:"id"`
	VehicleID    int             `json:"vehicleId"`
	ProviderID   int             `json:"providerId"`
	ServiceName  string          `json:"serviceName"`
	ServiceDate  Date            `json:"serviceDate"`
	WarrantyDays int             `json:"warrantyDays"`
	Value        decimal.Decimal `json:"value"`
	Odometer     int             `json:"odometer"`
	OdometerNext int             `json:"odometerNextDue"`
	Notes        string          `json:"notes"`
	DueDate      Date            `json:"dueDate"`
}
