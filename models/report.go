package models

import "github.com/shopspring/decimal"

// ServiceView is one row of the joined service history. Vehicle and provider
// display fields stay blank when the service's foreign keys match no row.
type ServiceView struct {
	Service       Service `json:"service"`
	VehicleName   string  `json:"vehicleName"`
	VehiclePlate  string  `json:"vehiclePlate"`
	ProviderName  string  `json:"providerName"`
	ProviderCity  string  `json:"providerCity"`
	DaysRemaining int     `json:"daysRemaining"`
}

// VehicleSpend is one group of the per-vehicle spend summary
type VehicleSpend struct {
	VehicleName string          `json:"vehicleName"`
	Total       decimal.Decimal `json:"total"`
}
