package models

import "github.com/shopspring/decimal"

// Vehicle holds the structure for one row of the vehicles worksheet
type Vehicle struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Plate         string          `json:"plate"`
	Registration  string          `json:"registrationNumber"`
	Year          int             `json:"year"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  Date            `json:"purchaseDate"`
}
