package models

// Provider holds the structure for one row of the providers worksheet
type Provider struct {
	ID          int    `json:"id"`
	Company     string `json:"company"`
	Phone       string `json:"phone"`
	ContactName string `json:"contactName"`
	TaxID       string `json:"taxId"`
	Email       string `json:"email"`
	Street      string `json:"street"`
	Number      string `json:"number"`
	City        string `json:"city"`
	District    string `json:"district"`
	PostalCode  string `json:"postalCode"`
}
