package models

// HealthCheckResponse returns the health check response struct
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// CreatedResponse carries the surrogate id assigned by an insert
type CreatedResponse struct {
	ID int `json:"id"`
}
