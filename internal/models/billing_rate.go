package models

import "time"

// BillingRate holds the per-month utility rates used when generating bills.
// Electricity is charged per kWh; water and wifi are flat monthly charges.
type BillingRate struct {
	ID                 int       `json:"id"`
	Month              string    `json:"month"` // YYYY-MM
	ElectricityRateKwh float64   `json:"electricity_rate_kwh"`
	WaterRate          float64   `json:"water_rate"`
	WifiRate           float64   `json:"wifi_rate"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreateBillingRateRequest represents the request body for setting a month's rates
type CreateBillingRateRequest struct {
	Month              string  `json:"month"`
	ElectricityRateKwh float64 `json:"electricity_rate_kwh"`
	WaterRate          float64 `json:"water_rate"`
	WifiRate           float64 `json:"wifi_rate"`
}
