package domain

import "time"

// Trip represents one completed ride and the financial metrics derived
// from it. The derived fields are never set by callers; they are computed
// from the input fields and the settings in effect at computation time.
type Trip struct {
	ID        string
	Date      time.Time // calendar date, time component ignored
	StartTime string    // "HH:MM"
	EndTime   string    // "HH:MM"
	Duration  time.Duration

	// Caller-supplied inputs, all non-negative.
	CashCollected float64
	Fare          float64
	ServiceFee    float64
	Taxes         float64
	DistanceKM    float64
	Tips          float64

	// Derived fields.
	Earnings          float64
	TripBalance       float64
	Discount          float64
	DiscountRate      float64 // percent, 2 decimals
	EarningsPerKM     float64 // 2 decimals
	FuelUsed          float64 // liters, 2 decimals
	EstimatedFuelCost float64 // 2 decimals
	ServiceFeePercent float64 // percent, 2 decimals
	TaxesPercent      float64 // percent, 2 decimals
}
