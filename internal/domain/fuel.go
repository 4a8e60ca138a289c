package domain

import "time"

// FuelLog represents one fuel purchase.
type FuelLog struct {
	ID            string
	Date          time.Time // calendar date, time component ignored
	Time          string    // "HH:MM"
	Station       string
	Location      string
	Amount        float64 // currency paid
	PricePerLiter float64
	Liters        float64 // Amount / PricePerLiter
}
