package service

import (
	"math"

	"wallet/internal/domain"
)

// Round2 rounds to 2 decimal places, halves away from zero. Every derived
// ratio and cost field is rounded independently with this function before
// storage, so aggregates computed over stored trips carry the accumulated
// per-trip rounding error rather than a full-precision sum.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeriveTripMetrics fills the derived fields of a trip from its input
// fields and the given settings. It is a pure function of its arguments:
// calling it again with the same settings produces the same values.
//
// Ratio fields divide by fare or distance; when the divisor is zero the
// field is 0.0 by policy, not an error.
func DeriveTripMetrics(trip *domain.Trip, settings domain.Settings) {
	trip.Earnings = trip.Fare - (trip.ServiceFee + trip.Taxes) + trip.Tips
	trip.TripBalance = trip.Fare - (trip.CashCollected + trip.ServiceFee + trip.Taxes)
	trip.Discount = trip.Fare - trip.CashCollected

	if trip.Fare != 0 {
		trip.DiscountRate = Round2(trip.Discount / trip.Fare * 100)
		trip.ServiceFeePercent = Round2(trip.ServiceFee / trip.Fare * 100)
		trip.TaxesPercent = Round2(trip.Taxes / trip.Fare * 100)
	} else {
		trip.DiscountRate = 0.0
		trip.ServiceFeePercent = 0.0
		trip.TaxesPercent = 0.0
	}

	if trip.DistanceKM != 0 {
		trip.EarningsPerKM = Round2(trip.Earnings / trip.DistanceKM)
		trip.FuelUsed = Round2(trip.DistanceKM / settings.FuelEfficiency)
	} else {
		trip.EarningsPerKM = 0.0
		trip.FuelUsed = 0.0
	}

	trip.EstimatedFuelCost = Round2(trip.FuelUsed * settings.PetrolPrice)
}

// RecalculateTrips re-derives every trip in place with the given settings.
// Used after a settings change; the full pass replaces each trip's whole
// derived set, never a subset.
func RecalculateTrips(trips []*domain.Trip, settings domain.Settings) {
	for _, trip := range trips {
		DeriveTripMetrics(trip, settings)
	}
}

// LitersPurchased computes the liters bought in a fuel purchase.
// The price must be strictly positive before dividing.
func LitersPurchased(amount, pricePerLiter float64) (float64, error) {
	if pricePerLiter <= 0 {
		return 0, ErrInvalidPricePerLiter
	}
	return amount / pricePerLiter, nil
}
