package service

import "wallet/internal/domain"

// The ledger functions are whole-list reductions over the stored records.
// Balances are never maintained incrementally: after any mutation the next
// read recomputes from scratch, so the reduction is always authoritative.

// SumTripBalances returns the wallet balance: the sum of every trip's
// balance. Order-independent.
func SumTripBalances(trips []*domain.Trip) float64 {
	var total float64
	for _, trip := range trips {
		total += trip.TripBalance
	}
	return total
}

// CurrentFuelLevel returns the liters remaining in the tank: everything
// purchased minus everything consumed. Order-independent; may go negative
// when recorded trips outrun recorded refills.
func CurrentFuelLevel(trips []*domain.Trip, logs []*domain.FuelLog) float64 {
	var refueled float64
	for _, log := range logs {
		refueled += log.Liters
	}

	var used float64
	for _, trip := range trips {
		used += trip.FuelUsed
	}

	return refueled - used
}

// EstimatedRange returns the kilometers the remaining fuel covers at the
// configured efficiency.
func EstimatedRange(fuelLevel, fuelEfficiency float64) float64 {
	return fuelLevel * fuelEfficiency
}

// BuildSummary reduces the full trip and fuel lists into the whole-history
// summary.
func BuildSummary(trips []*domain.Trip, logs []*domain.FuelLog, settings domain.Settings) *domain.Summary {
	summary := &domain.Summary{TripCount: len(trips)}

	for _, trip := range trips {
		summary.TotalDistanceKM += trip.DistanceKM
		summary.TotalEarnings += trip.Earnings
		summary.TotalTips += trip.Tips
		summary.TotalTripBalance += trip.TripBalance
		summary.TotalDiscounts += trip.Discount
		summary.TotalFuelUsed += trip.FuelUsed
		summary.TotalFuelCost += trip.EstimatedFuelCost
	}

	for _, log := range logs {
		summary.TotalRefueled += log.Liters
	}

	summary.CurrentFuel = summary.TotalRefueled - summary.TotalFuelUsed
	summary.EstimatedRangeKM = EstimatedRange(summary.CurrentFuel, settings.FuelEfficiency)

	return summary
}
