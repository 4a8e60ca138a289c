package service

import "errors"

var (
	// ErrInvalidTripID is returned when trip ID is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidFuelLogID is returned when fuel log ID is empty.
	ErrInvalidFuelLogID = errors.New("invalid fuel log id")

	// ErrMissingDate is returned when a record has no date.
	ErrMissingDate = errors.New("date is required")

	// ErrMissingStartTime is returned when a trip has no start time.
	ErrMissingStartTime = errors.New("start time is required")

	// ErrMissingTime is returned when a fuel log has no time.
	ErrMissingTime = errors.New("time is required")

	// ErrMissingStation is returned when a fuel log has no station name.
	ErrMissingStation = errors.New("station name is required")

	// ErrMissingLocation is returned when a fuel log has no location.
	ErrMissingLocation = errors.New("location is required")

	// ErrNegativeValue is returned, wrapped with the field name, when a
	// numeric input is negative.
	ErrNegativeValue = errors.New("value cannot be negative")

	// ErrDuplicateTrip is returned when a new trip matches an existing one
	// on the (date, start time, distance, fare) tuple.
	ErrDuplicateTrip = errors.New("duplicate trip detected")

	// ErrInvalidPricePerLiter is returned when a fuel log's price per liter
	// is not strictly positive.
	ErrInvalidPricePerLiter = errors.New("price per liter must be positive")

	// ErrTankCapacityExceeded is returned when a fuel purchase implies more
	// liters than the tank can hold.
	ErrTankCapacityExceeded = errors.New("fuel added exceeds tank capacity")

	// ErrInvalidFuelEfficiency is returned when fuel efficiency is not
	// strictly positive.
	ErrInvalidFuelEfficiency = errors.New("fuel efficiency must be positive")

	// ErrInvalidPetrolPrice is returned when petrol price is not strictly
	// positive.
	ErrInvalidPetrolPrice = errors.New("petrol price must be positive")

	// ErrRecalcInProgress is returned when a settings change is attempted
	// while another recalculation holds the lock.
	ErrRecalcInProgress = errors.New("recalculation already in progress")

	// ErrNoTripData is returned when a report is requested but no trips
	// exist at all.
	ErrNoTripData = errors.New("no trip data available")

	// ErrNoTripsInPeriod is returned when the report filter matches no
	// trips on a non-empty trip list.
	ErrNoTripsInPeriod = errors.New("no trips found for the selected period")

	// ErrMissingReportDate is returned when a daily report has no date.
	ErrMissingReportDate = errors.New("daily report requires a date")

	// ErrMissingReportRange is returned when a weekly report is missing its
	// start or end date.
	ErrMissingReportRange = errors.New("weekly report requires start and end dates")

	// ErrInvalidReportRange is returned when a weekly report's start date
	// is after its end date.
	ErrInvalidReportRange = errors.New("start date must not be after end date")

	// ErrMissingReportMonth is returned when a monthly report is missing
	// its month or year.
	ErrMissingReportMonth = errors.New("monthly report requires month and year")

	// ErrInvalidReportMonth is returned when the month is outside 1-12.
	ErrInvalidReportMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidReportKind is returned for an unknown report kind.
	ErrInvalidReportKind = errors.New("invalid report kind")
)
