package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wallet/internal/repository"
	"wallet/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrNoTripData),
		errors.Is(err, service.ErrNoTripsInPeriod):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidFuelLogID),
		errors.Is(err, service.ErrMissingDate),
		errors.Is(err, service.ErrMissingStartTime),
		errors.Is(err, service.ErrMissingTime),
		errors.Is(err, service.ErrMissingStation),
		errors.Is(err, service.ErrMissingLocation),
		errors.Is(err, service.ErrNegativeValue),
		errors.Is(err, service.ErrInvalidPricePerLiter),
		errors.Is(err, service.ErrInvalidFuelEfficiency),
		errors.Is(err, service.ErrInvalidPetrolPrice),
		errors.Is(err, service.ErrMissingReportDate),
		errors.Is(err, service.ErrMissingReportRange),
		errors.Is(err, service.ErrInvalidReportRange),
		errors.Is(err, service.ErrMissingReportMonth),
		errors.Is(err, service.ErrInvalidReportMonth),
		errors.Is(err, service.ErrInvalidReportKind):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrDuplicateTrip),
		errors.Is(err, service.ErrTankCapacityExceeded),
		errors.Is(err, service.ErrRecalcInProgress):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
