package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wallet/internal/domain"
	"wallet/internal/service"
)

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// TripRequest is the HTTP request body for creating or replacing a trip.
// Only input fields are accepted; derived fields are computed server-side.
type TripRequest struct {
	Date            string  `json:"date"` // YYYY-MM-DD
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time,omitempty"`
	DurationSeconds int64   `json:"duration_seconds,omitempty"`
	CashCollected   float64 `json:"cash_collected"`
	Fare            float64 `json:"fare"`
	ServiceFee      float64 `json:"service_fee"`
	Taxes           float64 `json:"taxes"`
	DistanceKM      float64 `json:"distance_km"`
	Tips            float64 `json:"tips"`
}

// TripResponse is the HTTP response for trip operations.
type TripResponse struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time,omitempty"`
	DurationSeconds   int64   `json:"duration_seconds"`
	CashCollected     float64 `json:"cash_collected"`
	Fare              float64 `json:"fare"`
	ServiceFee        float64 `json:"service_fee"`
	Taxes             float64 `json:"taxes"`
	DistanceKM        float64 `json:"distance_km"`
	Tips              float64 `json:"tips"`
	Earnings          float64 `json:"earnings"`
	TripBalance       float64 `json:"trip_balance"`
	Discount          float64 `json:"discount"`
	DiscountRate      float64 `json:"discount_rate"`
	EarningsPerKM     float64 `json:"earnings_per_km"`
	FuelUsed          float64 `json:"fuel_used"`
	EstimatedFuelCost float64 `json:"estimated_fuel_cost"`
	ServiceFeePercent float64 `json:"service_fee_percent"`
	TaxesPercent      float64 `json:"taxes_percent"`
}

// CreateTrip handles POST /v1/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	input, ok := bindTripInput(c)
	if !ok {
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, tripToResponse(trip))
}

// UpdateTrip handles PUT /v1/trips/:id
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	input, ok := bindTripInput(c)
	if !ok {
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, tripToResponse(trip))
}

// DeleteTrip handles DELETE /v1/trips/:id
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	if err := h.tripService.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTrip handles GET /v1/trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, err := h.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, tripToResponse(trip))
}

// GetAll handles GET /v1/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	trips, err := h.tripService.GetAllTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		response = append(response, tripToResponse(trip))
	}

	c.JSON(http.StatusOK, response)
}

// bindTripInput parses and converts the request body. On failure it writes
// the error response itself and returns ok=false.
func bindTripInput(c *gin.Context) (service.TripInput, bool) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return service.TripInput{}, false
	}

	date, ok := parseDateField(c, req.Date)
	if !ok {
		return service.TripInput{}, false
	}

	return service.TripInput{
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Duration:      time.Duration(req.DurationSeconds) * time.Second,
		CashCollected: req.CashCollected,
		Fare:          req.Fare,
		ServiceFee:    req.ServiceFee,
		Taxes:         req.Taxes,
		DistanceKM:    req.DistanceKM,
		Tips:          req.Tips,
	}, true
}

func tripToResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		ID:                trip.ID,
		Date:              trip.Date.Format("2006-01-02"),
		StartTime:         trip.StartTime,
		EndTime:           trip.EndTime,
		DurationSeconds:   int64(trip.Duration.Seconds()),
		CashCollected:     trip.CashCollected,
		Fare:              trip.Fare,
		ServiceFee:        trip.ServiceFee,
		Taxes:             trip.Taxes,
		DistanceKM:        trip.DistanceKM,
		Tips:              trip.Tips,
		Earnings:          trip.Earnings,
		TripBalance:       trip.TripBalance,
		Discount:          trip.Discount,
		DiscountRate:      trip.DiscountRate,
		EarningsPerKM:     trip.EarningsPerKM,
		FuelUsed:          trip.FuelUsed,
		EstimatedFuelCost: trip.EstimatedFuelCost,
		ServiceFeePercent: trip.ServiceFeePercent,
		TaxesPercent:      trip.TaxesPercent,
	}
}

// parseDateField parses a YYYY-MM-DD field. An empty value is passed
// through as zero so the service reports the missing field. On a malformed
// value it writes the error response itself and returns ok=false.
func parseDateField(c *gin.Context, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date format (use YYYY-MM-DD)"})
		return time.Time{}, false
	}

	return date, true
}
