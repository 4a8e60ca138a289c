package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wallet/internal/domain"
	"wallet/internal/service"
)

// FuelHandler handles HTTP requests for fuel logs.
type FuelHandler struct {
	fuelService *service.FuelService
}

// NewFuelHandler creates a new FuelHandler.
func NewFuelHandler(fuelService *service.FuelService) *FuelHandler {
	return &FuelHandler{fuelService: fuelService}
}

// FuelLogRequest is the HTTP request body for creating or replacing a
// fuel log. Liters are computed server-side from amount and price.
type FuelLogRequest struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	Time          string  `json:"time"`
	Station       string  `json:"station"`
	Location      string  `json:"location"`
	Amount        float64 `json:"amount"`
	PricePerLiter float64 `json:"price_per_liter"`
}

// FuelLogResponse is the HTTP response for fuel log operations.
type FuelLogResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Station       string  `json:"station"`
	Location      string  `json:"location"`
	Amount        float64 `json:"amount"`
	PricePerLiter float64 `json:"price_per_liter"`
	Liters        float64 `json:"liters"`
}

// CreateFuelLog handles POST /v1/fuel-logs
func (h *FuelHandler) CreateFuelLog(c *gin.Context) {
	input, ok := bindFuelInput(c)
	if !ok {
		return
	}

	log, err := h.fuelService.CreateFuelLog(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, fuelLogToResponse(log))
}

// UpdateFuelLog handles PUT /v1/fuel-logs/:id
func (h *FuelHandler) UpdateFuelLog(c *gin.Context) {
	input, ok := bindFuelInput(c)
	if !ok {
		return
	}

	log, err := h.fuelService.UpdateFuelLog(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, fuelLogToResponse(log))
}

// DeleteFuelLog handles DELETE /v1/fuel-logs/:id
func (h *FuelHandler) DeleteFuelLog(c *gin.Context) {
	if err := h.fuelService.DeleteFuelLog(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetFuelLog handles GET /v1/fuel-logs/:id
func (h *FuelHandler) GetFuelLog(c *gin.Context) {
	log, err := h.fuelService.GetFuelLog(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, fuelLogToResponse(log))
}

// GetAll handles GET /v1/fuel-logs
func (h *FuelHandler) GetAll(c *gin.Context) {
	logs, err := h.fuelService.GetAllFuelLogs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]FuelLogResponse, 0, len(logs))
	for _, log := range logs {
		response = append(response, fuelLogToResponse(log))
	}

	c.JSON(http.StatusOK, response)
}

func bindFuelInput(c *gin.Context) (service.FuelLogInput, bool) {
	var req FuelLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return service.FuelLogInput{}, false
	}

	date, ok := parseDateField(c, req.Date)
	if !ok {
		return service.FuelLogInput{}, false
	}

	return service.FuelLogInput{
		Date:          date,
		Time:          req.Time,
		Station:       req.Station,
		Location:      req.Location,
		Amount:        req.Amount,
		PricePerLiter: req.PricePerLiter,
	}, true
}

func fuelLogToResponse(log *domain.FuelLog) FuelLogResponse {
	return FuelLogResponse{
		ID:            log.ID,
		Date:          log.Date.Format("2006-01-02"),
		Time:          log.Time,
		Station:       log.Station,
		Location:      log.Location,
		Amount:        log.Amount,
		PricePerLiter: log.PricePerLiter,
		Liters:        log.Liters,
	}
}
