package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wallet/internal/domain"
	"wallet/internal/service"
)

// SettingsHandler handles HTTP requests for the tracker settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SettingsRequest is the HTTP request body for updating the settings.
type SettingsRequest struct {
	FuelEfficiency float64 `json:"fuel_efficiency"`
	PetrolPrice    float64 `json:"petrol_price"`
}

// SettingsResponse is the HTTP response for settings operations.
type SettingsResponse struct {
	FuelEfficiency float64 `json:"fuel_efficiency"`
	PetrolPrice    float64 `json:"petrol_price"`
}

// GetSettings handles GET /v1/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, settingsToResponse(settings))
}

// UpdateSettings handles PUT /v1/settings. A successful update re-derives
// the metrics of every stored trip under the new settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), service.UpdateSettingsRequest{
		FuelEfficiency: req.FuelEfficiency,
		PetrolPrice:    req.PetrolPrice,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, settingsToResponse(settings))
}

func settingsToResponse(settings domain.Settings) SettingsResponse {
	return SettingsResponse{
		FuelEfficiency: settings.FuelEfficiency,
		PetrolPrice:    settings.PetrolPrice,
	}
}
