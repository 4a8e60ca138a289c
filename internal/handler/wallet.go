package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wallet/internal/service"
)

// WalletHandler handles HTTP requests for the derived wallet state.
type WalletHandler struct {
	walletService *service.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService *service.WalletService) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// BalanceResponse is the HTTP response for the wallet balance.
type BalanceResponse struct {
	Balance       float64 `json:"balance"`
	TotalEarnings float64 `json:"total_earnings"`
	TotalTips     float64 `json:"total_tips"`
}

// FuelLevelResponse is the HTTP response for the current fuel level.
type FuelLevelResponse struct {
	Liters           float64 `json:"liters"`
	EstimatedRangeKM float64 `json:"estimated_range_km"`
}

// SummaryResponse is the HTTP response for the whole-history summary.
type SummaryResponse struct {
	TripCount        int     `json:"trip_count"`
	TotalDistanceKM  float64 `json:"total_distance_km"`
	TotalEarnings    float64 `json:"total_earnings"`
	TotalTips        float64 `json:"total_tips"`
	TotalTripBalance float64 `json:"total_trip_balance"`
	TotalDiscounts   float64 `json:"total_discounts"`
	TotalFuelUsed    float64 `json:"total_fuel_used"`
	TotalRefueled    float64 `json:"total_refueled"`
	CurrentFuel      float64 `json:"current_fuel"`
	TotalFuelCost    float64 `json:"total_fuel_cost"`
	EstimatedRangeKM float64 `json:"estimated_range_km"`
}

// GetBalance handles GET /v1/wallet/balance
func (h *WalletHandler) GetBalance(c *gin.Context) {
	balance, err := h.walletService.Balance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, BalanceResponse{
		Balance:       balance.Balance,
		TotalEarnings: balance.TotalEarnings,
		TotalTips:     balance.TotalTips,
	})
}

// GetFuelLevel handles GET /v1/wallet/fuel
func (h *WalletHandler) GetFuelLevel(c *gin.Context) {
	level, rangeKM, err := h.walletService.FuelLevel(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, FuelLevelResponse{
		Liters:           level,
		EstimatedRangeKM: rangeKM,
	})
}

// GetSummary handles GET /v1/wallet/summary. With ?format=text the
// summary is rendered as plain text instead of JSON.
func (h *WalletHandler) GetSummary(c *gin.Context) {
	summary, err := h.walletService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, service.FormatSummary(summary))
		return
	}

	respondJSON(c, http.StatusOK, SummaryResponse{
		TripCount:        summary.TripCount,
		TotalDistanceKM:  summary.TotalDistanceKM,
		TotalEarnings:    summary.TotalEarnings,
		TotalTips:        summary.TotalTips,
		TotalTripBalance: summary.TotalTripBalance,
		TotalDiscounts:   summary.TotalDiscounts,
		TotalFuelUsed:    summary.TotalFuelUsed,
		TotalRefueled:    summary.TotalRefueled,
		CurrentFuel:      summary.CurrentFuel,
		TotalFuelCost:    summary.TotalFuelCost,
		EstimatedRangeKM: summary.EstimatedRangeKM,
	})
}
