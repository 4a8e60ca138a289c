package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wallet/internal/domain"
	"wallet/internal/service"
)

// ReportHandler handles HTTP requests for period reports and exports.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportResponse is the HTTP response for a period report.
type ReportResponse struct {
	Kind            string  `json:"kind"`
	Title           string  `json:"title"`
	TripCount       int     `json:"trip_count"`
	TotalDistanceKM float64 `json:"total_distance_km"`
	TotalEarnings   float64 `json:"total_earnings"`
	TotalFuelCost   float64 `json:"total_fuel_cost"`
	NetEarnings     float64 `json:"net_earnings"`
}

// GetReport handles GET /v1/reports?kind=daily|weekly|monthly. The
// period parameters depend on the kind: date= for daily, start= and
// end= for weekly, month= and year= for monthly. With ?format=text the
// report is rendered as plain text instead of JSON.
func (h *ReportHandler) GetReport(c *gin.Context) {
	kind, params, ok := bindReportParams(c)
	if !ok {
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), kind, params)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, service.FormatReport(report))
		return
	}

	respondJSON(c, http.StatusOK, ReportResponse{
		Kind:            string(report.Kind),
		Title:           report.Title,
		TripCount:       report.TripCount,
		TotalDistanceKM: report.TotalDistanceKM,
		TotalEarnings:   report.TotalEarnings,
		TotalFuelCost:   report.TotalFuelCost,
		NetEarnings:     report.NetEarnings,
	})
}

// ExportReport handles GET /v1/reports/export. It streams the trips
// matched by the same period filter as GetReport as a CSV download.
func (h *ReportHandler) ExportReport(c *gin.Context) {
	kind, params, ok := bindReportParams(c)
	if !ok {
		return
	}

	trips, err := h.reportService.FilteredTrips(c.Request.Context(), kind, params)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := "trips_" + string(kind) + "_" + time.Now().Format("20060102") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := service.WriteCSV(c.Writer, trips); err != nil {
		_ = c.Error(err)
	}
}

// bindReportParams parses the kind and period query parameters. On a
// malformed value it writes the error response itself and returns
// ok=false; missing parameters pass through as zero so the service
// reports which one is required for the kind.
func bindReportParams(c *gin.Context) (domain.ReportKind, service.ReportParams, bool) {
	kind := domain.ReportKind(c.Query("kind"))

	var params service.ReportParams

	day, ok := parseDateQuery(c, "date")
	if !ok {
		return "", service.ReportParams{}, false
	}
	params.Day = day

	start, ok := parseDateQuery(c, "start")
	if !ok {
		return "", service.ReportParams{}, false
	}
	params.StartDate = start

	end, ok := parseDateQuery(c, "end")
	if !ok {
		return "", service.ReportParams{}, false
	}
	params.EndDate = end

	month, ok := parseIntQuery(c, "month")
	if !ok {
		return "", service.ReportParams{}, false
	}
	params.Month = month

	year, ok := parseIntQuery(c, "year")
	if !ok {
		return "", service.ReportParams{}, false
	}
	params.Year = year

	return kind, params, true
}

func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, true
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " (use YYYY-MM-DD)"})
		return time.Time{}, false
	}

	return date, true
}

func parseIntQuery(c *gin.Context, name string) (int, bool) {
	value := c.Query(name)
	if value == "" {
		return 0, true
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}

	return n, true
}
