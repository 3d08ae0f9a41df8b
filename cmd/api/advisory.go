package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"ridgecast/internal/advisory"
	"ridgecast/internal/location"
	"ridgecast/internal/types"

	"github.com/gin-gonic/gin"
)

// GetAdvisoryInput defines the query parameters for the advisory endpoint
type GetAdvisoryInput struct {
	Location string `form:"location" binding:"required"` // Location code (e.g. ys, t7)
	Date     string `form:"date" binding:"required"`     // Calendar date, YYYY-MM-DD (YYYY/MM/DD accepted)
}

// AdvisoryResponse is an advisory plus the short date form used for display
type AdvisoryResponse struct {
	*advisory.Advisory
	DateDisplay string `json:"date_display"`
}

// handleGetAdvisory godoc
// @Summary Get a risk advisory for a location and date
// @Description Fetch the hourly forecast for the given date, align it to the nearest wall-clock hour, and classify the conditions by the location's category (mountain or road)
// @Tags advisory
// @Produce json
// @Param location query string true "Location code" example(ys)
// @Param date query string true "Calendar date (YYYY-MM-DD)" example(2026-01-05)
// @Success 200 {object} AdvisoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /advisory [get]
func (app *App) handleGetAdvisory(c *gin.Context) {
	var input GetAdvisoryInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The original web form submits YYYY/MM/DD; normalize to YYYY-MM-DD.
	date := strings.ReplaceAll(input.Date, "/", "-")

	// Delegate to business layer
	result, err := app.advisoryService.GetAdvisory(input.Location, date)
	if err != nil {
		app.renderAdvisoryError(c, input.Location, date, err)
		return
	}

	resp := AdvisoryResponse{Advisory: result}
	if d, err := time.Parse("2006-01-02", date); err == nil {
		resp.DateDisplay = d.Format("01/02")
	}

	c.JSON(http.StatusOK, resp)
}

// renderAdvisoryError maps engine errors to HTTP statuses and displayable
// messages. Upstream faults are logged with their cause but surfaced to the
// caller as a plain message.
func (app *App) renderAdvisoryError(c *gin.Context, code, date string, err error) {
	switch {
	case errors.Is(err, advisory.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
	case errors.Is(err, advisory.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "date conversion failed"})
	case errors.Is(err, advisory.ErrMalformedForecast):
		c.JSON(http.StatusBadGateway, gin.H{"error": "malformed forecast data"})
	case errors.Is(err, advisory.ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "forecast unavailable, try again later"})
	default:
		app.logger.Error("failed to get advisory",
			"location", code,
			"date", date,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get advisory"})
	}
}

// LocationSummary is one reference table entry with its derived category
type LocationSummary struct {
	location.Location
	Category types.Category `json:"category"`
}

// handleListLocations godoc
// @Summary List supported locations
// @Description Return the static location reference table with each site's category
// @Tags advisory
// @Produce json
// @Success 200 {array} LocationSummary
// @Router /locations [get]
func (app *App) handleListLocations(c *gin.Context) {
	all := location.All()
	out := make([]LocationSummary, len(all))
	for i, l := range all {
		out[i] = LocationSummary{Location: l, Category: l.Category()}
	}
	c.JSON(http.StatusOK, out)
}
