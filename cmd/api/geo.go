package main

import (
	"errors"
	"fmt"
	"net/http"

	"ridgecast/internal/geoproxy"
	"ridgecast/internal/providers/arcgis"

	"github.com/gin-gonic/gin"
)

// GeocodeInput is the request body for the geocode proxy
type GeocodeInput struct {
	Address string `json:"address"`
}

// GeocodeOutput wraps the resolved coordinate
type GeocodeOutput struct {
	Location arcgis.Point `json:"location"`
}

// handleGeocode godoc
// @Summary Geocode an address
// @Description Forward a single-line address lookup to the mapping provider and return the best candidate's coordinate
// @Tags geo
// @Accept json
// @Produce json
// @Param request body GeocodeInput true "Address to look up"
// @Success 200 {object} GeocodeOutput
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/geocode [post]
func (app *App) handleGeocode(c *gin.Context) {
	var input GeocodeInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing address"})
		return
	}

	point, err := app.geoService.Geocode(input.Address)
	if err != nil {
		if errors.Is(err, geoproxy.ErrNoCandidates) {
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		}
		app.logger.Error("geocode failed", "address", input.Address, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "geocode error"})
		return
	}

	c.JSON(http.StatusOK, GeocodeOutput{Location: point})
}

// RouteInput is the request body for the route proxy
type RouteInput struct {
	Stops    []arcgis.Point `json:"stops"`
	Barriers [][][]float64  `json:"barriers"`
}

// handleRoute godoc
// @Summary Solve a route between two stops
// @Description Build a route-solve request from two stops and optional polygon barriers, forward it to the mapping provider, and return its raw JSON response
// @Tags geo
// @Accept json
// @Produce json
// @Param request body RouteInput true "Two stops and optional barrier polygons"
// @Success 200 {object} object
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/route [post]
func (app *App) handleRoute(c *gin.Context) {
	var input RouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	raw, err := app.geoService.SolveRoute(input.Stops, input.Barriers)
	if err != nil {
		if errors.Is(err, geoproxy.ErrStopCount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "exactly two stops are required"})
			return
		}
		app.logger.Error("route solve failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("route solve failed: %v", err)})
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
