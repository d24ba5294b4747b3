package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	_ "skireis/internal/types" // imported for swagger type definitions
)

// handleGetMarkers godoc
// @Summary Derive map markers
// @Description Project every participant with a resolvable pickup or home location
// @Description onto the map viewport. Participants whose location is unknown are
// @Description only counted in the unmapped total.
// @Tags map
// @Produce json
// @Success 200 {object} markers.Summary
// @Router /map/markers [get]
func (app *App) handleGetMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, app.markerService.Derive())
}
