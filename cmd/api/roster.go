package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skireis/internal/types"
)

// BusStatsResponse summarizes bus occupancy for the header widgets.
type BusStatsResponse struct {
	Total      int         `json:"total"`      // Total participants on the roster
	Buses      map[int]int `json:"buses"`      // Occupancy per bus number
	Unassigned int         `json:"unassigned"` // Participants without a bus
}

// SelectionResponse carries the shared selected participant id.
type SelectionResponse struct {
	SelectedID *string `json:"selectedId"` // null when nothing is selected
}

// SelectionRequest sets or clears the shared selection.
type SelectionRequest struct {
	SelectedID *string `json:"selectedId"` // id to select, or null to clear
}

// handleListParticipants godoc
// @Summary List participants
// @Description Return the full roster in insertion order
// @Tags roster
// @Produce json
// @Success 200 {array} types.Participant
// @Router /participants [get]
func (app *App) handleListParticipants(c *gin.Context) {
	c.JSON(http.StatusOK, app.store.List())
}

// handleAddParticipant godoc
// @Summary Add a participant
// @Description Append an empty roster row with a generated id
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Success 201 {object} types.Participant
// @Failure 401 {object} map[string]string
// @Router /participants [post]
func (app *App) handleAddParticipant(c *gin.Context) {
	p := app.store.Add()
	app.logger.Info("participant added", "id", p.ID)
	c.JSON(http.StatusCreated, p)
}

// handleUpdateParticipant godoc
// @Summary Update a participant
// @Description Apply a field-level patch to one roster row. Updating an id that
// @Description no longer exists is absorbed as a no-op, since the grid may race
// @Description a deletion.
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Participant id"
// @Param patch body types.ParticipantPatch true "Fields to replace"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /participants/{id} [patch]
func (app *App) handleUpdateParticipant(c *gin.Context) {
	var patch types.ParticipantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated := app.store.Update(c.Param("id"), patch)
	if !updated {
		app.logger.Debug("update for missing participant ignored", "id", c.Param("id"))
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// handleDeleteParticipant godoc
// @Summary Delete a participant
// @Description Remove one roster row. Deleting the selected row clears the
// @Description selection; deleting a missing id is a no-op.
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Param id path string true "Participant id"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Router /participants/{id} [delete]
func (app *App) handleDeleteParticipant(c *gin.Context) {
	removed := app.store.Remove(c.Param("id"))
	if removed {
		app.logger.Info("participant removed", "id", c.Param("id"))
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// handleBusStats godoc
// @Summary Bus occupancy stats
// @Description Count participants per bus; unassigned rows count toward no bus
// @Tags roster
// @Produce json
// @Success 200 {object} BusStatsResponse
// @Router /participants/stats [get]
func (app *App) handleBusStats(c *gin.Context) {
	counts := app.store.BusCounts()
	total := app.store.Len()

	resp := BusStatsResponse{
		Total: total,
		Buses: make(map[int]int, len(counts)),
	}
	assigned := 0
	for bus, n := range counts {
		resp.Buses[int(bus)] = n
		assigned += n
	}
	resp.Unassigned = total - assigned

	c.JSON(http.StatusOK, resp)
}

// handleGetSelection godoc
// @Summary Get the selected participant
// @Tags selection
// @Produce json
// @Success 200 {object} SelectionResponse
// @Router /selection [get]
func (app *App) handleGetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, selectionResponse(app.store.Selected()))
}

// handlePutSelection godoc
// @Summary Set or clear the selected participant
// @Description Select a roster row by id, or clear with null. Selecting an id
// @Description that is no longer on the roster clears the selection instead.
// @Tags selection
// @Accept json
// @Produce json
// @Success 200 {object} SelectionResponse
// @Failure 400 {object} map[string]string
// @Router /selection [put]
func (app *App) handlePutSelection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := ""
	if req.SelectedID != nil {
		id = *req.SelectedID
	}
	app.store.Select(id)

	c.JSON(http.StatusOK, selectionResponse(app.store.Selected()))
}

func selectionResponse(id string) SelectionResponse {
	if id == "" {
		return SelectionResponse{}
	}
	return SelectionResponse{SelectedID: &id}
}
