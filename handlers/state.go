package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	stateRepo "porter/database/repository/state"
	"porter/utils"

	"github.com/gin-gonic/gin"
)

// StateHandler persists opaque per-dashboard state blobs.
type StateHandler struct {
	States stateRepo.StateRepository
}

func NewStateHandler(states stateRepo.StateRepository) *StateHandler {
	return &StateHandler{States: states}
}

// Get handles GET /api/state/:key.
func (h *StateHandler) Get(c *gin.Context) {
	state, err := h.States.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if state == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": state})
}

// Set handles PUT /api/state/:key. The body must be valid JSON but its shape
// is otherwise the dashboard's business.
func (h *StateHandler) Set(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "failed to read body")
		return
	}
	if !json.Valid(payload) {
		utils.JSONFail(c, http.StatusBadRequest, "body must be valid JSON")
		return
	}

	if err := h.States.Set(c.Request.Context(), c.Param("key"), string(payload)); err != nil {
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
