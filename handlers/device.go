package handlers

import (
	"net/http"

	deviceRepo "porter/database/repository/device"
	"porter/models"
	"porter/utils"

	"github.com/gin-gonic/gin"
)

// DeviceHandler registers dashboard devices for push delivery.
type DeviceHandler struct {
	Devices deviceRepo.DeviceRepository
}

func NewDeviceHandler(devices deviceRepo.DeviceRepository) *DeviceHandler {
	return &DeviceHandler{Devices: devices}
}

// Register handles POST /api/devices. Re-registering an existing token
// replaces the previous row.
func (h *DeviceHandler) Register(c *gin.Context) {
	var input struct {
		Role     string `json:"role"`
		FCMToken string `json:"fcmToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	if input.FCMToken == "" {
		utils.JSONFail(c, http.StatusBadRequest, "fcmToken is required")
		return
	}

	id, err := h.Devices.Register(c.Request.Context(), models.DashboardDevice{
		OperatorID: c.GetString("operatorID"),
		Role:       input.Role,
		FCMToken:   input.FCMToken,
	})
	if err != nil {
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deviceId": id})
}
