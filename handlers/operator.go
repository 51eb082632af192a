package handlers

import (
	"net/http"

	"porter/services/operator"
	"porter/utils"

	"github.com/gin-gonic/gin"
)

// OperatorHandler exposes dashboard operator account and session endpoints.
type OperatorHandler struct {
	Svc operator.OperatorService
}

func NewOperatorHandler(svc operator.OperatorService) *OperatorHandler {
	return &OperatorHandler{Svc: svc}
}

// Register handles POST /api/operators/register.
func (h *OperatorHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	op, err := h.Svc.Register(c.Request.Context(), input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		utils.JSONFail(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "operator": op})
}

// Login handles POST /api/operators/login. On success an OTP is emailed and
// the operator ID is returned for the verify step.
func (h *OperatorHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	operatorID, err := h.Svc.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONFail(c, http.StatusUnauthorized, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "operatorId": operatorID, "otpRequired": true})
}

// VerifyOTP handles POST /api/operators/verify-otp and issues the session token.
func (h *OperatorHandler) VerifyOTP(c *gin.Context) {
	var input struct {
		OperatorID string `json:"operatorId"`
		OTP        string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	token, err := h.Svc.VerifyOTP(c.Request.Context(), input.OperatorID, input.OTP)
	if err != nil {
		utils.JSONFail(c, http.StatusUnauthorized, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Revoke handles DELETE /api/operators/session, killing the caller's session.
func (h *OperatorHandler) Revoke(c *gin.Context) {
	operatorID := c.GetString("operatorID")
	if err := h.Svc.Revoke(c.Request.Context(), operatorID); err != nil {
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me handles GET /api/operators/me.
func (h *OperatorHandler) Me(c *gin.Context) {
	op, err := h.Svc.GetByID(c.Request.Context(), c.GetString("operatorID"))
	if err != nil {
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "operator": op})
}
