package handlers

import (
	"net/http"

	"eldercare-backend/internal/models"
	"eldercare-backend/internal/service"
	"eldercare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	health *service.HealthService
}

func (h *HealthHandler) ListHealthLogs(c *gin.Context) {
	user, _ := currentUser(c)
	utils.APIResponse(c, http.StatusOK, true, "Health logs", h.health.HealthLogs(user))
}

// RecentHealthLogs returns the newest entries of one vital type.
// Query: type (required), limit (default 7).
func (h *HealthHandler) RecentHealthLogs(c *gin.Context) {
	user, _ := currentUser(c)
	typ := c.Query("type")
	if typ == "" {
		utils.APIResponse(c, http.StatusBadRequest, false, "Missing type parameter", nil)
		return
	}
	limit := queryInt(c, "limit", 0)
	utils.APIResponse(c, http.StatusOK, true, "Recent health logs", h.health.RecentHealthLogs(user, typ, limit))
}

func (h *HealthHandler) AddHealthLog(c *gin.Context) {
	user, _ := currentUser(c)

	var input models.CreateHealthLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	log, err := h.health.AddHealthLog(user, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Health log added", log)
}

func (h *HealthHandler) UpdateHealthLog(c *gin.Context) {
	user, _ := currentUser(c)

	var input models.UpdateHealthLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	log, err := h.health.UpdateHealthLog(user, c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Health log updated", log)
}

func (h *HealthHandler) DeleteHealthLog(c *gin.Context) {
	user, _ := currentUser(c)
	if err := h.health.DeleteHealthLog(user, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Health log deleted", nil)
}

func (h *HealthHandler) ListCheckIns(c *gin.Context) {
	user, _ := currentUser(c)
	utils.APIResponse(c, http.StatusOK, true, "Check-ins", h.health.CheckIns(user))
}

// RecentCheckIns returns the newest check-ins. Query: limit (default 5).
func (h *HealthHandler) RecentCheckIns(c *gin.Context) {
	user, _ := currentUser(c)
	limit := queryInt(c, "limit", 0)
	utils.APIResponse(c, http.StatusOK, true, "Recent check-ins", h.health.RecentCheckIns(user, limit))
}

func (h *HealthHandler) AddCheckIn(c *gin.Context) {
	user, _ := currentUser(c)

	var input models.CreateCheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	ci, err := h.health.AddCheckIn(user, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Check-in recorded", ci)
}

func (h *HealthHandler) UpdateCheckIn(c *gin.Context) {
	user, _ := currentUser(c)

	var input models.UpdateCheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	ci, err := h.health.UpdateCheckIn(user, c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Check-in updated", ci)
}

func (h *HealthHandler) DeleteCheckIn(c *gin.Context) {
	user, _ := currentUser(c)
	if err := h.health.DeleteCheckIn(user, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Check-in deleted", nil)
}
