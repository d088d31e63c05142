package handlers

import (
	"net/http"

	"eldercare-backend/internal/models"
	"eldercare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func (h *ReminderHandler) ListAppointments(c *gin.Context) {
	user, _ := currentUser(c)
	utils.APIResponse(c, http.StatusOK, true, "Appointments", h.engine.Appointments(user))
}

func (h *ReminderHandler) AddAppointment(c *gin.Context) {
	user, _ := currentUser(c)

	var input models.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	a, err := h.engine.AddAppointment(user, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Appointment added", a)
}

func (h *ReminderHandler) UpdateAppointment(c *gin.Context) {
	user, _ := currentUser(c)

	var input models.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	a, err := h.engine.UpdateAppointment(user, c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Appointment updated", a)
}

func (h *ReminderHandler) DeleteAppointment(c *gin.Context) {
	user, _ := currentUser(c)
	if err := h.engine.DeleteAppointment(user, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Appointment deleted", nil)
}
