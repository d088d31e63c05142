package handlers

import (
	"net/http"

	"eldercare-backend/internal/models"
	"eldercare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func (h *ReminderHandler) ListMedications(c *gin.Context) {
	user, _ := currentUser(c)
	utils.APIResponse(c, http.StatusOK, true, "Medications", h.engine.Medications(user))
}

func (h *ReminderHandler) AddMedication(c *gin.Context) {
	user, _ := currentUser(c)

	var input models.CreateMedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	m, err := h.engine.AddMedication(user, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Medication added", m)
}

func (h *ReminderHandler) UpdateMedication(c *gin.Context) {
	user, _ := currentUser(c)

	var input models.UpdateMedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	m, err := h.engine.UpdateMedication(user, c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Medication updated", m)
}

func (h *ReminderHandler) DeleteMedication(c *gin.Context) {
	user, _ := currentUser(c)
	if err := h.engine.DeleteMedication(user, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Medication deleted", nil)
}
