package handlers

import (
	"net/http"

	"eldercare-backend/internal/models"
	"eldercare-backend/internal/service"
	"eldercare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	engine *service.ReminderService
}

func (h *ReminderHandler) ListReminders(c *gin.Context) {
	user, _ := currentUser(c)
	utils.APIResponse(c, http.StatusOK, true, "Reminders", h.engine.Reminders(user))
}

func (h *ReminderHandler) TodaysReminders(c *gin.Context) {
	user, _ := currentUser(c)
	utils.APIResponse(c, http.StatusOK, true, "Today's reminders", h.engine.TodaysReminders(user))
}

func (h *ReminderHandler) UpcomingReminders(c *gin.Context) {
	user, _ := currentUser(c)
	utils.APIResponse(c, http.StatusOK, true, "Upcoming reminders", h.engine.UpcomingReminders(user))
}

func (h *ReminderHandler) MissedReminders(c *gin.Context) {
	user, _ := currentUser(c)
	utils.APIResponse(c, http.StatusOK, true, "Missed reminders", h.engine.MissedReminders(user))
}

func (h *ReminderHandler) AddReminder(c *gin.Context) {
	user, _ := currentUser(c)

	var input models.CreateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	r, err := h.engine.AddReminder(user, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Reminder added", r)
}

func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	user, _ := currentUser(c)

	var input models.UpdateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	r, err := h.engine.UpdateReminder(user, c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Reminder updated", r)
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	user, _ := currentUser(c)
	if err := h.engine.DeleteReminder(user, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Reminder deleted", nil)
}

// CompleteReminder marks one occurrence done; repeating it is harmless.
func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	user, _ := currentUser(c)
	r, err := h.engine.MarkReminderComplete(user, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Reminder completed", r)
}

// ScheduleNotifications arms device notifications for open reminders and
// reports per-reminder outcomes; individual failures are not fatal.
func (h *ReminderHandler) ScheduleNotifications(c *gin.Context) {
	user, _ := currentUser(c)
	outcomes := h.engine.ScheduleNotifications(user)
	utils.APIResponse(c, http.StatusOK, true, "Notification scheduling complete", outcomes)
}
