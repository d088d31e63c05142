package handlers

import (
	"net/http"
	"time"

	"eldercare-backend/internal/notify"
	"eldercare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	sched *notify.Scheduler
}

// TestNotificationInput describes an ad-hoc notification. Exactly one trigger
// shape applies: seconds delay, daily hour/minute, or an absolute time. With
// none given it fires after one second.
type TestNotificationInput struct {
	Title   string            `json:"title" binding:"required"`
	Body    string            `json:"body"`
	Data    map[string]string `json:"data"`
	Seconds int               `json:"seconds"`
	Hour    *int              `json:"hour"`
	Minute  *int              `json:"minute"`
	Repeats bool              `json:"repeats"`
	At      string            `json:"at"`
}

// ScheduleTest registers a one-off or daily notification for the session
// user's device. A scheduling failure is reported in the payload, not as an
// HTTP error.
func (h *NotificationHandler) ScheduleTest(c *gin.Context) {
	user, _ := currentUser(c)

	var input TestNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	var trig notify.Trigger
	switch {
	case input.Repeats && input.Hour != nil && input.Minute != nil:
		trig = notify.Daily(*input.Hour, *input.Minute)
	case input.At != "":
		at, err := time.Parse(time.RFC3339, input.At)
		if err != nil {
			utils.APIResponse(c, http.StatusBadRequest, false, "Invalid trigger time", nil)
			return
		}
		trig = notify.At(at)
	case input.Seconds != 0:
		trig = notify.AfterSeconds(input.Seconds)
	}

	res := h.sched.Schedule(user.FCMToken, input.Title, input.Body, input.Data, trig)
	utils.APIResponse(c, http.StatusOK, res.OK, "Notification scheduling result", res)
}

// Cancel stops one scheduled notification by handle.
func (h *NotificationHandler) Cancel(c *gin.Context) {
	if !h.sched.Cancel(c.Param("id")) {
		utils.APIResponse(c, http.StatusNotFound, false, "Unknown notification handle", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Notification cancelled", nil)
}

// CancelAll stops every scheduled notification.
func (h *NotificationHandler) CancelAll(c *gin.Context) {
	h.sched.CancelAll()
	utils.APIResponse(c, http.StatusOK, true, "All notifications cancelled", nil)
}
