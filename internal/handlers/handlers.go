package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"eldercare-backend/internal/middleware"
	"eldercare-backend/internal/models"
	"eldercare-backend/internal/notify"
	"eldercare-backend/internal/service"
	"eldercare-backend/internal/session"
	"eldercare-backend/internal/store"
	"eldercare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Set bundles every handler group with its dependencies wired.
type Set struct {
	Auth         *AuthHandler
	Health       *HealthHandler
	Reminder     *ReminderHandler
	Notification *NotificationHandler
}

func New(dir store.UserDirectory, sessions *session.Manager, health *service.HealthService, reminders *service.ReminderService, sched *notify.Scheduler) *Set {
	return &Set{
		Auth:         &AuthHandler{dir: dir, sessions: sessions},
		Health:       &HealthHandler{health: health},
		Reminder:     &ReminderHandler{engine: reminders},
		Notification: &NotificationHandler{sched: sched},
	}
}

// currentUser pulls the session user resolved by the auth middleware.
func currentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

// queryInt reads an integer query parameter, falling back on absence or junk.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.APIResponse(c, http.StatusNotFound, false, "Record not found", nil)
	case errors.Is(err, service.ErrForbidden):
		utils.APIResponse(c, http.StatusForbidden, false, "Not allowed for this user", nil)
	default:
		utils.APIResponse(c, http.StatusInternalServerError, false, "Storage error", nil)
	}
}
