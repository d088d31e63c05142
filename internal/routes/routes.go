package routes

import (
	"eldercare-backend/internal/handlers"
	"eldercare-backend/internal/middleware"
	"eldercare-backend/internal/store"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Set, dir store.UserDirectory) {
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(dir))
		{
			protected.POST("/auth/logout", h.Auth.Logout)
			protected.GET("/profile", h.Auth.GetProfile)
			protected.PUT("/profile", h.Auth.UpdateProfile)

			protected.GET("/health-logs", h.Health.ListHealthLogs)
			protected.GET("/health-logs/recent", h.Health.RecentHealthLogs)
			protected.POST("/health-logs", h.Health.AddHealthLog)
			protected.PUT("/health-logs/:id", h.Health.UpdateHealthLog)
			protected.DELETE("/health-logs/:id", h.Health.DeleteHealthLog)

			protected.GET("/check-ins", h.Health.ListCheckIns)
			protected.GET("/check-ins/recent", h.Health.RecentCheckIns)
			protected.POST("/check-ins", h.Health.AddCheckIn)
			protected.PUT("/check-ins/:id", h.Health.UpdateCheckIn)
			protected.DELETE("/check-ins/:id", h.Health.DeleteCheckIn)

			protected.GET("/reminders", h.Reminder.ListReminders)
			protected.GET("/reminders/today", h.Reminder.TodaysReminders)
			protected.GET("/reminders/upcoming", h.Reminder.UpcomingReminders)
			protected.GET("/reminders/missed", h.Reminder.MissedReminders)
			protected.POST("/reminders", h.Reminder.AddReminder)
			protected.PUT("/reminders/:id", h.Reminder.UpdateReminder)
			protected.DELETE("/reminders/:id", h.Reminder.DeleteReminder)
			protected.POST("/reminders/:id/complete", h.Reminder.CompleteReminder)
			protected.POST("/reminders/schedule", h.Reminder.ScheduleNotifications)

			protected.GET("/medications", h.Reminder.ListMedications)
			protected.POST("/medications", h.Reminder.AddMedication)
			protected.PUT("/medications/:id", h.Reminder.UpdateMedication)
			protected.DELETE("/medications/:id", h.Reminder.DeleteMedication)

			protected.GET("/appointments", h.Reminder.ListAppointments)
			protected.POST("/appointments", h.Reminder.AddAppointment)
			protected.PUT("/appointments/:id", h.Reminder.UpdateAppointment)
			protected.DELETE("/appointments/:id", h.Reminder.DeleteAppointment)

			protected.POST("/notifications/test", h.Notification.ScheduleTest)
			protected.DELETE("/notifications/:id", h.Notification.Cancel)
			protected.DELETE("/notifications", h.Notification.CancelAll)
		}
	}
}
