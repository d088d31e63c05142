// Package store defines the repository contracts behind the mock directory
// and the record collections, with an in-memory implementation (the default,
// seeded demo dataset) and a MySQL-backed one selected at startup.
package store

import (
	"errors"

	"eldercare-backend/internal/models"
)

// ErrDuplicateEmail is returned when creating a user whose email is taken.
var ErrDuplicateEmail = errors.New("email already registered")

// UserDirectory is the account lookup a real backend would serve.
type UserDirectory interface {
	// FindByEmail matches case-insensitively.
	FindByEmail(email string) (models.User, bool)
	FindByID(id string) (models.User, bool)
	CreateUser(u models.User) error
	SaveUser(u models.User) error
}

// HealthStore holds vital-sign logs and daily check-ins. Read methods return
// empty slices on backend failure; the failure is logged, not surfaced.
type HealthStore interface {
	HealthLogsByElderly(elderlyIDs []string) []models.HealthLog
	HealthLogByID(id string) (models.HealthLog, bool)
	SaveHealthLog(l models.HealthLog) error
	DeleteHealthLog(id string) error

	CheckInsByElderly(elderlyIDs []string) []models.CheckIn
	CheckInByID(id string) (models.CheckIn, bool)
	SaveCheckIn(ci models.CheckIn) error
	DeleteCheckIn(id string) error
}

// ReminderStore holds reminders, medications, appointments and the date-keyed
// completion records for recurring reminders.
type ReminderStore interface {
	RemindersByElderly(elderlyIDs []string) []models.Reminder
	ReminderByID(id string) (models.Reminder, bool)
	SaveReminder(r models.Reminder) error
	DeleteReminder(id string) error

	MedicationsByElderly(elderlyIDs []string) []models.Medication
	MedicationByID(id string) (models.Medication, bool)
	SaveMedication(m models.Medication) error
	DeleteMedication(id string) error

	AppointmentsByElderly(elderlyIDs []string) []models.Appointment
	AppointmentByID(id string) (models.Appointment, bool)
	SaveAppointment(a models.Appointment) error
	DeleteAppointment(id string) error

	CompletionOn(reminderID, date string) (models.ReminderCompletion, bool)
	AddCompletion(c models.ReminderCompletion) error
}

// Store bundles the three contracts; both implementations satisfy all of them.
type Store interface {
	UserDirectory
	HealthStore
	ReminderStore
}
