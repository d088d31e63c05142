package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ReminderType classifies what a reminder prompts for.
type ReminderType string

const (
	ReminderMedication  ReminderType = "medication"
	ReminderAppointment ReminderType = "appointment"
	ReminderHydration   ReminderType = "hydration"
	ReminderOther       ReminderType = "other"
)

// Reminder is a schedulable prompt belonging to one elderly user. Time is a
// 24-hour "HH:MM" wall-clock string in the viewer's local timezone. For
// recurring reminders the Completed flag only tracks the latest completion;
// per-day state lives in ReminderCompletion records.
type Reminder struct {
	ID            string       `gorm:"primaryKey;size:36" json:"id"`
	ElderlyID     string       `gorm:"size:36;index;not null" json:"elderly_id"`
	Type          ReminderType `gorm:"size:20;not null" json:"type"`
	Title         string       `gorm:"size:100;not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description,omitempty"`
	Time          string       `gorm:"size:5;not null" json:"time"`
	Recurring     bool         `json:"recurring"`
	Frequency     string       `gorm:"size:20" json:"frequency,omitempty"`
	RelatedItemID string       `gorm:"size:36" json:"related_item_id,omitempty"`
	Completed     bool         `json:"completed"`
	CompletedTime string       `gorm:"size:35" json:"completed_time,omitempty"`
	Notified      bool         `json:"notified"`
}

// ReminderCompletion marks one occurrence of a recurring reminder as done on
// a specific local calendar date ("YYYY-MM-DD"). Completing a daily reminder
// on Monday therefore does not hide it on Tuesday.
type ReminderCompletion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReminderID  string    `gorm:"size:36;index;not null" json:"reminder_id"`
	Date        string    `gorm:"size:10;index;not null" json:"date"`
	CompletedAt time.Time `json:"completed_at"`
}

// ScheduleSlot is one dosing slot of a medication schedule.
type ScheduleSlot struct {
	Time string   `json:"time"`
	Days []string `json:"days"`
}

// ScheduleSlotList is stored as a JSON column.
type ScheduleSlotList []ScheduleSlot

func (s ScheduleSlotList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *ScheduleSlotList) Scan(value interface{}) error {
	if value == nil {
		*s = make([]ScheduleSlot, 0)
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for ScheduleSlotList: %T", value)
	}
}

// Medication describes a prescription with its dosing schedule.
type Medication struct {
	ID           string           `gorm:"primaryKey;size:36" json:"id"`
	ElderlyID    string           `gorm:"size:36;index;not null" json:"elderly_id"`
	Name         string           `gorm:"size:100;not null" json:"name"`
	Dosage       string           `gorm:"size:50" json:"dosage"`
	Frequency    string           `gorm:"size:50" json:"frequency"`
	Schedule     ScheduleSlotList `gorm:"type:json" json:"schedule"`
	Instructions string           `gorm:"type:text" json:"instructions,omitempty"`
	StartDate    string           `gorm:"size:10" json:"start_date"`
	EndDate      string           `gorm:"size:10" json:"end_date,omitempty"`
}

// Appointment is a dated medical visit. Date is "YYYY-MM-DD", Time "HH:MM".
type Appointment struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	ElderlyID  string `gorm:"size:36;index;not null" json:"elderly_id"`
	Title      string `gorm:"size:100;not null" json:"title"`
	Date       string `gorm:"size:10;not null" json:"date"`
	Time       string `gorm:"size:5" json:"time"`
	Location   string `gorm:"size:255" json:"location,omitempty"`
	DoctorName string `gorm:"size:100" json:"doctor_name,omitempty"`
	Notes      string `gorm:"type:text" json:"notes,omitempty"`
}

type CreateReminderInput struct {
	ElderlyID     string       `json:"elderly_id"`
	Type          ReminderType `json:"type" binding:"required,oneof=medication appointment hydration other"`
	Title         string       `json:"title" binding:"required"`
	Description   string       `json:"description"`
	Time          string       `json:"time" binding:"required"`
	Recurring     bool         `json:"recurring"`
	Frequency     string       `json:"frequency"`
	RelatedItemID string       `json:"related_item_id"`
}

type UpdateReminderInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Time        *string `json:"time"`
	Recurring   *bool   `json:"recurring"`
	Frequency   *string `json:"frequency"`
}

func (in UpdateReminderInput) Apply(r *Reminder) {
	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.Time != nil {
		r.Time = *in.Time
	}
	if in.Recurring != nil {
		r.Recurring = *in.Recurring
	}
	if in.Frequency != nil {
		r.Frequency = *in.Frequency
	}
}

type CreateMedicationInput struct {
	ElderlyID    string         `json:"elderly_id"`
	Name         string         `json:"name" binding:"required"`
	Dosage       string         `json:"dosage" binding:"required"`
	Frequency    string         `json:"frequency"`
	Schedule     []ScheduleSlot `json:"schedule"`
	Instructions string         `json:"instructions"`
	StartDate    string         `json:"start_date" binding:"required"`
	EndDate      string         `json:"end_date"`
}

type UpdateMedicationInput struct {
	Name         *string         `json:"name"`
	Dosage       *string         `json:"dosage"`
	Frequency    *string         `json:"frequency"`
	Schedule     *[]ScheduleSlot `json:"schedule"`
	Instructions *string         `json:"instructions"`
	StartDate    *string         `json:"start_date"`
	EndDate      *string         `json:"end_date"`
}

func (in UpdateMedicationInput) Apply(m *Medication) {
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Dosage != nil {
		m.Dosage = *in.Dosage
	}
	if in.Frequency != nil {
		m.Frequency = *in.Frequency
	}
	if in.Schedule != nil {
		m.Schedule = *in.Schedule
	}
	if in.Instructions != nil {
		m.Instructions = *in.Instructions
	}
	if in.StartDate != nil {
		m.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		m.EndDate = *in.EndDate
	}
}

type CreateAppointmentInput struct {
	ElderlyID  string `json:"elderly_id"`
	Title      string `json:"title" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time"`
	Location   string `json:"location"`
	DoctorName string `json:"doctor_name"`
	Notes      string `json:"notes"`
}

type UpdateAppointmentInput struct {
	Title      *string `json:"title"`
	Date       *string `json:"date"`
	Time       *string `json:"time"`
	Location   *string `json:"location"`
	DoctorName *string `json:"doctor_name"`
	Notes      *string `json:"notes"`
}

func (in UpdateAppointmentInput) Apply(a *Appointment) {
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Date != nil {
		a.Date = *in.Date
	}
	if in.Time != nil {
		a.Time = *in.Time
	}
	if in.Location != nil {
		a.Location = *in.Location
	}
	if in.DoctorName != nil {
		a.DoctorName = *in.DoctorName
	}
	if in.Notes != nil {
		a.Notes = *in.Notes
	}
}
