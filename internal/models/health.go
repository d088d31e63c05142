package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Vital sign types recorded by the mobile clients.
const (
	LogBloodPressure = "bloodPressure"
	LogBloodSugar    = "bloodSugar"
	LogWeight        = "weight"
	LogHeartRate     = "heartRate"
)

// HealthLog is a single vital-sign reading for one elderly user. The value is
// kept as a string because some vitals are composite ("120/80").
type HealthLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ElderlyID string    `gorm:"size:36;index;not null" json:"elderly_id"`
	Type      string    `gorm:"size:30;not null" json:"type"`
	Value     string    `gorm:"size:30;not null" json:"value"`
	Unit      string    `gorm:"size:20" json:"unit"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
}

// MedicationIntake records whether one scheduled dose was taken.
type MedicationIntake struct {
	MedicationID string `json:"medication_id"`
	Taken        bool   `json:"taken"`
	Time         string `json:"time"`
}

// MedicationIntakeList is stored as a JSON column.
type MedicationIntakeList []MedicationIntake

func (m MedicationIntakeList) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	return json.Marshal(m)
}

func (m *MedicationIntakeList) Scan(value interface{}) error {
	if value == nil {
		*m = make([]MedicationIntake, 0)
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type for MedicationIntakeList: %T", value)
	}
}

// CheckIn is a daily self-reported wellbeing record.
type CheckIn struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	ElderlyID   string               `gorm:"size:36;index;not null" json:"elderly_id"`
	Timestamp   time.Time            `gorm:"index" json:"timestamp"`
	MoodRating  int                  `json:"mood_rating"`
	Notes       string               `gorm:"type:text" json:"notes,omitempty"`
	PainLevel   int                  `json:"pain_level"`
	Symptoms    StringList           `gorm:"type:json" json:"symptoms"`
	Medications MedicationIntakeList `gorm:"type:json" json:"medications"`
}

type CreateHealthLogInput struct {
	ElderlyID string `json:"elderly_id"`
	Type      string `json:"type" binding:"required"`
	Value     string `json:"value" binding:"required"`
	Unit      string `json:"unit"`
	Timestamp string `json:"timestamp"`
	Notes     string `json:"notes"`
}

type UpdateHealthLogInput struct {
	Type  *string `json:"type"`
	Value *string `json:"value"`
	Unit  *string `json:"unit"`
	Notes *string `json:"notes"`
}

func (in UpdateHealthLogInput) Apply(l *HealthLog) {
	if in.Type != nil {
		l.Type = *in.Type
	}
	if in.Value != nil {
		l.Value = *in.Value
	}
	if in.Unit != nil {
		l.Unit = *in.Unit
	}
	if in.Notes != nil {
		l.Notes = *in.Notes
	}
}

type CreateCheckInInput struct {
	MoodRating  int                `json:"mood_rating" binding:"required,min=1,max=5"`
	Notes       string             `json:"notes"`
	PainLevel   int                `json:"pain_level" binding:"min=0,max=5"`
	Symptoms    []string           `json:"symptoms"`
	Medications []MedicationIntake `json:"medications"`
}

type UpdateCheckInInput struct {
	MoodRating  *int                `json:"mood_rating" binding:"omitempty,min=1,max=5"`
	Notes       *string             `json:"notes"`
	PainLevel   *int                `json:"pain_level" binding:"omitempty,min=0,max=5"`
	Symptoms    *[]string           `json:"symptoms"`
	Medications *[]MedicationIntake `json:"medications"`
}

func (in UpdateCheckInInput) Apply(ci *CheckIn) {
	if in.MoodRating != nil {
		ci.MoodRating = *in.MoodRating
	}
	if in.Notes != nil {
		ci.Notes = *in.Notes
	}
	if in.PainLevel != nil {
		ci.PainLevel = *in.PainLevel
	}
	if in.Symptoms != nil {
		ci.Symptoms = *in.Symptoms
	}
	if in.Medications != nil {
		ci.Medications = *in.Medications
	}
}
