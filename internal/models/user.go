package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Role identifies which side of the care relationship a user is on.
type Role string

const (
	RoleElderly   Role = "elderly"
	RoleCaregiver Role = "caregiver"
)

// StringList is stored as a JSON column so id linkages survive the gorm driver.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = make([]string, 0)
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Contains reports whether id is in the list.
func (s StringList) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// DoctorInfo is the primary physician contact carried on an elderly profile.
type DoctorInfo struct {
	Name  string `gorm:"size:100" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
}

// MedicalInfo is only present for elderly users.
type MedicalInfo struct {
	Allergies  StringList `gorm:"type:json" json:"allergies"`
	Conditions StringList `gorm:"type:json" json:"conditions"`
	BloodType  string     `gorm:"size:5" json:"blood_type"`
	DoctorInfo DoctorInfo `gorm:"embedded;embeddedPrefix:doctor_" json:"doctor_info"`
}

// User represents an account in the care directory. Elderly users own all
// health and schedule data; caregivers are linked to the elderly users they
// look after and see the union of their data.
type User struct {
	ID               string       `gorm:"primaryKey;size:36" json:"id"`
	Name             string       `gorm:"size:100;not null" json:"name"`
	Email            string       `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone            string       `gorm:"size:20" json:"phone"`
	Role             Role         `gorm:"size:20;not null" json:"role"`
	Birthdate        string       `gorm:"size:10" json:"birthdate,omitempty"`
	EmergencyContact string       `gorm:"size:20" json:"emergency_contact,omitempty"`
	MedicalInfo      *MedicalInfo `gorm:"embedded;embeddedPrefix:medical_" json:"medical_info,omitempty"`
	Caregivers       StringList   `gorm:"type:json" json:"caregivers,omitempty"`
	Elderly          StringList   `gorm:"type:json" json:"elderly,omitempty"`
	FCMToken         string       `gorm:"column:fcm_token;size:255" json:"-"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// RegisterInput captures the sign-up form. The password is accepted for API
// shape compatibility but never stored or checked: the directory is a mock.
type RegisterInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	Role      Role   `json:"role" binding:"required,oneof=elderly caregiver"`
	Birthdate string `json:"birthdate"`
}

// LoginInput captures the login form. FCMToken, when present, is saved so
// push notifications can reach the device that logged in.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcm_token"`
}

// UpdateUserInput is a partial profile update; nil fields are left untouched.
type UpdateUserInput struct {
	Name             *string      `json:"name"`
	Phone            *string      `json:"phone"`
	Birthdate        *string      `json:"birthdate"`
	EmergencyContact *string      `json:"emergency_contact"`
	MedicalInfo      *MedicalInfo `json:"medical_info"`
}

// Apply merges the partial update into the user.
func (in UpdateUserInput) Apply(u *User) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Birthdate != nil {
		u.Birthdate = *in.Birthdate
	}
	if in.EmergencyContact != nil {
		u.EmergencyContact = *in.EmergencyContact
	}
	if in.MedicalInfo != nil {
		u.MedicalInfo = in.MedicalInfo
	}
}
