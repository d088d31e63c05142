package store

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"eldercare-backend/internal/models"
)

// GormStore implements the store contracts on MySQL. Read failures are logged
// and reduced to "absent", matching the error taxonomy of the in-memory path.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.HealthLog{},
		&models.CheckIn{},
		&models.Reminder{},
		&models.ReminderCompletion{},
		&models.Medication{},
		&models.Appointment{},
	)
	if err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) FindByEmail(email string) (models.User, bool) {
	var u models.User
	if err := s.db.Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("directory lookup failed: %v", err)
		}
		return models.User{}, false
	}
	return u, true
}

func (s *GormStore) FindByID(id string) (models.User, bool) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("directory lookup failed: %v", err)
		}
		return models.User{}, false
	}
	return u, true
}

func (s *GormStore) CreateUser(u models.User) error {
	if _, exists := s.FindByEmail(u.Email); exists {
		return ErrDuplicateEmail
	}
	return s.db.Create(&u).Error
}

func (s *GormStore) SaveUser(u models.User) error {
	return s.db.Save(&u).Error
}

func (s *GormStore) HealthLogsByElderly(elderlyIDs []string) []models.HealthLog {
	out := make([]models.HealthLog, 0)
	if len(elderlyIDs) == 0 {
		return out
	}
	if err := s.db.Where("elderly_id IN ?", elderlyIDs).Find(&out).Error; err != nil {
		log.Printf("health log query failed: %v", err)
	}
	return out
}

func (s *GormStore) HealthLogByID(id string) (models.HealthLog, bool) {
	var l models.HealthLog
	if err := s.db.First(&l, "id = ?", id).Error; err != nil {
		return models.HealthLog{}, false
	}
	return l, true
}

func (s *GormStore) SaveHealthLog(l models.HealthLog) error {
	return s.db.Save(&l).Error
}

func (s *GormStore) DeleteHealthLog(id string) error {
	return s.db.Delete(&models.HealthLog{}, "id = ?", id).Error
}

func (s *GormStore) CheckInsByElderly(elderlyIDs []string) []models.CheckIn {
	out := make([]models.CheckIn, 0)
	if len(elderlyIDs) == 0 {
		return out
	}
	if err := s.db.Where("elderly_id IN ?", elderlyIDs).Find(&out).Error; err != nil {
		log.Printf("check-in query failed: %v", err)
	}
	return out
}

func (s *GormStore) CheckInByID(id string) (models.CheckIn, bool) {
	var ci models.CheckIn
	if err := s.db.First(&ci, "id = ?", id).Error; err != nil {
		return models.CheckIn{}, false
	}
	return ci, true
}

func (s *GormStore) SaveCheckIn(ci models.CheckIn) error {
	return s.db.Save(&ci).Error
}

func (s *GormStore) DeleteCheckIn(id string) error {
	return s.db.Delete(&models.CheckIn{}, "id = ?", id).Error
}

func (s *GormStore) RemindersByElderly(elderlyIDs []string) []models.Reminder {
	out := make([]models.Reminder, 0)
	if len(elderlyIDs) == 0 {
		return out
	}
	if err := s.db.Where("elderly_id IN ?", elderlyIDs).Find(&out).Error; err != nil {
		log.Printf("reminder query failed: %v", err)
	}
	return out
}

func (s *GormStore) ReminderByID(id string) (models.Reminder, bool) {
	var r models.Reminder
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		return models.Reminder{}, false
	}
	return r, true
}

func (s *GormStore) SaveReminder(r models.Reminder) error {
	return s.db.Save(&r).Error
}

func (s *GormStore) DeleteReminder(id string) error {
	return s.db.Delete(&models.Reminder{}, "id = ?", id).Error
}

func (s *GormStore) MedicationsByElderly(elderlyIDs []string) []models.Medication {
	out := make([]models.Medication, 0)
	if len(elderlyIDs) == 0 {
		return out
	}
	if err := s.db.Where("elderly_id IN ?", elderlyIDs).Find(&out).Error; err != nil {
		log.Printf("medication query failed: %v", err)
	}
	return out
}

func (s *GormStore) MedicationByID(id string) (models.Medication, bool) {
	var m models.Medication
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		return models.Medication{}, false
	}
	return m, true
}

func (s *GormStore) SaveMedication(m models.Medication) error {
	return s.db.Save(&m).Error
}

func (s *GormStore) DeleteMedication(id string) error {
	return s.db.Delete(&models.Medication{}, "id = ?", id).Error
}

func (s *GormStore) AppointmentsByElderly(elderlyIDs []string) []models.Appointment {
	out := make([]models.Appointment, 0)
	if len(elderlyIDs) == 0 {
		return out
	}
	if err := s.db.Where("elderly_id IN ?", elderlyIDs).Find(&out).Error; err != nil {
		log.Printf("appointment query failed: %v", err)
	}
	return out
}

func (s *GormStore) AppointmentByID(id string) (models.Appointment, bool) {
	var a models.Appointment
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return models.Appointment{}, false
	}
	return a, true
}

func (s *GormStore) SaveAppointment(a models.Appointment) error {
	return s.db.Save(&a).Error
}

func (s *GormStore) DeleteAppointment(id string) error {
	return s.db.Delete(&models.Appointment{}, "id = ?", id).Error
}

func (s *GormStore) CompletionOn(reminderID, date string) (models.ReminderCompletion, bool) {
	var c models.ReminderCompletion
	err := s.db.Where("reminder_id = ? AND date = ?", reminderID, date).First(&c).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("completion lookup failed: %v", err)
		}
		return models.ReminderCompletion{}, false
	}
	return c, true
}

func (s *GormStore) AddCompletion(c models.ReminderCompletion) error {
	return s.db.Create(&c).Error
}
