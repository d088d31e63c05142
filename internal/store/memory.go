package store

import (
	"strings"
	"sync"

	"eldercare-backend/internal/models"
)

// MemoryStore keeps everything in maps guarded by one RWMutex. It is the
// default backend and the one the demo dataset is seeded into.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]models.User
	healthLogs   map[string]models.HealthLog
	checkIns     map[string]models.CheckIn
	reminders    map[string]models.Reminder
	medications  map[string]models.Medication
	appointments map[string]models.Appointment
	completions  map[string]models.ReminderCompletion // keyed reminderID + "|" + date
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]models.User),
		healthLogs:   make(map[string]models.HealthLog),
		checkIns:     make(map[string]models.CheckIn),
		reminders:    make(map[string]models.Reminder),
		medications:  make(map[string]models.Medication),
		appointments: make(map[string]models.Appointment),
		completions:  make(map[string]models.ReminderCompletion),
	}
}

func (s *MemoryStore) FindByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *MemoryStore) FindByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *MemoryStore) CreateUser(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return ErrDuplicateEmail
		}
	}
	s.users[u.ID] = u
	return nil
}

func (s *MemoryStore) SaveUser(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *MemoryStore) HealthLogsByElderly(elderlyIDs []string) []models.HealthLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HealthLog, 0)
	for _, l := range s.healthLogs {
		if contains(elderlyIDs, l.ElderlyID) {
			out = append(out, l)
		}
	}
	return out
}

func (s *MemoryStore) HealthLogByID(id string) (models.HealthLog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.healthLogs[id]
	return l, ok
}

func (s *MemoryStore) SaveHealthLog(l models.HealthLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthLogs[l.ID] = l
	return nil
}

func (s *MemoryStore) DeleteHealthLog(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.healthLogs, id)
	return nil
}

func (s *MemoryStore) CheckInsByElderly(elderlyIDs []string) []models.CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CheckIn, 0)
	for _, ci := range s.checkIns {
		if contains(elderlyIDs, ci.ElderlyID) {
			out = append(out, ci)
		}
	}
	return out
}

func (s *MemoryStore) CheckInByID(id string) (models.CheckIn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ci, ok := s.checkIns[id]
	return ci, ok
}

func (s *MemoryStore) SaveCheckIn(ci models.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkIns[ci.ID] = ci
	return nil
}

func (s *MemoryStore) DeleteCheckIn(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.checkIns, id)
	return nil
}

func (s *MemoryStore) RemindersByElderly(elderlyIDs []string) []models.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reminder, 0)
	for _, r := range s.reminders {
		if contains(elderlyIDs, r.ElderlyID) {
			out = append(out, r)
		}
	}
	return out
}

func (s *MemoryStore) ReminderByID(id string) (models.Reminder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reminders[id]
	return r, ok
}

func (s *MemoryStore) SaveReminder(r models.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders[r.ID] = r
	return nil
}

func (s *MemoryStore) DeleteReminder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reminders, id)
	return nil
}

func (s *MemoryStore) MedicationsByElderly(elderlyIDs []string) []models.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Medication, 0)
	for _, m := range s.medications {
		if contains(elderlyIDs, m.ElderlyID) {
			out = append(out, m)
		}
	}
	return out
}

func (s *MemoryStore) MedicationByID(id string) (models.Medication, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.medications[id]
	return m, ok
}

func (s *MemoryStore) SaveMedication(m models.Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.medications[m.ID] = m
	return nil
}

func (s *MemoryStore) DeleteMedication(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.medications, id)
	return nil
}

func (s *MemoryStore) AppointmentsByElderly(elderlyIDs []string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, 0)
	for _, a := range s.appointments {
		if contains(elderlyIDs, a.ElderlyID) {
			out = append(out, a)
		}
	}
	return out
}

func (s *MemoryStore) AppointmentByID(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	return a, ok
}

func (s *MemoryStore) SaveAppointment(a models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[a.ID] = a
	return nil
}

func (s *MemoryStore) DeleteAppointment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.appointments, id)
	return nil
}

func completionKey(reminderID, date string) string {
	return reminderID + "|" + date
}

func (s *MemoryStore) CompletionOn(reminderID, date string) (models.ReminderCompletion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.completions[completionKey(reminderID, date)]
	return c, ok
}

func (s *MemoryStore) AddCompletion(c models.ReminderCompletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completions[completionKey(c.ReminderID, c.Date)] = c
	return nil
}
