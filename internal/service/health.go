// Package service holds the session-scoped business rules between the HTTP
// handlers and the stores.
package service

import (
	"errors"
	"sort"
	"time"

	"eldercare-backend/internal/access"
	"eldercare-backend/internal/models"
	"eldercare-backend/internal/store"
	"eldercare-backend/pkg/utils"
)

var (
	// ErrForbidden means the session user lacks the capability for the
	// target elderly user's data.
	ErrForbidden = errors.New("not allowed for this user")
	// ErrNotFound means no record with the given id is visible.
	ErrNotFound = errors.New("record not found")
)

const (
	defaultHealthLogLimit = 7
	defaultCheckInLimit   = 5
)

// HealthService owns vital-sign logs and daily check-ins, always scoped to
// the elderly users visible to the session.
type HealthService struct {
	store store.HealthStore
	now   func() time.Time
}

func NewHealthService(st store.HealthStore) *HealthService {
	return &HealthService{store: st, now: time.Now}
}

// ownerFor resolves which elderly user a new record belongs to: an explicit
// target id, or the session user itself when elderly.
func ownerFor(u models.User, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if u.Role == models.RoleElderly {
		return u.ID
	}
	return ""
}

// HealthLogs returns every visible log, newest first.
func (s *HealthService) HealthLogs(u models.User) []models.HealthLog {
	logs := s.store.HealthLogsByElderly(access.VisibleElderlyIDs(u))
	sort.Slice(logs, func(i, j int) bool { return logs[i].Timestamp.After(logs[j].Timestamp) })
	return logs
}

// RecentHealthLogs returns up to limit logs of one vital type, newest first.
// limit <= 0 selects the default of 7.
func (s *HealthService) RecentHealthLogs(u models.User, typ string, limit int) []models.HealthLog {
	if limit <= 0 {
		limit = defaultHealthLogLimit
	}
	all := s.HealthLogs(u)
	out := make([]models.HealthLog, 0, limit)
	for _, l := range all {
		if l.Type != typ {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (s *HealthService) AddHealthLog(u models.User, in models.CreateHealthLogInput) (models.HealthLog, error) {
	elderlyID := ownerFor(u, in.ElderlyID)
	if !access.CanManage(u, elderlyID) {
		return models.HealthLog{}, ErrForbidden
	}

	ts := s.now()
	if in.Timestamp != "" {
		if parsed, err := time.Parse(time.RFC3339, in.Timestamp); err == nil {
			ts = parsed
		}
	}

	l := models.HealthLog{
		ID:        utils.NewID(),
		ElderlyID: elderlyID,
		Type:      in.Type,
		Value:     in.Value,
		Unit:      in.Unit,
		Timestamp: ts,
		Notes:     in.Notes,
	}
	if err := s.store.SaveHealthLog(l); err != nil {
		return models.HealthLog{}, err
	}
	return l, nil
}

func (s *HealthService) UpdateHealthLog(u models.User, id string, in models.UpdateHealthLogInput) (models.HealthLog, error) {
	l, ok := s.store.HealthLogByID(id)
	if !ok {
		return models.HealthLog{}, ErrNotFound
	}
	if !access.CanManage(u, l.ElderlyID) {
		return models.HealthLog{}, ErrForbidden
	}
	in.Apply(&l)
	if err := s.store.SaveHealthLog(l); err != nil {
		return models.HealthLog{}, err
	}
	return l, nil
}

func (s *HealthService) DeleteHealthLog(u models.User, id string) error {
	l, ok := s.store.HealthLogByID(id)
	if !ok {
		return ErrNotFound
	}
	if !access.CanManage(u, l.ElderlyID) {
		return ErrForbidden
	}
	return s.store.DeleteHealthLog(id)
}

// CheckIns returns every visible check-in, newest first.
func (s *HealthService) CheckIns(u models.User) []models.CheckIn {
	checkIns := s.store.CheckInsByElderly(access.VisibleElderlyIDs(u))
	sort.Slice(checkIns, func(i, j int) bool { return checkIns[i].Timestamp.After(checkIns[j].Timestamp) })
	return checkIns
}

// RecentCheckIns returns up to limit check-ins regardless of content, newest
// first. limit <= 0 selects the default of 5.
func (s *HealthService) RecentCheckIns(u models.User, limit int) []models.CheckIn {
	if limit <= 0 {
		limit = defaultCheckInLimit
	}
	all := s.CheckIns(u)
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// AddCheckIn records a self-reported check-in for the session user. Only
// elderly users may check in, and only for themselves.
func (s *HealthService) AddCheckIn(u models.User, in models.CreateCheckInInput) (models.CheckIn, error) {
	if !access.CanCheckIn(u, u.ID) {
		return models.CheckIn{}, ErrForbidden
	}

	ci := models.CheckIn{
		ID:          utils.NewID(),
		ElderlyID:   u.ID,
		Timestamp:   s.now(),
		MoodRating:  in.MoodRating,
		Notes:       in.Notes,
		PainLevel:   in.PainLevel,
		Symptoms:    models.StringList(in.Symptoms),
		Medications: models.MedicationIntakeList(in.Medications),
	}
	if err := s.store.SaveCheckIn(ci); err != nil {
		return models.CheckIn{}, err
	}
	return ci, nil
}

func (s *HealthService) UpdateCheckIn(u models.User, id string, in models.UpdateCheckInInput) (models.CheckIn, error) {
	ci, ok := s.store.CheckInByID(id)
	if !ok {
		return models.CheckIn{}, ErrNotFound
	}
	if !access.CanCheckIn(u, ci.ElderlyID) {
		return models.CheckIn{}, ErrForbidden
	}
	in.Apply(&ci)
	if err := s.store.SaveCheckIn(ci); err != nil {
		return models.CheckIn{}, err
	}
	return ci, nil
}

func (s *HealthService) DeleteCheckIn(u models.User, id string) error {
	ci, ok := s.store.CheckInByID(id)
	if !ok {
		return ErrNotFound
	}
	if !access.CanCheckIn(u, ci.ElderlyID) {
		return ErrForbidden
	}
	return s.store.DeleteCheckIn(id)
}
