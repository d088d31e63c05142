package service

import (
	"strconv"
	"strings"
	"time"

	"eldercare-backend/internal/access"
	"eldercare-backend/internal/models"
	"eldercare-backend/internal/notify"
	"eldercare-backend/internal/store"
	"eldercare-backend/pkg/utils"
)

const dateLayout = "2006-01-02"

// ReminderService is the schedule engine: it owns reminders, medications and
// appointments, derives the today/upcoming/missed views and drives
// notification scheduling. All views are computed against the viewer's local
// clock at minute granularity.
type ReminderService struct {
	store store.ReminderStore
	sched *notify.Scheduler
	now   func() time.Time
}

func NewReminderService(st store.ReminderStore, sched *notify.Scheduler) *ReminderService {
	return &ReminderService{store: st, sched: sched, now: time.Now}
}

// parseClock splits an "HH:MM" string; ok is false for anything malformed.
func parseClock(s string) (hour, minute int, ok bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// hasTimePassed reports whether now is strictly after the reminder's
// wall-clock time today. Seconds are ignored; an unparseable time never
// counts as passed.
func hasTimePassed(now time.Time, clock string) bool {
	hour, minute, ok := parseClock(clock)
	if !ok {
		return false
	}
	return now.Hour() > hour || (now.Hour() == hour && now.Minute() > minute)
}

// completedOn reports whether the reminder counts as completed for the given
// local date. One-time reminders use the lifecycle flag; recurring reminders
// use their date-keyed completion records, so finishing Monday's dose does
// not hide Tuesday's.
func (s *ReminderService) completedOn(r models.Reminder, date string) bool {
	if !r.Recurring {
		return r.Completed
	}
	_, done := s.store.CompletionOn(r.ID, date)
	return done
}

// Reminders returns every reminder visible to the session user.
func (s *ReminderService) Reminders(u models.User) []models.Reminder {
	return s.store.RemindersByElderly(access.VisibleElderlyIDs(u))
}

// TodaysReminders returns what is due today: recurring reminders not yet
// completed today, appointment reminders whose appointment falls on today's
// date, and any other open one-time reminder.
func (s *ReminderService) TodaysReminders(u models.User) []models.Reminder {
	today := s.now().Format(dateLayout)
	out := make([]models.Reminder, 0)
	for _, r := range s.Reminders(u) {
		if r.Recurring {
			if !s.completedOn(r, today) {
				out = append(out, r)
			}
			continue
		}
		if r.Type == models.ReminderAppointment {
			a, ok := s.store.AppointmentByID(r.RelatedItemID)
			if ok && a.Date == today && !r.Completed {
				out = append(out, r)
			}
			continue
		}
		if !r.Completed {
			out = append(out, r)
		}
	}
	return out
}

// UpcomingReminders returns open reminders with a future occurrence: linked
// appointments strictly after today, plus recurring reminders not yet
// completed today.
func (s *ReminderService) UpcomingReminders(u models.User) []models.Reminder {
	today := s.now().Format(dateLayout)
	out := make([]models.Reminder, 0)
	for _, r := range s.Reminders(u) {
		if r.Type == models.ReminderAppointment && r.RelatedItemID != "" {
			if r.Completed {
				continue
			}
			if a, ok := s.store.AppointmentByID(r.RelatedItemID); ok && a.Date > today {
				out = append(out, r)
			}
			continue
		}
		if !r.Recurring {
			continue
		}
		if !s.completedOn(r, today) {
			out = append(out, r)
		}
	}
	return out
}

// MissedReminders returns open reminders whose time has passed: linked
// appointments on a past date or today with the time passed, and other
// reminders whose wall-clock time has passed without a completion today.
func (s *ReminderService) MissedReminders(u models.User) []models.Reminder {
	now := s.now()
	today := now.Format(dateLayout)
	out := make([]models.Reminder, 0)
	for _, r := range s.Reminders(u) {
		if r.Type == models.ReminderAppointment && r.RelatedItemID != "" {
			if r.Completed {
				continue
			}
			a, ok := s.store.AppointmentByID(r.RelatedItemID)
			if ok && (a.Date < today || (a.Date == today && hasTimePassed(now, r.Time))) {
				out = append(out, r)
			}
			continue
		}
		if !hasTimePassed(now, r.Time) {
			continue
		}
		if !s.completedOn(r, today) {
			out = append(out, r)
		}
	}
	return out
}

// MarkReminderComplete marks one occurrence done. Idempotent per occurrence:
// repeating the call on the same date changes nothing and does not move
// CompletedTime. The stamp is the UTC wall-clock read at completion.
func (s *ReminderService) MarkReminderComplete(u models.User, id string) (models.Reminder, error) {
	r, ok := s.store.ReminderByID(id)
	if !ok {
		return models.Reminder{}, ErrNotFound
	}
	if !access.CanComplete(u, r.ElderlyID) {
		return models.Reminder{}, ErrForbidden
	}

	now := s.now()
	stamp := now.UTC().Format(time.RFC3339)

	if r.Recurring {
		date := now.Format(dateLayout)
		if _, done := s.store.CompletionOn(r.ID, date); done {
			return r, nil
		}
		if err := s.store.AddCompletion(models.ReminderCompletion{
			ReminderID:  r.ID,
			Date:        date,
			CompletedAt: now,
		}); err != nil {
			return models.Reminder{}, err
		}
		r.Completed = true
		r.CompletedTime = stamp
	} else {
		if r.Completed {
			return r, nil
		}
		r.Completed = true
		r.CompletedTime = stamp
	}

	if err := s.store.SaveReminder(r); err != nil {
		return models.Reminder{}, err
	}
	return r, nil
}

func (s *ReminderService) AddReminder(u models.User, in models.CreateReminderInput) (models.Reminder, error) {
	elderlyID := ownerFor(u, in.ElderlyID)
	if !access.CanManage(u, elderlyID) {
		return models.Reminder{}, ErrForbidden
	}

	r := models.Reminder{
		ID:            utils.NewID(),
		ElderlyID:     elderlyID,
		Type:          in.Type,
		Title:         in.Title,
		Description:   in.Description,
		Time:          in.Time,
		Recurring:     in.Recurring,
		Frequency:     in.Frequency,
		RelatedItemID: in.RelatedItemID,
	}
	if err := s.store.SaveReminder(r); err != nil {
		return models.Reminder{}, err
	}
	return r, nil
}

func (s *ReminderService) UpdateReminder(u models.User, id string, in models.UpdateReminderInput) (models.Reminder, error) {
	r, ok := s.store.ReminderByID(id)
	if !ok {
		return models.Reminder{}, ErrNotFound
	}
	if !access.CanManage(u, r.ElderlyID) {
		return models.Reminder{}, ErrForbidden
	}
	in.Apply(&r)
	if err := s.store.SaveReminder(r); err != nil {
		return models.Reminder{}, err
	}
	return r, nil
}

func (s *ReminderService) DeleteReminder(u models.User, id string) error {
	r, ok := s.store.ReminderByID(id)
	if !ok {
		return ErrNotFound
	}
	if !access.CanManage(u, r.ElderlyID) {
		return ErrForbidden
	}
	return s.store.DeleteReminder(id)
}

func (s *ReminderService) Medications(u models.User) []models.Medication {
	return s.store.MedicationsByElderly(access.VisibleElderlyIDs(u))
}

func (s *ReminderService) AddMedication(u models.User, in models.CreateMedicationInput) (models.Medication, error) {
	elderlyID := ownerFor(u, in.ElderlyID)
	if !access.CanManage(u, elderlyID) {
		return models.Medication{}, ErrForbidden
	}

	m := models.Medication{
		ID:           utils.NewID(),
		ElderlyID:    elderlyID,
		Name:         in.Name,
		Dosage:       in.Dosage,
		Frequency:    in.Frequency,
		Schedule:     in.Schedule,
		Instructions: in.Instructions,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
	}
	if err := s.store.SaveMedication(m); err != nil {
		return models.Medication{}, err
	}
	return m, nil
}

func (s *ReminderService) UpdateMedication(u models.User, id string, in models.UpdateMedicationInput) (models.Medication, error) {
	m, ok := s.store.MedicationByID(id)
	if !ok {
		return models.Medication{}, ErrNotFound
	}
	if !access.CanManage(u, m.ElderlyID) {
		return models.Medication{}, ErrForbidden
	}
	in.Apply(&m)
	if err := s.store.SaveMedication(m); err != nil {
		return models.Medication{}, err
	}
	return m, nil
}

func (s *ReminderService) DeleteMedication(u models.User, id string) error {
	m, ok := s.store.MedicationByID(id)
	if !ok {
		return ErrNotFound
	}
	if !access.CanManage(u, m.ElderlyID) {
		return ErrForbidden
	}
	return s.store.DeleteMedication(id)
}

func (s *ReminderService) Appointments(u models.User) []models.Appointment {
	return s.store.AppointmentsByElderly(access.VisibleElderlyIDs(u))
}

func (s *ReminderService) AddAppointment(u models.User, in models.CreateAppointmentInput) (models.Appointment, error) {
	elderlyID := ownerFor(u, in.ElderlyID)
	if !access.CanManage(u, elderlyID) {
		return models.Appointment{}, ErrForbidden
	}

	a := models.Appointment{
		ID:         utils.NewID(),
		ElderlyID:  elderlyID,
		Title:      in.Title,
		Date:       in.Date,
		Time:       in.Time,
		Location:   in.Location,
		DoctorName: in.DoctorName,
		Notes:      in.Notes,
	}
	if err := s.store.SaveAppointment(a); err != nil {
		return models.Appointment{}, err
	}
	return a, nil
}

func (s *ReminderService) UpdateAppointment(u models.User, id string, in models.UpdateAppointmentInput) (models.Appointment, error) {
	a, ok := s.store.AppointmentByID(id)
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	if !access.CanManage(u, a.ElderlyID) {
		return models.Appointment{}, ErrForbidden
	}
	in.Apply(&a)
	if err := s.store.SaveAppointment(a); err != nil {
		return models.Appointment{}, err
	}
	return a, nil
}

func (s *ReminderService) DeleteAppointment(u models.User, id string) error {
	a, ok := s.store.AppointmentByID(id)
	if !ok {
		return ErrNotFound
	}
	if !access.CanManage(u, a.ElderlyID) {
		return ErrForbidden
	}
	return s.store.DeleteAppointment(id)
}

// ScheduleOutcome reports the scheduling result for one reminder.
type ScheduleOutcome struct {
	ReminderID string        `json:"reminder_id"`
	Title      string        `json:"title"`
	Result     notify.Result `json:"result"`
}

// ScheduleNotifications arms notifications for every open visible reminder:
// a daily trigger at the reminder's time for recurring ones, a one-shot
// trigger at the appointment instant for linked appointment reminders.
// Already-notified reminders are skipped; scheduling failures are reported
// per reminder and never abort the sweep.
func (s *ReminderService) ScheduleNotifications(u models.User) []ScheduleOutcome {
	now := s.now()
	today := now.Format(dateLayout)
	outcomes := make([]ScheduleOutcome, 0)

	for _, r := range s.Reminders(u) {
		if r.Notified || s.completedOn(r, today) {
			continue
		}

		var trig notify.Trigger
		switch {
		case r.Recurring:
			hour, minute, ok := parseClock(r.Time)
			if !ok {
				outcomes = append(outcomes, ScheduleOutcome{
					ReminderID: r.ID, Title: r.Title,
					Result: notify.Result{Reason: "invalid reminder time " + r.Time},
				})
				continue
			}
			trig = notify.Daily(hour, minute)
		case r.Type == models.ReminderAppointment && r.RelatedItemID != "":
			a, ok := s.store.AppointmentByID(r.RelatedItemID)
			if !ok {
				continue
			}
			at, err := time.ParseInLocation(dateLayout+" 15:04", a.Date+" "+a.Time, now.Location())
			if err != nil {
				outcomes = append(outcomes, ScheduleOutcome{
					ReminderID: r.ID, Title: r.Title,
					Result: notify.Result{Reason: "invalid appointment date/time"},
				})
				continue
			}
			trig = notify.At(at)
		default:
			hour, minute, ok := parseClock(r.Time)
			if !ok {
				continue
			}
			at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
			trig = notify.At(at)
		}

		res := s.sched.Schedule(u.FCMToken, r.Title, r.Description, map[string]string{"reminder_id": r.ID}, trig)
		if res.OK {
			r.Notified = true
			s.store.SaveReminder(r)
		}
		outcomes = append(outcomes, ScheduleOutcome{ReminderID: r.ID, Title: r.Title, Result: res})
	}
	return outcomes
}
