package service

import (
	"fmt"
	"testing"
	"time"

	"eldercare-backend/internal/models"
	"eldercare-backend/internal/store"
)

func newHealthService(t *testing.T) (*HealthService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewHealthService(st), st
}

func seedLogs(t *testing.T, st *store.MemoryStore, elderlyID, typ string, days int) {
	t.Helper()
	for i := 1; i <= days; i++ {
		err := st.SaveHealthLog(models.HealthLog{
			ID:        fmt.Sprintf("%s-%s-%d", elderlyID, typ, i),
			ElderlyID: elderlyID,
			Type:      typ,
			Value:     "120/80",
			Timestamp: time.Date(2023, 6, i, 8, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("SaveHealthLog: %v", err)
		}
	}
}

func TestHealthLogsNewestFirst(t *testing.T) {
	svc, st := newHealthService(t)
	seedLogs(t, st, "e1", models.LogBloodPressure, 3)

	logs := svc.HealthLogs(elderlyUser)
	if len(logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].Timestamp.After(logs[i-1].Timestamp) {
			t.Errorf("logs out of order at %d: %v before %v", i, logs[i-1].Timestamp, logs[i].Timestamp)
		}
	}
}

func TestRecentHealthLogs(t *testing.T) {
	svc, st := newHealthService(t)
	seedLogs(t, st, "e1", models.LogBloodPressure, 10)
	seedLogs(t, st, "e1", models.LogBloodSugar, 2)

	tests := []struct {
		name  string
		typ   string
		limit int
		want  int
	}{
		{name: "default limit", typ: models.LogBloodPressure, limit: 0, want: 7},
		{name: "explicit limit", typ: models.LogBloodPressure, limit: 3, want: 3},
		{name: "fewer than limit", typ: models.LogBloodSugar, limit: 7, want: 2},
		{name: "unknown type", typ: models.LogWeight, limit: 7, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := svc.RecentHealthLogs(elderlyUser, tt.typ, tt.limit)
			if len(logs) != tt.want {
				t.Fatalf("got %d logs, want %d", len(logs), tt.want)
			}
			for _, l := range logs {
				if l.Type != tt.typ {
					t.Errorf("log %s has type %s, want %s", l.ID, l.Type, tt.typ)
				}
			}
		})
	}

	// Newest first: with 10 June days seeded, limit 3 yields days 10, 9, 8.
	logs := svc.RecentHealthLogs(elderlyUser, models.LogBloodPressure, 3)
	if logs[0].Timestamp.Day() != 10 || logs[2].Timestamp.Day() != 8 {
		t.Errorf("unexpected window: first day %d, last day %d", logs[0].Timestamp.Day(), logs[2].Timestamp.Day())
	}
}

func TestHealthLogScoping(t *testing.T) {
	svc, st := newHealthService(t)
	seedLogs(t, st, "e1", models.LogBloodPressure, 1)
	seedLogs(t, st, "e2", models.LogBloodPressure, 1)
	seedLogs(t, st, "e3", models.LogBloodPressure, 1)

	logs := svc.HealthLogs(caregiver)
	if len(logs) != 2 {
		t.Fatalf("caregiver sees %d logs, want 2", len(logs))
	}
	for _, l := range logs {
		if l.ElderlyID == "e3" {
			t.Error("caregiver must not see logs of unlinked elderly users")
		}
	}
}

func TestAddHealthLogCapability(t *testing.T) {
	svc, _ := newHealthService(t)

	if _, err := svc.AddHealthLog(elderlyUser, models.CreateHealthLogInput{Type: models.LogWeight, Value: "72"}); err != nil {
		t.Errorf("elderly adding own log: %v", err)
	}
	if _, err := svc.AddHealthLog(caregiver, models.CreateHealthLogInput{ElderlyID: "e1", Type: models.LogWeight, Value: "72"}); err != nil {
		t.Errorf("linked caregiver adding log: %v", err)
	}
	if _, err := svc.AddHealthLog(caregiver, models.CreateHealthLogInput{ElderlyID: "e3", Type: models.LogWeight, Value: "72"}); err != ErrForbidden {
		t.Errorf("unlinked caregiver: got %v, want ErrForbidden", err)
	}
	// A caregiver without an explicit target has no owner to record against.
	if _, err := svc.AddHealthLog(caregiver, models.CreateHealthLogInput{Type: models.LogWeight, Value: "72"}); err != ErrForbidden {
		t.Errorf("caregiver without target: got %v, want ErrForbidden", err)
	}
}

func TestAddHealthLogTimestamp(t *testing.T) {
	svc, _ := newHealthService(t)
	fixed := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	l, err := svc.AddHealthLog(elderlyUser, models.CreateHealthLogInput{Type: models.LogHeartRate, Value: "70"})
	if err != nil {
		t.Fatalf("AddHealthLog: %v", err)
	}
	if !l.Timestamp.Equal(fixed) {
		t.Errorf("missing timestamp should default to now, got %v", l.Timestamp)
	}

	l, err = svc.AddHealthLog(elderlyUser, models.CreateHealthLogInput{
		Type: models.LogHeartRate, Value: "70", Timestamp: "2023-06-01T08:00:00Z",
	})
	if err != nil {
		t.Fatalf("AddHealthLog: %v", err)
	}
	if l.Timestamp.Day() != 1 {
		t.Errorf("explicit timestamp ignored, got %v", l.Timestamp)
	}
}

func TestUpdateAndDeleteHealthLog(t *testing.T) {
	svc, st := newHealthService(t)
	seedLogs(t, st, "e1", models.LogWeight, 1)
	id := "e1-" + models.LogWeight + "-1"

	value := "74"
	updated, err := svc.UpdateHealthLog(caregiver, id, models.UpdateHealthLogInput{Value: &value})
	if err != nil {
		t.Fatalf("UpdateHealthLog: %v", err)
	}
	if updated.Value != "74" {
		t.Errorf("value not applied, got %s", updated.Value)
	}

	if _, err := svc.UpdateHealthLog(otherElder, id, models.UpdateHealthLogInput{Value: &value}); err != ErrForbidden {
		t.Errorf("unrelated elderly updating: got %v, want ErrForbidden", err)
	}
	if err := svc.DeleteHealthLog(elderlyUser, "missing"); err != ErrNotFound {
		t.Errorf("deleting unknown id: got %v, want ErrNotFound", err)
	}
	if err := svc.DeleteHealthLog(elderlyUser, id); err != nil {
		t.Errorf("DeleteHealthLog: %v", err)
	}
	if _, ok := st.HealthLogByID(id); ok {
		t.Error("log still present after delete")
	}
}

func TestAddCheckInElderlyOnly(t *testing.T) {
	svc, st := newHealthService(t)

	in := models.CreateCheckInInput{
		MoodRating: 4,
		PainLevel:  1,
		Symptoms:   []string{"headache"},
		Medications: []models.MedicationIntake{
			{MedicationID: "med1", Taken: true, Time: "08:00"},
		},
	}

	ci, err := svc.AddCheckIn(elderlyUser, in)
	if err != nil {
		t.Fatalf("AddCheckIn: %v", err)
	}
	if ci.ElderlyID != elderlyUser.ID {
		t.Errorf("check-in recorded for %s, want %s", ci.ElderlyID, elderlyUser.ID)
	}
	if _, ok := st.CheckInByID(ci.ID); !ok {
		t.Error("check-in not persisted")
	}

	if _, err := svc.AddCheckIn(caregiver, in); err != ErrForbidden {
		t.Errorf("caregiver check-in: got %v, want ErrForbidden", err)
	}
}

func TestRecentCheckIns(t *testing.T) {
	svc, st := newHealthService(t)
	for i := 1; i <= 8; i++ {
		st.SaveCheckIn(models.CheckIn{
			ID:         fmt.Sprintf("ci%d", i),
			ElderlyID:  "e1",
			Timestamp:  time.Date(2023, 6, i, 20, 0, 0, 0, time.UTC),
			MoodRating: 3,
		})
	}

	got := svc.RecentCheckIns(elderlyUser, 0)
	if len(got) != 5 {
		t.Fatalf("default limit: got %d, want 5", len(got))
	}
	if got[0].ID != "ci8" {
		t.Errorf("newest check-in first, got %s", got[0].ID)
	}

	if got := svc.RecentCheckIns(elderlyUser, 3); len(got) != 3 {
		t.Errorf("explicit limit: got %d, want 3", len(got))
	}
}
