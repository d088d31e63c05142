package notify

import (
	"sync"
	"testing"
	"time"
)

func TestTriggerDelayFrom(t *testing.T) {
	now := time.Date(2023, 6, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		trig    Trigger
		want    time.Duration
		repeats bool
		wantErr bool
	}{
		{name: "seconds", trig: AfterSeconds(30), want: 30 * time.Second},
		{name: "zero trigger defaults to one second", trig: Trigger{}, want: time.Second},
		{name: "negative seconds", trig: AfterSeconds(-5), wantErr: true},
		{name: "daily later today", trig: Daily(14, 30), want: 4*time.Hour + 30*time.Minute, repeats: true},
		{name: "daily earlier today rolls to tomorrow", trig: Daily(8, 0), want: 22 * time.Hour, repeats: true},
		{name: "daily at the current minute rolls to tomorrow", trig: Daily(10, 0), want: 24 * time.Hour, repeats: true},
		{name: "daily out of range", trig: Daily(25, 99), wantErr: true},
		{name: "absolute in the future", trig: At(now.Add(90 * time.Minute)), want: 90 * time.Minute},
		{name: "absolute in the past fires immediately", trig: At(now.Add(-time.Hour)), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delay, repeats, err := tt.trig.delayFrom(now)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("delayFrom: %v", err)
			}
			if delay != tt.want {
				t.Errorf("delay = %v, want %v", delay, tt.want)
			}
			if repeats != tt.repeats {
				t.Errorf("repeats = %v, want %v", repeats, tt.repeats)
			}
		})
	}
}

// recordingDispatcher captures deliveries for assertions.
type recordingDispatcher struct {
	mu    sync.Mutex
	sent  []string
	fired chan struct{}
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{fired: make(chan struct{}, 16)}
}

func (d *recordingDispatcher) Send(to, title, body string, data map[string]string) Result {
	d.mu.Lock()
	d.sent = append(d.sent, title)
	d.mu.Unlock()
	d.fired <- struct{}{}
	return Result{OK: true}
}

func (d *recordingDispatcher) titles() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.sent...)
}

func TestSchedulerInvalidTrigger(t *testing.T) {
	s := NewScheduler(newRecordingDispatcher())
	res := s.Schedule("", "Pills", "", nil, Daily(25, 99))
	if res.OK {
		t.Fatal("invalid trigger should not schedule")
	}
	if res.Reason == "" {
		t.Error("failure should carry a reason")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerFires(t *testing.T) {
	d := newRecordingDispatcher()
	s := NewScheduler(d)
	t.Cleanup(s.CancelAll)

	res := s.Schedule("", "Pills", "Take your pills", nil, Trigger{})
	if !res.OK || res.ID == "" {
		t.Fatalf("Schedule = %+v", res)
	}
	if s.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", s.Pending())
	}

	select {
	case <-d.fired:
	case <-time.After(3 * time.Second):
		t.Fatal("notification never fired")
	}
	if got := d.titles(); len(got) != 1 || got[0] != "Pills" {
		t.Errorf("deliveries = %v", got)
	}
	// One-shot entries are discarded after firing.
	if s.Pending() != 0 {
		t.Errorf("Pending after fire = %d, want 0", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler(newRecordingDispatcher())
	t.Cleanup(s.CancelAll)

	res := s.Schedule("", "Walk", "", nil, AfterSeconds(3600))
	if !s.Cancel(res.ID) {
		t.Error("cancelling a live handle should succeed")
	}
	if s.Cancel(res.ID) {
		t.Error("cancelling twice should fail")
	}
	if s.Cancel("unknown") {
		t.Error("cancelling an unknown handle should fail")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler(newRecordingDispatcher())
	s.Schedule("", "a", "", nil, AfterSeconds(3600))
	s.Schedule("", "b", "", nil, AfterSeconds(3600))
	s.Schedule("", "c", "", nil, Daily(23, 59))

	if s.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", s.Pending())
	}
	s.CancelAll()
	if s.Pending() != 0 {
		t.Errorf("Pending after CancelAll = %d, want 0", s.Pending())
	}
}

func TestLocalDispatcherPermission(t *testing.T) {
	requests := 0
	d := NewLocalDispatcher(func() Permission {
		requests++
		return PermissionDenied
	})

	res := d.Send("", "Pills", "", nil)
	if !res.OK {
		t.Error("denied delivery is dropped, not failed")
	}
	if res.Reason == "" {
		t.Error("dropped delivery should say why")
	}

	d.Send("", "Pills", "", nil)
	if requests != 1 {
		t.Errorf("permission requested %d times, want 1", requests)
	}
}

func TestLocalDispatcherDefaultsToGranted(t *testing.T) {
	d := NewLocalDispatcher(nil)
	res := d.Send("", "Pills", "Take your pills", nil)
	if !res.OK || res.Reason != "" {
		t.Errorf("Send = %+v", res)
	}
}
