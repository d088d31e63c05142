package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type scheduled struct {
	timer   *time.Timer
	trigger Trigger
	to      string
	title   string
	body    string
	data    map[string]string
}

// Scheduler arms one timer per scheduled notification and hands deliveries to
// the configured Dispatcher. Daily triggers re-arm themselves after firing.
type Scheduler struct {
	dispatcher Dispatcher

	mu      sync.Mutex
	entries map[string]*scheduled
}

func NewScheduler(d Dispatcher) *Scheduler {
	return &Scheduler{dispatcher: d, entries: make(map[string]*scheduled)}
}

// Schedule registers a notification for the trigger and returns its handle.
// Invalid triggers come back as a failed Result, never a panic or error.
func (s *Scheduler) Schedule(to, title, body string, data map[string]string, trig Trigger) Result {
	delay, _, err := trig.delayFrom(time.Now())
	if err != nil {
		return failure("cannot schedule: %v", err)
	}

	id := uuid.NewString()
	entry := &scheduled{trigger: trig, to: to, title: title, body: body, data: data}

	s.mu.Lock()
	entry.timer = time.AfterFunc(delay, func() { s.fire(id) })
	s.entries[id] = entry
	s.mu.Unlock()

	return Result{OK: true, ID: id}
}

// Notify delivers immediately through the dispatcher, bypassing scheduling.
func (s *Scheduler) Notify(to, title, body string, data map[string]string) Result {
	return s.dispatcher.Send(to, title, body, data)
}

func (s *Scheduler) fire(id string) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	if entry.trigger.Repeats {
		delay, _, err := entry.trigger.delayFrom(time.Now())
		if err == nil {
			entry.timer = time.AfterFunc(delay, func() { s.fire(id) })
		} else {
			delete(s.entries, id)
		}
	} else {
		delete(s.entries, id)
	}
	s.mu.Unlock()

	s.dispatcher.Send(entry.to, entry.title, entry.body, entry.data)
}

// Cancel stops a scheduled notification; false when the handle is unknown.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return false
	}
	entry.timer.Stop()
	delete(s.entries, id)
	return true
}

// CancelAll stops every scheduled notification.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.entries {
		entry.timer.Stop()
		delete(s.entries, id)
	}
}

// Pending returns the number of armed notifications.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
