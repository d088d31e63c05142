// Package notify realizes the local-notification collaborator: trigger
// shapes, platform dispatcher strategies and a timer-based scheduler.
package notify

import (
	"fmt"
	"time"
)

// Result is how every scheduling and delivery call reports its outcome.
// Failures carry a reason instead of an error so callers stay non-fatal.
type Result struct {
	OK     bool   `json:"ok"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func failure(format string, args ...interface{}) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}

// Trigger describes when a notification fires: once after a delay, daily at a
// wall-clock time, or once at an absolute instant. The zero Trigger fires
// once after one second, matching the mobile client's default.
type Trigger struct {
	Seconds int       `json:"seconds,omitempty"`
	Hour    int       `json:"hour,omitempty"`
	Minute  int       `json:"minute,omitempty"`
	Repeats bool      `json:"repeats,omitempty"`
	At      time.Time `json:"at,omitempty"`
}

// AfterSeconds fires once after n seconds.
func AfterSeconds(n int) Trigger { return Trigger{Seconds: n} }

// Daily fires every day at hour:minute local time.
func Daily(hour, minute int) Trigger { return Trigger{Hour: hour, Minute: minute, Repeats: true} }

// At fires once at the given instant.
func At(t time.Time) Trigger { return Trigger{At: t} }

// delayFrom computes how long after now the trigger next fires and whether it
// repeats daily. Absolute triggers in the past fire immediately.
func (t Trigger) delayFrom(now time.Time) (time.Duration, bool, error) {
	switch {
	case t.Repeats:
		if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
			return 0, false, fmt.Errorf("invalid daily trigger %02d:%02d", t.Hour, t.Minute)
		}
		next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		return next.Sub(now), true, nil
	case !t.At.IsZero():
		d := t.At.Sub(now)
		if d < 0 {
			d = 0
		}
		return d, false, nil
	case t.Seconds > 0:
		return time.Duration(t.Seconds) * time.Second, false, nil
	case t.Seconds < 0:
		return 0, false, fmt.Errorf("negative delay %d", t.Seconds)
	default:
		return time.Second, false, nil
	}
}

// Dispatcher delivers one notification to one recipient. The `to` address is
// backend-specific (an FCM device token); local delivery ignores it.
type Dispatcher interface {
	Send(to, title, body string, data map[string]string) Result
}
