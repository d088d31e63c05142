package notify

import (
	"log"
	"sync"
)

// Permission mirrors the browser notification permission state.
type Permission int

const (
	PermissionUndecided Permission = iota
	PermissionGranted
	PermissionDenied
)

// LocalDispatcher is the fallback backend for platforms without native
// scheduling: it delivers immediately to the process log, gated by a cached
// permission state. Permission is requested at most once, on first use.
type LocalDispatcher struct {
	mu         sync.Mutex
	permission Permission
	request    func() Permission
}

// NewLocalDispatcher starts undecided; request is invoked once to resolve the
// permission. A nil request grants.
func NewLocalDispatcher(request func() Permission) *LocalDispatcher {
	if request == nil {
		request = func() Permission { return PermissionGranted }
	}
	return &LocalDispatcher{request: request}
}

func (d *LocalDispatcher) Send(to, title, body string, data map[string]string) Result {
	d.mu.Lock()
	if d.permission == PermissionUndecided {
		d.permission = d.request()
	}
	perm := d.permission
	d.mu.Unlock()

	if perm != PermissionGranted {
		// Denied notifications are dropped silently, as the browser does.
		return Result{OK: true, Reason: "notification permission denied; dropped"}
	}

	log.Printf("notification: %s: %s %v", title, body, data)
	return Result{OK: true}
}
