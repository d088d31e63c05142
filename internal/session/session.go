// Package session holds the current authenticated user, persisted as a single
// blob in a SecureStore so the session survives process restarts.
package session

import (
	"encoding/json"
	"log"
	"sync"

	"eldercare-backend/internal/models"
	"eldercare-backend/internal/store"
)

const sessionKey = "user"

// Manager is the identity provider: Unauthenticated until a successful login
// or restore, Unauthenticated again after logout. Store failures are logged
// and never surfaced to callers.
type Manager struct {
	dir   store.UserDirectory
	blobs SecureStore

	mu      sync.RWMutex
	current *models.User
}

func NewManager(dir store.UserDirectory, blobs SecureStore) *Manager {
	return &Manager{dir: dir, blobs: blobs}
}

// Restore loads a previously persisted session. An absent or unreadable blob
// means "no session", not an error.
func (m *Manager) Restore() {
	raw, ok := m.blobs.Get(sessionKey)
	if !ok {
		return
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		log.Printf("discarding unreadable session blob: %v", err)
		return
	}
	m.mu.Lock()
	m.current = &u
	m.mu.Unlock()
}

// Login matches the email case-insensitively against the directory. The
// password is deliberately not checked: the directory is a mock standing in
// for a real identity backend. Returns false on no match; persistence
// failures are logged and the login still succeeds in memory.
func (m *Manager) Login(email, password string) bool {
	u, ok := m.dir.FindByEmail(email)
	if !ok {
		return false
	}

	raw, err := json.Marshal(u)
	if err == nil {
		if err := m.blobs.Set(sessionKey, raw); err != nil {
			log.Printf("failed to persist session: %v", err)
		}
	}

	m.mu.Lock()
	m.current = &u
	m.mu.Unlock()
	return true
}

// Logout clears the persisted blob and the in-memory session. It never fails
// to the caller.
func (m *Manager) Logout() {
	if err := m.blobs.Remove(sessionKey); err != nil {
		log.Printf("failed to clear persisted session: %v", err)
	}
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// UpdateUser merges the partial update into the current user, persists it to
// the blob store and the directory, and republishes. No-op without a session.
func (m *Manager) UpdateUser(in models.UpdateUserInput) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return
	}

	u := *m.current
	in.Apply(&u)

	if raw, err := json.Marshal(u); err == nil {
		if err := m.blobs.Set(sessionKey, raw); err != nil {
			log.Printf("failed to persist session: %v", err)
		}
	}
	if err := m.dir.SaveUser(u); err != nil {
		log.Printf("failed to save user update: %v", err)
	}
	m.current = &u
}

// Current returns a copy of the session user, if any.
func (m *Manager) Current() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return models.User{}, false
	}
	return *m.current, true
}
