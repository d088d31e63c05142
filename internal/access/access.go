// Package access enforces the role capability rules in one place so they are
// testable independently of any handler.
package access

import "eldercare-backend/internal/models"

// VisibleElderlyIDs returns the elderly ids whose data the user may see: the
// user's own id for an elderly user, the linked set for a caregiver.
func VisibleElderlyIDs(u models.User) []string {
	switch u.Role {
	case models.RoleElderly:
		return []string{u.ID}
	case models.RoleCaregiver:
		return append([]string(nil), u.Elderly...)
	default:
		return nil
	}
}

// CanView reports whether the user may read data owned by elderlyID.
func CanView(u models.User, elderlyID string) bool {
	if u.Role == models.RoleElderly {
		return u.ID == elderlyID
	}
	return u.Role == models.RoleCaregiver && u.Elderly.Contains(elderlyID)
}

// CanComplete reports whether the user may mark reminders of elderlyID done.
// Both the owner and linked caregivers may complete.
func CanComplete(u models.User, elderlyID string) bool {
	return CanView(u, elderlyID)
}

// CanManage reports whether the user may create, update or delete schedule
// items (reminders, medications, appointments) and health logs of elderlyID.
func CanManage(u models.User, elderlyID string) bool {
	return CanView(u, elderlyID)
}

// CanCheckIn reports whether the user may record a daily check-in. Check-ins
// are self-reported, so only the elderly owner qualifies.
func CanCheckIn(u models.User, elderlyID string) bool {
	return u.Role == models.RoleElderly && u.ID == elderlyID
}
