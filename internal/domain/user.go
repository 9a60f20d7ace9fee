package domain

import "time"

// Role distinguishes workshop creators from participants.
type Role string

const (
	RoleCreator     Role = "CREATOR"
	RoleParticipant Role = "PARTICIPANT"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	return r == RoleCreator || r == RoleParticipant
}

// User is the domain model for registered accounts.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
