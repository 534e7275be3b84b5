package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleStudent    UserRole = "student"
	UserRoleTeacher    UserRole = "teacher"
	UserRoleSuperAdmin UserRole = "super_admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleTeacher, UserRoleSuperAdmin:
		return true
	}
	return false
}

// User is the subset of the account record the progress core touches.
// WordsLearned is a denormalized count of learned progress records.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         UserRole
	Subscription string
	WordsLearned int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
