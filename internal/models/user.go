package models

import "time"

// Roles assigned to profiles. The identity provider carries the role in
// app_metadata; the profile row is the durable copy.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// UserProfile is the tagged record for a user, keyed by the identity
// provider's user ID. Rows are upserted from validated JWT claims on first
// authenticated request.
type UserProfile struct {
	ID          string    `json:"id" gorm:"primaryKey"` // identity provider user ID
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role" gorm:"not null;default:student"`
	Bio         string    `json:"bio" gorm:"type:text"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsTeacher reports whether the profile carries the teacher role.
func (u *UserProfile) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// TableName returns the table name for the UserProfile model
func (UserProfile) TableName() string {
	return "user_profiles"
}
