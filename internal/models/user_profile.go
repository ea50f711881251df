package models

import "time"

// UserProfile represents an account that can link a LeetCode identity.
// The session cookie is stored encrypted by the auth layer and treated as
// opaque here.
type UserProfile struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	Email                 string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	LeetcodeUsername      string    `gorm:"size:255" json:"leetcode_username"`
	LeetcodeSessionCookie string    `gorm:"type:text" json:"-"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Linked reports whether the profile has a usable LeetCode identity.
func (p UserProfile) Linked() bool {
	return p.LeetcodeUsername != "" && p.LeetcodeSessionCookie != ""
}
