package models

import "gorm.io/gorm"

// Session is the durable record of a signed-in identity. The JWT carries the
// session token in its "sid" claim; deleting the row (logout) invalidates
// every token that references it, so a stale token cannot restore a ghost
// identity.
type Session struct {
	gorm.Model
	Token  string `gorm:"uniqueIndex;not null" json:"token"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
}
