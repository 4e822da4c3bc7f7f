package models

import (
	"time"

	"gorm.io/gorm"
)

// Rating is one user's rating of one store. The unique index enforces a
// single rating per (user, store) pair; resubmitting replaces the earlier
// value instead of stacking duplicates.
type Rating struct {
	gorm.Model
	UserID    uint       `gorm:"not null;uniqueIndex:idx_user_store_rating" json:"userId"`
	StoreID   uint       `gorm:"not null;uniqueIndex:idx_user_store_rating" json:"storeId"`
	Rating    int        `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string     `gorm:"type:text;default:''" json:"comment,omitempty"`
	Helpful   int        `gorm:"default:0" json:"helpful"`
	Reply     string     `gorm:"type:text;default:''" json:"reply,omitempty"`
	RepliedAt *time.Time `json:"repliedAt,omitempty"`
	IsDeleted bool       `gorm:"default:false" json:"-"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}
