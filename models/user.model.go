package models

import (
	"time"

	"gorm.io/gorm"
)

// Platform roles. Signup always produces RoleUser; the other two exist only
// in seeded data, there is no role-upgrade path.
const (
	RoleAdmin      = "admin"
	RoleUser       = "user"
	RoleStoreOwner = "store_owner"
)

type User struct {
	gorm.Model
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Address   string    `gorm:"default:''" json:"address"`
	Role      string    `gorm:"default:'user'" json:"role"`
	Password  string    `gorm:"not null" json:"-"`
	StoreID   *uint     `json:"storeId,omitempty"` // Set for store owners only
	LastLogin time.Time `gorm:"default:NULL" json:"lastLogin"`
	IsDeleted bool      `gorm:"default:false" json:"-"`
}
