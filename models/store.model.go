package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Store struct {
	gorm.Model
	Name          string                           `gorm:"not null" json:"name"`
	Email         string                           `gorm:"not null" json:"email"`
	Address       string                           `gorm:"not null" json:"address"`
	OwnerID       uint                             `gorm:"index" json:"ownerId"`
	// Denormalized from the ratings table; recomputed inside the submission
	// transaction and reconciled nightly by the scheduler.
	AverageRating float64                          `gorm:"default:0" json:"averageRating"`
	TotalRatings  int64                            `gorm:"default:0" json:"totalRatings"`
	Category      string                           `gorm:"index" json:"category"`
	Description   string                           `gorm:"type:text" json:"description"`
	Phone         string                           `json:"phone"`
	Website       string                           `json:"website,omitempty"`
	BusinessHours datatypes.JSONType[BusinessHours] `json:"businessHours"`
	Images        datatypes.JSONSlice[string]      `json:"images"`
	IsDeleted     bool                             `gorm:"default:false" json:"-"`
}
