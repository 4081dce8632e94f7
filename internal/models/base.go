package models

import "time"

// BaseModel carries the columns every entity shares. DeletedAt is a plain
// nullable timestamp rather than gorm.DeletedAt: soft-delete filtering is
// applied explicitly through the store layer's Active scope, and cascades
// stamp one shared timestamp across several tables.
type BaseModel struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
