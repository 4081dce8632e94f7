package models

import "gorm.io/datatypes"

type Service struct {
	BaseModel

	WorkspaceID           uint           `gorm:"not null;index"`
	Name                  string         `gorm:"not null"`
	BaseURL               string         `gorm:"not null"`
	DefaultHeaders        datatypes.JSON `gorm:"type:jsonb"`
	DefaultTimeoutSeconds int            `gorm:"not null;default:30"`

	// Relationships
	Workspace Workspace  `gorm:"foreignKey:WorkspaceID" json:"-"`
	Endpoints []Endpoint `gorm:"foreignKey:ServiceID"`
}
