package models

import "gorm.io/datatypes"

type Endpoint struct {
	BaseModel

	// WorkspaceID is denormalized from the parent service so workspace-wide
	// cascades can address endpoints in a single statement.
	WorkspaceID          uint           `gorm:"not null;index"`
	ServiceID            uint           `gorm:"not null;index"`
	Name                 string         `gorm:"not null"`
	Route                string         `gorm:"not null"`
	HTTPMethod           string         `gorm:"not null;default:GET"`
	Headers              datatypes.JSON `gorm:"type:jsonb"`
	Body                 datatypes.JSON `gorm:"type:jsonb"`
	ExpectedStatusCode   int            `gorm:"not null;default:200"`
	ExpectedBody         datatypes.JSON `gorm:"type:jsonb"`
	CheckIntervalSeconds int            `gorm:"not null;default:300"`
	IsActive             bool           `gorm:"not null;default:true"`

	// Relationships
	Workspace Workspace `gorm:"foreignKey:WorkspaceID" json:"-"`
	Service   Service   `gorm:"foreignKey:ServiceID" json:"-"`
}
