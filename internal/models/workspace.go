package models

type Workspace struct {
	BaseModel

	OwnerID uint   `gorm:"not null;index"`
	Name    string `gorm:"not null"`
	// Slug uniqueness holds among active rows only; the partial unique index
	// created in db.Migrate is the storage-level guarantee, the core's
	// availability check is a fast fail on top of it.
	Slug                    string `gorm:"not null;index"`
	Plan                    string `gorm:"not null;default:free"`
	MaxServices             int    `gorm:"not null;default:5"`
	MaxCheckIntervalSeconds int    `gorm:"not null;default:300"`

	// Relationships
	Owner    User      `gorm:"foreignKey:OwnerID" json:"-"`
	Services []Service `gorm:"foreignKey:WorkspaceID"`
}
