package models

type User struct {
	BaseModel

	Email        string `gorm:"not null;index"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `gorm:"not null"`
	AvatarURL    *string

	// Relationships
	Workspaces []Workspace `gorm:"foreignKey:OwnerID"`
}
