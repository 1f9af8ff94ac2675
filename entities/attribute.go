package entities

import (
	"github.com/google/uuid"
)

// Tag and Ingredient are symmetric user-scoped labels attached to
// recipes. Names are not unique; scoping is solely by owner.

type Tag struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name   string    `gorm:"not null" json:"name"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

type Ingredient struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name   string    `gorm:"not null" json:"name"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
