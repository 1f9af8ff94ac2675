package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	Name        string    `json:"name"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`

	Timestamp
}

// Token is the opaque bearer credential for a user. At most one row
// per user; reissuing replaces the previous key.
type Token struct {
	Key       string    `gorm:"primary_key" json:"key"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
