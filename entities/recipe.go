package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Title         string    `gorm:"not null" json:"title"`
	TimeInMinutes int       `json:"time_in_minutes"`
	Price         Price     `gorm:"type:numeric(5,2)" json:"price"`
	Link          string    `json:"link,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`

	// Join rows cascade with the recipe; the tags and ingredients
	// themselves belong to the user and survive recipe deletion.
	Tags        []Tag        `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
