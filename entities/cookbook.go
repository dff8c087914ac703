package entities

import (
	"github.com/google/uuid"
)

type Cookbook struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	ISBN        string    `json:"isbn,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
	RecipeCount int       `json:"recipe_count"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
