package entities

import (
	"time"

	"github.com/google/uuid"
)

type GroceryItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `gorm:"index" json:"user_id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Quantity     string     `json:"quantity,omitempty"`
	Checked      bool       `json:"checked"`
	CheckedAt    *time.Time `json:"checked_at,omitempty"`
	PantryItemID *uuid.UUID `json:"pantry_item_id,omitempty"` // pantry item created by checking this off

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
