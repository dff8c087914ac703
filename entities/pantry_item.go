package entities

import (
	"github.com/google/uuid"
)

type PantryItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID  `gorm:"index;uniqueIndex:idx_pantry_user_name_location,priority:1,where:deleted_at IS NULL" json:"user_id"`
	Name          string     `json:"name"`
	// NameKey is Name lowercased and trimmed; lookups and the unique index use it.
	NameKey       string     `gorm:"uniqueIndex:idx_pantry_user_name_location,priority:2,where:deleted_at IS NULL" json:"-"`
	Category      string     `json:"category"`                                                                                      // produce, dairy, protein, grains, pantry, frozen, other
	Location      string     `gorm:"uniqueIndex:idx_pantry_user_name_location,priority:3,where:deleted_at IS NULL" json:"location"` // fridge, pantry
	Quantity      string     `json:"quantity,omitempty"`
	Source        string     `json:"source"` // manual, quick_add, voice, photo_scan, grocery
	GroceryItemID *uuid.UUID `json:"grocery_item_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
