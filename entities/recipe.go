package entities

import (
	"time"

	"github.com/google/uuid"
)

type RecipeIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

type RecipeNutrition struct {
	Calories      int `json:"calories"`
	Protein       int `json:"protein"`
	Carbohydrates int `json:"carbohydrates"`
	Fat           int `json:"fat"`
	Fiber         int `json:"fiber"`
}

type Recipe struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID          `gorm:"index" json:"user_id"`
	Title           string             `json:"title"`
	Ingredients     []RecipeIngredient `gorm:"serializer:json;type:jsonb" json:"ingredients"`
	Instructions    []string           `gorm:"serializer:json;type:jsonb" json:"instructions"`
	PrepTimeMinutes int                `json:"prep_time_minutes"`
	CookTimeMinutes int                `json:"cook_time_minutes"`
	Servings        int                `json:"servings"`
	ImageURL        string             `json:"image_url,omitempty"`
	Source          string             `json:"source"` // URL, "Cook Now", cookbook citation, ...
	CookbookID      *uuid.UUID         `json:"cookbook_id,omitempty"`
	PageNumber      *int               `json:"page_number,omitempty"`
	IsDIYCraving    bool               `json:"is_diy_craving"`
	Nutrition       *RecipeNutrition   `gorm:"serializer:json;type:jsonb" json:"nutrition,omitempty"`

	User     *User     `gorm:"foreignKey:UserID"`
	Cookbook *Cookbook `gorm:"foreignKey:CookbookID"`
	Timestamp
}

type CookedMeal struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID  `gorm:"index" json:"user_id"`
	RecipeID *uuid.UUID `json:"recipe_id,omitempty"`
	Title    string     `json:"title"`
	CookedAt time.Time  `gorm:"type:timestamp" json:"cooked_at"`

	User *User `gorm:"foreignKey:UserID"`
}
