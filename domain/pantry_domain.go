package domain

import (
	"errors"
	"time"
)

const (
	CategoryProduce = "produce"
	CategoryDairy   = "dairy"
	CategoryProtein = "protein"
	CategoryGrains  = "grains"
	CategoryPantry  = "pantry"
	CategoryFrozen  = "frozen"
	CategoryOther   = "other"

	LocationFridge = "fridge"
	LocationPantry = "pantry"
	LocationAll    = "all"

	SourceManual    = "manual"
	SourceQuickAdd  = "quick_add"
	SourceVoice     = "voice"
	SourcePhotoScan = "photo_scan"
	SourceGrocery   = "grocery"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessAddPantryItems   = "pantry items added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"
	MessageSuccessGetPantryItem    = "pantry item retrieved successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedAddPantryItems   = "failed to add pantry items"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"
	MessageFailedGetPantryItem    = "failed to retrieve pantry item"

	ErrPantryItemNotFound       = errors.New("pantry item not found")
	ErrPantryItemDuplicate      = errors.New("pantry item already exists in this location")
	ErrUnauthorizedPantryAccess = errors.New("unauthorized access to pantry item")
	ErrInvalidLocation          = errors.New("invalid storage location")
)

type (
	AddPantryItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"required,oneof=produce dairy protein grains pantry frozen other"`
		Location string `json:"location" validate:"required,oneof=fridge pantry"`
		Quantity string `json:"quantity" validate:"omitempty"`
		Source   string `json:"source" validate:"omitempty,oneof=manual quick_add voice photo_scan grocery"`
	}

	AddPantryItemResponse struct {
		PantryItemResponse
		OtherLocationWarning string `json:"other_location_warning,omitempty"`
	}

	AddPantryItemsRequest struct {
		Items []AddPantryItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	SkippedPantryItem struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		Reason   string `json:"reason"`
	}

	AddPantryItemsResponse struct {
		Added   []AddPantryItemResponse `json:"added"`
		Skipped []SkippedPantryItem     `json:"skipped"`
	}

	UpdatePantryItemRequest struct {
		Name     string `json:"name" validate:"omitempty"`
		Category string `json:"category" validate:"omitempty,oneof=produce dairy protein grains pantry frozen other"`
		Location string `json:"location" validate:"omitempty,oneof=fridge pantry"`
		Quantity string `json:"quantity" validate:"omitempty"`
	}

	PantryItemResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Category  string    `json:"category"`
		Location  string    `json:"location"`
		Quantity  string    `json:"quantity,omitempty"`
		Source    string    `json:"source"`
		CreatedAt time.Time `json:"created_at"`
	}
)
