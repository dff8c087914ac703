package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddGroceryItem     = "grocery item added successfully"
	MessageSuccessGetGroceryItems    = "grocery items retrieved successfully"
	MessageSuccessDeleteGroceryItem  = "grocery item deleted successfully"
	MessageSuccessCheckGroceryItem   = "grocery item checked off"
	MessageSuccessUncheckGroceryItem = "grocery item unchecked"

	MessageFailedAddGroceryItem     = "failed to add grocery item"
	MessageFailedGetGroceryItems    = "failed to retrieve grocery items"
	MessageFailedDeleteGroceryItem  = "failed to delete grocery item"
	MessageFailedCheckGroceryItem   = "failed to check off grocery item"
	MessageFailedUncheckGroceryItem = "failed to uncheck grocery item"

	ErrGroceryItemNotFound       = errors.New("grocery item not found")
	ErrUnauthorizedGroceryAccess = errors.New("unauthorized access to grocery item")
)

type (
	AddGroceryItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"omitempty,oneof=produce dairy protein grains pantry frozen other"`
		Quantity string `json:"quantity"`
	}

	GroceryItemResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Category     string     `json:"category"`
		Quantity     string     `json:"quantity,omitempty"`
		Checked      bool       `json:"checked"`
		CheckedAt    *time.Time `json:"checked_at,omitempty"`
		PantryItemID string     `json:"pantry_item_id,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
	}
)
