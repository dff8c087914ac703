package handlers

import (
	"PantryChef/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps a service error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrPantryItemNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrCookbookNotFound),
		errors.Is(err, domain.ErrGroceryItemNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrPantryItemDuplicate),
		errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorizedPantryAccess),
		errors.Is(err, domain.ErrUnauthorizedRecipeAccess),
		errors.Is(err, domain.ErrUnauthorizedCookbookAccess),
		errors.Is(err, domain.ErrUnauthorizedGroceryAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusBadRequest
	}
}
