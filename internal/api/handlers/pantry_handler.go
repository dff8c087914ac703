package handlers

import (
	"PantryChef/domain"
	"PantryChef/internal/api/presenters"
	"PantryChef/pkg/pantry"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PantryHandler interface {
		AddPantryItem(c *fiber.Ctx) error
		AddPantryItems(c *fiber.Ctx) error
		UpdatePantryItem(c *fiber.Ctx) error
		DeletePantryItem(c *fiber.Ctx) error
		GetPantryItems(c *fiber.Ctx) error
		GetPantryItemDetails(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		validator:     validator,
	}
}

func (h *pantryHandler) AddPantryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddPantryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, err)
	}

	res, err := h.pantryService.AddPantryItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddPantryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPantryItem)
}

// AddPantryItems takes the confirmed list from a voice or photo scan.
func (h *pantryHandler) AddPantryItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddPantryItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItems, err)
	}

	res, err := h.pantryService.AddPantryItems(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddPantryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPantryItems)
}

func (h *pantryHandler) UpdatePantryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdatePantryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	if err := h.pantryService.UpdatePantryItem(c.Context(), itemID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdatePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePantryItem)
}

func (h *pantryHandler) DeletePantryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.pantryService.DeletePantryItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeletePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePantryItem)
}

func (h *pantryHandler) GetPantryItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	location := c.Query("location", domain.LocationAll)
	if location != domain.LocationAll && location != domain.LocationFridge && location != domain.LocationPantry {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPantryItems, domain.ErrInvalidLocation)
	}

	items, err := h.pantryService.GetPantryItems(c.Context(), userID, location)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPantryItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) GetPantryItemDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	item, err := h.pantryService.GetPantryItemByID(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPantryItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetPantryItem)
}
