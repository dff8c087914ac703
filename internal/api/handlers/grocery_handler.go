package handlers

import (
	"PantryChef/domain"
	"PantryChef/internal/api/presenters"
	"PantryChef/pkg/grocery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		AddGroceryItem(c *fiber.Ctx) error
		GetGroceryItems(c *fiber.Ctx) error
		DeleteGroceryItem(c *fiber.Ctx) error
		CheckGroceryItem(c *fiber.Ctx) error
		UncheckGroceryItem(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) AddGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	res, err := h.groceryService.AddGroceryItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGroceryItem)
}

func (h *groceryHandler) GetGroceryItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.GetGroceryItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetGroceryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryItems)
}

func (h *groceryHandler) DeleteGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.groceryService.DeleteGroceryItem(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteGroceryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGroceryItem)
}

func (h *groceryHandler) CheckGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.CheckGroceryItem(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCheckGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckGroceryItem)
}

func (h *groceryHandler) UncheckGroceryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.UncheckGroceryItem(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUncheckGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUncheckGroceryItem)
}
