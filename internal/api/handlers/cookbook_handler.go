package handlers

import (
	"PantryChef/domain"
	"PantryChef/internal/api/presenters"
	"PantryChef/pkg/cookbook"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CookbookHandler interface {
		CreateCookbook(c *fiber.Ctx) error
		GetCookbooks(c *fiber.Ctx) error
		GetCookbook(c *fiber.Ctx) error
		DeleteCookbook(c *fiber.Ctx) error
	}

	cookbookHandler struct {
		cookbookService cookbook.CookbookService
		validator       *validator.Validate
	}
)

func NewCookbookHandler(cookbookService cookbook.CookbookService, validator *validator.Validate) CookbookHandler {
	return &cookbookHandler{
		cookbookService: cookbookService,
		validator:       validator,
	}
}

func (h *cookbookHandler) CreateCookbook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCookbookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCookbook, err)
	}

	res, err := h.cookbookService.CreateCookbook(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateCookbook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCookbook)
}

func (h *cookbookHandler) GetCookbooks(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.cookbookService.GetCookbooks(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCookbooks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCookbooks)
}

func (h *cookbookHandler) GetCookbook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.cookbookService.GetCookbookByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCookbook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCookbook)
}

func (h *cookbookHandler) DeleteCookbook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.cookbookService.DeleteCookbook(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteCookbook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCookbook)
}
