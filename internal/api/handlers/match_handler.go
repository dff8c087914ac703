package handlers

import (
	"PantryChef/domain"
	"PantryChef/internal/api/presenters"
	"PantryChef/pkg/match"

	"github.com/gofiber/fiber/v2"
)

type (
	MatchHandler interface {
		GetMatches(c *fiber.Ctx) error
		GetUnlockSuggestions(c *fiber.Ctx) error
		GetRecipeMatch(c *fiber.Ctx) error
	}

	matchHandler struct {
		matchService match.MatchService
	}
)

func NewMatchHandler(matchService match.MatchService) MatchHandler {
	return &matchHandler{
		matchService: matchService,
	}
}

func (h *matchHandler) GetMatches(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.matchService.GetMatches(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMatches, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMatches)
}

func (h *matchHandler) GetUnlockSuggestions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.matchService.GetUnlockSuggestions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUnlocks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnlocks)
}

func (h *matchHandler) GetRecipeMatch(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.matchService.GetRecipeMatch(c.Context(), c.Params("recipe_id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetRecipeMatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeMatch)
}
