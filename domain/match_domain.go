package domain

import (
	"PantryChef/pkg/matching"
)

var (
	MessageSuccessGetMatches     = "success get recipe matches"
	MessageSuccessGetRecipeMatch = "success get recipe match"
	MessageSuccessGetUnlocks     = "success get ingredient suggestions"

	MessageFailedGetMatches     = "failed to get recipe matches"
	MessageFailedGetRecipeMatch = "failed to get recipe match"
	MessageFailedGetUnlocks     = "failed to get ingredient suggestions"
)

type (
	MatchesResponse struct {
		Matches          []matching.RecipeMatch `json:"matches"`
		Tiers            matching.Tiers         `json:"tiers"`
		HasStrongMatches bool                   `json:"has_strong_matches"`
		TotalRecipes     int                    `json:"total_recipes"`
		CookedExcluded   int                    `json:"cooked_excluded"`
	}

	RecipeMatchResponse struct {
		matching.RecipeMatch
		Tier   matching.Tier `json:"tier"`
		Cooked bool          `json:"cooked"`
	}

	UnlockSuggestionsResponse struct {
		Suggestions []matching.IngredientUnlock `json:"suggestions"`
	}
)
