package match

import (
	"PantryChef/domain"
	"PantryChef/entities"
	"PantryChef/pkg/matching"
	"PantryChef/pkg/pantry"
	"PantryChef/pkg/recipe"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type (
	MatchService interface {
		GetMatches(ctx context.Context, userID string) (domain.MatchesResponse, error)
		GetUnlockSuggestions(ctx context.Context, userID string) (domain.UnlockSuggestionsResponse, error)
		GetRecipeMatch(ctx context.Context, recipeID string, userID string) (domain.RecipeMatchResponse, error)
	}

	matchService struct {
		pantryRepository pantry.PantryRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewMatchService(pantryRepository pantry.PantryRepository, recipeRepository recipe.RecipeRepository) MatchService {
	return &matchService{
		pantryRepository: pantryRepository,
		recipeRepository: recipeRepository,
	}
}

// GetMatches scores every recipe against the current pantry, leaving out
// recipes that have already been cooked. Nothing is cached between calls.
func (s *matchService) GetMatches(ctx context.Context, userID string) (domain.MatchesResponse, error) {
	pantryItems, err := s.loadPantry(ctx, userID)
	if err != nil {
		return domain.MatchesResponse{}, err
	}

	recipes, err := s.loadRecipes(ctx, userID)
	if err != nil {
		return domain.MatchesResponse{}, err
	}

	cookedIDs, err := s.loadCookedRecipeIDs(ctx, userID)
	if err != nil {
		return domain.MatchesResponse{}, err
	}

	all := matching.Match(recipes, pantryItems)
	matches := matching.ExcludeCooked(all, cookedIDs)
	tiers := matching.Classify(matches)

	return domain.MatchesResponse{
		Matches:          matches,
		Tiers:            tiers,
		HasStrongMatches: tiers.HasStrongMatches(),
		TotalRecipes:     len(recipes),
		CookedExcluded:   len(all) - len(matches),
	}, nil
}

func (s *matchService) GetUnlockSuggestions(ctx context.Context, userID string) (domain.UnlockSuggestionsResponse, error) {
	pantryItems, err := s.loadPantry(ctx, userID)
	if err != nil {
		return domain.UnlockSuggestionsResponse{}, err
	}

	recipes, err := s.loadRecipes(ctx, userID)
	if err != nil {
		return domain.UnlockSuggestionsResponse{}, err
	}

	return domain.UnlockSuggestionsResponse{
		Suggestions: matching.UnlockSuggestions(recipes, pantryItems),
	}, nil
}

func (s *matchService) GetRecipeMatch(ctx context.Context, recipeID string, userID string) (domain.RecipeMatchResponse, error) {
	found, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeMatchResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeMatchResponse{}, fmt.Errorf("load recipe %s: %w", recipeID, err)
	}
	if found.UserID.String() != userID {
		return domain.RecipeMatchResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	pantryItems, err := s.loadPantry(ctx, userID)
	if err != nil {
		return domain.RecipeMatchResponse{}, err
	}

	cookedIDs, err := s.loadCookedRecipeIDs(ctx, userID)
	if err != nil {
		return domain.RecipeMatchResponse{}, err
	}

	result := matching.MatchRecipe(toMatchingRecipe(found), matching.PantryNames(pantryItems))

	cooked := false
	for _, id := range cookedIDs {
		if id == recipeID {
			cooked = true
			break
		}
	}

	return domain.RecipeMatchResponse{
		RecipeMatch: result,
		Tier:        matching.TierFor(result.MatchPercentage),
		Cooked:      cooked,
	}, nil
}

func (s *matchService) loadPantry(ctx context.Context, userID string) ([]matching.PantryItem, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx, userID, domain.LocationAll)
	if err != nil {
		return nil, fmt.Errorf("load pantry: %w", err)
	}

	result := make([]matching.PantryItem, 0, len(items))
	for _, item := range items {
		result = append(result, matching.PantryItem{
			Name:     item.Name,
			Location: matching.Location(item.Location),
		})
	}
	return result, nil
}

func (s *matchService) loadRecipes(ctx context.Context, userID string) ([]matching.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	result := make([]matching.Recipe, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, toMatchingRecipe(r))
	}
	return result, nil
}

func (s *matchService) loadCookedRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	meals, err := s.recipeRepository.GetCookedMeals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cooked meals: %w", err)
	}

	ids := make([]string, 0, len(meals))
	for _, meal := range meals {
		if meal.RecipeID != nil {
			ids = append(ids, meal.RecipeID.String())
		}
	}
	return ids, nil
}

func toMatchingRecipe(r *entities.Recipe) matching.Recipe {
	ingredients := make([]matching.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, matching.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	return matching.Recipe{
		ID:          r.ID.String(),
		Title:       r.Title,
		Ingredients: ingredients,
	}
}
