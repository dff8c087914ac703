// Package matching scores a recipe collection against a pantry inventory.
//
// Everything here is a pure computation over the slices the caller passes in:
// inputs are never mutated and every call allocates fresh output.
package matching

import (
	"sort"
	"strings"
)

type (
	Location string

	Ingredient struct {
		Name   string `json:"name"`
		Amount string `json:"amount,omitempty"`
		Unit   string `json:"unit,omitempty"`
	}

	Recipe struct {
		ID          string       `json:"id"`
		Title       string       `json:"title"`
		Ingredients []Ingredient `json:"ingredients"`
	}

	PantryItem struct {
		Name     string   `json:"name"`
		Location Location `json:"location"`
	}

	RecipeMatch struct {
		Recipe              Recipe       `json:"recipe"`
		MatchPercentage     float64      `json:"match_percentage"`
		MatchingIngredients []string     `json:"matching_ingredients"`
		MissingIngredients  []Ingredient `json:"missing_ingredients"`
	}
)

const (
	LocationFridge Location = "fridge"
	LocationPantry Location = "pantry"
)

// PantryNames returns the case-folded set of pantry item names.
// Names are not trimmed.
func PantryNames(items []PantryItem) map[string]struct{} {
	names := make(map[string]struct{}, len(items))
	for _, item := range items {
		names[strings.ToLower(item.Name)] = struct{}{}
	}
	return names
}

// IngredientAvailable reports whether an ingredient is covered by any pantry name.
// Containment is checked in both directions, so "egg" covers "egg yolk" and
// "extra virgin olive oil" covers "oil". "rice" is covered by "ice".
func IngredientAvailable(ingredientName string, pantryNames map[string]struct{}) bool {
	name := strings.ToLower(ingredientName)
	for pantryName := range pantryNames {
		if strings.Contains(name, pantryName) || strings.Contains(pantryName, name) {
			return true
		}
	}
	return false
}

// MatchRecipe scores a single recipe against a prepared pantry name set.
func MatchRecipe(recipe Recipe, pantryNames map[string]struct{}) RecipeMatch {
	match := RecipeMatch{
		Recipe:              recipe,
		MatchingIngredients: []string{},
		MissingIngredients:  []Ingredient{},
	}

	for _, ingredient := range recipe.Ingredients {
		if IngredientAvailable(ingredient.Name, pantryNames) {
			match.MatchingIngredients = append(match.MatchingIngredients, ingredient.Name)
		} else {
			match.MissingIngredients = append(match.MissingIngredients, ingredient)
		}
	}

	if total := len(recipe.Ingredients); total > 0 {
		match.MatchPercentage = float64(len(match.MatchingIngredients)) / float64(total) * 100
	}

	return match
}

// Match scores every recipe and returns the results ordered by match percentage,
// highest first. Equal percentages keep the order of the recipe collection.
func Match(recipes []Recipe, pantry []PantryItem) []RecipeMatch {
	pantryNames := PantryNames(pantry)

	matches := make([]RecipeMatch, 0, len(recipes))
	for _, recipe := range recipes {
		matches = append(matches, MatchRecipe(recipe, pantryNames))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})

	return matches
}

// ExcludeCooked drops matches whose recipe id is in cookedRecipeIDs.
func ExcludeCooked(matches []RecipeMatch, cookedRecipeIDs []string) []RecipeMatch {
	cooked := make(map[string]struct{}, len(cookedRecipeIDs))
	for _, id := range cookedRecipeIDs {
		if id == "" {
			continue
		}
		cooked[id] = struct{}{}
	}

	result := make([]RecipeMatch, 0, len(matches))
	for _, match := range matches {
		if _, ok := cooked[match.Recipe.ID]; ok {
			continue
		}
		result = append(result, match)
	}
	return result
}
