package matching

import (
	"sort"
	"strings"
)

type IngredientUnlock struct {
	IngredientName      string   `json:"ingredient_name"`
	UnlockCount         int      `json:"unlock_count"`
	ExampleRecipeTitles []string `json:"example_recipe_titles"`
}

const (
	MaxUnlockSuggestions = 6
	MaxExampleTitles     = 3
)

// UnlockSuggestions ranks missing ingredients by how many recipes lack them.
//
// An ingredient counts as missing only when its lowercased name is not literally
// a pantry name. This is stricter than IngredientAvailable and reports more
// ingredients as missing than Match does. Ties keep first-seen order.
func UnlockSuggestions(recipes []Recipe, pantry []PantryItem) []IngredientUnlock {
	pantryNames := PantryNames(pantry)

	byName := make(map[string]*IngredientUnlock)
	var order []string

	for _, recipe := range recipes {
		for _, ingredient := range recipe.Ingredients {
			name := strings.ToLower(ingredient.Name)
			if _, ok := pantryNames[name]; ok {
				continue
			}

			unlock, ok := byName[name]
			if !ok {
				unlock = &IngredientUnlock{IngredientName: name, ExampleRecipeTitles: []string{}}
				byName[name] = unlock
				order = append(order, name)
			}
			unlock.UnlockCount++
			if len(unlock.ExampleRecipeTitles) < MaxExampleTitles {
				unlock.ExampleRecipeTitles = append(unlock.ExampleRecipeTitles, recipe.Title)
			}
		}
	}

	result := make([]IngredientUnlock, 0, len(order))
	for _, name := range order {
		result = append(result, *byName[name])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UnlockCount > result[j].UnlockCount
	})

	if len(result) > MaxUnlockSuggestions {
		result = result[:MaxUnlockSuggestions]
	}
	return result
}
