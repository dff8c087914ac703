package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingredients(names ...string) []Ingredient {
	result := make([]Ingredient, 0, len(names))
	for _, name := range names {
		result = append(result, Ingredient{Name: name})
	}
	return result
}

func pantryOf(names ...string) []PantryItem {
	result := make([]PantryItem, 0, len(names))
	for _, name := range names {
		result = append(result, PantryItem{Name: name, Location: LocationPantry})
	}
	return result
}

func TestPantryNames_LowercasesWithoutTrimming(t *testing.T) {
	names := PantryNames([]PantryItem{{Name: "Olive Oil"}, {Name: " Salt "}})

	assert.Contains(t, names, "olive oil")
	assert.Contains(t, names, " salt ")
	assert.NotContains(t, names, "salt")
}

func TestIngredientAvailable(t *testing.T) {
	tests := []struct {
		name       string
		pantry     []PantryItem
		ingredient string
		want       bool
	}{
		{name: "exact match ignores case", pantry: pantryOf("Chicken"), ingredient: "chicken", want: true},
		{name: "pantry name inside ingredient", pantry: pantryOf("Egg"), ingredient: "Eggs Benedict Base", want: true},
		{name: "ingredient inside pantry name", pantry: pantryOf("Whole Wheat Flour"), ingredient: "Flour", want: true},
		{name: "olive oil covers oil", pantry: pantryOf("extra virgin olive oil"), ingredient: "oil", want: true},
		{name: "ice covers rice", pantry: pantryOf("ice"), ingredient: "rice", want: true},
		{name: "unrelated", pantry: pantryOf("Chicken"), ingredient: "Garlic", want: false},
		{name: "empty pantry", pantry: nil, ingredient: "Garlic", want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := IngredientAvailable(testCase.ingredient, PantryNames(testCase.pantry))
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestMatch_ChickenRiceScenario(t *testing.T) {
	recipes := []Recipe{
		{ID: "a", Title: "Chicken Rice with Garlic", Ingredients: ingredients("Chicken", "Rice", "Garlic")},
		{ID: "b", Title: "Chicken Rice", Ingredients: ingredients("Chicken", "Rice")},
	}

	matches := Match(recipes, pantryOf("Chicken", "Rice"))
	require.Len(t, matches, 2)

	assert.Equal(t, "b", matches[0].Recipe.ID)
	assert.Equal(t, float64(100), matches[0].MatchPercentage)
	assert.Empty(t, matches[0].MissingIngredients)
	assert.Equal(t, TierReadyNow, TierFor(matches[0].MatchPercentage))

	assert.Equal(t, "a", matches[1].Recipe.ID)
	assert.InDelta(t, 66.67, matches[1].MatchPercentage, 0.01)
	assert.Equal(t, []string{"Chicken", "Rice"}, matches[1].MatchingIngredients)
	assert.Equal(t, []Ingredient{{Name: "Garlic"}}, matches[1].MissingIngredients)
}

func TestMatch_EmptyPantryScoresZero(t *testing.T) {
	recipes := []Recipe{
		{ID: "a", Ingredients: ingredients("Chicken")},
		{ID: "b", Ingredients: ingredients("Flour", "Sugar", "Butter")},
	}

	for _, match := range Match(recipes, nil) {
		assert.Zero(t, match.MatchPercentage)
		assert.Equal(t, TierNeedsWork, TierFor(match.MatchPercentage))
		assert.Len(t, match.MissingIngredients, len(match.Recipe.Ingredients))
	}
}

func TestMatch_EmptyIngredientRecipe(t *testing.T) {
	recipes := []Recipe{
		{ID: "empty"},
		{ID: "full", Ingredients: ingredients("Salt")},
	}

	matches := Match(recipes, pantryOf("Salt"))
	require.Len(t, matches, 2)

	last := matches[1]
	assert.Equal(t, "empty", last.Recipe.ID)
	assert.Zero(t, last.MatchPercentage)
	assert.Empty(t, last.MatchingIngredients)
	assert.Empty(t, last.MissingIngredients)
}

func TestMatch_SortsDescending(t *testing.T) {
	recipes := []Recipe{
		{ID: "twenty", Ingredients: ingredients("salt", "kale", "corn", "bean", "tuna")},
		{ID: "hundred", Ingredients: ingredients("salt")},
		{ID: "sixty", Ingredients: ingredients("salt", "pepper", "oil", "kale", "corn")},
	}

	matches := Match(recipes, pantryOf("salt", "pepper", "oil"))
	require.Len(t, matches, 3)

	assert.Equal(t, "hundred", matches[0].Recipe.ID)
	assert.Equal(t, "sixty", matches[1].Recipe.ID)
	assert.Equal(t, "twenty", matches[2].Recipe.ID)
	assert.Equal(t, float64(20), matches[2].MatchPercentage)
	assert.Equal(t, float64(60), matches[1].MatchPercentage)
}

func TestMatch_TiesKeepStoreOrder(t *testing.T) {
	recipes := []Recipe{
		{ID: "first", Ingredients: ingredients("garlic")},
		{ID: "second"},
		{ID: "third", Ingredients: ingredients("basil")},
		{ID: "fourth", Ingredients: ingredients("salt")},
	}

	matches := Match(recipes, pantryOf("salt"))

	ids := make([]string, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match.Recipe.ID)
	}
	assert.Equal(t, []string{"fourth", "first", "second", "third"}, ids)
}

func TestMatch_PercentageBoundsAndFullMatch(t *testing.T) {
	recipes := []Recipe{
		{ID: "1", Ingredients: ingredients("egg", "milk", "flour")},
		{ID: "2", Ingredients: ingredients("egg")},
		{ID: "3", Ingredients: ingredients("saffron", "truffle")},
		{ID: "4"},
	}

	for _, match := range Match(recipes, pantryOf("Eggs", "Whole Milk")) {
		assert.GreaterOrEqual(t, match.MatchPercentage, float64(0))
		assert.LessOrEqual(t, match.MatchPercentage, float64(100))
		if len(match.Recipe.Ingredients) > 0 {
			assert.Equal(t, match.MatchPercentage == 100, len(match.MissingIngredients) == 0)
		}
	}
}

func TestMatch_DoesNotMutateInputs(t *testing.T) {
	recipes := []Recipe{
		{ID: "low", Ingredients: ingredients("garlic")},
		{ID: "high", Ingredients: ingredients("salt")},
	}
	pantry := pantryOf("Salt")

	Match(recipes, pantry)

	assert.Equal(t, "low", recipes[0].ID)
	assert.Equal(t, "Salt", pantry[0].Name)
}

func TestExcludeCooked(t *testing.T) {
	matches := []RecipeMatch{
		{Recipe: Recipe{ID: "a"}},
		{Recipe: Recipe{ID: "b"}},
		{Recipe: Recipe{ID: "c"}},
	}

	result := ExcludeCooked(matches, []string{"b", ""})

	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].Recipe.ID)
	assert.Equal(t, "c", result[1].Recipe.ID)
	assert.Len(t, matches, 3)
}
