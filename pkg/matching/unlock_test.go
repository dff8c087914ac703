package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockSuggestions_RanksByRecipeCount(t *testing.T) {
	recipes := []Recipe{
		{Title: "R1", Ingredients: ingredients("salt", "pepper")},
		{Title: "R2", Ingredients: ingredients("salt")},
		{Title: "R3", Ingredients: ingredients("basil")},
	}

	unlocks := UnlockSuggestions(recipes, nil)
	require.Len(t, unlocks, 3)

	assert.Equal(t, "salt", unlocks[0].IngredientName)
	assert.Equal(t, 2, unlocks[0].UnlockCount)
	assert.ElementsMatch(t, []string{"R1", "R2"}, unlocks[0].ExampleRecipeTitles)

	assert.Equal(t, "pepper", unlocks[1].IngredientName)
	assert.Equal(t, "basil", unlocks[2].IngredientName)
}

func TestUnlockSuggestions_CapsAtSix(t *testing.T) {
	var recipes []Recipe
	for i := 0; i < 10; i++ {
		recipes = append(recipes, Recipe{
			Title:       fmt.Sprintf("Recipe %d", i),
			Ingredients: ingredients(fmt.Sprintf("ingredient %d", i)),
		})
	}

	unlocks := UnlockSuggestions(recipes, nil)
	assert.Len(t, unlocks, MaxUnlockSuggestions)
	assert.Equal(t, "ingredient 0", unlocks[0].IngredientName)

	assert.Len(t, UnlockSuggestions(recipes[:4], nil), 4)
}

func TestUnlockSuggestions_LimitsExampleTitles(t *testing.T) {
	var recipes []Recipe
	for i := 0; i < 5; i++ {
		recipes = append(recipes, Recipe{Title: fmt.Sprintf("Soup %d", i), Ingredients: ingredients("Onion")})
	}

	unlocks := UnlockSuggestions(recipes, nil)
	require.Len(t, unlocks, 1)
	assert.Equal(t, "onion", unlocks[0].IngredientName)
	assert.Equal(t, 5, unlocks[0].UnlockCount)
	assert.Equal(t, []string{"Soup 0", "Soup 1", "Soup 2"}, unlocks[0].ExampleRecipeTitles)
}

func TestUnlockSuggestions_UsesExactMembership(t *testing.T) {
	recipes := []Recipe{
		{Title: "Omelette", Ingredients: ingredients("Egg", "Egg Yolk")},
	}

	// Match treats "Egg Yolk" as available, the advisor does not.
	matches := Match(recipes, pantryOf("egg"))
	require.Len(t, matches, 1)
	assert.Equal(t, float64(100), matches[0].MatchPercentage)

	unlocks := UnlockSuggestions(recipes, pantryOf("egg"))
	require.Len(t, unlocks, 1)
	assert.Equal(t, "egg yolk", unlocks[0].IngredientName)
}

func TestUnlockSuggestions_EmptyWhenEverythingStocked(t *testing.T) {
	recipes := []Recipe{
		{Title: "Toast", Ingredients: ingredients("Bread", "Butter")},
	}

	unlocks := UnlockSuggestions(recipes, pantryOf("bread", "BUTTER"))
	assert.Empty(t, unlocks)
	assert.NotNil(t, unlocks)
}
