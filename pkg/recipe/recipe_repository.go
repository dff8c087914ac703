package recipe

import (
	"PantryChef/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		AddCookedMeal(ctx context.Context, meal *entities.CookedMeal) error
		GetCookedMeals(ctx context.Context, userID string) ([]*entities.CookedMeal, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipes returns the whole collection in insertion order; matching ties
// are broken by this order.
func (r *recipeRepository) GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) AddCookedMeal(ctx context.Context, meal *entities.CookedMeal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *recipeRepository) GetCookedMeals(ctx context.Context, userID string) ([]*entities.CookedMeal, error) {
	var meals []*entities.CookedMeal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("cooked_at desc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
