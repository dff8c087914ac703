package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes        = "success get recipes"
	MessageSuccessGetRecipeDetail   = "success get recipe detail"
	MessageSuccessSaveRecipe        = "recipe saved successfully"
	MessageSuccessDeleteRecipe      = "recipe deleted successfully"
	MessageSuccessUploadRecipeImage = "recipe image uploaded successfully"
	MessageSuccessGetHistory        = "success get cooked meals"
	MessageSuccessMarkAsCooked      = "recipe marked as cooked successfully"

	MessageFailedGetRecipes        = "failed to get recipes"
	MessageFailedGetRecipeDetail   = "failed to get recipe detail"
	MessageFailedSaveRecipe        = "failed to save recipe"
	MessageFailedDeleteRecipe      = "failed to delete recipe"
	MessageFailedUploadRecipeImage = "failed to upload recipe image"
	MessageFailedGetHistory        = "failed to get cooked meals"
	MessageFailedMarkAsCooked      = "failed to mark recipe as cooked"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
)

type (
	Ingredient struct {
		Name   string `json:"name" validate:"required"`
		Amount string `json:"amount,omitempty"`
		Unit   string `json:"unit,omitempty"`
	}

	NutritionFacts struct {
		Calories      int `json:"calories"`
		Protein       int `json:"protein"`
		Carbohydrates int `json:"carbohydrates"`
		Fat           int `json:"fat"`
		Fiber         int `json:"fiber"`
	}

	CreateRecipeRequest struct {
		Title           string          `json:"title" validate:"required"`
		Ingredients     []Ingredient    `json:"ingredients" validate:"dive"`
		Instructions    []string        `json:"instructions"`
		PrepTimeMinutes int             `json:"prep_time_minutes" validate:"min=0"`
		CookTimeMinutes int             `json:"cook_time_minutes" validate:"min=0"`
		Servings        int             `json:"servings" validate:"min=0"`
		ImageURL        string          `json:"image_url" validate:"omitempty,url"`
		Source          string          `json:"source"`
		CookbookID      string          `json:"cookbook_id" validate:"omitempty,uuid"`
		PageNumber      *int            `json:"page_number" validate:"omitempty,min=1"`
		IsDIYCraving    bool            `json:"is_diy_craving"`
		Nutrition       *NutritionFacts `json:"nutrition"`
	}

	RecipeResponse struct {
		ID              string          `json:"id"`
		Title           string          `json:"title"`
		Ingredients     []Ingredient    `json:"ingredients"`
		Instructions    []string        `json:"instructions"`
		PrepTimeMinutes int             `json:"prep_time_minutes"`
		CookTimeMinutes int             `json:"cook_time_minutes"`
		Servings        int             `json:"servings"`
		ImageURL        string          `json:"image_url,omitempty"`
		Source          string          `json:"source"`
		CookbookID      string          `json:"cookbook_id,omitempty"`
		PageNumber      *int            `json:"page_number,omitempty"`
		IsDIYCraving    bool            `json:"is_diy_craving"`
		Nutrition       *NutritionFacts `json:"nutrition,omitempty"`
		CreatedAt       time.Time       `json:"created_at"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	CookedMealResponse struct {
		ID       string    `json:"id"`
		RecipeID string    `json:"recipe_id,omitempty"`
		Title    string    `json:"title"`
		CookedAt time.Time `json:"cooked_at"`
	}

	CookedMealsResponse struct {
		Meals []CookedMealResponse `json:"meals"`
		Total int                  `json:"total"`
	}
)
