package recipe

import (
	"PantryChef/domain"
	"PantryChef/entities"
	"PantryChef/internal/utils/storage"
	"PantryChef/pkg/cookbook"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeResponse, error)
		MarkAsCooked(ctx context.Context, recipeID string, userID string) (domain.CookedMealResponse, error)
		GetCookedMeals(ctx context.Context, userID string) (domain.CookedMealsResponse, error)
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		cookbookRepository cookbook.CookbookRepository
		s3                 storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, cookbookRepository cookbook.CookbookRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		cookbookRepository: cookbookRepository,
		s3:                 s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	var cookbookID *uuid.UUID
	if req.CookbookID != "" {
		book, err := cookbook.GetOwnedCookbook(ctx, s.cookbookRepository, req.CookbookID, userID)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		cookbookID = &book.ID
	}

	ingredients := make([]entities.RecipeIngredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, entities.RecipeIngredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	instructions := req.Instructions
	if instructions == nil {
		instructions = []string{}
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          userUUID,
		Title:           req.Title,
		Ingredients:     ingredients,
		Instructions:    instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		ImageURL:        req.ImageURL,
		Source:          req.Source,
		CookbookID:      cookbookID,
		PageNumber:      req.PageNumber,
		IsDIYCraving:    req.IsDIYCraving,
	}
	if req.Nutrition != nil {
		recipe.Nutrition = &entities.RecipeNutrition{
			Calories:      req.Nutrition.Calories,
			Protein:       req.Nutrition.Protein,
			Carbohydrates: req.Nutrition.Carbohydrates,
			Fat:           req.Nutrition.Fat,
			Fiber:         req.Nutrition.Fiber,
		}
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	if cookbookID != nil {
		if err := s.cookbookRepository.IncrementRecipeCount(ctx, cookbookID.String()); err != nil {
			log.Errorf("recipe: incrementing recipe count of cookbook %s: %v", cookbookID, err)
		}
	}

	return ToRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, ToRecipeResponse(recipe))
	}
	return result, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return ToRecipeResponse(recipe), nil
}

// DeleteRecipe removes the recipe, then decrements its cookbook's count. The two
// writes are not transactional; a failed decrement is logged and left behind.
func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}

	if recipe.CookbookID != nil {
		if err := s.cookbookRepository.DecrementRecipeCount(ctx, recipe.CookbookID.String()); err != nil {
			log.Errorf("recipe: decrementing recipe count of cookbook %s: %v", recipe.CookbookID, err)
		}
	}

	if recipe.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				log.Warnf("recipe: removing image %s: %v", objectKey, err)
			}
		}
	}

	return nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, req.RecipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
	var objectKey string
	var uploadErr error

	existingKey := ""
	if recipe.ImageURL != "" {
		existingKey = s.s3.GetObjectKeyFromLink(recipe.ImageURL)
	}
	if existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.RecipeResponse{}, uploadErr
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return ToRecipeResponse(recipe), nil
}

func (s *recipeService) MarkAsCooked(ctx context.Context, recipeID string, userID string) (domain.CookedMealResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.CookedMealResponse{}, err
	}

	meal := &entities.CookedMeal{
		ID:       uuid.New(),
		UserID:   recipe.UserID,
		RecipeID: &recipe.ID,
		Title:    recipe.Title,
		CookedAt: time.Now(),
	}

	if err := s.recipeRepository.AddCookedMeal(ctx, meal); err != nil {
		return domain.CookedMealResponse{}, err
	}

	return toCookedMealResponse(meal), nil
}

func (s *recipeService) GetCookedMeals(ctx context.Context, userID string) (domain.CookedMealsResponse, error) {
	meals, err := s.recipeRepository.GetCookedMeals(ctx, userID)
	if err != nil {
		return domain.CookedMealsResponse{}, err
	}

	result := make([]domain.CookedMealResponse, 0, len(meals))
	for _, meal := range meals {
		result = append(result, toCookedMealResponse(meal))
	}

	return domain.CookedMealsResponse{
		Meals: result,
		Total: len(result),
	}, nil
}

func (s *recipeService) getOwnedRecipe(ctx context.Context, recipeID string, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if recipe.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

func ToRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.Ingredient, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, domain.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	res := domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Title:           recipe.Title,
		Ingredients:     ingredients,
		Instructions:    recipe.Instructions,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		ImageURL:        recipe.ImageURL,
		Source:          recipe.Source,
		PageNumber:      recipe.PageNumber,
		IsDIYCraving:    recipe.IsDIYCraving,
		CreatedAt:       recipe.CreatedAt,
	}
	if recipe.CookbookID != nil {
		res.CookbookID = recipe.CookbookID.String()
	}
	if recipe.Nutrition != nil {
		res.Nutrition = &domain.NutritionFacts{
			Calories:      recipe.Nutrition.Calories,
			Protein:       recipe.Nutrition.Protein,
			Carbohydrates: recipe.Nutrition.Carbohydrates,
			Fat:           recipe.Nutrition.Fat,
			Fiber:         recipe.Nutrition.Fiber,
		}
	}
	return res
}

func toCookedMealResponse(meal *entities.CookedMeal) domain.CookedMealResponse {
	res := domain.CookedMealResponse{
		ID:       meal.ID.String(),
		Title:    meal.Title,
		CookedAt: meal.CookedAt,
	}
	if meal.RecipeID != nil {
		res.RecipeID = meal.RecipeID.String()
	}
	return res
}
