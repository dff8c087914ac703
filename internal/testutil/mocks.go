// Package testutil holds testify mocks of the repository and service interfaces.
package testutil

import (
	"PantryChef/domain"
	"PantryChef/entities"
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"
)

// MockPantryRepository is a mock implementation of pantry.PantryRepository
type MockPantryRepository struct {
	mock.Mock
}

func (m *MockPantryRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPantryRepository) GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PantryItem), args.Error(1)
}

func (m *MockPantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPantryRepository) DeletePantryItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPantryRepository) GetPantryItems(ctx context.Context, userID string, location string) ([]*entities.PantryItem, error) {
	args := m.Called(ctx, userID, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PantryItem), args.Error(1)
}

func (m *MockPantryRepository) GetPantryItemsByName(ctx context.Context, userID string, name string) ([]*entities.PantryItem, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PantryItem), args.Error(1)
}

// MockRecipeRepository is a mock implementation of recipe.RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) AddCookedMeal(ctx context.Context, meal *entities.CookedMeal) error {
	args := m.Called(ctx, meal)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetCookedMeals(ctx context.Context, userID string) ([]*entities.CookedMeal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CookedMeal), args.Error(1)
}

// MockCookbookRepository is a mock implementation of cookbook.CookbookRepository
type MockCookbookRepository struct {
	mock.Mock
}

func (m *MockCookbookRepository) CreateCookbook(ctx context.Context, cookbook *entities.Cookbook) error {
	args := m.Called(ctx, cookbook)
	return args.Error(0)
}

func (m *MockCookbookRepository) GetCookbookByID(ctx context.Context, id string) (*entities.Cookbook, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Cookbook), args.Error(1)
}

func (m *MockCookbookRepository) GetCookbooks(ctx context.Context, userID string) ([]*entities.Cookbook, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Cookbook), args.Error(1)
}

func (m *MockCookbookRepository) DeleteCookbook(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCookbookRepository) IncrementRecipeCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCookbookRepository) DecrementRecipeCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGroceryRepository is a mock implementation of grocery.GroceryRepository
type MockGroceryRepository struct {
	mock.Mock
}

func (m *MockGroceryRepository) AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockGroceryRepository) GetGroceryItemByID(ctx context.Context, id string) (*entities.GroceryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GroceryItem), args.Error(1)
}

func (m *MockGroceryRepository) GetGroceryItems(ctx context.Context, userID string) ([]*entities.GroceryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GroceryItem), args.Error(1)
}

func (m *MockGroceryRepository) UpdateGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockGroceryRepository) DeleteGroceryItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of user.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) RegisterUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) CheckUserByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockPantryService is a mock implementation of pantry.PantryService
type MockPantryService struct {
	mock.Mock
}

func (m *MockPantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.AddPantryItemResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.AddPantryItemResponse), args.Error(1)
}

func (m *MockPantryService) AddPantryItems(ctx context.Context, req domain.AddPantryItemsRequest, userID string) (domain.AddPantryItemsResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.AddPantryItemsResponse), args.Error(1)
}

func (m *MockPantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error {
	args := m.Called(ctx, id, req, userID)
	return args.Error(0)
}

func (m *MockPantryService) DeletePantryItem(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockPantryService) GetPantryItems(ctx context.Context, userID string, location string) ([]domain.PantryItemResponse, error) {
	args := m.Called(ctx, userID, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PantryItemResponse), args.Error(1)
}

func (m *MockPantryService) GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.PantryItemResponse), args.Error(1)
}

func (m *MockPantryService) RestockFromGrocery(ctx context.Context, groceryItem *entities.GroceryItem) (*entities.PantryItem, error) {
	args := m.Called(ctx, groceryItem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PantryItem), args.Error(1)
}

// MockMatchService is a mock implementation of match.MatchService
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) GetMatches(ctx context.Context, userID string) (domain.MatchesResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.MatchesResponse), args.Error(1)
}

func (m *MockMatchService) GetUnlockSuggestions(ctx context.Context, userID string) (domain.UnlockSuggestionsResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UnlockSuggestionsResponse), args.Error(1)
}

func (m *MockMatchService) GetRecipeMatch(ctx context.Context, recipeID string, userID string) (domain.RecipeMatchResponse, error) {
	args := m.Called(ctx, recipeID, userID)
	return args.Get(0).(domain.RecipeMatchResponse), args.Error(1)
}

// MockAwsS3 is a mock implementation of storage.AwsS3
type MockAwsS3 struct {
	mock.Mock
}

func (m *MockAwsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	args := m.Called(fileName, file, folder)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowed ...string) (string, error) {
	args := m.Called(objectKey, file)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) DeleteFile(objectKey string) error {
	args := m.Called(objectKey)
	return args.Error(0)
}

func (m *MockAwsS3) GetPublicLinkKey(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}

func (m *MockAwsS3) GetObjectKeyFromLink(link string) string {
	args := m.Called(link)
	return args.String(0)
}

// MockRecipeService is a mock implementation of recipe.RecipeService
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error) {
	args := m.Called(ctx, recipeID, userID)
	return args.Get(0).(domain.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	args := m.Called(ctx, recipeID, userID)
	return args.Error(0)
}

func (m *MockRecipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) MarkAsCooked(ctx context.Context, recipeID string, userID string) (domain.CookedMealResponse, error) {
	args := m.Called(ctx, recipeID, userID)
	return args.Get(0).(domain.CookedMealResponse), args.Error(1)
}

func (m *MockRecipeService) GetCookedMeals(ctx context.Context, userID string) (domain.CookedMealsResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.CookedMealsResponse), args.Error(1)
}

// MockCookbookService is a mock implementation of cookbook.CookbookService
type MockCookbookService struct {
	mock.Mock
}

func (m *MockCookbookService) CreateCookbook(ctx context.Context, req domain.CreateCookbookRequest, userID string) (domain.CookbookResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.CookbookResponse), args.Error(1)
}

func (m *MockCookbookService) GetCookbooks(ctx context.Context, userID string) ([]domain.CookbookResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CookbookResponse), args.Error(1)
}

func (m *MockCookbookService) GetCookbookByID(ctx context.Context, id string, userID string) (domain.CookbookResponse, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.CookbookResponse), args.Error(1)
}

func (m *MockCookbookService) DeleteCookbook(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockGroceryService is a mock implementation of grocery.GroceryService
type MockGroceryService struct {
	mock.Mock
}

func (m *MockGroceryService) AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.GroceryItemResponse), args.Error(1)
}

func (m *MockGroceryService) GetGroceryItems(ctx context.Context, userID string) ([]domain.GroceryItemResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroceryItemResponse), args.Error(1)
}

func (m *MockGroceryService) DeleteGroceryItem(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockGroceryService) CheckGroceryItem(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.GroceryItemResponse), args.Error(1)
}

func (m *MockGroceryService) UncheckGroceryItem(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(domain.GroceryItemResponse), args.Error(1)
}
