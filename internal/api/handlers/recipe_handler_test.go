package handlers

import (
	"PantryChef/domain"
	"PantryChef/internal/api/presenters"
	"PantryChef/internal/testutil"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecipeTestApp(svc *testutil.MockRecipeService) *fiber.App {
	h := NewRecipeHandler(svc, validator.New(validator.WithRequiredStructEnabled()))
	app := newTestApp()
	app.Post("/recipes", h.CreateRecipe)
	app.Get("/recipes/:id", h.GetRecipeDetail)
	app.Delete("/recipes/:id", h.DeleteRecipe)
	app.Post("/recipes/:id/image", h.UploadRecipeImage)
	app.Post("/recipes/:id/cooked", h.MarkAsCooked)
	return app
}

func TestRecipeHandler_CreateRecipe(t *testing.T) {
	svc := new(testutil.MockRecipeService)
	app := newRecipeTestApp(svc)

	t.Run("created", func(t *testing.T) {
		svc.On("CreateRecipe", mock.Anything, mock.MatchedBy(func(req domain.CreateRecipeRequest) bool {
			return req.Title == "Fried Rice" && len(req.Ingredients) == 2
		}), testUserID).Return(domain.RecipeResponse{ID: "r1", Title: "Fried Rice"}, nil).Once()

		body := `{"title":"Fried Rice","ingredients":[{"name":"rice"},{"name":"egg","amount":"2"}]}`
		httpReq := httptest.NewRequest(fiber.MethodPost, "/recipes", strings.NewReader(body))
		httpReq.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(httpReq)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var res struct {
			Data domain.RecipeResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "Fried Rice", res.Data.Title)
	})

	t.Run("missing title", func(t *testing.T) {
		httpReq := httptest.NewRequest(fiber.MethodPost, "/recipes", strings.NewReader(`{"ingredients":[{"name":"rice"}]}`))
		httpReq.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(httpReq)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		res := decode(t, resp)
		assert.Equal(t, presenters.StatusError, res.Status)
		assert.Equal(t, domain.MessageFailedSaveRecipe, res.Message)
	})

	t.Run("ingredient without a name", func(t *testing.T) {
		httpReq := httptest.NewRequest(fiber.MethodPost, "/recipes", strings.NewReader(`{"title":"Soup","ingredients":[{"amount":"1"}]}`))
		httpReq.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(httpReq)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		httpReq := httptest.NewRequest(fiber.MethodPost, "/recipes", strings.NewReader(`{"title":`))
		httpReq.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(httpReq)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, domain.MessageFailedBodyRequest, decode(t, resp).Message)
	})

	svc.AssertNumberOfCalls(t, "CreateRecipe", 1)
}

func TestRecipeHandler_GetRecipeDetail_NotFound(t *testing.T) {
	svc := new(testutil.MockRecipeService)
	app := newRecipeTestApp(svc)

	svc.On("GetRecipeDetail", mock.Anything, "missing", testUserID).Return(domain.RecipeResponse{}, domain.ErrRecipeNotFound)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/recipes/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, domain.ErrRecipeNotFound.Error(), decode(t, resp).Error)
}

func TestRecipeHandler_DeleteRecipe(t *testing.T) {
	svc := new(testutil.MockRecipeService)
	app := newRecipeTestApp(svc)

	svc.On("DeleteRecipe", mock.Anything, "mine", testUserID).Return(nil)
	svc.On("DeleteRecipe", mock.Anything, "theirs", testUserID).Return(domain.ErrUnauthorizedRecipeAccess)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/recipes/mine", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/recipes/theirs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	svc.AssertExpectations(t)
}

func TestRecipeHandler_UploadRecipeImage_RequiresFile(t *testing.T) {
	svc := new(testutil.MockRecipeService)
	app := newRecipeTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/recipes/some-id/image", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "UploadRecipeImage", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecipeHandler_MarkAsCooked(t *testing.T) {
	svc := new(testutil.MockRecipeService)
	app := newRecipeTestApp(svc)

	cookedAt := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	svc.On("MarkAsCooked", mock.Anything, "r1", testUserID).Return(domain.CookedMealResponse{
		ID: "m1", RecipeID: "r1", Title: "Fried Rice", CookedAt: cookedAt,
	}, nil)
	svc.On("MarkAsCooked", mock.Anything, "gone", testUserID).Return(domain.CookedMealResponse{}, domain.ErrRecipeNotFound)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/recipes/r1/cooked", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var res struct {
		Data domain.CookedMealResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "r1", res.Data.RecipeID)
	assert.True(t, cookedAt.Equal(res.Data.CookedAt))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/recipes/gone/cooked", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
