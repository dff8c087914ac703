package handlers

import (
	"PantryChef/domain"
	"PantryChef/internal/testutil"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCookbookHandler_CreateCookbook(t *testing.T) {
	svc := new(testutil.MockCookbookService)
	app := newTestApp()
	app.Post("/cookbooks", NewCookbookHandler(svc, validator.New(validator.WithRequiredStructEnabled())).CreateCookbook)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"created", `{"title":"Salt Fat Acid Heat","isbn":"9780306406157"}`, fiber.StatusCreated},
		{"missing title", `{"author":"Samin Nosrat"}`, fiber.StatusBadRequest},
		{"bad isbn", `{"title":"Jerusalem","isbn":"12345"}`, fiber.StatusBadRequest},
		{"bad cover url", `{"title":"Jerusalem","cover_image":"not a url"}`, fiber.StatusBadRequest},
	}

	svc.On("CreateCookbook", mock.Anything, domain.CreateCookbookRequest{
		Title: "Salt Fat Acid Heat",
		ISBN:  "9780306406157",
	}, testUserID).Return(domain.CookbookResponse{ID: "c1", Title: "Salt Fat Acid Heat"}, nil).Once()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpReq := httptest.NewRequest(fiber.MethodPost, "/cookbooks", strings.NewReader(tt.body))
			httpReq.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(httpReq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}

	svc.AssertExpectations(t)
}

func TestCookbookHandler_GetCookbook(t *testing.T) {
	svc := new(testutil.MockCookbookService)
	app := newTestApp()
	app.Get("/cookbooks/:id", NewCookbookHandler(svc, validator.New()).GetCookbook)

	svc.On("GetCookbookByID", mock.Anything, "c1", testUserID).Return(domain.CookbookResponse{ID: "c1", RecipeCount: 3}, nil)
	svc.On("GetCookbookByID", mock.Anything, "missing", testUserID).Return(domain.CookbookResponse{}, domain.ErrCookbookNotFound)
	svc.On("GetCookbookByID", mock.Anything, "theirs", testUserID).Return(domain.CookbookResponse{}, domain.ErrUnauthorizedCookbookAccess)

	tests := []struct {
		id   string
		want int
	}{
		{"c1", fiber.StatusOK},
		{"missing", fiber.StatusNotFound},
		{"theirs", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/cookbooks/"+tt.id, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.StatusCode, tt.id)
	}
}

func TestCookbookHandler_DeleteCookbook_NotFound(t *testing.T) {
	svc := new(testutil.MockCookbookService)
	app := newTestApp()
	app.Delete("/cookbooks/:id", NewCookbookHandler(svc, validator.New()).DeleteCookbook)

	svc.On("DeleteCookbook", mock.Anything, "missing", testUserID).Return(domain.ErrCookbookNotFound)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/cookbooks/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
