package cookbook

import (
	"PantryChef/domain"
	"PantryChef/entities"
	"PantryChef/internal/testutil"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateCookbook(t *testing.T) {
	repo := new(testutil.MockCookbookRepository)
	svc := NewCookbookService(repo)
	userID := uuid.NewString()

	repo.On("CreateCookbook", mock.Anything, mock.MatchedBy(func(c *entities.Cookbook) bool {
		return c.Title == "Salt Fat Acid Heat" && c.UserID.String() == userID
	})).Return(nil)

	res, err := svc.CreateCookbook(context.Background(), domain.CreateCookbookRequest{
		Title:  "Salt Fat Acid Heat",
		Author: "Samin Nosrat",
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, "Salt Fat Acid Heat", res.Title)
	assert.Zero(t, res.RecipeCount)
	repo.AssertExpectations(t)
}

func TestGetCookbooks(t *testing.T) {
	repo := new(testutil.MockCookbookRepository)
	svc := NewCookbookService(repo)
	userID := uuid.NewString()

	repo.On("GetCookbooks", mock.Anything, userID).Return([]*entities.Cookbook{
		{ID: uuid.New(), Title: "Jerusalem", RecipeCount: 4},
		{ID: uuid.New(), Title: "Plenty"},
	}, nil)

	res, err := svc.GetCookbooks(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Jerusalem", res[0].Title)
	assert.Equal(t, 4, res[0].RecipeCount)
}

func TestGetCookbookByID_Errors(t *testing.T) {
	repo := new(testutil.MockCookbookRepository)
	svc := NewCookbookService(repo)
	owned := &entities.Cookbook{ID: uuid.New(), UserID: uuid.New()}

	repo.On("GetCookbookByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)
	repo.On("GetCookbookByID", mock.Anything, owned.ID.String()).Return(owned, nil)

	_, err := svc.GetCookbookByID(context.Background(), "missing", owned.UserID.String())
	assert.ErrorIs(t, err, domain.ErrCookbookNotFound)

	_, err = svc.GetCookbookByID(context.Background(), owned.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedCookbookAccess)
}

func TestDeleteCookbook(t *testing.T) {
	repo := new(testutil.MockCookbookRepository)
	svc := NewCookbookService(repo)
	book := &entities.Cookbook{ID: uuid.New(), UserID: uuid.New()}

	repo.On("GetCookbookByID", mock.Anything, book.ID.String()).Return(book, nil)
	repo.On("DeleteCookbook", mock.Anything, book.ID.String()).Return(nil)

	err := svc.DeleteCookbook(context.Background(), book.ID.String(), book.UserID.String())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
