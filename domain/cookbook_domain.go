package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateCookbook = "cookbook created successfully"
	MessageSuccessGetCookbooks   = "success get cookbooks"
	MessageSuccessGetCookbook    = "success get cookbook"
	MessageSuccessDeleteCookbook = "cookbook deleted successfully"

	MessageFailedCreateCookbook = "failed to create cookbook"
	MessageFailedGetCookbooks   = "failed to get cookbooks"
	MessageFailedGetCookbook    = "failed to get cookbook"
	MessageFailedDeleteCookbook = "failed to delete cookbook"

	ErrCookbookNotFound           = errors.New("cookbook not found")
	ErrUnauthorizedCookbookAccess = errors.New("unauthorized access to cookbook")
)

type (
	CreateCookbookRequest struct {
		Title      string `json:"title" validate:"required"`
		Author     string `json:"author"`
		ISBN       string `json:"isbn" validate:"omitempty,isbn"`
		CoverImage string `json:"cover_image" validate:"omitempty,url"`
	}

	CookbookResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Author      string    `json:"author,omitempty"`
		ISBN        string    `json:"isbn,omitempty"`
		CoverImage  string    `json:"cover_image,omitempty"`
		RecipeCount int       `json:"recipe_count"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
