package cookbook

import (
	"PantryChef/domain"
	"PantryChef/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CookbookService interface {
		CreateCookbook(ctx context.Context, req domain.CreateCookbookRequest, userID string) (domain.CookbookResponse, error)
		GetCookbooks(ctx context.Context, userID string) ([]domain.CookbookResponse, error)
		GetCookbookByID(ctx context.Context, id string, userID string) (domain.CookbookResponse, error)
		DeleteCookbook(ctx context.Context, id string, userID string) error
	}

	cookbookService struct {
		cookbookRepository CookbookRepository
	}
)

func NewCookbookService(cookbookRepository CookbookRepository) CookbookService {
	return &cookbookService{
		cookbookRepository: cookbookRepository,
	}
}

func (s *cookbookService) CreateCookbook(ctx context.Context, req domain.CreateCookbookRequest, userID string) (domain.CookbookResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CookbookResponse{}, domain.ErrParseUUID
	}

	cookbook := &entities.Cookbook{
		ID:         uuid.New(),
		UserID:     userUUID,
		Title:      req.Title,
		Author:     req.Author,
		ISBN:       req.ISBN,
		CoverImage: req.CoverImage,
	}

	if err := s.cookbookRepository.CreateCookbook(ctx, cookbook); err != nil {
		return domain.CookbookResponse{}, err
	}

	return toCookbookResponse(cookbook), nil
}

func (s *cookbookService) GetCookbooks(ctx context.Context, userID string) ([]domain.CookbookResponse, error) {
	cookbooks, err := s.cookbookRepository.GetCookbooks(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CookbookResponse, 0, len(cookbooks))
	for _, cookbook := range cookbooks {
		result = append(result, toCookbookResponse(cookbook))
	}
	return result, nil
}

func (s *cookbookService) GetCookbookByID(ctx context.Context, id string, userID string) (domain.CookbookResponse, error) {
	cookbook, err := GetOwnedCookbook(ctx, s.cookbookRepository, id, userID)
	if err != nil {
		return domain.CookbookResponse{}, err
	}
	return toCookbookResponse(cookbook), nil
}

func (s *cookbookService) DeleteCookbook(ctx context.Context, id string, userID string) error {
	if _, err := GetOwnedCookbook(ctx, s.cookbookRepository, id, userID); err != nil {
		return err
	}
	return s.cookbookRepository.DeleteCookbook(ctx, id)
}

// GetOwnedCookbook loads a cookbook and checks it belongs to userID.
func GetOwnedCookbook(ctx context.Context, repository CookbookRepository, id string, userID string) (*entities.Cookbook, error) {
	cookbook, err := repository.GetCookbookByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCookbookNotFound
		}
		return nil, err
	}

	if cookbook.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedCookbookAccess
	}
	return cookbook, nil
}

func toCookbookResponse(cookbook *entities.Cookbook) domain.CookbookResponse {
	return domain.CookbookResponse{
		ID:          cookbook.ID.String(),
		Title:       cookbook.Title,
		Author:      cookbook.Author,
		ISBN:        cookbook.ISBN,
		CoverImage:  cookbook.CoverImage,
		RecipeCount: cookbook.RecipeCount,
		CreatedAt:   cookbook.CreatedAt,
	}
}
