package grocery

import (
	"PantryChef/domain"
	"PantryChef/entities"
	"PantryChef/pkg/pantry"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroceryService interface {
		AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error)
		GetGroceryItems(ctx context.Context, userID string) ([]domain.GroceryItemResponse, error)
		DeleteGroceryItem(ctx context.Context, id string, userID string) error
		CheckGroceryItem(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error)
		UncheckGroceryItem(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
		pantryService     pantry.PantryService
	}
)

func NewGroceryService(groceryRepository GroceryRepository, pantryService pantry.PantryService) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		pantryService:     pantryService,
	}
}

func (s *groceryService) AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryItemResponse{}, domain.ErrParseUUID
	}

	category := req.Category
	if category == "" {
		category = domain.CategoryOther
	}

	item := &entities.GroceryItem{
		ID:       uuid.New(),
		UserID:   userUUID,
		Name:     req.Name,
		Category: category,
		Quantity: req.Quantity,
	}

	if err := s.groceryRepository.AddGroceryItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}
	return toGroceryItemResponse(item), nil
}

func (s *groceryService) GetGroceryItems(ctx context.Context, userID string) ([]domain.GroceryItemResponse, error) {
	items, err := s.groceryRepository.GetGroceryItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toGroceryItemResponse(item))
	}
	return result, nil
}

func (s *groceryService) DeleteGroceryItem(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedItem(ctx, id, userID); err != nil {
		return err
	}
	return s.groceryRepository.DeleteGroceryItem(ctx, id)
}

// CheckGroceryItem marks the item bought and stocks it in the pantry location.
func (s *groceryService) CheckGroceryItem(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}
	if item.Checked {
		return toGroceryItemResponse(item), nil
	}

	pantryItem, err := s.pantryService.RestockFromGrocery(ctx, item)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}

	now := time.Now()
	item.Checked = true
	item.CheckedAt = &now
	item.PantryItemID = nil
	if pantryItem != nil {
		item.PantryItemID = &pantryItem.ID
	}

	if err := s.groceryRepository.UpdateGroceryItem(ctx, item); err != nil {
		item.Checked = false
		item.CheckedAt = nil
		item.PantryItemID = nil
		if pantryItem != nil {
			if delErr := s.pantryService.DeletePantryItem(ctx, pantryItem.ID.String(), userID); delErr != nil {
				log.Errorf("grocery: removing pantry item %s after failed check-off: %v", pantryItem.ID, delErr)
			}
		}
		return domain.GroceryItemResponse{}, err
	}
	return toGroceryItemResponse(item), nil
}

// UncheckGroceryItem reverts a check-off, removing the pantry item it created.
func (s *groceryService) UncheckGroceryItem(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}
	if !item.Checked {
		return toGroceryItemResponse(item), nil
	}

	if item.PantryItemID != nil {
		err := s.pantryService.DeletePantryItem(ctx, item.PantryItemID.String(), userID)
		if err != nil && !errors.Is(err, domain.ErrPantryItemNotFound) {
			return domain.GroceryItemResponse{}, err
		}
		if err != nil {
			log.Infof("grocery: pantry item %s already removed", item.PantryItemID)
		}
	}

	item.Checked = false
	item.CheckedAt = nil
	item.PantryItemID = nil

	if err := s.groceryRepository.UpdateGroceryItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}
	return toGroceryItemResponse(item), nil
}

func (s *groceryService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.GroceryItem, error) {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroceryItemNotFound
		}
		return nil, err
	}

	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedGroceryAccess
	}
	return item, nil
}

func toGroceryItemResponse(item *entities.GroceryItem) domain.GroceryItemResponse {
	res := domain.GroceryItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		Checked:   item.Checked,
		CheckedAt: item.CheckedAt,
		CreatedAt: item.CreatedAt,
	}
	if item.PantryItemID != nil {
		res.PantryItemID = item.PantryItemID.String()
	}
	return res
}
