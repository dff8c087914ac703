package pantry

import (
	"PantryChef/domain"
	"PantryChef/entities"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.AddPantryItemResponse, error)
		AddPantryItems(ctx context.Context, req domain.AddPantryItemsRequest, userID string) (domain.AddPantryItemsResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error
		DeletePantryItem(ctx context.Context, id string, userID string) error
		GetPantryItems(ctx context.Context, userID string, location string) ([]domain.PantryItemResponse, error)
		GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error)

		// RestockFromGrocery puts a checked-off grocery item on the pantry shelf.
		// It returns nil when the same name is already stocked in the pantry.
		RestockFromGrocery(ctx context.Context, groceryItem *entities.GroceryItem) (*entities.PantryItem, error)
	}

	pantryService struct {
		pantryRepository PantryRepository
	}
)

func NewPantryService(pantryRepository PantryRepository) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
	}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.AddPantryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddPantryItemResponse{}, domain.ErrParseUUID
	}

	item, warning, err := s.addPantryItem(ctx, userUUID, req, nil)
	if err != nil {
		return domain.AddPantryItemResponse{}, err
	}

	return domain.AddPantryItemResponse{
		PantryItemResponse:   toPantryItemResponse(item),
		OtherLocationWarning: warning,
	}, nil
}

func (s *pantryService) addPantryItem(ctx context.Context, userID uuid.UUID, req domain.AddPantryItemRequest, groceryItemID *uuid.UUID) (*entities.PantryItem, string, error) {
	if req.Location != domain.LocationFridge && req.Location != domain.LocationPantry {
		return nil, "", domain.ErrInvalidLocation
	}

	warning, err := s.checkDuplicate(ctx, userID.String(), req.Name, req.Location, uuid.Nil)
	if err != nil {
		return nil, "", err
	}

	source := req.Source
	if source == "" {
		source = domain.SourceManual
	}

	item := &entities.PantryItem{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          req.Name,
		Category:      req.Category,
		Location:      req.Location,
		Quantity:      req.Quantity,
		Source:        source,
		GroceryItemID: groceryItemID,
	}

	if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
		return nil, "", translateStoreError(err)
	}
	return item, warning, nil
}

// checkDuplicate rejects a second item with the same name in the same location.
// The same name in the other location is allowed and reported as a warning.
func (s *pantryService) checkDuplicate(ctx context.Context, userID, name, location string, ignoreID uuid.UUID) (string, error) {
	existing, err := s.pantryRepository.GetPantryItemsByName(ctx, userID, name)
	if err != nil {
		return "", err
	}

	warning := ""
	for _, item := range existing {
		if item.ID == ignoreID {
			continue
		}
		if item.Location == location {
			return "", domain.ErrPantryItemDuplicate
		}
		warning = fmt.Sprintf("%s is also stored in your %s", item.Name, item.Location)
	}
	return warning, nil
}

func (s *pantryService) AddPantryItems(ctx context.Context, req domain.AddPantryItemsRequest, userID string) (domain.AddPantryItemsResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddPantryItemsResponse{}, domain.ErrParseUUID
	}

	res := domain.AddPantryItemsResponse{
		Added:   []domain.AddPantryItemResponse{},
		Skipped: []domain.SkippedPantryItem{},
	}

	for _, itemReq := range req.Items {
		item, warning, err := s.addPantryItem(ctx, userUUID, itemReq, nil)
		if err != nil {
			if errors.Is(err, domain.ErrPantryItemDuplicate) || errors.Is(err, domain.ErrInvalidLocation) {
				res.Skipped = append(res.Skipped, domain.SkippedPantryItem{
					Name:     itemReq.Name,
					Location: itemReq.Location,
					Reason:   err.Error(),
				})
				continue
			}
			return res, err
		}
		res.Added = append(res.Added, domain.AddPantryItemResponse{
			PantryItemResponse:   toPantryItemResponse(item),
			OtherLocationWarning: warning,
		})
	}

	return res, nil
}

func (s *pantryService) RestockFromGrocery(ctx context.Context, groceryItem *entities.GroceryItem) (*entities.PantryItem, error) {
	category := groceryItem.Category
	if category == "" {
		category = domain.CategoryOther
	}

	item, _, err := s.addPantryItem(ctx, groceryItem.UserID, domain.AddPantryItemRequest{
		Name:     groceryItem.Name,
		Category: category,
		Location: domain.LocationPantry,
		Quantity: groceryItem.Quantity,
		Source:   domain.SourceGrocery,
	}, &groceryItem.ID)
	if err != nil {
		if errors.Is(err, domain.ErrPantryItemDuplicate) {
			log.Infof("pantry: %q already stocked, grocery item %s not restocked", groceryItem.Name, groceryItem.ID)
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	name := item.Name
	if req.Name != "" {
		name = req.Name
	}
	location := item.Location
	if req.Location != "" {
		location = req.Location
	}

	if name != item.Name || location != item.Location {
		if _, err := s.checkDuplicate(ctx, userID, name, location, item.ID); err != nil {
			return err
		}
	}

	item.Name = name
	item.Location = location
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}

	return translateStoreError(s.pantryRepository.UpdatePantryItem(ctx, item))
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedItem(ctx, id, userID); err != nil {
		return err
	}

	return s.pantryRepository.DeletePantryItem(ctx, id)
}

func (s *pantryService) GetPantryItems(ctx context.Context, userID string, location string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx, userID, location)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toPantryItemResponse(item))
	}
	return response, nil
}

func (s *pantryService) GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}
	return toPantryItemResponse(item), nil
}

func (s *pantryService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.PantryItem, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}

	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedPantryAccess
	}
	return item, nil
}

// translateStoreError turns a unique-index violation into the duplicate sentinel.
// It happens when two writes for the same name and location race past checkDuplicate.
func translateStoreError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrPantryItemDuplicate
	}
	return err
}

func toPantryItemResponse(item *entities.PantryItem) domain.PantryItemResponse {
	return domain.PantryItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Category:  item.Category,
		Location:  item.Location,
		Quantity:  item.Quantity,
		Source:    item.Source,
		CreatedAt: item.CreatedAt,
	}
}
