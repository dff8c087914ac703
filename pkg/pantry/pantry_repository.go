package pantry

import (
	"PantryChef/domain"
	"PantryChef/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddPantryItem(ctx context.Context, item *entities.PantryItem) error
		GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error
		DeletePantryItem(ctx context.Context, id string) error
		GetPantryItems(ctx context.Context, userID string, location string) ([]*entities.PantryItem, error)
		GetPantryItemsByName(ctx context.Context, userID string, name string) ([]*entities.PantryItem, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	item.NameKey = normalizeName(item.Name)
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	item.NameKey = normalizeName(item.Name)
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

// GetPantryItems returns the user's items in insertion order. An empty location
// or "all" returns every location.
func (r *pantryRepository) GetPantryItems(ctx context.Context, userID string, location string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if location != domain.LocationAll && location != "" {
		query = query.Where("location = ?", location)
	}

	if err := query.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetPantryItemsByName matches on the stored name key, so the comparison is
// case-insensitive and ignores surrounding whitespace of any kind.
func (r *pantryRepository) GetPantryItemsByName(ctx context.Context, userID string, name string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name_key = ?", userID, normalizeName(name)).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
