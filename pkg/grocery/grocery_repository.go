package grocery

import (
	"PantryChef/entities"
	"context"

	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error
		GetGroceryItemByID(ctx context.Context, id string) (*entities.GroceryItem, error)
		GetGroceryItems(ctx context.Context, userID string) ([]*entities.GroceryItem, error)
		UpdateGroceryItem(ctx context.Context, item *entities.GroceryItem) error
		DeleteGroceryItem(ctx context.Context, id string) error
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *groceryRepository) GetGroceryItemByID(ctx context.Context, id string) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetGroceryItems lists unchecked items first, each group in insertion order.
func (r *groceryRepository) GetGroceryItems(ctx context.Context, userID string) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("checked asc").
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryRepository) UpdateGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *groceryRepository) DeleteGroceryItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryItem{}).Error
}
