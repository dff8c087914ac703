package cookbook

import (
	"PantryChef/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CookbookRepository interface {
		CreateCookbook(ctx context.Context, cookbook *entities.Cookbook) error
		GetCookbookByID(ctx context.Context, id string) (*entities.Cookbook, error)
		GetCookbooks(ctx context.Context, userID string) ([]*entities.Cookbook, error)
		DeleteCookbook(ctx context.Context, id string) error
		IncrementRecipeCount(ctx context.Context, id string) error
		DecrementRecipeCount(ctx context.Context, id string) error
	}

	cookbookRepository struct {
		db *gorm.DB
	}
)

func NewCookbookRepository(db *gorm.DB) CookbookRepository {
	return &cookbookRepository{db: db}
}

func (r *cookbookRepository) CreateCookbook(ctx context.Context, cookbook *entities.Cookbook) error {
	return r.db.WithContext(ctx).Create(cookbook).Error
}

func (r *cookbookRepository) GetCookbookByID(ctx context.Context, id string) (*entities.Cookbook, error) {
	var cookbook entities.Cookbook
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cookbook).Error; err != nil {
		return nil, err
	}
	return &cookbook, nil
}

func (r *cookbookRepository) GetCookbooks(ctx context.Context, userID string) ([]*entities.Cookbook, error) {
	var cookbooks []*entities.Cookbook
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&cookbooks).Error; err != nil {
		return nil, err
	}
	return cookbooks, nil
}

// DeleteCookbook detaches the cookbook's recipes before removing it.
func (r *cookbookRepository) DeleteCookbook(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{}).
			Where("cookbook_id = ?", id).
			Update("cookbook_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Cookbook{}).Error
	})
}

func (r *cookbookRepository) IncrementRecipeCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Cookbook{}).
		Where("id = ?", id).
		UpdateColumn("recipe_count", gorm.Expr("recipe_count + 1")).Error
}

// DecrementRecipeCount never takes the count below zero.
func (r *cookbookRepository) DecrementRecipeCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Cookbook{}).
		Where("id = ? AND recipe_count > 0", id).
		UpdateColumn("recipe_count", gorm.Expr("recipe_count - 1")).Error
}
