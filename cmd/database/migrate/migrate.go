package migration

import (
	"PantryChef/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("creating uuid-ossp extension: %w", err)
	}

	if err := backfillPantryNameKey(db); err != nil {
		return fmt.Errorf("backfilling pantry name keys: %w", err)
	}

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"cookbook", &entities.Cookbook{}},
		{"recipe", &entities.Recipe{}},
		{"cooked meal", &entities.CookedMeal{}},
		{"pantry item", &entities.PantryItem{}},
		{"grocery item", &entities.GroceryItem{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrating %s table: %w", m.name, err)
		}
	}

	log.Info("database migration complete")
	return nil
}

// backfillPantryNameKey fills name_key on rows stored before the column existed,
// so the unique index on (user_id, name_key, location) can be built over them.
func backfillPantryNameKey(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable(&entities.PantryItem{}) || m.HasColumn(&entities.PantryItem{}, "NameKey") {
		return nil
	}
	if err := m.AddColumn(&entities.PantryItem{}, "NameKey"); err != nil {
		return err
	}
	return db.Exec(`UPDATE pantry_items SET name_key = LOWER(BTRIM(name, E' \t\n\r\v\f'))`).Error
}
