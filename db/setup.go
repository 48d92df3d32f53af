package db

import (
	"fmt"

	"github.com/wet-dev/wet/internal/config"
	"github.com/wet-dev/wet/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the services rely on.
	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

func Migrate(database *gorm.DB) error {
	models := []interface{}{
		&models.User{},
		&models.Restaurant{},
		&models.RestaurantLike{},
	}

	migrator := database.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := database.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
