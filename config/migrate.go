package config

import (
	"fmt"

	"github.com/codewith-lab/ssrblog/models"
	"gorm.io/gorm"
)

// EnsureSchema registers the declared models against the store. It is
// idempotent: a store that already matches the models is left untouched.
// destructive drops and recreates every table and exists for development
// resets only — never the default path.
func EnsureSchema(db *gorm.DB, destructive bool) error {
	tables := []interface{}{&models.Article{}, &models.Comment{}, &models.User{}}

	if destructive {
		if err := db.Migrator().DropTable(tables...); err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaConflict, err)
	}
	return nil
}
