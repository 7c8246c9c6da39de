package vocab

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the quiz backend owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Group{}, &Word{}, &GroupItem{}, &WordDetail{}, &User{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
