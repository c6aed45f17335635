package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the secondary indexes the gallery queries rely on.
// Every images query filters by owner and the deleted flag, and the
// active listing sorts by upload time.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"images", "idx_images_user_id", "user_id"},
		{"images", "idx_images_user_deleted", "user_id, deleted"},
		{"images", "idx_images_upload_time", "upload_time"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.statistics
			WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
