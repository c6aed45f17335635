package database

import (
	"gorm.io/gorm"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PageParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Size)
	}
}
