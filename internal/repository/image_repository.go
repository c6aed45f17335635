package repository

import (
	"strings"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/database"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/models"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscaper neutralizes LIKE wildcards in user-supplied search terms so
// they match literally. '!' is the ESCAPE character in the search query.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// GormImageRepository is a GORM implementation of ImageRepository
type GormImageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new ImageRepository
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &GormImageRepository{db: db}
}

// Create creates a new image row
func (r *GormImageRepository) Create(image *models.Image) error {
	return r.db.Create(image).Error
}

// FindByID finds an image by ID
func (r *GormImageRepository) FindByID(id uint64) (*models.Image, error) {
	var image models.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// List retrieves images matching the filter, newest upload first
func (r *GormImageRepository) List(filter ImageFilter) ([]models.Image, int64, error) {
	var images []models.Image

	query := r.db.Model(&models.Image{}).
		Where("user_id = ? AND deleted = ?", filter.UserID, filter.Deleted)

	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!'", pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("upload_time DESC")
	if filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PageParams{
			Page:   filter.Page,
			Size:   filter.PageSize,
			Offset: filter.Page * filter.PageSize,
		}))
	}

	if err := listQuery.Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

// FindAllByUser returns every image row for a user, trashed included
func (r *GormImageRepository) FindAllByUser(userID uint64) ([]models.Image, error) {
	var images []models.Image
	if err := r.db.Where("user_id = ?", userID).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// UpdateInTx re-reads the image inside a transaction, applies mutate, and
// saves the result. The read takes a row lock so concurrent mutations of the
// same image are serialized instead of overwriting each other.
func (r *GormImageRepository) UpdateInTx(id uint64, mutate func(image *models.Image) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var image models.Image
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&image, id).Error; err != nil {
			return err
		}

		if err := mutate(&image); err != nil {
			return err
		}

		return tx.Save(&image).Error
	})
}

// Delete hard-deletes an image row
func (r *GormImageRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Image{}, id).Error
}

// CountActive counts a user's non-deleted images
func (r *GormImageRepository) CountActive(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Image{}).
		Where("user_id = ? AND deleted = ?", userID, false).
		Count(&count).Error
	return count, err
}

// SumActiveSize sums file sizes of a user's non-deleted images
func (r *GormImageRepository) SumActiveSize(userID uint64) (int64, error) {
	var total int64
	err := r.db.Model(&models.Image{}).
		Where("user_id = ? AND deleted = ?", userID, false).
		Select("COALESCE(SUM(file_size), 0)").
		Scan(&total).Error
	return total, err
}
