package repository

import (
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindAll lists every user
	FindAll() ([]models.User, error)

	// DeleteWithImages hard-deletes a user and all of their image rows
	// within a single transaction.
	DeleteWithImages(id uint64) error
}

// ImageFilter holds filtering options for listing images. PageSize <= 0
// disables pagination and returns the full result set.
type ImageFilter struct {
	UserID   uint64
	Deleted  bool
	Search   string
	Page     int
	PageSize int
}

// ImageRepository defines the interface for image data access
type ImageRepository interface {
	// Create creates a new image row
	Create(image *models.Image) error

	// FindByID finds an image by ID
	FindByID(id uint64) (*models.Image, error)

	// List retrieves images matching the filter, newest upload first,
	// along with the total match count.
	List(filter ImageFilter) ([]models.Image, int64, error)

	// FindAllByUser returns every image row for a user, trashed included.
	FindAllByUser(userID uint64) ([]models.Image, error)

	// UpdateInTx re-reads the image inside a transaction, applies mutate,
	// and saves the result. Read-then-write mutations (rename, trash,
	// restore) go through here; the re-read takes a FOR UPDATE row lock so
	// concurrent requests on the same row are serialized. Dialects without
	// row locks (sqlite) drop the clause.
	UpdateInTx(id uint64, mutate func(image *models.Image) error) error

	// Delete hard-deletes an image row
	Delete(id uint64) error

	// CountActive counts a user's non-deleted images
	CountActive(userID uint64) (int64, error)

	// SumActiveSize sums file sizes of a user's non-deleted images;
	// 0 when there are none.
	SumActiveSize(userID uint64) (int64, error)
}
