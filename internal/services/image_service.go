package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/constants"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/models"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/repository"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrImageNotFound = errors.New("image not found")
	ErrNotOwner      = errors.New("no permission to access this image")
	ErrEmptyFile     = errors.New("file is empty")
	ErrEmptyName     = errors.New("name cannot be empty")
)

// ImageService handles image business logic: upload orchestration,
// listing, trash, rename, permanent deletion and storage stats.
type ImageService struct {
	imageRepo repository.ImageRepository
	userRepo  repository.UserRepository
	storage   storage.ObjectStorage
}

// NewImageService creates a new ImageService
func NewImageService(imageRepo repository.ImageRepository, userRepo repository.UserRepository, store storage.ObjectStorage) *ImageService {
	return &ImageService{
		imageRepo: imageRepo,
		userRepo:  userRepo,
		storage:   store,
	}
}

// UploadInput represents an incoming file upload
type UploadInput struct {
	Data        []byte
	Filename    string
	ContentType string
	Username    string
}

// Upload sends the file to the object store under the owner's folder and
// persists the metadata row. The remote upload happens first; if it fails
// no row is created.
func (s *ImageService) Upload(ctx context.Context, input UploadInput) error {
	if len(input.Data) == 0 {
		return ErrEmptyFile
	}

	user, err := s.findUserByUsername(input.Username)
	if err != nil {
		return err
	}

	folder := fmt.Sprintf("%s/%s", constants.StorageFolderPrefix, user.Username)
	result, err := s.storage.Upload(ctx, input.Data, folder, input.Filename, input.ContentType)
	if err != nil {
		return fmt.Errorf("failed to upload to storage: %w", err)
	}

	image := &models.Image{
		Name:       input.Filename,
		URL:        result.URL,
		StorageKey: result.Key,
		FileType:   input.ContentType,
		FileSize:   int64(len(input.Data)),
		UploadTime: time.Now(),
		Deleted:    false,
		UserID:     user.ID,
	}

	if err := s.imageRepo.Create(image); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	return nil
}

// ListImagesInput represents filters for listing active images
type ListImagesInput struct {
	Username string
	Page     int
	PageSize int
	Search   string
}

// ListImages returns the owner's active images, newest upload first,
// optionally filtered by a case-insensitive name substring.
func (s *ImageService) ListImages(input ListImagesInput) ([]models.Image, int64, error) {
	user, err := s.findUserByUsername(input.Username)
	if err != nil {
		return nil, 0, err
	}

	images, total, err := s.imageRepo.List(repository.ImageFilter{
		UserID:   user.ID,
		Deleted:  false,
		Search:   input.Search,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list images: %w", err)
	}

	return images, total, nil
}

// ListTrash returns all of the owner's trashed images
func (s *ImageService) ListTrash(username string) ([]models.Image, error) {
	user, err := s.findUserByUsername(username)
	if err != nil {
		return nil, err
	}

	images, _, err := s.imageRepo.List(repository.ImageFilter{
		UserID:  user.ID,
		Deleted: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list trash: %w", err)
	}

	return images, nil
}

// SoftDelete moves an image to the trash
func (s *ImageService) SoftDelete(id uint64, username string) error {
	if _, err := s.authorizeOwner(id, username); err != nil {
		return err
	}

	err := s.imageRepo.UpdateInTx(id, func(image *models.Image) error {
		now := time.Now()
		image.Deleted = true
		image.DeletedAt = &now
		return nil
	})
	if err != nil {
		return s.wrapMutationErr("soft delete", err)
	}

	return nil
}

// Restore brings an image back from the trash. Restoring an image that is
// not trashed succeeds and leaves it active.
func (s *ImageService) Restore(id uint64, username string) error {
	if _, err := s.authorizeOwner(id, username); err != nil {
		return err
	}

	err := s.imageRepo.UpdateInTx(id, func(image *models.Image) error {
		image.Deleted = false
		image.DeletedAt = nil
		return nil
	})
	if err != nil {
		return s.wrapMutationErr("restore", err)
	}

	return nil
}

// Rename replaces the base name while keeping the original extension; the
// storage URL never changes.
func (s *ImageService) Rename(id uint64, newBaseName, username string) error {
	newBaseName = strings.TrimSpace(newBaseName)
	if newBaseName == "" {
		return ErrEmptyName
	}

	if _, err := s.authorizeOwner(id, username); err != nil {
		return err
	}

	err := s.imageRepo.UpdateInTx(id, func(image *models.Image) error {
		extension := ""
		if dot := strings.LastIndex(image.Name, "."); dot > 0 {
			extension = image.Name[dot:]
		}
		image.Name = newBaseName + extension
		return nil
	})
	if err != nil {
		return s.wrapMutationErr("rename", err)
	}

	return nil
}

// PermanentDelete removes the remote object (best effort) and then the
// row. A failed remote delete is logged and does not keep the row alive.
func (s *ImageService) PermanentDelete(ctx context.Context, id uint64, username string) error {
	image, err := s.authorizeOwner(id, username)
	if err != nil {
		return err
	}

	if image.StorageKey != "" {
		if err := s.storage.Delete(ctx, image.StorageKey); err != nil {
			log.Printf("Failed to delete object %s from storage: %v", image.StorageKey, err)
		}
	}

	if err := s.imageRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

// GetDownloadURL returns the stored URL for a direct client redirect;
// downloads are never proxied through this service.
func (s *ImageService) GetDownloadURL(id uint64, username string) (string, error) {
	image, err := s.authorizeOwner(id, username)
	if err != nil {
		return "", err
	}

	return image.URL, nil
}

// ImageCount counts the user's active images
func (s *ImageService) ImageCount(username string) (int64, error) {
	user, err := s.findUserByUsername(username)
	if err != nil {
		return 0, err
	}

	count, err := s.imageRepo.CountActive(user.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to count images: %w", err)
	}
	return count, nil
}

// TotalStorageBytes sums the sizes of the user's active images
func (s *ImageService) TotalStorageBytes(username string) (int64, error) {
	user, err := s.findUserByUsername(username)
	if err != nil {
		return 0, err
	}

	total, err := s.imageRepo.SumActiveSize(user.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum storage: %w", err)
	}
	return total, nil
}

// UserStats aggregates a user's active-image count and storage, used by
// the admin listing and the profile view.
type UserStats struct {
	User         models.User
	ImageCount   int64
	StorageBytes int64
}

// ListAllUsers returns every user with their storage stats
func (s *ImageService) ListAllUsers() ([]UserStats, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	stats := make([]UserStats, len(users))
	for i, user := range users {
		count, err := s.imageRepo.CountActive(user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count images for %s: %w", user.Username, err)
		}
		size, err := s.imageRepo.SumActiveSize(user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to sum storage for %s: %w", user.Username, err)
		}
		stats[i] = UserStats{User: user, ImageCount: count, StorageBytes: size}
	}

	return stats, nil
}

// DeleteUser hard-deletes a user. Their images cascade: remote objects are
// removed best effort, then the image rows and the user row go in one
// transaction.
func (s *ImageService) DeleteUser(ctx context.Context, id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	images, err := s.imageRepo.FindAllByUser(id)
	if err != nil {
		return fmt.Errorf("failed to list user images: %w", err)
	}

	for _, image := range images {
		if image.StorageKey == "" {
			continue
		}
		if err := s.storage.Delete(ctx, image.StorageKey); err != nil {
			log.Printf("Failed to delete object %s from storage: %v", image.StorageKey, err)
		}
	}

	if err := s.userRepo.DeleteWithImages(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// authorizeOwner fetches the image, re-fetches its owner by id, and
// compares usernames. Every by-id operation goes through this check.
func (s *ImageService) authorizeOwner(id uint64, username string) (*models.Image, error) {
	image, err := s.imageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to find image: %w", err)
	}

	owner, err := s.userRepo.FindByID(image.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find image owner: %w", err)
	}

	if owner.Username != username {
		return nil, ErrNotOwner
	}

	return image, nil
}

func (s *ImageService) findUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *ImageService) wrapMutationErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrImageNotFound
	}
	return fmt.Errorf("failed to %s image: %w", op, err)
}
