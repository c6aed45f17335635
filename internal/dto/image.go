package dto

import (
	"time"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/models"
)

// ImageDTO represents an image in API responses. The "path" key carries
// the public storage URL; the frontend still expects that name.
type ImageDTO struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	UploadTime time.Time `json:"uploadTime"`
}

// ImageListResponse is the paginated active-image listing
type ImageListResponse struct {
	Images      []ImageDTO `json:"images"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
	TotalItems  int64      `json:"totalItems"`
}

// ToImageDTO converts an Image model to ImageDTO
func ToImageDTO(image models.Image) ImageDTO {
	return ImageDTO{
		ID:         image.ID,
		Name:       image.Name,
		Path:       image.URL,
		FileType:   image.FileType,
		FileSize:   image.FileSize,
		UploadTime: image.UploadTime,
	}
}

// ToImageDTOs converts a slice of Image models
func ToImageDTOs(images []models.Image) []ImageDTO {
	dtos := make([]ImageDTO, len(images))
	for i, image := range images {
		dtos[i] = ToImageDTO(image)
	}
	return dtos
}
