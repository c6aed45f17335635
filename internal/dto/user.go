package dto

import (
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/models"
)

// AdminUserDTO is one row in the admin user listing: account metadata
// plus aggregate storage stats, never the photos themselves.
type AdminUserDTO struct {
	ID          uint64      `json:"id"`
	Username    string      `json:"username"`
	Role        models.Role `json:"role"`
	ImageCount  int64       `json:"imageCount"`
	StorageUsed string      `json:"storageUsed"`
}

// ProfileDTO is the calling user's own stats
type ProfileDTO struct {
	Username    string `json:"username"`
	ImageCount  int64  `json:"imageCount"`
	StorageUsed string `json:"storageUsed"`
}
