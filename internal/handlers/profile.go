package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/dto"
	apierrors "github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/errors"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/middleware"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/services"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/utils"
)

// ProfileHandler serves the caller's own storage stats
type ProfileHandler struct {
	imageService *services.ImageService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(imageService *services.ImageService) *ProfileHandler {
	return &ProfileHandler{
		imageService: imageService,
	}
}

// Get returns the caller's username, active-image count and formatted
// storage usage.
func (h *ProfileHandler) Get(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	count, err := h.imageService.ImageCount(username)
	if err != nil {
		respondImageError(c, err)
		return
	}

	totalBytes, err := h.imageService.TotalStorageBytes(username)
	if err != nil {
		respondImageError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileDTO{
		Username:    username,
		ImageCount:  count,
		StorageUsed: utils.FormatStorage(totalBytes),
	})
}
