package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/dto"
	apierrors "github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/errors"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/services"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/utils"
)

// AdminHandler serves the admin-only user management endpoints
type AdminHandler struct {
	imageService *services.ImageService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(imageService *services.ImageService) *AdminHandler {
	return &AdminHandler{
		imageService: imageService,
	}
}

// ListUsers returns every account with aggregate storage stats
func (h *AdminHandler) ListUsers(c *gin.Context) {
	stats, err := h.imageService.ListAllUsers()
	if err != nil {
		apierrors.InternalError(c, "Failed to list users")
		return
	}

	result := make([]dto.AdminUserDTO, len(stats))
	for i, s := range stats {
		result[i] = dto.AdminUserDTO{
			ID:          s.User.ID,
			Username:    s.User.Username,
			Role:        s.User.Role,
			ImageCount:  s.ImageCount,
			StorageUsed: utils.FormatStorage(s.StorageBytes),
		}
	}

	c.JSON(http.StatusOK, result)
}

// DeleteUser hard-deletes an account and cascades to its images
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.imageService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to delete user")
		return
	}

	c.String(http.StatusOK, "User deleted successfully!")
}
