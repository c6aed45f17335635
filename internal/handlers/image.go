package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/dto"
	apierrors "github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/errors"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/middleware"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/services"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/utils"
)

// ImageHandler coordinates image HTTP handlers
type ImageHandler struct {
	imageService *services.ImageService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageService *services.ImageService) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
	}
}

// Upload stores a multipart "file" upload for the caller
func (h *ImageHandler) Upload(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "Missing file")
		return
	}

	file, err := header.Open()
	if err != nil {
		apierrors.BadRequest(c, "Could not read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		apierrors.BadRequest(c, "Could not read file")
		return
	}

	err = h.imageService.Upload(c.Request.Context(), services.UploadInput{
		Data:        data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Username:    username,
	})
	if err != nil {
		respondImageError(c, err)
		return
	}

	c.String(http.StatusOK, "Upload successful!")
}

// List returns the caller's active images, paginated and searchable
func (h *ImageHandler) List(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	params := utils.GetPageParams(c)
	search := c.DefaultQuery("search", "")

	images, total, err := h.imageService.ListImages(services.ListImagesInput{
		Username: username,
		Page:     params.Page,
		PageSize: params.Size,
		Search:   search,
	})
	if err != nil {
		respondImageError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImageListResponse{
		Images:      dto.ToImageDTOs(images),
		CurrentPage: params.Page,
		TotalPages:  utils.TotalPages(total, params.Size),
		TotalItems:  total,
	})
}

// SoftDelete moves an image to the trash
func (h *ImageHandler) SoftDelete(c *gin.Context) {
	username, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	if err := h.imageService.SoftDelete(id, username); err != nil {
		respondImageError(c, err)
		return
	}

	c.String(http.StatusOK, "Moved to trash!")
}

// Rename changes an image's base name, keeping the extension
func (h *ImageHandler) Rename(c *gin.Context) {
	username, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	newName := c.Query("newName")
	if err := h.imageService.Rename(id, newName, username); err != nil {
		respondImageError(c, err)
		return
	}

	c.String(http.StatusOK, "Renamed successfully!")
}

// Download returns the remote URL as text; clients follow it directly
func (h *ImageHandler) Download(c *gin.Context) {
	username, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	url, err := h.imageService.GetDownloadURL(id, username)
	if err != nil {
		c.String(http.StatusInternalServerError, "Download failed")
		return
	}

	c.String(http.StatusOK, url)
}

// Trash lists the caller's trashed images
func (h *ImageHandler) Trash(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	images, err := h.imageService.ListTrash(username)
	if err != nil {
		respondImageError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToImageDTOs(images))
}

// Restore brings an image back from the trash
func (h *ImageHandler) Restore(c *gin.Context) {
	username, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	if err := h.imageService.Restore(id, username); err != nil {
		respondImageError(c, err)
		return
	}

	c.String(http.StatusOK, "Image restored!")
}

// PermanentDelete purges an image from trash and remote storage
func (h *ImageHandler) PermanentDelete(c *gin.Context) {
	username, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	if err := h.imageService.PermanentDelete(c.Request.Context(), id, username); err != nil {
		respondImageError(c, err)
		return
	}

	c.String(http.StatusOK, "Permanently deleted!")
}

func (h *ImageHandler) callerAndID(c *gin.Context) (string, uint64, bool) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return "", 0, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid image ID")
		return "", 0, false
	}

	return username, id, true
}

func respondImageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyFile),
		errors.Is(err, services.ErrEmptyName):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrImageNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
