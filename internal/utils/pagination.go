package utils

import (
	"strconv"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/constants"
	"github.com/gin-gonic/gin"
)

// PageParams holds the pagination parameters. Pages are 0-based to match
// the gallery frontend contract.
type PageParams struct {
	Page   int
	Size   int
	Offset int
}

// GetPageParams extracts and validates pagination parameters from the request
func GetPageParams(c *gin.Context) PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(constants.DefaultPageSize)))

	if page < 0 {
		page = constants.DefaultPage
	}
	if size <= 0 {
		size = constants.DefaultPageSize
	}
	if size > constants.MaxPageSize {
		size = constants.MaxPageSize
	}

	return PageParams{
		Page:   page,
		Size:   size,
		Offset: page * size,
	}
}

// TotalPages computes the page count for a total item count and page size.
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
