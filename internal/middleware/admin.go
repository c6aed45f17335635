package middleware

import (
	"github.com/gin-gonic/gin"

	apierrors "github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/errors"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/models"
)

// RequireAdmin rejects non-admin callers. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetRole(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			apierrors.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
