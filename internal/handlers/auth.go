package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/constants"
	apierrors "github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/errors"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/middleware"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/services"
)

// AuthHandler coordinates account and session HTTP handlers. The auth
// endpoints speak plain text, matching the gallery frontend.
type AuthHandler struct {
	authService *services.AuthService

	// adminSecret gates the admin registration endpoint. A deliberately
	// crude bootstrap mechanism, checked here and nowhere else.
	adminSecret string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, adminSecret string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		adminSecret: adminSecret,
	}
}

// Register creates a regular account from form fields.
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.authService.Register(services.RegisterInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.String(http.StatusOK, "Registration successful! Please login.")
}

// RegisterAdmin creates an ADMIN account when the shared secret matches.
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	if c.PostForm("secretKey") != h.adminSecret {
		c.String(http.StatusForbidden, "Invalid secret key!")
		return
	}

	_, err := h.authService.RegisterAdmin(services.RegisterInput{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.String(http.StatusOK, "Admin registered successfully!")
}

// Login verifies credentials and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	user, err := h.authService.Login(services.LoginInput{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.String(http.StatusOK, "Login successful!")
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.String(http.StatusOK, "Logged out successfully!")
}

// Me returns the authenticated caller's username.
func (h *AuthHandler) Me(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		c.String(http.StatusUnauthorized, "Not logged in")
		return
	}

	c.String(http.StatusOK, username)
}

// Role returns ADMIN or USER for the authenticated caller.
func (h *AuthHandler) Role(c *gin.Context) {
	role, exists := middleware.GetRole(c)
	if !exists {
		c.String(http.StatusUnauthorized, "Not logged in")
		return
	}

	c.String(http.StatusOK, string(role))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, "Username already exists!")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
