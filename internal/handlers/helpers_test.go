package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/constants"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/database"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/middleware"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/models"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/repository"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/services"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/storage"
)

const testAdminSecret = "test-admin-secret"

// fakeObjectStorage is an in-memory ObjectStorage for handler tests
type fakeObjectStorage struct {
	deleted []string
}

func (f *fakeObjectStorage) Upload(_ context.Context, data []byte, folder, filename, contentType string) (*storage.UploadResult, error) {
	key := fmt.Sprintf("%s/%s", folder, filename)
	return &storage.UploadResult{
		URL: "https://cdn.example.com/" + key,
		Key: key,
	}, nil
}

func (f *fakeObjectStorage) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

type testEnv struct {
	db           *gorm.DB
	router       *gin.Engine
	storage      *fakeObjectStorage
	authService  *services.AuthService
	imageService *services.ImageService
}

// setupTestEnv wires the full route table against an in-memory database
// and a cookie session store, mirroring cmd/server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Image{}))

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	store := &fakeObjectStorage{}
	userRepo := repository.NewUserRepository(db)
	imageRepo := repository.NewImageRepository(db)
	authService := services.NewAuthService(userRepo)
	imageService := services.NewImageService(imageRepo, userRepo, store)

	authHandler := NewAuthHandler(authService, testAdminSecret)
	imageHandler := NewImageHandler(imageService)
	profileHandler := NewProfileHandler(imageService)
	adminHandler := NewAdminHandler(imageService)

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/register-admin", authHandler.RegisterAdmin)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.Me)
			auth.GET("/role", middleware.RequireAuth(), authHandler.Role)
		}

		images := api.Group("/images")
		images.Use(middleware.RequireAuth())
		{
			images.POST("/upload", imageHandler.Upload)
			images.GET("", imageHandler.List)
			images.DELETE("/delete/:id", imageHandler.SoftDelete)
			images.PUT("/rename/:id", imageHandler.Rename)
			images.GET("/download/:id", imageHandler.Download)
			images.GET("/trash", imageHandler.Trash)
			images.PUT("/trash/restore/:id", imageHandler.Restore)
			images.DELETE("/trash/permanent/:id", imageHandler.PermanentDelete)
		}

		api.GET("/profile", middleware.RequireAuth(), profileHandler.Get)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	return &testEnv{
		db:           db,
		router:       r,
		storage:      store,
		authService:  authService,
		imageService: imageService,
	}
}

// do runs a request through the router with optional session cookies
func (env *testEnv) do(t *testing.T, method, target string, body io.Reader, contentType string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) postForm(t *testing.T, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	return env.do(t, http.MethodPost, target, strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded", cookies)
}

// registerAndLogin creates an account and returns its session cookies
func (env *testEnv) registerAndLogin(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()

	w := env.postForm(t, "/api/auth/register", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	return env.login(t, username, password)
}

// registerAdminAndLogin creates an ADMIN account via the secret-gated
// endpoint and returns its session cookies
func (env *testEnv) registerAdminAndLogin(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()

	w := env.postForm(t, "/api/auth/register-admin", url.Values{
		"username":  {username},
		"password":  {password},
		"secretKey": {testAdminSecret},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	return env.login(t, username, password)
}

func (env *testEnv) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()

	w := env.postForm(t, "/api/auth/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}

// uploadFile uploads a multipart file as the given session
func (env *testEnv) uploadFile(t *testing.T, cookies []*http.Cookie, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return env.do(t, http.MethodPost, "/api/images/upload", &buf, writer.FormDataContentType(), cookies)
}
