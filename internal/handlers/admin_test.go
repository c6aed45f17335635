package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/dto"
	"github.com/Thirushika2006/ImageGalleryProject-FullStack/internal/models"
)

func TestAdminHandler_ListUsers(t *testing.T) {
	env := setupTestEnv(t)
	adminCookies := env.registerAdminAndLogin(t, "root", "supersecret")
	env.registerAndLogin(t, "alice", "supersecret")

	env.seedImage(t, "alice", "a.png", 2048, time.Now())
	env.seedImage(t, "alice", "b.png", 2048, time.Now())

	w := env.do(t, http.MethodGet, "/api/admin/users", nil, "", adminCookies)
	require.Equal(t, http.StatusOK, w.Code)

	var users []dto.AdminUserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)

	require.Equal(t, "root", users[0].Username)
	require.Equal(t, models.RoleAdmin, users[0].Role)
	require.Equal(t, "0 B", users[0].StorageUsed)

	require.Equal(t, "alice", users[1].Username)
	require.Equal(t, int64(2), users[1].ImageCount)
	require.Equal(t, "4.0 KB", users[1].StorageUsed)
}

func TestAdminHandler_ListUsers_Forbidden(t *testing.T) {
	env := setupTestEnv(t)
	cookies := env.registerAndLogin(t, "alice", "supersecret")

	w := env.do(t, http.MethodGet, "/api/admin/users", nil, "", cookies)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/users", nil, "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	env := setupTestEnv(t)
	adminCookies := env.registerAdminAndLogin(t, "root", "supersecret")
	env.registerAndLogin(t, "alice", "supersecret")
	image := env.seedImage(t, "alice", "a.png", 100, time.Now())

	var alice models.User
	require.NoError(t, env.db.Where("username = ?", "alice").First(&alice).Error)

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", alice.ID), nil, "", adminCookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "User deleted successfully!", w.Body.String())

	// Image rows and remote objects cascade
	require.Equal(t, []string{image.StorageKey}, env.storage.deleted)

	var count int64
	require.NoError(t, env.db.Model(&models.Image{}).Where("user_id = ?", alice.ID).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", alice.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestAdminHandler_DeleteUser_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	adminCookies := env.registerAdminAndLogin(t, "root", "supersecret")

	w := env.do(t, http.MethodDelete, "/api/admin/users/9999", nil, "", adminCookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}
