package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/servicehub/servicehub-api/internal/database"
	"github.com/servicehub/servicehub-api/internal/models"
	"github.com/servicehub/servicehub-api/internal/repository"
	"github.com/servicehub/servicehub-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type inviteTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupInviteTestEnv(t *testing.T) inviteTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Membership{},
		&models.Invitation{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	inviteRepo := repository.NewInvitationRepository(db)
	inviteService := services.NewInviteService(inviteRepo)
	handler := NewInviteHandler(inviteService)

	r := gin.New()
	r.POST("/invite", handler.InviteUser)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return inviteTestEnv{
		db:     db,
		router: r,
	}
}

func TestInviteHandler_InviteUser(t *testing.T) {
	env := setupInviteTestEnv(t)

	w := postJSON(t, env.router, "/invite", map[string]string{
		"org_id":     "org-id",
		"invited_by": "admin-id",
		"email":      "invitee@x.com",
		"role":       "member",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response services.InviteUserResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Invitation sent", response.Message)

	var invites []models.Invitation
	require.NoError(t, env.db.Find(&invites).Error)
	require.Len(t, invites, 1)
	require.Equal(t, "org-id", invites[0].OrgID)
	require.Equal(t, "admin-id", invites[0].InvitedBy)
	require.Equal(t, "invitee@x.com", invites[0].Email)
	require.Equal(t, "member", invites[0].Role)
	require.Equal(t, models.InvitationStatusPending, invites[0].Status)
	require.WithinDuration(t, invites[0].CreatedAt.Add(models.InvitationTTL), invites[0].ExpiresAt, time.Minute)
}

func TestInviteHandler_InviteUser_MissingFields(t *testing.T) {
	env := setupInviteTestEnv(t)

	w := postJSON(t, env.router, "/invite", map[string]string{
		"org_id": "org-id",
		"email":  "invitee@x.com",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Invitation{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
