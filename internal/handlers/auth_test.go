package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/servicehub/servicehub-api/internal/database"
	"github.com/servicehub/servicehub-api/internal/models"
	"github.com/servicehub/servicehub-api/internal/repository"
	"github.com/servicehub/servicehub-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	userService *services.UserService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
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

	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo)

	userHandler := NewUserHandler(userService)
	authHandler := NewAuthHandler(authService)

	r := gin.New()
	r.POST("/users/signup", userHandler.Signup)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/forgot-password", authHandler.ForgotPassword)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		userService: userService,
	}
}

func signupTestUser(t *testing.T, env authTestEnv, fullName, email, password string) string {
	t.Helper()

	result, err := env.userService.Signup(services.SignupInput{
		FullName: fullName,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.UserID)
	return result.UserID
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	userID := signupTestUser(t, env, "A", "a@x.com", "p1")

	w := postJSON(t, env.router, "/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "p1",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response services.LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Login successful", response.Message)
	require.Equal(t, userID, response.UserID)
	require.Equal(t, "a@x.com", response.Email)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	signupTestUser(t, env, "A", "a@x.com", "p1")

	w := postJSON(t, env.router, "/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "wrong",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response services.LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Invalid password", response.Message)
	require.Empty(t, response.UserID)
	require.Empty(t, response.Email)
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/auth/login", map[string]string{
		"email":    "nobody@x.com",
		"password": "p1",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response services.LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "User not found", response.Message)
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	signupTestUser(t, env, "A", "a@x.com", "old-password")

	w := postJSON(t, env.router, "/auth/forgot-password", map[string]string{
		"email":       "a@x.com",
		"newPassword": "new-password",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response services.ForgotPasswordResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Password updated successfully", response.Message)

	// Old password no longer works
	w = postJSON(t, env.router, "/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "old-password",
	})
	var login services.LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.Equal(t, "Invalid password", login.Message)

	// New password does
	w = postJSON(t, env.router, "/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "new-password",
	})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.Equal(t, "Login successful", login.Message)
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	signupTestUser(t, env, "A", "a@x.com", "p1")

	var before models.User
	require.NoError(t, env.db.First(&before, "email = ?", "a@x.com").Error)

	w := postJSON(t, env.router, "/auth/forgot-password", map[string]string{
		"email":       "nobody@x.com",
		"newPassword": "p2",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response services.ForgotPasswordResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "User not found", response.Message)

	var after models.User
	require.NoError(t, env.db.First(&after, "email = ?", "a@x.com").Error)
	require.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestAuth_SignupLoginScenario(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/users/signup", map[string]string{
		"full_name": "A",
		"email":     "a@x.com",
		"password":  "p1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var signup services.SignupResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	require.Equal(t, "User created successfully", signup.Message)

	w = postJSON(t, env.router, "/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "p1",
	})
	var login services.LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.Equal(t, "Login successful", login.Message)
	require.Equal(t, signup.UserID, login.UserID)
	require.Equal(t, "a@x.com", login.Email)

	w = postJSON(t, env.router, "/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "wrong",
	})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.Equal(t, "Invalid password", login.Message)
}
