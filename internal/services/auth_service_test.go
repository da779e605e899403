package services

import (
	"strings"
	"testing"

	"github.com/astevens246/auth-fantasy-football/internal/database"
	"github.com/astevens246/auth-fantasy-football/internal/models"
	"github.com/astevens246/auth-fantasy-football/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authServiceTestEnv struct {
	db      *gorm.DB
	service *AuthService
}

func setupAuthServiceTestEnv(t *testing.T) authServiceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Team{}, &models.Player{})
	require.NoError(t, err)

	database.SetDB(db)

	service := NewAuthService(repository.NewUserRepository(db), zap.NewNop())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authServiceTestEnv{db: db, service: service}
}

func validSignupInput() SignupInput {
	return SignupInput{
		Username: "leaguemanager",
		Email:    "manager@example.com",
		Password: "supersecret",
	}
}

func TestAuthService_Signup(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	user, err := env.service.Signup(validSignupInput())
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "leaguemanager", user.Username)
	require.Equal(t, "manager@example.com", user.Email)

	// Only the bcrypt hash is stored.
	require.NotEqual(t, "supersecret", user.PasswordHash)
	require.True(t, strings.HasPrefix(user.PasswordHash, "$2"))
}

func TestAuthService_SignupValidation(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	short := validSignupInput()
	short.Username = "abc"
	_, err := env.service.Signup(short)
	require.ErrorIs(t, err, ErrInvalidUsername)

	long := validSignupInput()
	long.Username = strings.Repeat("x", 21)
	_, err = env.service.Signup(long)
	require.ErrorIs(t, err, ErrInvalidUsername)

	badEmail := validSignupInput()
	badEmail.Email = "not-an-email"
	_, err = env.service.Signup(badEmail)
	require.ErrorIs(t, err, ErrInvalidEmail)

	shortPassword := validSignupInput()
	shortPassword.Password = "tiny"
	_, err = env.service.Signup(shortPassword)
	require.ErrorIs(t, err, ErrPasswordTooShort)

	mismatch := validSignupInput()
	mismatch.ConfirmPassword = "somethingelse"
	_, err = env.service.Signup(mismatch)
	require.ErrorIs(t, err, ErrPasswordMismatch)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count, "no user should be created by a failed signup")
}

func TestAuthService_SignupDuplicateUsername(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	_, err := env.service.Signup(validSignupInput())
	require.NoError(t, err)

	dup := validSignupInput()
	dup.Email = "other@example.com"
	_, err = env.service.Signup(dup)
	require.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	_, err := env.service.Signup(validSignupInput())
	require.NoError(t, err)

	dup := validSignupInput()
	dup.Username = "othermanager"
	_, err = env.service.Signup(dup)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	created, err := env.service.Signup(validSignupInput())
	require.NoError(t, err)

	user, err := env.service.Login(LoginInput{
		Username: "leaguemanager",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	_, err := env.service.Signup(validSignupInput())
	require.NoError(t, err)

	// A wrong password and an unknown username must fail with the exact
	// same error, so the caller cannot probe which usernames exist.
	_, wrongPassword := env.service.Login(LoginInput{
		Username: "leaguemanager",
		Password: "wrongpassword",
	})
	_, unknownUser := env.service.Login(LoginInput{
		Username: "nosuchmanager",
		Password: "supersecret",
	})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	require.Equal(t, wrongPassword, unknownUser)
}

func TestAuthService_GetUser(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	created, err := env.service.Signup(validSignupInput())
	require.NoError(t, err)

	user, err := env.service.GetUser(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Username, user.Username)

	_, err = env.service.GetUser(9999)
	require.ErrorIs(t, err, ErrUserNotFound)
}
