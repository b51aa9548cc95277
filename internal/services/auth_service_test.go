package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mealkit/internal/apperrors"
	"mealkit/internal/models"
	"mealkit/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func newAuthService(repo *MockUserRepository) *services.AuthService {
	return services.NewAuthService(repo, testJWTSecret, time.Hour, zap.NewNop())
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctx := context.Background()
	in := services.RegisterInput{
		Name:     "testuser",
		Email:    "Test@Example.com",
		Password: "password123",
	}
	notFound := apperrors.NotFound("user not found")

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		authService := newAuthService(mockRepo)

		mockRepo.On("GetByEmail", ctx, "test@example.com").Return(nil, notFound).Once()
		mockRepo.On("GetByName", ctx, "testuser").Return(nil, notFound).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "test@example.com" && u.IsActive &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
		})).Return(nil).Once()

		user, err := authService.RegisterUser(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Name)
		assert.NotEqual(t, "password123", user.PasswordHash)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Email already registered", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		authService := newAuthService(mockRepo)

		mockRepo.On("GetByEmail", ctx, "test@example.com").Return(&models.User{ID: "1"}, nil).Once()

		_, err := authService.RegisterUser(ctx, in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrConflict))
		assert.Contains(t, err.Error(), "email 'test@example.com' already registered")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Name already taken", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		authService := newAuthService(mockRepo)

		mockRepo.On("GetByEmail", ctx, "test@example.com").Return(nil, notFound).Once()
		mockRepo.On("GetByName", ctx, "testuser").Return(&models.User{ID: "1"}, nil).Once()

		_, err := authService.RegisterUser(ctx, in)
		assert.True(t, errors.Is(err, apperrors.ErrConflict))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_LoginUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{
		ID:           "user-123",
		Name:         "testuser",
		Email:        "test@example.com",
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo.On("GetByEmail", ctx, "test@example.com").Return(user, nil).Once()

		token, got, err := authService.LoginUser(ctx, "test@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID, got.ID)

		parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(testJWTSecret), nil
		})
		require.NoError(t, err)
		claims, ok := parsedToken.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, user.ID, claims["user_id"])
		assert.Equal(t, user.Email, claims["sub"])
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo.On("GetByEmail", ctx, "test@example.com").Return(user, nil).Once()

		_, _, err := authService.LoginUser(ctx, "test@example.com", "wrongpassword")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, apperrors.NotFound("user not found")).Once()

		_, _, err := authService.LoginUser(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Inactive user", func(t *testing.T) {
		inactive := *user
		inactive.IsActive = false
		mockRepo.On("GetByEmail", ctx, "test@example.com").Return(&inactive, nil).Once()

		_, _, err := authService.LoginUser(ctx, "test@example.com", "password123")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := newAuthService(new(MockUserRepository))

	sign := func(claims jwt.MapClaims, secret string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	valid := sign(jwt.MapClaims{"user_id": "user-123", "exp": time.Now().Add(time.Hour).Unix()}, testJWTSecret)
	claims, err := authService.ValidateToken(valid)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])

	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorContains(t, err, "invalid token")

	wrongSecret := sign(jwt.MapClaims{"user_id": "user-123", "exp": time.Now().Add(time.Hour).Unix()}, "other")
	_, err = authService.ValidateToken(wrongSecret)
	assert.ErrorContains(t, err, "invalid token")

	expired := sign(jwt.MapClaims{"user_id": "user-123", "exp": time.Now().Add(-time.Hour).Unix()}, testJWTSecret)
	_, err = authService.ValidateToken(expired)
	assert.ErrorContains(t, err, "invalid token")

	noUser := sign(jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}, testJWTSecret)
	_, err = authService.ValidateToken(noUser)
	assert.ErrorContains(t, err, "missing user_id")
}
