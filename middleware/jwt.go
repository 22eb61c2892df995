package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"learnhub/models"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const (
	localUser   = "user"
	localUserID = "userId"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// GenerateJWT signs a token carrying the user id that expires after ttl
func GenerateJWT(userID uint, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT verifies signature and expiry and returns the embedded user id
func ParseJWT(tokenString, secret string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	// exp is optional for jwt.MapClaims validation; a token without it never expires here
	if _, ok := claims["exp"]; !ok {
		return 0, ErrInvalidToken
	}

	// JWT numbers decode as float64
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// JWTMiddleware authenticates the bearer token and attaches the user row to the request
func JWTMiddleware(db *gorm.DB, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.NewAppError(utils.KindAuth, "Access denied", nil)
		}
		tokenString := strings.TrimSpace(authHeader[len("Bearer "):])
		if tokenString == "" {
			return utils.NewAppError(utils.KindAuth, "Access denied", nil)
		}

		userID, err := ParseJWT(tokenString, secret)
		if err != nil {
			return utils.NewAppError(utils.KindInvalidToken, "Invalid token", err)
		}

		var user models.User
		if err := db.WithContext(c.UserContext()).Where("id = ?", userID).First(&user).Error; err != nil {
			return utils.NewAppError(utils.KindAuth, "Invalid token", err)
		}

		c.Locals(localUser, &user)
		c.Locals(localUserID, user.ID)
		return c.Next()
	}
}

// CurrentUser returns the user attached by JWTMiddleware
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(localUser).(*models.User)
	return user, ok && user != nil
}

func JsonResponse(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}
