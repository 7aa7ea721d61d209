package middleware

import (
	"edtech/config"
	"edtech/models"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, email, accountType string) (string, error) {
	claims := jwt.MapClaims{
		"userId":      userID,
		"email":       email,
		"accountType": accountType,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	// Token may arrive via the Authorization header or the session cookie
	tokenString := ""
	if authHeader := c.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = authHeader[len("Bearer "):]
	} else if cookie := c.Cookies("token"); cookie != "" {
		tokenString = cookie
	}

	if tokenString == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Token is missing, authorization denied", nil)
	}

	// Parse and validate the token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	// JWT number claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}
	c.Locals("userId", uint(userID))

	if accountType, ok := claims["accountType"].(string); ok {
		c.Locals("accountType", accountType)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("email", email)
	}

	return c.Next()
}

// requireAccountType guards a route group for a single account type
func requireAccountType(accountType, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claimed, ok := c.Locals("accountType").(string)
		if !ok || claimed != accountType {
			return JsonResponse(c, fiber.StatusUnauthorized, false, message, nil)
		}
		return c.Next()
	}
}

// IsStudent restricts a route to student accounts
func IsStudent() fiber.Handler {
	return requireAccountType(models.AccountTypeStudent, "This is a protected route for students")
}

// IsInstructor restricts a route to instructor accounts
func IsInstructor() fiber.Handler {
	return requireAccountType(models.AccountTypeInstructor, "This is a protected route for instructors")
}

// IsAdmin restricts a route to admin accounts
func IsAdmin() fiber.Handler {
	return requireAccountType(models.AccountTypeAdmin, "This is a protected route for admins")
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
