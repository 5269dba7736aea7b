package middleware

import (
	"fmt"
	"os"
	"strings"
	"time"
	"timetable/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func jwtKey() []byte {
	return []byte(os.Getenv("BYTE_KEY"))
}

func GenerateJWT(user *domain.User) (string, error) {
	claims := &domain.Claims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		TeacherID: user.TeacherID,
		GroupID:   user.GroupID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func VerifyJWT(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AuthRequired verifies the bearer token and stores *domain.Claims in
// locals under "user".
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("Authorization")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "No token provided",
			})
		}
		token = strings.TrimPrefix(token, "Bearer ")

		claims, err := VerifyJWT(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid token",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// RoleRequired gates a route to the given roles. Must run after
// AuthRequired.
func RoleRequired(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*domain.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "No token provided",
			})
		}

		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Access denied",
		})
	}
}

// AdminTierRequired gates a route to accounts that manage schedules and
// decide change requests.
func AdminTierRequired() fiber.Handler {
	return RoleRequired(domain.RoleSuperAdmin, domain.RoleAdmin)
}
