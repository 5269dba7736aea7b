package delivery

import (
	"time"
	"timetable/config"
	"timetable/domain"

	"github.com/gofiber/fiber/v2"
)

func userClaims(c *fiber.Ctx) *domain.Claims {
	claims, _ := c.Locals("user").(*domain.Claims)
	return claims
}

func claimsUsername(claims *domain.Claims) *string {
	if claims == nil {
		return nil
	}
	return &claims.Username
}

func statusFromError(err error) int {
	switch {
	case domain.IsNotFound(err):
		return fiber.StatusNotFound
	case domain.IsAuthorization(err):
		return fiber.StatusForbidden
	case domain.IsConflict(err), domain.IsValidation(err):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError converts a domain error to the structured error body.
// Internal failures keep their details out of the response.
func respondError(c *fiber.Ctx, claims *domain.Claims, functionName string, err error, fallback string) error {
	status := statusFromError(err)
	config.PrintLogInfo(claimsUsername(claims), status, functionName)

	message := fallback
	if status != fiber.StatusInternalServerError {
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}
