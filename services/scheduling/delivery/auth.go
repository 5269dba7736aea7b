package delivery

import (
	"timetable/config"
	"timetable/domain"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	auc domain.AuthUseCase
}

func NewAuthHandler(app *fiber.App, uc domain.AuthUseCase) {
	handler := &authHandler{
		auc: uc,
	}

	route := app.Group("/auth")
	route.Post("/login", handler.Login)
}

func (ah *authHandler) Login(c *fiber.Ctx) error {
	var payload domain.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	response, err := ah.auc.LoginUC(c.Context(), &payload)
	if err != nil {
		status := fiber.StatusUnauthorized
		if !domain.IsAuthorization(err) {
			status = fiber.StatusInternalServerError
		}
		config.PrintLogInfo(&payload.Username, status, "Login")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Invalid username or password",
		})
	}

	config.PrintLogInfo(&payload.Username, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    response,
	})
}
